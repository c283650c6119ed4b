package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"git.gammaspectra.live/P2Pool/sha2/sha"
	"git.gammaspectra.live/P2Pool/sha2/types"
	"git.gammaspectra.live/P2Pool/sha2/utils"
)

type checkEntry struct {
	Algorithm sha.Algorithm
	Expected  types.Digest
	Name      string
}

var (
	errMalformedLine   = errors.New("malformed checksum line")
	errNoChecksumLines = errors.New("no properly formatted checksum lines found")
)

// cutBSDLine splits "<ALGORITHM> (<name>) = <hex digest>". Lines whose first
// field is not a known algorithm name are not BSD lines, so GNU lines for
// names such as "report (v2) = final.txt" still parse.
func cutBSDLine(line string) (algorithm sha.Algorithm, name, digest string, ok bool) {
	i := strings.Index(line, " (")
	if i <= 0 || strings.ContainsRune(line[:i], ' ') {
		return algorithm, "", "", false
	}
	j := strings.LastIndex(line, ") = ")
	if j < i+2 {
		return algorithm, "", "", false
	}
	var err error
	if algorithm, err = sha.ParseAlgorithm(line[:i]); err != nil {
		return algorithm, "", "", false
	}
	return algorithm, line[i+2 : j], line[j+4:], true
}

// parseCheckLine accepts the two common checksum list layouts:
//
//	<hex digest>  <name>        (binary mode marker '*' allowed before name)
//	<ALGORITHM> (<name>) = <hex digest>
//
// The second form carries its own algorithm, the first uses defaultAlgorithm.
func parseCheckLine(line string, defaultAlgorithm sha.Algorithm) (e checkEntry, err error) {
	if algorithm, name, digest, ok := cutBSDLine(line); ok {
		e.Algorithm = algorithm
		e.Name = name
		if e.Expected, err = types.DigestFromString(digest); err != nil {
			return e, fmt.Errorf("%w: %w", errMalformedLine, err)
		}
	} else {
		digest, name, ok := strings.Cut(line, " ")
		if !ok {
			return e, errMalformedLine
		}
		// text mode has a second space, binary mode a '*'
		if len(name) == 0 || (name[0] != ' ' && name[0] != '*') {
			return e, errMalformedLine
		}
		e.Algorithm = defaultAlgorithm
		e.Name = name[1:]
		if e.Expected, err = types.DigestFromString(digest); err != nil {
			return e, fmt.Errorf("%w: %w", errMalformedLine, err)
		}
	}

	if e.Name == "" {
		return e, errMalformedLine
	}
	if len(e.Expected) != e.Algorithm.DigestSize() {
		return e, fmt.Errorf("%w: %s digest must be %d bytes, got %d", errMalformedLine, e.Algorithm, e.Algorithm.DigestSize(), len(e.Expected))
	}
	return e, nil
}

// parseCheckList reads a checksum list, skipping empty lines and # comments.
// Malformed lines are logged and counted, not fatal.
func parseCheckList(r io.Reader, defaultAlgorithm sha.Algorithm) (entries []checkEntry, malformed int, err error) {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, lineErr := parseCheckLine(line, defaultAlgorithm)
		if lineErr != nil {
			malformed++
			utils.Debugf("check", "line %d: %s", lineNumber, lineErr)
			continue
		}
		entries = append(entries, e)
	}
	if err = scanner.Err(); err != nil {
		return nil, malformed, err
	}
	return entries, malformed, nil
}

// verify hashes every entry and writes "name: OK" or "name: FAILED" lines to w.
// It returns the number of entries that did not match or could not be read.
func verify(ctx context.Context, w io.Writer, entries []checkEntry, workers int) (failed int, err error) {
	status := make([]error, len(entries))

	err = utils.SplitWork(ctx, workers, uint64(len(entries)), func(ctx context.Context, workIndex uint64, routineIndex int) error {
		e := entries[workIndex]
		data, err := load(e.Name)
		if err != nil {
			status[workIndex] = err
			return nil
		}

		actual := e.Algorithm.Digest(data)
		if !actual.Equal(e.Expected) {
			status[workIndex] = fmt.Errorf("%s mismatch: expected %s, got %s", e.Algorithm, e.Expected, actual)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for i, e := range entries {
		if status[i] != nil {
			failed++
			utils.Debugf("check", "%s: %s", e.Name, status[i])
			_, err = fmt.Fprintf(w, "%s: FAILED\n", e.Name)
		} else {
			_, err = fmt.Fprintf(w, "%s: OK\n", e.Name)
		}
		if err != nil {
			return failed, err
		}
	}
	return failed, nil
}
