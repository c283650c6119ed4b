package main

import (
	"context"
	"fmt"
	"os"

	"git.gammaspectra.live/P2Pool/sha2/sha"
	"git.gammaspectra.live/P2Pool/sha2/types"
	"git.gammaspectra.live/P2Pool/sha2/utils"
)

const stdinName = "-"

type result struct {
	Name      string       `json:"file"`
	Algorithm string       `json:"algorithm"`
	Size      uint64       `json:"size"`
	Digest    types.Digest `json:"digest"`

	// Encoded is the digest in the requested output format, without terminator
	Encoded []byte `json:"-"`
}

func load(name string) ([]byte, error) {
	if name == stdinName {
		return utils.ReadAllProgressive(os.Stdin, 0)
	}
	return utils.ReadFile(name)
}

// hashMessage computes the digest of data once, in the requested format.
func hashMessage(algorithm sha.Algorithm, format sha.Format, data []byte) (r result, err error) {
	buf := make([]byte, format.EncodedLen(algorithm.DigestSize()))
	if err = sha.Sum(algorithm, buf, data, uint64(len(data)), format); err != nil {
		return r, err
	}

	r.Algorithm = algorithm.String()
	r.Size = uint64(len(data))

	if format == sha.FormatRaw {
		r.Encoded = buf
		r.Digest = types.Digest(buf)
		return r, nil
	}

	// drop terminator
	r.Encoded = buf[:len(buf)-1]
	if r.Digest, err = types.DigestFromString(string(r.Encoded)); err != nil {
		return r, err
	}
	return r, nil
}

// hashFiles loads and hashes every named file over the given number of workers.
// Results keep the order of names.
func hashFiles(ctx context.Context, names []string, algorithm sha.Algorithm, format sha.Format, workers int) ([]result, error) {
	results := make([]result, len(names))

	err := utils.SplitWork(ctx, workers, uint64(len(names)), func(ctx context.Context, workIndex uint64, routineIndex int) error {
		name := names[workIndex]
		data, err := load(name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		r, err := hashMessage(algorithm, format, data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		r.Name = name
		results[workIndex] = r

		if utils.IsLogLevelDebug() {
			utils.Debugf("shasum", "worker %d: %s of %s (%s) = %s", routineIndex, algorithm, name, utils.ByteUnits(r.Size), r.Digest)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
