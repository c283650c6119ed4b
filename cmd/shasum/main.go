package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"git.gammaspectra.live/P2Pool/sha2/sha"
	"git.gammaspectra.live/P2Pool/sha2/utils"
)

type config struct {
	Algorithm sha.Algorithm
	Format    sha.Format
	JSON      bool
	JSONLines bool
	Table     bool
	Check     string
	Workers   int
	Files     []string
}

func parseFlags(args []string) (cfg config, err error) {
	fs := flag.NewFlagSet("shasum", flag.ContinueOnError)

	algorithm := fs.String("a", "sha256", "Hash algorithm: sha1, sha224, sha256, sha384, sha512, sha512/224, sha512/256")
	format := fs.String("f", "hex", "Output format: hex, HEX or raw")
	fs.BoolVar(&cfg.JSON, "json", false, "Print results as a JSON document")
	fs.BoolVar(&cfg.JSONLines, "jsonl", false, "Print one JSON object per file and line")
	fs.BoolVar(&cfg.Table, "table", false, "Print results as a table")
	fs.StringVar(&cfg.Check, "c", "", "Verify the checksums listed in this file, - for standard input")
	fs.IntVar(&cfg.Workers, "j", 0, "Files hashed in parallel, 0 for one per CPU")
	verbose := fs.Bool("v", false, "Log a summary once done")
	debug := fs.Bool("debug", false, "Log debug messages with caller locations")

	if err = fs.Parse(args); err != nil {
		return cfg, err
	}

	if *verbose {
		utils.GlobalLogLevel |= utils.LogLevelNotice
	}
	if *debug {
		utils.GlobalLogLevel |= utils.LogLevelNotice | utils.LogLevelDebug
		utils.LogFile = true
	}

	if cfg.Algorithm, err = sha.ParseAlgorithm(*algorithm); err != nil {
		return cfg, fmt.Errorf("-a %q: %w", *algorithm, err)
	}
	if cfg.Format, err = sha.ParseFormat(*format); err != nil {
		return cfg, fmt.Errorf("-f %q: %w", *format, err)
	}
	if modes := btoi(cfg.JSON) + btoi(cfg.JSONLines) + btoi(cfg.Table); modes > 1 {
		return cfg, errors.New("-json, -jsonl and -table are mutually exclusive")
	}

	cfg.Files = fs.Args()
	if len(cfg.Files) == 0 && cfg.Check == "" {
		cfg.Files = []string{stdinName}
	}
	return cfg, nil
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config, stdout io.Writer) (exitCode int, err error) {
	if cfg.Check != "" {
		var list io.Reader
		if cfg.Check == stdinName {
			list = os.Stdin
		} else {
			f, err := os.Open(cfg.Check)
			if err != nil {
				return 1, err
			}
			defer f.Close()
			list = f
		}

		entries, malformed, err := parseCheckList(list, cfg.Algorithm)
		if err != nil {
			return 1, fmt.Errorf("%s: %w", cfg.Check, err)
		}
		if malformed > 0 {
			utils.Errorf("check", "WARNING: %d lines are improperly formatted", malformed)
		}
		if len(entries) == 0 {
			return 1, fmt.Errorf("%s: %w", cfg.Check, errNoChecksumLines)
		}
		failed, err := verify(ctx, stdout, entries, cfg.Workers)
		if err != nil {
			return 1, err
		}
		if failed > 0 {
			utils.Errorf("check", "%d of %d computed checksums did NOT match", failed, len(entries))
			return 1, nil
		}
		utils.Noticef("check", "%d checksums verified", len(entries))
		return 0, nil
	}

	format := cfg.Format
	if cfg.JSON || cfg.JSONLines || cfg.Table {
		format = sha.FormatHexLower
	}

	results, err := hashFiles(ctx, cfg.Files, cfg.Algorithm, format, cfg.Workers)
	if err != nil {
		return 1, err
	}

	var total uint64
	for _, r := range results {
		total += r.Size
	}
	utils.Noticef("shasum", "%s of %d files, %s total", cfg.Algorithm, len(results), utils.ByteUnits(total))

	switch {
	case cfg.JSON:
		err = printJSON(stdout, results)
	case cfg.JSONLines:
		err = printJSONLines(stdout, results)
	case cfg.Table:
		printTable(stdout, results)
	default:
		err = printLines(stdout, results, format)
	}
	if err != nil {
		return 1, err
	}
	return 0, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		utils.Fatalf("shasum", "%s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exitCode, err := run(ctx, cfg, os.Stdout)
	if err != nil {
		if ctx.Err() != nil {
			utils.Logf("shasum", "interrupted")
		} else {
			utils.Errorf("shasum", "%s", err)
		}
	}
	stop()
	os.Exit(exitCode)
}
