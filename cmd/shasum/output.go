package main

import (
	"io"
	"strconv"

	"git.gammaspectra.live/P2Pool/sha2/sha"
	"git.gammaspectra.live/P2Pool/sha2/utils"
	"github.com/markkurossi/tabulate"
)

// printLines writes "<digest>  <name>" lines. Raw format writes the digests
// back to back with no names.
func printLines(w io.Writer, results []result, format sha.Format) error {
	var buf []byte
	for _, r := range results {
		buf = append(buf, r.Encoded...)
		if format != sha.FormatRaw {
			buf = append(buf, ' ', ' ')
			buf = append(buf, r.Name...)
			buf = append(buf, '\n')
		}
	}
	_, err := w.Write(buf)
	return err
}

func printJSON(w io.Writer, results []result) error {
	buf, err := utils.MarshalJSONIndent(results, "  ")
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}

// printJSONLines writes one JSON object per result and line.
func printJSONLines(w io.Writer, results []result) error {
	e := utils.NewJSONEncoder(w)
	for _, r := range results {
		if err := e.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func printTable(w io.Writer, results []result) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("File").SetAlign(tabulate.ML)
	tab.Header("Algorithm").SetAlign(tabulate.ML)
	tab.Header("Size").SetAlign(tabulate.MR)
	tab.Header("Bytes").SetAlign(tabulate.MR)
	tab.Header("Digest").SetAlign(tabulate.ML)

	for _, r := range results {
		row := tab.Row()
		row.Column(r.Name)
		row.Column(r.Algorithm)
		row.Column(utils.ByteUnits(r.Size))
		row.Column(strconv.FormatUint(r.Size, 10))
		row.Column(r.Digest.String())
	}

	tab.Print(w)
}
