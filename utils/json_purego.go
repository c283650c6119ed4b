//go:build purego

package utils

import (
	"encoding/json" //nolint:depguard
	"io"
)

type JSONEncoder = json.Encoder

func MarshalJSON(val any) ([]byte, error) {
	return json.Marshal(val)
}

func MarshalJSONIndent(val any, indent string) ([]byte, error) {
	return json.MarshalIndent(val, "", indent)
}

func UnmarshalJSON(data []byte, val any) error {
	return json.Unmarshal(data, val)
}

// NewJSONEncoder returns an encoder writing one document per line.
func NewJSONEncoder(writer io.Writer) *JSONEncoder {
	e := json.NewEncoder(writer)
	e.SetEscapeHTML(false)
	return e
}
