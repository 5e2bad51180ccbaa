// Package iojson reads and writes the JSON documents exchanged by the
// invite command line: replay scripts in, records and reports out.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteLine writes obj to w as a single compact JSON line, for streams of
// records that are consumed line by line.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal line: %w", err)
	}
	bits = append(bits, '\n')
	_, err = w.Write(bits)
	return err
}

// WriteIndent writes obj to w as an indented document followed by a newline.
func WriteIndent(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = fmt.Fprintln(w, string(bits))
	return err
}
