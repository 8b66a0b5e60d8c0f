// Package fasta loads FASTA-formatted sequence files for the distance
// engines. It reads whole records into memory — the engines need random
// access to both sequences, so there is nothing to stream — and keeps
// sequence bytes verbatim: character classification (base, unknown,
// non-base) belongs to the engines, not the loader.
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoHeader indicates sequence data appeared before any '>' header.
var ErrNoHeader = errors.New("fasta: sequence data before first header")

// Record is one FASTA entry: the first whitespace-delimited token of the
// header line and the concatenated sequence lines.
type Record struct {
	ID  string
	Seq []byte
}

// Read parses every record from r. Blank lines are ignored; sequence
// lines are concatenated without any character filtering. A record with
// an empty sequence is legal (the engines accept empty input).
func Read(r io.Reader) ([]Record, error) {
	var (
		records []Record
		current *Record
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := bytes.TrimRight(sc.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			records = append(records, Record{ID: headerID(line)})
			current = &records[len(records)-1]

			continue
		}
		if current == nil {
			return nil, ErrNoHeader
		}
		current.Seq = append(current.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta: scanning input: %w", err)
	}

	return records, nil
}

// ReadFile parses every record from path. "-" reads stdin; a ".gz"
// suffix transparently decompresses.
func ReadFile(path string) ([]Record, error) {
	if path == "-" {
		return Read(os.Stdin)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fasta: opening %s: %w", path, err)
	}
	defer fh.Close()

	var r io.Reader = fh
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(fh)
		if err != nil {
			return nil, fmt.Errorf("fasta: opening %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	records, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("fasta: reading %s: %w", path, err)
	}

	return records, nil
}

// headerID extracts the first whitespace-delimited token after '>'.
func headerID(line []byte) string {
	fields := strings.Fields(string(line[1:]))
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}
