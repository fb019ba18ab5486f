// Package csvconv converts CSV files into JSON or YAML documents.
package csvconv

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"rcli/internal/domain"
	"rcli/internal/store"
)

// Format is the output document type.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("invalid output format %q (want json or yaml)", s)
}

func (f Format) String() string { return string(f) }

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string { return "format" }

// DefaultOutput is the file written when no output path is given.
func DefaultOutput(f Format) string { return "output." + string(f) }

// Options controls a conversion.
type Options struct {
	Input     string
	Output    string
	Format    Format
	Delimiter rune
	// Header treats the first row as field names. Without it every row is
	// emitted as a plain list.
	Header bool
}

// Service reads CSV through a ByteSource.
type Service struct {
	src domain.ByteSource
}

// New returns a CSV converter.
func New(src domain.ByteSource) *Service { return &Service{src: src} }

// Convert reads opts.Input and writes the converted document to
// opts.Output (or DefaultOutput). It returns the path written.
func (s *Service) Convert(ctx context.Context, opts Options) (string, error) {
	raw, err := s.src.ReadBytes(ctx, opts.Input)
	if err != nil {
		return "", err
	}
	out, err := Render(bytes.NewReader(raw), opts)
	if err != nil {
		return "", err
	}
	path := opts.Output
	if path == "" {
		path = DefaultOutput(opts.Format)
	}
	if err := store.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Render converts CSV from r into the requested format.
func Render(r io.Reader, opts Options) ([]byte, error) {
	rows, err := readRows(r, opts)
	if err != nil {
		return nil, err
	}
	switch opts.Format {
	case JSON, "":
		b, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case YAML:
		return yaml.Marshal(rows)
	}
	return nil, fmt.Errorf("invalid output format %q", opts.Format)
}

// readRows returns []map[string]string with a header, [][]string without.
// Map keys marshal in sorted order in both encoders.
func readRows(r io.Reader, opts Options) (any, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.FieldsPerRecord = -1

	if !opts.Header {
		rows := make([][]string, 0, 128)
		for {
			rec, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return rows, nil
			}
			if err != nil {
				return nil, fmt.Errorf("%w: csv: %v", domain.ErrEncoding, err)
			}
			rows = append(rows, rec)
		}
	}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: csv header: %v", domain.ErrEncoding, err)
	}
	header = append([]string(nil), header...)

	rows := make([]map[string]string, 0, 128)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %v", domain.ErrEncoding, err)
		}
		// Zip stops at the shorter of header and record.
		row := make(map[string]string, len(header))
		for i := 0; i < len(header) && i < len(rec); i++ {
			row[header[i]] = rec[i]
		}
		rows = append(rows, row)
	}
}
