// Package format names the output formats of the opreg command and encodes
// values in the structured ones.
package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

var (
	ErrBadFormat  = errors.New("bad format")
	ErrNotEncoded = errors.New("text output is rendered by the caller")
)

var names = map[string]Format{
	"t":    TextFormat,
	"text": TextFormat,
	"y":    YAMLFormat,
	"yaml": YAMLFormat,
	"yml":  YAMLFormat,
	"j":    JSONFormat,
	"json": JSONFormat,
}

func ParseFormat(v string) (Format, error) {
	if f, ok := names[strings.ToLower(v)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath guesses the format of a file from its extension.  Unknown
// extensions are text.
func FromPath(p string) Format {
	ext := strings.TrimPrefix(filepath.Ext(p), ".")
	if f, err := ParseFormat(ext); err == nil && len(ext) > 1 {
		return f
	}
	return TextFormat
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Encode writes v to w as yaml or indented json.  Text has no generic
// encoding; Encode returns ErrNotEncoded for it.
func (f Format) Encode(w io.Writer, v any) error {
	switch f {
	case JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAMLFormat:
		d, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case TextFormat:
		return ErrNotEncoded
	}
	return fmt.Errorf("%w: %d", ErrBadFormat, f)
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, YAMLFormat, JSONFormat}
}
