package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alpkeskin/gotoon"
	"github.com/pders01/abref/internal/models"
)

// Format selects how a matched reference is printed
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatToon Format = "toon"
)

// Formats lists the accepted output formats
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatToon}
}

// ParseFormat validates an output format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatText, nil
	}
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (use text, json or toon)", s)
}

// Write prints ref to w. The text format is the bare key and a newline.
func Write(w io.Writer, format Format, ref models.Ref) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, ref.Key)
		return err

	case FormatJSON:
		output, err := json.MarshalIndent(ref, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(output))
		return err

	case FormatToon:
		output, err := gotoon.Encode(ref)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		_, err = fmt.Fprintln(w, output)
		return err
	}

	return fmt.Errorf("unknown output format %q", format)
}
