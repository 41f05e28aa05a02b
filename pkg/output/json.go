package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/sambabib/dumphals/pkg/analyzer"
)

const prettyIndent = "    "

// GenerateJSONReport converts the report to JSON. The compact form has no
// insignificant whitespace; the pretty form indents by four spaces.
// Non-ASCII characters are written as \uXXXX escapes.
func GenerateJSONReport(report *analyzer.Report, pretty bool) ([]byte, error) {
	// json.Marshal would re-escape HTML characters in the marshaler output
	data, err := report.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	data = escapeNonASCII(data)
	if !pretty {
		return data, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", prettyIndent); err != nil {
		return nil, fmt.Errorf("failed to indent JSON report: %w", err)
	}
	return buf.Bytes(), nil
}

// escapeNonASCII rewrites every non-ASCII rune of valid JSON as a \uXXXX
// escape, using a UTF-16 surrogate pair outside the basic plane.
// Such runes can only occur inside string literals.
func escapeNonASCII(data []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(data))
	for len(data) > 0 {
		if data[0] < utf8.RuneSelf {
			buf.WriteByte(data[0])
			data = data[1:]
			continue
		}
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			fmt.Fprintf(&buf, `\u%04x\u%04x`, r1, r2)
		} else {
			fmt.Fprintf(&buf, `\u%04x`, r)
		}
	}
	return buf.Bytes()
}

// WriteJSONReport writes the JSON report followed by a newline.
func WriteJSONReport(w io.Writer, report *analyzer.Report, pretty bool) error {
	data, err := GenerateJSONReport(report, pretty)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
