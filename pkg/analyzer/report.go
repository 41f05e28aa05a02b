package analyzer

import (
	"bytes"
	"encoding/json"

	"github.com/sambabib/dumphals/pkg/level"
)

// LevelEntry lists the interfaces first introduced at Level.
type LevelEntry struct {
	Level      string
	Interfaces []string // sorted, never nil
}

// Report holds one entry per level in ascending level order.
type Report struct {
	Entries []LevelEntry
}

// MarshalJSON encodes the report as an object whose keys keep level order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeCompact(&buf, e.Level); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeCompact(&buf, e.Interfaces); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeCompact(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates each value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Partition assigns every interface to the lowest level that contains it.
func Partition(li LevelInterfaces) (*Report, error) {
	levels := make([]string, 0, len(li))
	for l := range li {
		levels = append(levels, l)
	}
	sorted, err := level.Sort(levels)
	if err != nil {
		return nil, err
	}

	seen := NewSet()
	report := &Report{Entries: make([]LevelEntry, 0, len(sorted))}
	for _, l := range sorted {
		fresh := NewSet()
		for name := range li[l] {
			if !seen.Has(name) {
				fresh.Add(name)
			}
		}
		report.Entries = append(report.Entries, LevelEntry{Level: l, Interfaces: fresh.Sorted()})
		for name := range li[l] {
			seen.Add(name)
		}
	}
	return report, nil
}
