package notes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Advisory ceilings shown by the form counters. They are not enforced.
const (
	MaxTitleLength   = 100
	MaxContentLength = 500
)

// Note is a single note as exchanged with the backend.
type Note struct {
	ID        ID        `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp Timestamp `json:"timestamp"`
}

// ID identifies a note. Backends send it either as a JSON string or a number;
// it is kept as text and numeric ids are written back as numbers.
type ID string

func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is unset
func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) isNumeric() bool {
	if id == "" {
		return false
	}
	// Only canonical integers: "007" and "+5" stay strings.
	n, err := strconv.ParseInt(string(id), 10, 64)
	return err == nil && strconv.FormatInt(n, 10) == string(id)
}

// MarshalJSON writes numeric ids as JSON numbers and everything else as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.isNumeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("note id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("note id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Timestamp is the backend-assigned creation time. Raw keeps the text as
// received so unparseable values can still be shown.
type Timestamp struct {
	Time time.Time
	Raw  string
}

var zonedLayouts = []string{
	time.RFC3339Nano,
}

// Layouts without a zone are read in local time.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Raw: t.Format(time.RFC3339Nano)}
}

// ParseTimestamp reads ISO-8601 style timestamps, including the
// "2006-01-02 15:04:05" form. Unknown formats yield a zero Time with Raw set.
func ParseTimestamp(raw string) Timestamp {
	raw = strings.TrimSpace(raw)
	ts := Timestamp{Raw: raw}
	if raw == "" {
		return ts
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			ts.Time = t
			return ts
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			ts.Time = t
			return ts
		}
	}
	return ts
}

// IsZero reports whether no usable time was parsed.
func (ts Timestamp) IsZero() bool {
	return ts.Time.IsZero()
}

// After reports whether ts is newer than other. Unparsed timestamps are the oldest.
func (ts Timestamp) After(other Timestamp) bool {
	return ts.Time.After(other.Time)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.Time.IsZero() {
		return json.Marshal(ts.Raw)
	}
	return json.Marshal(ts.Time.Format(time.RFC3339Nano))
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*ts = Timestamp{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("note timestamp: %w", err)
	}
	*ts = ParseTimestamp(raw)
	return nil
}

// Valid reports whether title and content are both non-empty after trimming.
// Length ceilings are not part of validity.
func Valid(title, content string) bool {
	return strings.TrimSpace(title) != "" && strings.TrimSpace(content) != ""
}

// Length counts characters the way the form counters display them.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Counter formats the "n/max" label shown next to a field.
func Counter(s string, limit int) string {
	return fmt.Sprintf("%d/%d", Length(s), limit)
}

// OverLimit reports whether s exceeds the advisory ceiling.
func OverLimit(s string, limit int) bool {
	return Length(s) > limit
}
