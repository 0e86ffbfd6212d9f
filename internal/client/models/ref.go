// Package models holds the server-shaped records the Manager client reads
// and writes. Records are owned by the backend; the client passes them
// through and only edits the fields a form exposes.
package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Ref points at another record. The backend sends either the bare id or a
// populated object, depending on the endpoint.
type Ref struct {
	ID        string `json:"_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	ContactNo string `json:"contactNo,omitempty"`
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	type plain Ref
	return json.Unmarshal(b, (*plain)(r))
}

// RefName returns the referenced name or "N/A".
func RefName(r *Ref) string {
	if r == nil || r.Name == "" {
		return "N/A"
	}
	return r.Name
}

// RefID returns the referenced id or "".
func RefID(r *Ref) string {
	if r == nil {
		return ""
	}
	return r.ID
}

// Time is a timestamp that tolerates null and empty strings.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		parsed, err = time.Parse(time.DateOnly, s)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// Date formats t as YYYY-MM-DD or "N/A".
func (t Time) Date() string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(time.DateOnly)
}

// Clock formats t as HH:MM or "N/A".
func (t Time) Clock() string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("15:04")
}
