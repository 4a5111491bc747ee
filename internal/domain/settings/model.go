package settings

import (
	"strconv"
	"time"
)

// Setting is a keyed configuration record. Values are stored as text;
// typed accessors parse on read.
type Setting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Bool parses the value as a boolean, returning def on failure.
func (s *Setting) Bool(def bool) bool {
	v, err := strconv.ParseBool(s.Value)
	if err != nil {
		return def
	}
	return v
}

// Int parses the value as an integer, returning def on failure.
func (s *Setting) Int(def int) int {
	v, err := strconv.Atoi(s.Value)
	if err != nil {
		return def
	}
	return v
}

// Float parses the value as a float, returning def on failure.
func (s *Setting) Float(def float64) float64 {
	v, err := strconv.ParseFloat(s.Value, 64)
	if err != nil {
		return def
	}
	return v
}
