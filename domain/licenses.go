package domain

import (
	"bytes"
	"encoding/json"
)

// LicenseValue preserves the licenses field of the scanner output verbatim.
// license-checker emits either a string ("MIT") or an array (["MIT", "BSD"])
// and the report passes the value through without normalizing the shape.
type LicenseValue struct {
	raw json.RawMessage
}

// UnmarshalJSON keeps the raw JSON bytes as received.
func (v *LicenseValue) UnmarshalJSON(data []byte) error {
	v.raw = append(v.raw[:0], data...)
	return nil
}

// MarshalJSON round-trips the original bytes.
func (v LicenseValue) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// IsZero reports whether the licenses field was absent from the metadata.
func (v LicenseValue) IsZero() bool {
	return len(v.raw) == 0 || bytes.Equal(v.raw, []byte("null"))
}

// String renders the value for the report: a JSON string is unquoted
// ("MIT" -> MIT), any other shape is its compact JSON text (["MIT"]).
func (v LicenseValue) String() string {
	if v.IsZero() {
		return ""
	}

	var s string
	if err := json.Unmarshal(v.raw, &s); err == nil {
		return s
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, v.raw); err != nil {
		return string(v.raw)
	}
	return compact.String()
}
