// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON/JSONL schema for encoded sequences.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	ID          string         `json:"id"`
	Description string         `json:"description,omitempty"`
	Overlap     int            `json:"overlap"`
	TriIntegers []TriIntegerV1 `json:"tri_integers"`
}

// TriIntegerV1 carries one chunk's coordinates. X and Y are decimal
// strings: they exceed 64-bit range for block widths past 63 and JSON
// numbers would silently lose precision.
type TriIntegerV1 struct {
	X string `json:"x"`
	Y string `json:"y"`
	N int    `json:"n"`
}
