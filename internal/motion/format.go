package motion

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// arrayField extracts doc[field] as raw JSON, treating a missing or null field
// as an empty array.
func arrayField(doc gjson.Result, field string) string {
	v := doc.Get(field)
	if !v.Exists() || v.Type == gjson.Null {
		return "[]"
	}
	return v.Raw
}

// Indent pretty-prints raw JSON with two-space indentation, keeping the key
// order Motion used.
func Indent(raw string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func FormatCreated(t Task) string {
	return fmt.Sprintf("✅ Task \"%s\" created successfully!\nTask ID: %s\nPriority: %s", t.Name, t.ID, t.Priority)
}
