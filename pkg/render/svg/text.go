package svg

import (
	"bytes"
	"encoding/xml"
)

// EscapeXML escapes a string for safe inclusion in SVG output.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
