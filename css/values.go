// Package css provides the small set of CSS value parsers the layout engine
// and renderer need: pixel lengths, percentages, colors and the translate()
// transform.
package css

import (
	"strconv"
	"strings"
)

// ParseLength parses a pixel length value ("12px", "12.5px"). A bare number
// is accepted as pixels. The second return value reports success.
func ParseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParsePercent parses a percentage value ("-50%") into its numeric part.
func ParsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseTranslate parses a translate(x, y) transform where x and y are
// percentages of the element's own size ("translate(-50%, 0%)"). Other
// transform functions are not supported and report failure.
func ParseTranslate(s string) (x, y float64, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "translate(") || !strings.HasSuffix(s, ")") {
		return 0, 0, false
	}
	inner := s[len("translate(") : len(s)-1]
	parts := strings.Split(inner, ",")
	if len(parts) == 0 || len(parts) > 2 {
		return 0, 0, false
	}
	x, ok = ParsePercent(parts[0])
	if !ok {
		return 0, 0, false
	}
	if len(parts) == 2 {
		y, ok = ParsePercent(parts[1])
		if !ok {
			return 0, 0, false
		}
	}
	return x, y, true
}

// Keyword returns the value lowercased and trimmed, for comparing keyword
// properties like display and position.
func Keyword(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
