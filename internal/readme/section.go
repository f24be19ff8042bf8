package readme

import (
	"errors"
	"strings"
)

const (
	StartMarker = "<!--START_SECTION:activity-->"
	EndMarker   = "<!--END_SECTION:activity-->"
)

var ErrMarkersNotFound = errors.New("activity section markers not found")

// ReplaceSection swaps the span from the first start marker through the
// nearest end marker after it for a freshly wrapped section. Bytes outside
// that span are left untouched.
func ReplaceSection(doc, content string) (string, error) {
	start := strings.Index(doc, StartMarker)
	if start < 0 {
		return "", ErrMarkersNotFound
	}

	rest := doc[start+len(StartMarker):]
	end := strings.Index(rest, EndMarker)
	if end < 0 {
		return "", ErrMarkersNotFound
	}
	spanEnd := start + len(StartMarker) + end + len(EndMarker)

	var sb strings.Builder
	sb.Grow(len(doc) + len(content))
	sb.WriteString(doc[:start])
	sb.WriteString(Wrap(content))
	sb.WriteString(doc[spanEnd:])
	return sb.String(), nil
}

func Wrap(content string) string {
	return StartMarker + "\n" + content + "\n" + EndMarker
}
