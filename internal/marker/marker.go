// Package marker maintains the managed section of a text file: the region
// between StartMarker and EndMarker that ai-tao owns. Everything outside the
// markers belongs to the user and is preserved byte for byte.
package marker

import "strings"

// Marker literals delimiting the managed section.
const (
	StartMarker = "<!-- AI-TAO:START -->"
	EndMarker   = "<!-- AI-TAO:END -->"
)

// Wrap surrounds content with the start and end markers. Content is not
// trimmed or otherwise altered.
func Wrap(content string) string {
	return StartMarker + "\n" + content + "\n" + EndMarker
}

// HasSection reports whether both marker literals occur anywhere in content.
// Marker order is not checked here; Update handles misordered markers.
func HasSection(content string) bool {
	return strings.Contains(content, StartMarker) && strings.Contains(content, EndMarker)
}

// Update replaces the managed section of existing with inner, or appends a
// new section when existing has none.
//
// The section runs from the first start marker to the first end marker after
// it. Text before and after that span is kept verbatim. An end marker with no
// start marker before it never matches, so a file with only reversed or
// dangling markers gets a section appended.
func Update(existing, inner string) string {
	start, end, ok := locate(existing)
	if !ok {
		return appendSection(existing, inner)
	}
	return existing[:start] + Wrap(inner) + existing[end:]
}

// Extract returns the text between the markers with the single newline that
// Wrap places on each side removed.
func Extract(content string) (string, bool) {
	start, end, ok := locate(content)
	if !ok {
		return "", false
	}
	inner := content[start+len(StartMarker) : end-len(EndMarker)]
	inner = strings.TrimPrefix(inner, "\n")
	inner = strings.TrimSuffix(inner, "\n")
	return inner, true
}

// locate returns the offset of the section's start marker and the offset
// just past its end marker.
func locate(content string) (start, end int, ok bool) {
	start = strings.Index(content, StartMarker)
	if start < 0 {
		return 0, 0, false
	}
	rel := strings.Index(content[start+len(StartMarker):], EndMarker)
	if rel < 0 {
		return 0, 0, false
	}
	end = start + len(StartMarker) + rel + len(EndMarker)
	return start, end, true
}

func appendSection(existing, inner string) string {
	if strings.TrimSpace(existing) == "" {
		return Wrap(inner) + "\n"
	}
	return strings.TrimRight(existing, " \t\r\n") + "\n\n" + Wrap(inner) + "\n"
}
