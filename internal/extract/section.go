package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultMarker labels the vocabulary section in textbook documents.
const DefaultMarker = "生词"

// ErrSectionNotFound is returned when no paragraph contains the marker.
var ErrSectionNotFound = errors.New("section not found")

// A numbered heading like 一、 or 2. starts the next section of a lesson.
var headingPattern = regexp.MustCompile(`^[一二三四五六七八九十\d]+[、.]`)

const grammarHeading = "语法"

// Section returns the body of the marker section: the text of every paragraph
// after the first paragraph containing marker, joined with newlines.
// The body ends at the first blank paragraph, at the next section heading
// (numbered or 语法), or at the end of the document, whichever comes first.
// A marker paragraph immediately followed by a boundary yields an empty body.
func Section(paragraphs []string, marker string) (string, error) {
	start := -1
	for i, paragraph := range paragraphs {
		if strings.Contains(paragraph, marker) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return "", fmt.Errorf("%w: no paragraph contains %q", ErrSectionNotFound, marker)
	}

	var body []string
	for _, paragraph := range paragraphs[start:] {
		line := strings.TrimSpace(paragraph)
		if line == "" {
			break
		}
		if headingPattern.MatchString(line) || strings.HasPrefix(line, grammarHeading) {
			break
		}
		body = append(body, line)
	}
	return strings.Join(body, "\n"), nil
}
