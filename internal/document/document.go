// Package document reads paragraph text out of Word documents.
package document

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// ErrLegacyFormat is returned for .doc files, whose binary container this
// reader does not understand. Callers are expected to tell the user to
// convert the file to .docx first.
var ErrLegacyFormat = errors.New("legacy .doc format is not supported")

// ReadParagraphs opens a .docx container and returns the text of every
// paragraph in the document body, in order. Empty paragraphs are kept so that
// callers can detect section boundaries.
func ReadParagraphs(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
	case ".doc":
		return nil, fmt.Errorf("%w: %s", ErrLegacyFormat, path)
	default:
		return nil, fmt.Errorf("unsupported file format %q: expected a .docx file", filepath.Ext(path))
	}

	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("docx.ReadDocxFile(%s) > %w", path, err)
	}
	defer reader.Close()

	paragraphs, err := splitParagraphs(reader.Editable().GetContent())
	if err != nil {
		return nil, fmt.Errorf("splitParagraphs > %w", err)
	}
	return paragraphs, nil
}

// splitParagraphs walks the document XML and returns one string per w:p
// element. Text comes from w:t elements; w:tab and w:br/w:cr become tab and
// newline characters.
func splitParagraphs(content string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))
	var paragraphs []string
	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decoder.Token > %w", err)
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "p" {
			continue
		}
		text, err := collectParagraph(decoder)
		if err != nil {
			return nil, fmt.Errorf("collectParagraph > %w", err)
		}
		paragraphs = append(paragraphs, text)
	}
	return paragraphs, nil
}

func collectParagraph(decoder *xml.Decoder) (string, error) {
	var builder strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch tok := token.(type) {
		case xml.StartElement:
			depth++
			switch tok.Name.Local {
			case "t":
				var text string
				if err := decoder.DecodeElement(&text, &tok); err != nil {
					return "", err
				}
				builder.WriteString(text)
				depth--
			case "tab":
				builder.WriteRune('\t')
			case "br", "cr":
				builder.WriteRune('\n')
			}
		case xml.EndElement:
			depth--
		}
	}
	return builder.String(), nil
}
