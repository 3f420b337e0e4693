// Package testutil provides shared test helpers for creating docx fixtures and config files.
package testutil

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// WriteDocx creates a minimal .docx file at path with one w:p element per
// paragraph. An empty string produces an empty paragraph.
func WriteDocx(t *testing.T, path string, paragraphs ...string) {
	t.Helper()

	var body strings.Builder
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			body.WriteString("<w:p/>")
			continue
		}
		fmt.Fprintf(&body, `<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, textEscaper.Replace(paragraph))
	}
	WriteDocxWithBody(t, path, body.String())
}

// WriteDocxWithBody creates a minimal .docx file at path with the given raw
// w:body content, for fixtures that need tabs, breaks, or split runs.
func WriteDocxWithBody(t *testing.T, path string, body string) {
	t.Helper()

	documentXML := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>%s</w:body></w:document>`, body)

	file, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, file.Close())
	}()

	zipWriter := zip.NewWriter(file)
	for _, entry := range []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
	} {
		writer, err := zipWriter.Create(entry.name)
		require.NoError(t, err)
		_, err = writer.Write([]byte(entry.content))
		require.NoError(t, err)
	}
	require.NoError(t, zipWriter.Close())
}

// WriteConfig writes a config.yml with the given content into dir and returns its path.
func WriteConfig(t *testing.T, dir string, content string) string {
	t.Helper()

	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteDictionary writes a YAML dictionary overlay file and returns its path.
func WriteDictionary(t *testing.T, dir string, entries map[string]string) string {
	t.Helper()

	var content strings.Builder
	for word, meaning := range entries {
		fmt.Fprintf(&content, "%s: %s\n", word, meaning)
	}
	path := filepath.Join(dir, "dictionary.yml")
	require.NoError(t, os.WriteFile(path, []byte(content.String()), 0644))
	return path
}
