// Package report renders annotated vocabulary entries as a numbered plain
// text report.
package report

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/shengci/internal/annotate"
)

// Write renders one three-line block per entry, numbered from 1, with a blank
// line between blocks.
func Write(writer io.Writer, entries []annotate.Entry) error {
	for i, entry := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(writer); err != nil {
				return fmt.Errorf("failed to write a report: %w", err)
			}
		}
		if _, err := fmt.Fprintf(writer, "%d. 汉字: %s\n   拼音: %s\n   意思: %s\n",
			i+1, entry.Word, entry.Pinyin, entry.Meaning); err != nil {
			return fmt.Errorf("failed to write a report: %w", err)
		}
	}
	return nil
}
