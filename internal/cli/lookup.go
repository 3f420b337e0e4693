package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/at-ishikawa/shengci/internal/annotate"
	"github.com/at-ishikawa/shengci/internal/report"
	"github.com/at-ishikawa/shengci/internal/translate"
)

// LookupCLI annotates words given on the command line, without a document.
type LookupCLI struct {
	translator   translate.Translator
	throttle     time.Duration
	stdoutWriter io.Writer
}

func NewLookupCLI(translator translate.Translator, throttle time.Duration) *LookupCLI {
	return &LookupCLI{
		translator:   translator,
		throttle:     throttle,
		stdoutWriter: os.Stdout,
	}
}

func (cli *LookupCLI) Run(ctx context.Context, words []string) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	annotator := annotate.NewAnnotator(cli.translator, cli.throttle)
	entries, err := annotator.Annotate(ctx, words)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			if _, err := fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting..."); err != nil {
				return fmt.Errorf("failed to write to stdout: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to annotate words: %w", err)
	}

	return report.Write(cli.stdoutWriter, entries)
}
