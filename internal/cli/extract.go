package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/shengci/internal/annotate"
	"github.com/at-ishikawa/shengci/internal/document"
	"github.com/at-ishikawa/shengci/internal/extract"
	"github.com/at-ishikawa/shengci/internal/report"
	"github.com/at-ishikawa/shengci/internal/translate"
)

// NewTranslatorFunc builds the translation client for a chosen backend.
// The credential format depends on the backend.
type NewTranslatorFunc func(backend translate.Backend, credential string) (translate.Translator, error)

// ExtractOptions controls a single extract run.
type ExtractOptions struct {
	Marker      string
	Backend     translate.Backend
	Credential  string
	AllTokens   bool
	Interactive bool
	Throttle    time.Duration
}

// ExtractCLI reads a word document, extracts the vocabulary section and
// prints an annotated report.
type ExtractCLI struct {
	options       ExtractOptions
	newTranslator NewTranslatorFunc
	stdinReader   *bufio.Reader
	stdoutWriter  io.Writer
	bold          *color.Color
}

func NewExtractCLI(options ExtractOptions, newTranslator NewTranslatorFunc) *ExtractCLI {
	return &ExtractCLI{
		options:       options,
		newTranslator: newTranslator,
		stdinReader:   bufio.NewReader(os.Stdin),
		stdoutWriter:  os.Stdout,
		bold:          color.New(color.Bold),
	}
}

func (cli *ExtractCLI) Run(ctx context.Context, filePath string) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	options := cli.options
	if options.Interactive {
		if err := cli.chooseTranslationService(&options); err != nil {
			return err
		}
		if filePath == "" {
			path, err := cli.readLine("Enter the path to your .doc/.docx file: ")
			if err != nil {
				return err
			}
			if path == "" {
				if _, err := fmt.Fprintln(cli.stdoutWriter, "No file path provided."); err != nil {
					return fmt.Errorf("failed to write to stdout: %w", err)
				}
				return nil
			}
			filePath = path
		}
	}
	if filePath == "" {
		return errors.New("no document file was given")
	}

	return cli.process(ctx, options, filePath)
}

func (cli *ExtractCLI) process(ctx context.Context, options ExtractOptions, filePath string) error {
	translator, err := cli.newTranslator(options.Backend, options.Credential)
	if err != nil {
		return fmt.Errorf("failed to create a translator: %w", err)
	}

	if _, err := fmt.Fprintf(cli.stdoutWriter, "Reading file: %s\n", filePath); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	paragraphs, err := document.ReadParagraphs(filePath)
	if err != nil {
		if errors.Is(err, document.ErrLegacyFormat) {
			if err := cli.printLegacyFormatHelp(); err != nil {
				return err
			}
		}
		return fmt.Errorf("document.ReadParagraphs > %w", err)
	}
	if len(paragraphs) == 0 {
		if _, err := fmt.Fprintln(cli.stdoutWriter, "No content found in file."); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(cli.stdoutWriter, "Extracting words under '%s'...\n", options.Marker); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	body, err := extract.Section(paragraphs, options.Marker)
	if err != nil && !errors.Is(err, extract.ErrSectionNotFound) {
		return fmt.Errorf("extract.Section > %w", err)
	}
	words := extract.SplitWords(body)
	if !options.AllTokens {
		words = extract.HanOnly(words)
	}
	if len(words) == 0 {
		if _, err := fmt.Fprintf(cli.stdoutWriter, "No words found under '%s' section.\n", options.Marker); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(cli.stdoutWriter, "Found %d words. Processing translations...\n", len(words)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	if _, err := fmt.Fprintln(cli.stdoutWriter, strings.Repeat("-", 60)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	annotator := annotate.NewAnnotator(translator, options.Throttle)
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

func (cli *ExtractCLI) chooseTranslationService(options *ExtractOptions) error {
	if _, err := cli.bold.Fprintln(cli.stdoutWriter, "Chinese Word Processor"); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	lines := []string{
		strings.Repeat("=", 60),
		"Translation Service Options:",
		"1. Google Translate (requires API key)",
		"2. Baidu Translate (requires API key)",
		"3. Free service (limited dictionary)",
		"4. OpenAI (requires API key)",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(cli.stdoutWriter, line); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}

	choice, err := cli.readLine("Choose translation service (1-4): ")
	if err != nil {
		return err
	}

	// Anything other than a known choice falls back to the built-in dictionary
	switch choice {
	case "1":
		options.Backend = translate.BackendGoogle
		options.Credential, err = cli.readLine("Enter Google Translate API key: ")
	case "2":
		options.Backend = translate.BackendBaidu
		options.Credential, err = cli.readLine("Enter Baidu Translate API key (format: appid:secret_key): ")
	case "4":
		options.Backend = translate.BackendOpenAI
		options.Credential, err = cli.readLine("Enter OpenAI API key: ")
	default:
		options.Backend = translate.BackendStatic
		options.Credential = ""
	}
	return err
}

func (cli *ExtractCLI) printLegacyFormatHelp() error {
	lines := []string{
		"Error: .doc files are not supported due to their complex binary format.",
		"Please convert your .doc file to .docx format:",
		"1. Open the file in Microsoft Word",
		"2. Go to File > Save As",
		"3. Choose 'Word Document (.docx)' as the format",
		"4. Save the file with a .docx extension",
		"5. Run this script again with the .docx file",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(cli.stdoutWriter, line); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	return nil
}

func (cli *ExtractCLI) readLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(cli.stdoutWriter, prompt); err != nil {
		return "", fmt.Errorf("failed to write to stdout: %w", err)
	}
	input, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(input), nil
}
