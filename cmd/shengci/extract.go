package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/shengci/internal/cli"
	"github.com/at-ishikawa/shengci/internal/translate"
)

func newExtractCommand() *cobra.Command {
	backend := translate.BackendStatic
	var credential string
	var marker string
	var allTokens bool
	var interactive bool

	command := &cobra.Command{
		Use:   "extract [file.docx]",
		Short: "Extract the vocabulary section of a word document and annotate it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			options := cli.ExtractOptions{
				Marker:      cfg.Extract.Marker,
				Backend:     translate.Backend(cfg.Extract.Backend),
				Credential:  credential,
				AllTokens:   allTokens,
				Interactive: interactive,
				Throttle:    time.Duration(cfg.Extract.ThrottleMilliseconds) * time.Millisecond,
			}
			if cmd.Flags().Changed("backend") {
				options.Backend = backend
			}
			if marker != "" {
				options.Marker = marker
			}

			var filePath string
			if len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" && !interactive {
				return fmt.Errorf("a document file is required unless --interactive is given")
			}

			extractCLI := cli.NewExtractCLI(options, newTranslator(cfg))
			return extractCLI.Run(context.Background(), filePath)
		},
	}

	flags := command.Flags()
	flags.VarP(&backend, "backend", "b", fmt.Sprintf("Translation backend. Possible values are %v", translate.AllBackends))
	flags.StringVarP(&credential, "credential", "c", "", "Credential for the translation backend")
	flags.StringVar(&marker, "marker", "", "Paragraph that starts the vocabulary section")
	flags.BoolVar(&allTokens, "all-tokens", false, "Keep words without Chinese characters")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Prompt for the translation service and the file path")

	return command
}
