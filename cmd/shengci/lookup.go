package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/shengci/internal/cli"
	"github.com/at-ishikawa/shengci/internal/translate"
)

func newLookupCommand() *cobra.Command {
	backend := translate.BackendStatic
	var credential string

	command := &cobra.Command{
		Use:   "lookup <word>...",
		Short: "Annotate words given on the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			chosenBackend := translate.Backend(cfg.Extract.Backend)
			if cmd.Flags().Changed("backend") {
				chosenBackend = backend
			}
			translator, err := newTranslator(cfg)(chosenBackend, credential)
			if err != nil {
				return fmt.Errorf("failed to create a translator: %w", err)
			}
			defer func() {
				if closer, ok := translator.(io.Closer); ok {
					_ = closer.Close()
				}
			}()

			throttle := time.Duration(cfg.Extract.ThrottleMilliseconds) * time.Millisecond
			lookupCLI := cli.NewLookupCLI(translator, throttle)
			return lookupCLI.Run(context.Background(), args)
		},
	}

	flags := command.Flags()
	flags.VarP(&backend, "backend", "b", fmt.Sprintf("Translation backend. Possible values are %v", translate.AllBackends))
	flags.StringVarP(&credential, "credential", "c", "", "Credential for the translation backend")

	return command
}
