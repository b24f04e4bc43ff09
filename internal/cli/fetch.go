package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loomgen/loom/internal/config"
)

// FetchOptions holds flags for the fetch command.
type FetchOptions struct {
	*RootOptions
	Manifest string
	Output   string
}

// NewFetchCommand creates the fetch command.
func NewFetchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FetchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fetch [document-key]",
		Short: "Fetch a document snapshot to disk",
		Long: `Fetch the raw design document and write it as a JSON snapshot, so
later generate runs can work offline with --snapshot.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 1 {
				key = args[0]
			}
			return runFetch(opts, key, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Manifest, "manifest", "m", "loom.yaml", "manifest path (used when no key argument is given)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "snapshot path (default <key>.json)")

	return cmd
}

func runFetch(opts *FetchOptions, key string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if key == "" {
		m, err := config.Load(opts.Manifest)
		if err != nil {
			formatter.Error(ErrCodeManifestInvalid, err.Error(), nil)
			return WrapExitError(ExitCommandError, "loading manifest", err)
		}
		key = m.Document
	}

	f, err := loadRawFile(cmd.Context(), key, "", formatter)
	if err != nil {
		formatter.Error(ErrCodeFetchFailed, err.Error(), nil)
		return err
	}

	out := opts.Output
	if out == "" {
		out = key + ".json"
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "encoding snapshot", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "writing snapshot", err)
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]any{"document": key, "snapshot": out, "name": f.Name})
	}
	return formatter.Success(fmt.Sprintf("fetched %q (%s) to %s", f.Name, key, out))
}
