package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loomgen/loom/internal/config"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "validate [manifest]",
		Short:         "Validate a generation manifest",
		Long:          "Check a manifest file against the schema without fetching anything.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "loom.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			return runValidate(opts, path, cmd)
		},
	}

	return cmd
}

func runValidate(opts *ValidateOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "reading manifest", err)
	}

	if errs := config.Validate(data); len(errs) > 0 {
		details := make([]string, len(errs))
		for i, e := range errs {
			details[i] = e.Error()
		}
		formatter.Error(ErrCodeManifestInvalid,
			fmt.Sprintf("%s: %d violation(s)", path, len(errs)), details)
		return NewExitError(ExitFailure, "manifest invalid")
	}

	return formatter.Success(fmt.Sprintf("%s is valid", path))
}
