package cmd

import (
	"errors"
	"fmt"

	"github.com/compozy/headerver/internal/usecase"
	"github.com/compozy/headerver/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// UnknownVersion is printed in place of any extraction failure.
const UnknownVersion = "unknown"

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError marks a bad command line, reported with ExitUsage.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}
	return ExitError
}

var rootCmd *cobra.Command

// NewRootCmd creates the headerver command
func NewRootCmd(uc *usecase.ExtractVersionUseCase, log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headerver <file>",
		Short: "Print the library version from a C header",
		Long: `headerver reads the MAJOR, MINOR and RELEASE version macros from a C header
and prints them as MAJOR.MINOR.RELEASE.

If the file cannot be read or a macro is missing, "unknown" is printed instead
and the command still succeeds, so build scripts can embed the output as is.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &UsageError{Err: err}
			}
			return nil
		},
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			components, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				log.Debug("version extraction failed",
					zap.String("file", path),
					zap.String("headerver", version.Summary()),
					zap.Error(err),
				)
				fmt.Fprintln(cmd.OutOrStdout(), UnknownVersion)
				return nil
			}
			fields := []zap.Field{
				zap.String("file", path),
				zap.Stringer("number", components.Number()),
			}
			if v, err := components.Version(); err == nil {
				fields = append(fields, zap.String("tag", v.Tag()))
			}
			log.Debug("version extracted", fields...)
			fmt.Fprintln(cmd.OutOrStdout(), components.String())
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	return cmd
}

func Execute() error {
	return rootCmd.Execute()
}
