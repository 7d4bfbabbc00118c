// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/facetview/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// HandlerFunc adapts a plain function to Handler
type HandlerFunc func(ctx context.Context, args *Arguments) (any, error)

// Execute calls f
func (f HandlerFunc) Execute(ctx context.Context, args *Arguments) (any, error) {
	return f(ctx, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags     map[string]any
	Args      []string
	Formatter *cli.OutputFormatter
	cmd       *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Get formatter from flags
		jsonOutput, quietMode, err := NewFlagParser(cmd).OutputFormats()
		if err != nil {
			return cli.WithExitCode(cli.ExitUsage, err)
		}
		formatter := &cli.OutputFormatter{
			JSON:   jsonOutput,
			Quiet:  quietMode,
			Out:    cmd.OutOrStdout(),
			ErrOut: cmd.ErrOrStderr(),
		}

		// Parse flags
		if err := parseFlags(cmd); err != nil {
			reportError(formatter, err)
			return cli.MarkReported(err)
		}

		// Build arguments map from all flags
		arguments := &Arguments{
			Flags:     parseFlagsToMap(cmd),
			Args:      args,
			Formatter: formatter,
			cmd:       cmd,
		}

		// Execute handler
		result, err := handler.Execute(ctx, arguments)
		if err != nil {
			reportError(formatter, err)
			return cli.MarkReported(err)
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// SimpleCommand wraps command execution with minimal setup
// Use this for commands that don't need complex flag parsing
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, func(cmd *cobra.Command) error {
		return nil
	})
}

// reportError prints err through the formatter under a code derived from its exit code
func reportError(formatter *cli.OutputFormatter, err error) {
	if fmtErr := formatter.Error(ErrorCode(err), err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
}

// ErrorCode maps an error to the machine-readable code used in JSON output
func ErrorCode(err error) string {
	var exitErr *cli.ExitCodeError
	if !errors.As(err, &exitErr) {
		return "ERROR"
	}
	switch exitErr.Code {
	case cli.ExitUsage:
		return "USAGE_ERROR"
	case cli.ExitNotFound:
		return "NOT_FOUND"
	case cli.ExitDataErr:
		return "DATA_ERROR"
	case cli.ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		// Get the value based on flag type
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "stringArray":
			if v, err := cmd.Flags().GetStringArray(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(int)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}

// GetStringArray retrieves a repeatable string flag with default
func (a *Arguments) GetStringArray(name string, defaultVal []string) []string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.([]string)
	if !ok {
		return defaultVal
	}
	return val
}
