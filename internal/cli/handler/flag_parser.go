// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/facetview/internal/cli"
	"github.com/thenoetrevino/facetview/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", cli.WithExitCode(cli.ExitUsage, fmt.Errorf("%s is required", flagName))
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	return p.cmd.Flags().GetString(flagName)
}

// ParseIntOptional extracts an optional int flag
func (p *FlagParser) ParseIntOptional(flagName string) (int, error) {
	return p.cmd.Flags().GetInt(flagName)
}

// ParseField extracts and validates a facet field flag
func (p *FlagParser) ParseField(flagName string) (string, error) {
	field, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	if err := cli.ValidateField(field); err != nil {
		return "", cli.WithExitCode(cli.ExitNotFound, err)
	}
	return field, nil
}

// ParseOptions extracts repeatable value=count[:selected] option flags
func (p *FlagParser) ParseOptions(flagName string) ([]models.Option, error) {
	raw, err := p.cmd.Flags().GetStringArray(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	options, err := cli.ParseOptions(raw)
	if err != nil {
		return nil, cli.WithExitCode(cli.ExitDataErr, err)
	}
	return options, nil
}

// ParseFilters extracts repeatable field=value filter flags
func (p *FlagParser) ParseFilters(flagName string) (models.Filters, error) {
	raw, err := p.cmd.Flags().GetStringArray(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	filters, err := cli.ParseFilters(raw)
	if err != nil {
		return nil, cli.WithExitCode(cli.ExitDataErr, err)
	}
	return filters, nil
}

// ParseChoice extracts a string flag restricted to the allowed values
func (p *FlagParser) ParseChoice(flagName string, allowed ...string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	return "", cli.WithExitCode(cli.ExitValidation,
		fmt.Errorf("invalid %s %q (must be: %s)", flagName, value, strings.Join(allowed, ", ")))
}

// OutputFormats extracts JSON and Quiet output flags.
// Commands without these flags report both as false.
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	if p.cmd.Flags().Lookup("json") != nil {
		jsonOutput, err = p.cmd.Flags().GetBool("json")
		if err != nil {
			return false, false, fmt.Errorf("failed to parse json flag: %w", err)
		}
	}

	if p.cmd.Flags().Lookup("quiet") != nil {
		quietMode, err = p.cmd.Flags().GetBool("quiet")
		if err != nil {
			return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
		}
	}

	return jsonOutput, quietMode, nil
}
