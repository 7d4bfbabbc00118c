package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to stdout and stderr
	Out    io.Writer
	ErrOut io.Writer
}

// HumanReadable is implemented by results that know how to print themselves
type HumanReadable interface {
	Human() string
}

// QuietReadable is implemented by results with a one-value-per-line quiet form
type QuietReadable interface {
	QuietLines() []string
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut != nil {
		return f.ErrOut
	}
	return os.Stderr
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
		if q, ok := data.(QuietReadable); ok {
			for _, line := range q.QuietLines() {
				if _, err := fmt.Fprintln(f.out(), line); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Styled reports whether human output goes to a terminal and keeps its colors
func (f *OutputFormatter) Styled() bool {
	file, ok := f.out().(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// prettyPrint formats data for human-readable output.
// Styling is stripped when the output is not a terminal.
func (f *OutputFormatter) prettyPrint(data any) error {
	if h, ok := data.(HumanReadable); ok {
		text := h.Human()
		if !f.Styled() {
			text = ansi.Strip(text)
		}
		_, err := fmt.Fprintln(f.out(), text)
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
