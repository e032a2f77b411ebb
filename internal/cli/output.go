package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// NewFormatter builds a formatter from the command's --json/--quiet flags and writers
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Printf writes human-readable output, downsampling styles to what the
// writer supports (no escape codes for pipes, files or NO_COLOR)
func (f *OutputFormatter) Printf(format string, args ...any) {
	_, _ = lipgloss.Fprintf(f.out(), format, args...)
}

// Warnf writes a non-fatal notice to stderr
func (f *OutputFormatter) Warnf(format string, args ...any) {
	_, _ = lipgloss.Fprintf(f.errOut(), format, args...)
}

// Success outputs a successful result under key in JSON mode.
// In quiet mode only the ID is printed when data exposes one.
func (f *OutputFormatter) Success(key string, data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			fmt.Fprintln(f.out(), idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			key:       data,
		})
	}

	fmt.Fprintf(f.out(), "%+v\n", data)
	return nil
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

	f.Warnf("Error: %s\n", message)
	if suggestion != "" {
		f.Warnf("Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err to the user and returns a CommandError carrying its exit code
func (f *OutputFormatter) Fail(err error) error {
	c := Classify(err)
	if fmtErr := f.ErrorWithSuggestion(c.Code, err.Error(), c.Suggestion); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return &CommandError{Code: c.ExitCode, Err: err}
}
