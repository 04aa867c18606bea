package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/relalg/internal/ir"
)

// Process exit codes.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // a scenario failed or the requested document is not stored
	ExitCommandError = 2 // the plan, the flags or the database could not be used
)

// ExitError makes main exit with Code. Commands return it from RunE after
// they have printed their own error output.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// exitErrorf builds an ExitError with a formatted message. err may be nil.
func exitErrorf(code int, err error, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// GetExitCode returns the code of the first ExitError in err's chain, or
// ExitFailure.
func GetExitCode(err error) int {
	if exitErr := (*ExitError)(nil); errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Envelope is the line written for every command under --format json.
// Dialect and Serializer identify the layout and code that produced any
// document carried in Data.
type Envelope struct {
	Status     string       `json:"status"` // "ok" or "error"
	Dialect    string       `json:"dialect"`
	Serializer string       `json:"serializer"`
	Data       any          `json:"data,omitempty"`
	Error      *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed command.
type ErrorDetail struct {
	Code    string `json:"code"` // one of the ErrCode constants
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Printer writes command results to Out, as text or as one Envelope per
// command, and diagnostics to Diag.
type Printer struct {
	JSON    bool
	Out     io.Writer
	Diag    io.Writer
	Verbose bool
}

func newPrinter(opts *RootOptions, cmd *cobra.Command) *Printer {
	return &Printer{
		JSON:    opts.Format == "json",
		Out:     cmd.OutOrStdout(),
		Diag:    cmd.ErrOrStderr(),
		Verbose: opts.Verbose,
	}
}

// Document prints a canonical document. Text output is exactly the document
// bytes and a newline. Under --format json meta is the payload; it embeds
// the same bytes as a json.RawMessage.
func (p *Printer) Document(doc []byte, meta any) error {
	if p.JSON {
		return p.encode(Envelope{Status: "ok", Data: meta})
	}
	if _, err := p.Out.Write(doc); err != nil {
		return err
	}
	_, err := io.WriteString(p.Out, "\n")
	return err
}

// Report prints data as an envelope, or lets text render it to Out.
func (p *Printer) Report(data any, text func(w io.Writer) error) error {
	if p.JSON {
		return p.encode(Envelope{Status: "ok", Data: data})
	}
	return text(p.Out)
}

// Fail prints a command error. Text mode shows details only when verbose.
func (p *Printer) Fail(code, message string, details any) error {
	if p.JSON {
		return p.encode(Envelope{
			Status: "error",
			Error:  &ErrorDetail{Code: code, Message: message, Details: details},
		})
	}
	fmt.Fprintf(p.Out, "Error [%s]: %s\n", code, message)
	if p.Verbose && details != nil {
		fmt.Fprintf(p.Out, "Details: %v\n", details)
	}
	return nil
}

// Debugf writes a diagnostic line to Diag when verbose.
func (p *Printer) Debugf(format string, args ...any) {
	if !p.Verbose {
		return
	}
	w := p.Diag
	if w == nil {
		w = p.Out
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// encode writes env as one JSON line. HTML escaping stays off so an embedded
// document keeps the bytes its hash was computed over.
func (p *Printer) encode(env Envelope) error {
	env.Dialect = ir.DialectVersion
	env.Serializer = ir.SerializerVersion

	enc := json.NewEncoder(p.Out)
	enc.SetEscapeHTML(false)
	return enc.Encode(env)
}
