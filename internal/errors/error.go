package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
)

// Category groups errors by the stage that raised them.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryIcons  Category = "icons"
	CategoryAssets Category = "assets"
	CategoryServer Category = "server"
	CategoryCLI    Category = "cli"
)

// Location is a position in a source file such as viewy.toml or an SVG.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as file:line[:column].
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// ViewyError is a structured error with an optional location and a hint.
type ViewyError struct {
	// Code is a unique identifier such as "E201".
	Code string

	// Category is the stage that raised the error.
	Category Category

	// Message is a short description.
	Message string

	// Detail is a longer explanation.
	Detail string

	// Location points into the offending file, if known.
	Location *Location

	// Context holds the lines surrounding Location.
	Context []string

	// Suggestion tells the user how to fix the error.
	Suggestion string

	// Example shows a correct configuration or call.
	Example string

	// Fields are key/value pairs attached for logging, such as the pack
	// name or the asset path.
	Fields map[string]string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ViewyError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ViewyError) Unwrap() error {
	return e.Wrapped
}

// WithLocation points the error at file:line:column and loads the
// surrounding lines.
func (e *ViewyError) WithLocation(file string, line, column int) *ViewyError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion.
func (e *ViewyError) WithSuggestion(s string) *ViewyError {
	e.Suggestion = s
	return e
}

// WithExample adds an example.
func (e *ViewyError) WithExample(ex string) *ViewyError {
	e.Example = ex
	return e
}

// WithDetail replaces the registered explanation.
func (e *ViewyError) WithDetail(d string) *ViewyError {
	e.Detail = d
	return e
}

// WithContext sets the context lines directly.
func (e *ViewyError) WithContext(lines []string) *ViewyError {
	e.Context = lines
	return e
}

// WithField attaches a key/value pair.
func (e *ViewyError) WithField(key, value string) *ViewyError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[key] = value
	return e
}

// Wrap wraps another error.
func (e *ViewyError) Wrap(err error) *ViewyError {
	e.Wrapped = err
	return e
}

// readContextLines reads up to contextSize lines centered on targetLine.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// contextStart returns the line number of the first context line.
func (e *ViewyError) contextStart() int {
	start := e.Location.Line - 5/2
	if start < 1 {
		start = 1
	}
	return start
}

// New creates a ViewyError from a registered code.
func New(code string) *ViewyError {
	template, ok := registry[code]
	if !ok {
		return &ViewyError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ViewyError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a ViewyError with a formatted message and no code.
func Newf(category Category, format string, args ...any) *ViewyError {
	return &ViewyError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err in a ViewyError with the given code. An error that
// already is a ViewyError is returned unchanged.
func FromError(err error, code string) *ViewyError {
	if err == nil {
		return nil
	}
	var ve *ViewyError
	if stderrors.As(err, &ve) {
		return ve
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is a ViewyError with the given code.
func HasCode(err error, code string) bool {
	var ve *ViewyError
	return stderrors.As(err, &ve) && ve.Code == code
}
