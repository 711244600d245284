package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark keeps err's message and stack but makes errors.Is(result, markErr) true,
// for both the standard library and cockroachdb/errors.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: cr.Mark(err, markErr), mark: markErr}
}

// Invalid builds an ErrInvalidInput carrying a caller-facing detail message.
func Invalid(format string, args ...any) error {
	return Mark(cr.Newf(format, args...), ErrInvalidInput)
}

type marked struct {
	cause error
	mark  error
}

func (m *marked) Error() string { return m.cause.Error() }

func (m *marked) Unwrap() []error { return []error{m.cause, m.mark} }

func (m *marked) Format(s fmt.State, verb rune) {
	if f, ok := m.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	_, _ = fmt.Fprint(s, m.cause.Error())
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
