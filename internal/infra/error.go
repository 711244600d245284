package infra

import (
	"errors"
	"log/slog"

	"fleet-booking/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs and classifies a storage error. kind defaults to
// KindDBFailure. Expected outcomes (not found, conflicts) log at debug level.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{
		slog.String("kind", string(k)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	switch k {
	case KindNotFound, KindConflict, KindDuplicateKey:
		slog.Debug("Repository error: "+msg, logArgs...)
	default:
		slog.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)
