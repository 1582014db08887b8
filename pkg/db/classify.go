package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Kind is the closed set of store failure categories the rest of the system
// is allowed to branch on. Classification happens once, at this adapter
// boundary; callers switch on the enum instead of re-parsing driver messages.
type Kind string

const (
	KindDuplicateKey     Kind = "duplicate_key"
	KindPermissionDenied Kind = "permission_denied"
	KindMissingTable     Kind = "missing_table"
	KindMissingColumn    Kind = "missing_column"
	KindUnknown          Kind = "unknown"
)

// Recoverable reports whether the failure can be resolved by re-reading the
// conflicting row. Only duplicate-key races qualify.
func (k Kind) Recoverable() bool {
	return k == KindDuplicateKey
}

// Structural reports whether the failure indicates backend schema drift or a
// misconfigured policy. Structural failures must propagate; degraded-mode
// synthesis is not attempted for them.
func (k Kind) Structural() bool {
	switch k {
	case KindPermissionDenied, KindMissingTable, KindMissingColumn:
		return true
	}
	return false
}

// StoreError tags a driver error with its classified Kind. Repositories wrap
// every non-nil, non-not-found error exactly once.
type StoreError struct {
	kind  Kind
	op    string
	cause error
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: %v", e.op, e.kind, e.cause)
}

func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Kind returns the classified category.
func (e *StoreError) Kind() Kind {
	if e == nil {
		return KindUnknown
	}
	return e.kind
}

// WrapStoreError classifies err and tags it with the operation name. Nil and
// record-not-found errors pass through untouched; absence is not a failure.
func WrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	var typed *StoreError
	if errors.As(err, &typed) {
		return err
	}
	return &StoreError{kind: Classify(err), op: op, cause: err}
}

// KindOf extracts the classified Kind from an error chain. Errors that never
// passed through the adapter boundary report Unknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var typed *StoreError
	if errors.As(err, &typed) {
		return typed.Kind()
	}
	return KindUnknown
}

// Postgres SQLSTATE codes for the categories we act on.
const (
	pgUniqueViolation  = "23505"
	pgInsufficientPriv = "42501"
	pgUndefinedTable   = "42P01"
	pgUndefinedColumn  = "42703"
)

// Classify maps a raw driver error to a Kind. Total: unmatched input maps to
// Unknown. Typed driver errors are preferred; message substrings cover
// drivers (and the sqlite test dialect) that surface plain errors.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	if code := sqlStateOf(err); code != "" {
		switch code {
		case pgUniqueViolation:
			return KindDuplicateKey
		case pgInsufficientPriv:
			return KindPermissionDenied
		case pgUndefinedTable:
			return KindMissingTable
		case pgUndefinedColumn:
			return KindMissingColumn
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return KindDuplicateKey
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key value"),
		strings.Contains(msg, "unique constraint failed"):
		return KindDuplicateKey
	case strings.Contains(msg, "permission denied"),
		strings.Contains(msg, "violates row-level security"),
		strings.Contains(msg, "policy"):
		return KindPermissionDenied
	// The column check runs before the table check: Postgres's undefined
	// column message also names the relation ("column "x" of relation "y"
	// does not exist"), so the table patterns would shadow it.
	case strings.Contains(msg, "no such column"),
		strings.Contains(msg, "column") && strings.Contains(msg, "does not exist"):
		return KindMissingColumn
	case strings.Contains(msg, "no such table"),
		strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist"):
		return KindMissingTable
	}
	return KindUnknown
}

func sqlStateOf(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
