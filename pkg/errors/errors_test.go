package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("code %s: expected status %d got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("BOGUS"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "store call")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
	if typed := As(fmt.Errorf("outer: %w", err)); typed == nil || typed.Code() != CodeDependency {
		t.Fatalf("expected typed error through chain, got %v", typed)
	}
}

func TestWrapNilCauseBehavesLikeNew(t *testing.T) {
	err := Wrap(CodeValidation, nil, "missing field")
	if err.Unwrap() != nil {
		t.Fatal("expected no cause")
	}
	if err.Code() != CodeValidation {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestDumpCollectsPGDiagnostics(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "user_profiles_pkey",
		TableName:      "user_profiles",
		Detail:         "Key (id)=(x) already exists.",
		Message:        "duplicate key value violates unique constraint",
	}
	err := Wrap(CodeConflict, pgErr, "create profile")

	dump := Dump(err)
	if dump.PGCode != "23505" {
		t.Fatalf("expected pg code 23505 got %q", dump.PGCode)
	}
	if dump.PGConstraint != "user_profiles_pkey" {
		t.Fatalf("unexpected constraint %q", dump.PGConstraint)
	}
	if dump.Code != CodeConflict {
		t.Fatalf("unexpected typed code %q", dump.Code)
	}
	if len(dump.Chain) < 2 {
		t.Fatalf("expected full chain, got %v", dump.Chain)
	}
}
