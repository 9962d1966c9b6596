//go:build unit

package infra

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     []RepositoryErrorKind
		wantKind RepositoryErrorKind
	}{
		{name: "pgx no rows", err: pgx.ErrNoRows, wantKind: KindNotFound},
		{name: "sql no rows", err: sql.ErrNoRows, wantKind: KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "uq_booking_dedup"}, wantKind: KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, wantKind: KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, wantKind: KindDBFailure},
		{name: "plain error", err: errors.New("boom"), wantKind: KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kind: []RepositoryErrorKind{KindNotFound}, wantKind: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("op failed", tt.err, tt.kind...)
			assert.True(t, IsKind(err, tt.wantKind))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "op failed")
		})
	}
}

func TestConstraintName(t *testing.T) {
	err := WrapRepoErr("insert", &pgconn.PgError{Code: "23505", ConstraintName: "uq_booking_dedup"})
	assert.Equal(t, "uq_booking_dedup", ConstraintName(err))
	assert.Equal(t, "", ConstraintName(errors.New("x")))
}
