package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a query matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert or update trips a unique
	// constraint. The services pre-check uniqueness before writing, so this
	// only fires when two requests race on the same key.
	ErrDuplicate = errors.New("duplicate record")

	// ErrRestricted is returned when a delete is blocked by rows that still
	// reference the record.
	ErrRestricted = errors.New("record is referenced by other rows")
)

// wrapScanErr normalizes pgx.ErrNoRows into ErrNotFound.
func wrapScanErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// wrapWriteErr maps postgres constraint violations onto repository sentinels.
func wrapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return ErrDuplicate
		case "23503": // foreign_key_violation
			return ErrRestricted
		}
	}
	return err
}
