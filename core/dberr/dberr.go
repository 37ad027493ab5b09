package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// The three write-contract violation kinds. Every rejected write surfaces
// exactly one of these; callers branch with errors.Is.
var (
	// ErrDomain: value outside an enumerated set or failing a check constraint.
	ErrDomain = errors.New("domain violation")
	// ErrReferentialIntegrity: foreign-key reference missing on insert/update,
	// or a referenced row deleted while still referenced.
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	// ErrUniqueness: primary-key collision.
	ErrUniqueness = errors.New("uniqueness violation")
)

// Violation carries the table/column/value context of a rejected write.
type Violation struct {
	kind   error
	Table  string
	Column string
	Value  string
}

func (v *Violation) Error() string {
	if v.Column != "" {
		return fmt.Sprintf("%s: %s.%s = %q", v.kind, v.Table, v.Column, v.Value)
	}
	return fmt.Sprintf("%s: %s key %q", v.kind, v.Table, v.Value)
}

func (v *Violation) Unwrap() error { return v.kind }

// Domain reports a value outside its enumerated set or check range.
func Domain(table, column, value string) error {
	return &Violation{kind: ErrDomain, Table: table, Column: column, Value: value}
}

// MissingRef reports a foreign-key value with no matching referenced row.
func MissingRef(table, column, value string) error {
	return &Violation{kind: ErrReferentialIntegrity, Table: table, Column: column, Value: value}
}

// StillReferenced reports a delete blocked by rows in refTable that still
// reference the key. Restrict semantics: no cascades anywhere.
func StillReferenced(table, refTable, key string) error {
	return &Violation{kind: ErrReferentialIntegrity, Table: table, Column: "referenced by " + refTable, Value: key}
}

// Duplicate reports a primary-key collision.
func Duplicate(table, key string) error {
	return &Violation{kind: ErrUniqueness, Table: table, Value: key}
}

// Postgres SQLSTATE classes for constraint failures.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgInvalidTextRep      = "22P02" // bad enum literal
)

// Translate maps engine-level constraint errors onto the three violation
// kinds. Repositories validate writes up front, so this is the backstop for
// constraints the database itself trips (out-of-band writers, races).
// Errors that are not constraint failures pass through unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &Violation{kind: ErrUniqueness, Table: pgErr.TableName, Value: pgErr.Detail}
		case pgForeignKeyViolation:
			return &Violation{kind: ErrReferentialIntegrity, Table: pgErr.TableName, Column: pgErr.ConstraintName, Value: pgErr.Detail}
		case pgCheckViolation, pgNotNullViolation, pgInvalidTextRep:
			return &Violation{kind: ErrDomain, Table: pgErr.TableName, Column: pgErr.ConstraintName, Value: pgErr.Detail}
		}
		return err
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &Violation{kind: ErrUniqueness}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &Violation{kind: ErrReferentialIntegrity}
	}

	// sqlite (tests) reports constraint failures by message only.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &Violation{kind: ErrUniqueness, Value: msg}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &Violation{kind: ErrReferentialIntegrity, Value: msg}
	case strings.Contains(msg, "CHECK constraint failed"), strings.Contains(msg, "NOT NULL constraint failed"):
		return &Violation{kind: ErrDomain, Value: msg}
	}
	return err
}
