// Package validate round-trips text produced for a dialect back through
// that dialect's own real grammar, confirming a generated or ingested
// statement is syntactically valid in the target database. This is the
// same check the teacher's engine/validator package ran before handing a
// translated query to an execution layer; here it backs the builder /
// parser agreement property instead.
package validate

import (
	pgquery "github.com/pganalyze/pg_query_go/v5"
	"github.com/xwb1989/sqlparser"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/prismql/prismql/telemetry"
)

// Dialect names a target grammar a Result can be validated against.
type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
)

// Result reports whether a statement parses cleanly under its dialect.
type Result struct {
	Dialect Dialect
	SQL     string
	Valid   bool
	Err     error
}

// SQL validates a single statement against the named dialect's real
// parser. Postgres validation goes through pg_query_go (the compiled
// Postgres grammar); MySQL validation goes through xwb1989/sqlparser, the
// pack's MySQL-flavored parser separate from tidb's (used here rather
// than tidb/parser so generator output is checked by a second, unrelated
// implementation instead of round-tripping through the same one that
// built it).
func SQL(dialect Dialect, sql string) Result {
	var err error
	switch dialect {
	case Postgres:
		_, err = pgquery.Parse(sql)
	case MySQL:
		_, err = sqlparser.Parse(sql)
	default:
		err = &UnsupportedDialectError{Dialect: dialect}
	}
	if err != nil {
		telemetry.Warn("round-trip validation failed",
			zap.String("dialect", string(dialect)), zap.String("sql", sql), zap.Error(err))
	} else {
		telemetry.Debug("round-trip validation ok", zap.String("dialect", string(dialect)))
	}
	return Result{Dialect: dialect, SQL: sql, Valid: err == nil, Err: err}
}

// Batch validates many statements against their respective dialects and
// joins every failure into a single multierr chain, so a caller
// validating a whole generated corpus gets every mismatch at once rather
// than stopping at the first.
func Batch(results ...Result) error {
	var err error
	for _, r := range results {
		if !r.Valid {
			err = multierr.Append(err, r.Err)
		}
	}
	return err
}

// Many validates a set of (dialect, sql) pairs and returns their Results
// alongside the joined error, for callers that want both the per-item
// detail and the combined outcome.
func Many(pairs map[Dialect][]string) ([]Result, error) {
	var results []Result
	for dialect, stmts := range pairs {
		for _, sql := range stmts {
			results = append(results, SQL(dialect, sql))
		}
	}
	return results, Batch(results...)
}

// UnsupportedDialectError is returned when a dialect has no registered
// round-trip grammar.
type UnsupportedDialectError struct {
	Dialect Dialect
}

func (e *UnsupportedDialectError) Error() string {
	return "validate: unsupported dialect " + string(e.Dialect)
}
