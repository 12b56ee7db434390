package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLValidatesWellFormedPostgresStatement(t *testing.T) {
	r := SQL(Postgres, "SELECT id FROM users WHERE id = 1")
	require.True(t, r.Valid)
	require.NoError(t, r.Err)
}

func TestSQLRejectsMalformedPostgresStatement(t *testing.T) {
	r := SQL(Postgres, "SELEKT id FORM users")
	require.False(t, r.Valid)
	require.Error(t, r.Err)
}

func TestSQLValidatesWellFormedMySQLStatement(t *testing.T) {
	r := SQL(MySQL, "SELECT id FROM users WHERE id = 1")
	require.True(t, r.Valid)
	require.NoError(t, r.Err)
}

func TestSQLRejectsMalformedMySQLStatement(t *testing.T) {
	r := SQL(MySQL, "SELEKT id FORM users")
	require.False(t, r.Valid)
	require.Error(t, r.Err)
}

func TestSQLUnsupportedDialectErrors(t *testing.T) {
	r := SQL(Dialect("oracle"), "SELECT 1")
	require.False(t, r.Valid)
	var unsupported *UnsupportedDialectError
	require.ErrorAs(t, r.Err, &unsupported)
}

func TestBatchJoinsOnlyFailures(t *testing.T) {
	ok := SQL(Postgres, "SELECT 1")
	bad := SQL(Postgres, "SELEKT 1")
	err := Batch(ok, bad)
	require.Error(t, err)
}

func TestBatchNoErrorWhenAllValid(t *testing.T) {
	a := SQL(Postgres, "SELECT 1")
	b := SQL(MySQL, "SELECT 1")
	require.NoError(t, Batch(a, b))
}

func TestManyValidatesEachDialectsStatements(t *testing.T) {
	results, err := Many(map[Dialect][]string{
		Postgres: {"SELECT 1"},
		MySQL:    {"SELECT 1"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
}
