package mapping

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOperatorMapDialectDivergence(t *testing.T) {
	require.Equal(t, "ILIKE", OperatorMap["PostgreSQL"]["ILIKE"])
	require.Equal(t, "LIKE", OperatorMap["MySQL"]["ILIKE"])
	require.Equal(t, "LIKE", OperatorMap["SQLite"]["ILIKE"])
}

func TestOperatorMapCoversEveryDialectWithSameKeySet(t *testing.T) {
	dialects := []string{"PostgreSQL", "MySQL", "SQLite"}
	for op := range OperatorMap["PostgreSQL"] {
		for _, d := range dialects {
			_, ok := OperatorMap[d][op]
			require.True(t, ok, "dialect %s missing operator %s", d, op)
		}
	}
}
