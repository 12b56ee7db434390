package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetStrictModeOverridesForRestOfProcess(t *testing.T) {
	SetStrictMode(true)
	require.True(t, StrictMode())
	SetStrictMode(false)
	require.False(t, StrictMode())
}
