package ast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConvertScalars(t *testing.T) {
	tr := NewTree()

	nilID, err := tr.Convert(nil)
	require.NoError(t, err)
	require.Equal(t, Null, tr.KindOf(nilID))

	strID, err := tr.Convert("hello")
	require.NoError(t, err)
	require.True(t, tr.IsString(strID))
	require.Equal(t, "hello", tr.Text(strID, SlotThis))

	boolID, err := tr.Convert(true)
	require.NoError(t, err)
	require.Equal(t, Boolean, tr.KindOf(boolID))

	intID, err := tr.Convert(42)
	require.NoError(t, err)
	require.True(t, tr.IsInt(intID))

	negID, err := tr.Convert(-7)
	require.NoError(t, err)
	require.Equal(t, Neg, tr.KindOf(negID))
	require.True(t, tr.IsNumber(negID))
}

func TestConvertBytesToHexString(t *testing.T) {
	tr := NewTree()
	id, err := tr.Convert([]byte{0xDE, 0xAD})
	require.NoError(t, err)
	require.Equal(t, HexString, tr.KindOf(id))
	require.Equal(t, "dead", tr.Text(id, SlotThis))
}

func TestConvertSliceToArray(t *testing.T) {
	tr := NewTree()
	id, err := tr.Convert([]any{1, "a", true})
	require.NoError(t, err)
	require.Equal(t, Array, tr.KindOf(id))
	require.Len(t, tr.Expressions(id), 3)
}

func TestConvertMapToMapNode(t *testing.T) {
	tr := NewTree()
	id, err := tr.Convert(map[string]any{"b": 2, "a": 1})
	require.NoError(t, err)
	require.Equal(t, Map, tr.KindOf(id))
	keys := tr.Get(id, SlotKeys).Node
	// Keys are emitted in sorted order for determinism.
	require.Equal(t, "a", tr.Text(tr.Expressions(keys)[0], SlotThis))
	require.Equal(t, "b", tr.Text(tr.Expressions(keys)[1], SlotThis))
}

func TestConvertTimeVariants(t *testing.T) {
	tr := NewTree()

	full := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	id, err := tr.Convert(full)
	require.NoError(t, err)
	require.Equal(t, TimeStrToTime, tr.KindOf(id))

	dateOnly := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	id, err = tr.Convert(dateOnly)
	require.NoError(t, err)
	require.Equal(t, DateStrToDate, tr.KindOf(id))

	timeOnly := time.Date(1, time.January, 1, 12, 30, 0, 0, time.UTC)
	id, err = tr.Convert(timeOnly)
	require.NoError(t, err)
	require.Equal(t, TsOrDsToTime, tr.KindOf(id))
}

func TestConvertStructToPropertyEQPairs(t *testing.T) {
	type row struct {
		ID   int
		Name string
	}
	tr := NewTree()
	id, err := tr.Convert(row{ID: 1, Name: "a"})
	require.NoError(t, err)
	require.Equal(t, Struct, tr.KindOf(id))
	require.Len(t, tr.Expressions(id), 2)
	require.Equal(t, PropertyEQ, tr.KindOf(tr.Expressions(id)[0]))
}

func TestConvertUnrepresentableValueErrors(t *testing.T) {
	tr := NewTree()
	_, err := tr.Convert(make(chan int))
	require.Error(t, err)
	var unconv *UnconvertibleValueError
	require.ErrorAs(t, err, &unconv)
}

func TestNewLiteralNumberNegativeWrapsInNeg(t *testing.T) {
	tr := NewTree()
	id := tr.NewLiteralNumber("-12.5")
	require.Equal(t, Neg, tr.KindOf(id))
	inner := tr.This(id)
	require.Equal(t, Literal, tr.KindOf(inner))
	require.Equal(t, "12.5", tr.Text(inner, SlotThis), "Neg stores the absolute value text")
}
