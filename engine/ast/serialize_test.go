package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpLoadRoundTrip(t *testing.T) {
	src := NewTree()
	root := buildSimpleSelect(src)
	src.AddComments(root, []string{"a select"}, false)

	dumped := Dump(src, root)

	loaded, newRoot, err := Load(dumped)
	require.NoError(t, err)

	require.True(t, Equal(src, root, loaded, newRoot))
	require.Equal(t, src.Hash(root), loaded.Hash(newRoot))
	require.Equal(t, src.node(root).Comments, loaded.node(newRoot).Comments)
}

func TestDumpLoadPreservesMeta(t *testing.T) {
	src := NewTree()
	id, _ := src.NewNode(Null, nil)
	src.UpdatePositions(id, 3, 8, 100, 104)

	dumped := Dump(src, id)
	loaded, newID, err := Load(dumped)
	require.NoError(t, err)

	pos := loaded.Position(newID)
	require.Equal(t, Position{Line: 3, Col: 8, Start: 100, End: 104}, pos)
}

func TestLoadUnknownKindErrors(t *testing.T) {
	bogus := []any{"NotAKind", map[string]any{}, nil, nil, nil}
	_, _, err := Load(bogus)
	require.Error(t, err)
	var uk *UnknownKindError
	require.ErrorAs(t, err, &uk)
}

func TestLoadUnknownSlotErrors(t *testing.T) {
	bogus := []any{"Boolean", map[string]any{"not_a_real_slot": true}, nil, nil, nil}
	_, _, err := Load(bogus)
	require.Error(t, err)
	var us *UnknownSlotError
	require.ErrorAs(t, err, &us)
	require.Equal(t, "not_a_real_slot", us.Name)
}

func TestDumpOmitsEmptyNonListSlots(t *testing.T) {
	tr := NewTree()
	id, _ := tr.NewNode(Boolean, map[SlotID]Arg{SlotThis: BoolArg(false)})
	dumped := Dump(tr, id).([]any)
	slots := dumped[1].(map[string]any)
	// Boolean(false) is the isEmpty() sentinel for an ArgBool, so "this"
	// is omitted from the dump even though it was explicitly set.
	_, present := slots["this"]
	require.False(t, present)
}

func TestDumpKeepsEmptyListSlotsDistinctFromAbsent(t *testing.T) {
	tr := NewTree()
	id, _ := tr.NewNode(Select, map[SlotID]Arg{SlotExpressions: ListArg()})
	dumped := Dump(tr, id).([]any)
	slots := dumped[1].(map[string]any)
	_, present := slots["expressions"]
	require.True(t, present, "an explicitly-set empty list is still dumped, unlike other empty values")
}
