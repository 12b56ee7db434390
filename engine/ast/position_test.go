package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdatePositionsFromToken(t *testing.T) {
	tr := NewTree()
	id, _ := tr.NewNode(Identifier, map[SlotID]Arg{SlotThis: StringArg("x")})
	tr.UpdatePositionsFromToken(id, Token{Value: "x", Line: 2, Column: 5, Position: 10})

	pos := tr.Position(id)
	require.Equal(t, Position{Line: 2, Col: 5, Start: 10, End: 11}, pos)
}

func TestUpdatePositionsFromNodeCopiesDonorMeta(t *testing.T) {
	tr := NewTree()
	src, _ := tr.NewNode(Identifier, map[SlotID]Arg{SlotThis: StringArg("x")})
	tr.UpdatePositions(src, 1, 2, 3, 4)

	dst, _ := tr.NewNode(Identifier, map[SlotID]Arg{SlotThis: StringArg("y")})
	tr.UpdatePositionsFromNode(dst, src)

	require.Equal(t, tr.Position(src), tr.Position(dst))
}

func TestUpdatePositionsFromNodeNoOpWhenDonorHasNoMeta(t *testing.T) {
	tr := NewTree()
	src, _ := tr.NewNode(Identifier, map[SlotID]Arg{SlotThis: StringArg("x")})
	dst, _ := tr.NewNode(Identifier, map[SlotID]Arg{SlotThis: StringArg("y")})
	tr.UpdatePositionsFromNode(dst, src)
	require.Equal(t, Position{}, tr.Position(dst))
}

func TestMetaCreatesMapOnFirstAccess(t *testing.T) {
	tr := NewTree()
	id, _ := tr.NewNode(Null, nil)
	require.Nil(t, tr.node(id).Meta)
	m := tr.Meta(id)
	m["k"] = "v"
	require.Equal(t, "v", tr.node(id).Meta["k"])
}
