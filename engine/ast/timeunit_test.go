package ast

import "testing"

func TestNormalizeTimeUnitExpandsAbbreviations(t *testing.T) {
	cases := map[string]string{
		"D":    "DAY",
		"q":    "QUARTER",
		"H":    "HOUR",
		"M":    "MINUTE",
		"MS":   "MILLISECOND",
		"NS":   "NANOSECOND",
		"S":    "SECOND",
		"us":   "MICROSECOND",
		"W":    "WEEK",
		"Y":    "YEAR",
		"YEAR": "YEAR",
	}
	for in, want := range cases {
		if got := NormalizeTimeUnit(in); got != want {
			t.Errorf("NormalizeTimeUnit(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewNodeNormalizesUnitSlotForTimeUnitKinds(t *testing.T) {
	tr := NewTree()

	lit, _ := tr.NewNode(Literal, map[SlotID]Arg{SlotThis: StringArg("1")})

	interval, err := tr.NewNode(Interval, map[SlotID]Arg{SlotThis: NodeArg(lit), SlotUnit: StringArg("d")})
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Get(interval, SlotUnit).Str; got != "DAY" {
		t.Errorf("Interval unit = %q, want DAY", got)
	}

	dateAdd, err := tr.NewNode(DateAdd, map[SlotID]Arg{
		SlotThis:       NodeArg(lit),
		SlotExpression: NodeArg(lit),
		SlotUnit:       StringArg("q"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Get(dateAdd, SlotUnit).Str; got != "QUARTER" {
		t.Errorf("DateAdd unit = %q, want QUARTER", got)
	}

	trunc, err := tr.NewNode(DateTrunc, map[SlotID]Arg{SlotThis: NodeArg(lit), SlotUnit: StringArg("y")})
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Get(trunc, SlotUnit).Str; got != "YEAR" {
		t.Errorf("DateTrunc unit = %q, want YEAR", got)
	}
}

func TestNewNodeAcceptsKindsWithoutTimeUnitFacet(t *testing.T) {
	tr := NewTree()
	// Select has no unit slot at all; NewNode must not choke on kinds
	// lacking FacetTimeUnit.
	id, err := tr.NewNode(Select, nil)
	if err != nil {
		t.Fatal(err)
	}
	if tr.KindOf(id) != Select {
		t.Fatalf("expected Select, got %s", tr.KindOf(id).Tag())
	}
}
