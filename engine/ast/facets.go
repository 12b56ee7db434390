package ast

// Facet is a bitmask of orthogonal role capabilities a Kind carries. The
// source models these as deep multiple inheritance; here dispatch on a
// facet is a single AND against the kind's registered mask (C3 in the
// node-kind registry).
type Facet uint32

const (
	FacetCondition Facet = 1 << iota
	FacetPredicate
	FacetBinary
	FacetConnector
	FacetFunc
	FacetAggFunc
	FacetSubqueryPredicate
	FacetDerivedTable
	FacetUDTF
	FacetQuery
	FacetDML
	FacetDDL
	FacetColumnConstraintKind
	FacetTimeUnit
	FacetIntervalOp
	FacetExplodeOuter
)

// Has reports whether f contains every bit set in mask.
func (f Facet) Has(mask Facet) bool { return f&mask == mask }

// HasFacet reports whether the node's kind carries the given facet.
func (t *Tree) HasFacet(id NodeID, mask Facet) bool {
	return t.schemaOf(id).Facets.Has(mask)
}

// IsCondition reports whether the node yields a boolean-valued scalar.
func (t *Tree) IsCondition(id NodeID) bool { return t.HasFacet(id, FacetCondition) }

// IsPredicate reports whether the node is a relational operator.
func (t *Tree) IsPredicate(id NodeID) bool { return t.HasFacet(id, FacetPredicate) }

// IsBinary reports whether the node has exactly two children under "this"/"expression".
func (t *Tree) IsBinary(id NodeID) bool { return t.HasFacet(id, FacetBinary) }

// IsConnector reports whether the node is a logical combinator (AND/OR/XOR).
func (t *Tree) IsConnector(id NodeID) bool { return t.HasFacet(id, FacetConnector) }

// IsFunc reports whether the node is a function call.
func (t *Tree) IsFunc(id NodeID) bool { return t.HasFacet(id, FacetFunc) }

// IsAggFunc reports whether the node is an aggregate function call.
func (t *Tree) IsAggFunc(id NodeID) bool { return t.HasFacet(id, FacetAggFunc) }

// IsQuery reports whether the node is a SELECT/set-op/subquery.
func (t *Tree) IsQuery(id NodeID) bool { return t.HasFacet(id, FacetQuery) }

// IsDML reports whether the node is a data-manipulation statement.
func (t *Tree) IsDML(id NodeID) bool { return t.HasFacet(id, FacetDML) }

// IsDDL reports whether the node is a data-definition statement.
func (t *Tree) IsDDL(id NodeID) bool { return t.HasFacet(id, FacetDDL) }

// IsDerivedTable reports whether the node can be used in a FROM clause.
func (t *Tree) IsDerivedTable(id NodeID) bool { return t.HasFacet(id, FacetDerivedTable) }

// IsUDTF reports whether the node is a user-defined table-valued function.
func (t *Tree) IsUDTF(id NodeID) bool { return t.HasFacet(id, FacetUDTF) }

// IsSubqueryPredicate reports whether the node's right side is a query.
func (t *Tree) IsSubqueryPredicate(id NodeID) bool {
	return t.HasFacet(id, FacetSubqueryPredicate)
}

// IsTimeUnit reports whether the node carries a unit slot.
func (t *Tree) IsTimeUnit(id NodeID) bool { return t.HasFacet(id, FacetTimeUnit) }

// IsIntervalOp reports whether the node can synthesize an Interval node.
func (t *Tree) IsIntervalOp(id NodeID) bool { return t.HasFacet(id, FacetIntervalOp) }

// IsExplodeOuter reports whether the node is an outer EXPLODE/POSEXPLODE variant.
func (t *Tree) IsExplodeOuter(id NodeID) bool { return t.HasFacet(id, FacetExplodeOuter) }
