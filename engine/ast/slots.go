package ast

// SlotID identifies a named argument position on a Node. The canonical
// slots below, which every registerKind call in kinds_table.go uses
// directly, are the complete set by the time init() returns; nothing after that point grows slotNames/slotByName, matching the
// "generate SlotId constants per distinct slot name" strategy for a
// systems-language port of a dynamic arg-dict model: comparing and hashing
// a SlotID is an integer operation, never a string compare.
type SlotID uint16

const slotUnknownName = ""

// Canonical slot identifiers, shared and kind-specific alike.
const (
	SlotThis SlotID = iota
	SlotExpression
	SlotExpressions
	SlotAlias
	SlotAliases
	SlotColumns
	SlotTable
	SlotDB
	SlotCatalog
	SlotOperator
	SlotLow
	SlotHigh
	SlotUnit
	SlotFrom
	SlotWhere
	SlotGroup
	SlotHaving
	SlotOrder
	SlotDesc
	SlotNullsFirst
	SlotLimit
	SlotOffset
	SlotJoins
	SlotWith
	SlotRecursive
	SlotDistinct
	SlotOn
	SlotUsing
	SlotKind
	SlotSide
	SlotQuery
	SlotValues
	SlotSet
	SlotReturning
	SlotColumnsDef
	SlotConstraints
	SlotTo
	SlotIsString
	SlotQuoted
	SlotPartitionBy
	SlotOver
	SlotIgnoreNulls
	SlotWhens
	SlotCondition
	SlotTrue
	SlotFalse
	SlotDefault
	SlotKeys
	SlotVals
	SlotPivot
	SlotLock
	SlotHint
	SlotCTEs
	SlotMaterialized
	SlotScalar
	SlotConflict
	SlotActions
	SlotSource
	SlotTarget
	SlotOperation
	SlotExpr
	SlotOuter
	SlotProperties
	SlotZone

	firstDynamicSlot
)

var (
	slotNames = map[SlotID]string{
		SlotThis:         "this",
		SlotExpression:   "expression",
		SlotExpressions:  "expressions",
		SlotAlias:        "alias",
		SlotAliases:      "aliases",
		SlotColumns:      "columns",
		SlotTable:        "table",
		SlotDB:           "db",
		SlotCatalog:      "catalog",
		SlotOperator:     "operator",
		SlotLow:          "low",
		SlotHigh:         "high",
		SlotUnit:         "unit",
		SlotFrom:         "from",
		SlotWhere:        "where",
		SlotGroup:        "group",
		SlotHaving:       "having",
		SlotOrder:        "order",
		SlotDesc:         "desc",
		SlotNullsFirst:   "nulls_first",
		SlotLimit:        "limit",
		SlotOffset:       "offset",
		SlotJoins:        "joins",
		SlotWith:         "with",
		SlotRecursive:    "recursive",
		SlotDistinct:     "distinct",
		SlotOn:           "on",
		SlotUsing:        "using",
		SlotKind:         "kind",
		SlotSide:         "side",
		SlotQuery:        "query",
		SlotValues:       "values",
		SlotSet:          "set",
		SlotReturning:    "returning",
		SlotColumnsDef:   "columns_def",
		SlotConstraints:  "constraints",
		SlotTo:           "to",
		SlotIsString:     "is_string",
		SlotQuoted:       "quoted",
		SlotPartitionBy:  "partition_by",
		SlotOver:         "over",
		SlotIgnoreNulls:  "ignore_nulls",
		SlotWhens:        "whens",
		SlotCondition:    "condition",
		SlotTrue:         "true",
		SlotFalse:        "false",
		SlotDefault:      "default",
		SlotKeys:         "keys",
		SlotVals:         "values_",
		SlotPivot:        "pivot",
		SlotLock:         "lock",
		SlotHint:         "hint",
		SlotCTEs:         "ctes",
		SlotMaterialized: "materialized",
		SlotScalar:       "scalar",
		SlotConflict:     "conflict",
		SlotActions:      "actions",
		SlotSource:       "source",
		SlotTarget:       "target",
		SlotOperation:    "operation",
		SlotExpr:         "expr",
		SlotOuter:        "outer",
		SlotProperties:   "properties",
		SlotZone:         "zone",
	}
	slotByName  = map[string]SlotID{}
	nextSlotID  = firstDynamicSlot
)

func init() {
	for id, name := range slotNames {
		slotByName[name] = id
	}
}

// internSlot returns the SlotID for name, creating one if this is the first
// time the name has been seen. Nothing in the package calls it: registerKind
// takes the SlotID constants above and Load uses lookupSlot. It takes no
// lock.
func internSlot(name string) SlotID {
	if id, ok := slotByName[name]; ok {
		return id
	}
	id := nextSlotID
	nextSlotID++
	slotNames[id] = name
	slotByName[name] = id
	return id
}

// lookupSlot returns the SlotID registered for name. Unlike internSlot it
// never creates one: a dumped tree can name any slot a previous process's
// kind registry interned, but Load must not let a runtime-supplied payload
// mutate the process-wide slot tables, so an unseen name is an error rather
// than a new slot.
func lookupSlot(name string) (SlotID, bool) {
	id, ok := slotByName[name]
	return id, ok
}

// SlotName returns the canonical string name of a SlotID, or "" if unknown.
func SlotName(id SlotID) string {
	return slotNames[id]
}
