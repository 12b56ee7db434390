package ast

// Kind constants. Values are assigned by registerKind in registerKinds,
// called once from this package's init(). Order matters only in that it
// fixes numeric Kind values for a single process; persisted identity goes
// through the SQL/tag names (C10), never the raw integer.
var (
	Identifier      Kind
	Var             Kind
	Literal         Kind
	Null            Kind
	Boolean         Kind
	Star            Kind
	HexString       Kind
	ByteString      Kind
	Parameter       Kind
	DataType        Kind

	Column      Kind
	Table       Kind
	TableAlias  Kind
	TableSchema Kind
	Alias       Kind

	Paren Kind
	Neg   Kind
	Not   Kind

	Add Kind
	Sub Kind
	Mul Kind
	Div Kind
	Mod Kind
	BitwiseAnd Kind
	BitwiseOr  Kind
	BitwiseXor Kind
	Concat     Kind

	EQ   Kind
	NEQ  Kind
	GT   Kind
	GTE  Kind
	LT   Kind
	LTE  Kind
	Is   Kind
	Like Kind
	ILike Kind
	In    Kind
	Between Kind
	Exists  Kind

	And Kind
	Or  Kind
	Xor Kind

	Case   Kind
	If     Kind

	Anonymous Kind
	Func      Kind
	Count     Kind
	Sum       Kind
	Avg       Kind
	Min       Kind
	Max       Kind
	Distinct  Kind
	Window    Kind

	Select       Kind
	Union        Kind
	Intersect    Kind
	Except       Kind
	Subquery     Kind
	With         Kind
	CTE          Kind
	From         Kind
	Join         Kind
	Where        Kind
	Group        Kind
	Having       Kind
	Order        Kind
	Ordered      Kind
	Limit        Kind
	Offset       Kind
	Lock         Kind
	Hint         Kind

	Insert Kind
	Update Kind
	Delete Kind
	Merge  Kind
	Values Kind
	SetItem Kind
	Returning Kind
	OnConflict Kind

	CreateTable  Kind
	DropTable    Kind
	AlterTable   Kind
	TruncateTable Kind
	ColumnDef    Kind
	PrimaryKeyColumnConstraint Kind
	NotNullColumnConstraint    Kind
	UniqueColumnConstraint     Kind
	DefaultColumnConstraint    Kind
	CheckColumnConstraint      Kind
	ForeignKey                 Kind

	Transaction Kind
	Commit      Kind
	Rollback    Kind
	Savepoint   Kind

	Grant  Kind
	Revoke Kind

	Interval   Kind
	DateAdd    Kind
	DateSub    Kind
	DateTrunc  Kind
	Extract    Kind
	TimeStrToTime Kind
	DateStrToDate Kind
	TsOrDsToTime  Kind

	Array  Kind
	Tuple  Kind
	Struct Kind
	Map    Kind
	PropertyEQ Kind

	Cast    Kind
	TryCast Kind

	Explode      Kind
	PosExplode   Kind
)

func registerKinds() {
	Identifier = registerKind("Identifier",
		[]SlotSpec{{SlotThis, true}, {SlotQuoted, false}}, false, true, nil, 0)
	Var = registerKind("Var", []SlotSpec{{SlotThis, true}}, false, true, nil, 0)
	Literal = registerKind("Literal",
		[]SlotSpec{{SlotThis, true}, {SlotIsString, true}}, false, true, nil, 0)
	Null = registerKind("Null", nil, false, true, []string{"NULL"}, 0)
	Boolean = registerKind("Boolean", []SlotSpec{{SlotThis, true}}, false, true, nil, 0)
	Star = registerKind("Star", nil, false, true, []string{"*"}, 0)
	HexString = registerKind("HexString", []SlotSpec{{SlotThis, true}}, false, true, nil, 0)
	ByteString = registerKind("ByteString", []SlotSpec{{SlotThis, true}}, false, true, nil, 0)
	Parameter = registerKind("Parameter", []SlotSpec{{SlotThis, true}}, false, true, nil, 0)
	DataType = registerKind("DataType",
		[]SlotSpec{{SlotThis, true}, {SlotExpressions, false}}, true, false, nil, 0)

	Column = registerKind("Column",
		[]SlotSpec{{SlotThis, true}, {SlotTable, false}, {SlotDB, false}, {SlotCatalog, false}}, false, false, nil, 0)
	Table = registerKind("Table",
		[]SlotSpec{{SlotThis, true}, {SlotDB, false}, {SlotCatalog, false}, {SlotAlias, false}}, false, false, nil, FacetDerivedTable)
	TableAlias = registerKind("TableAlias",
		[]SlotSpec{{SlotThis, false}, {SlotColumns, false}}, false, false, nil, 0)
	TableSchema = registerKind("TableSchema",
		[]SlotSpec{{SlotThis, false}, {SlotExpressions, false}}, true, false, nil, 0)
	Alias = registerKind("Alias",
		[]SlotSpec{{SlotThis, true}, {SlotAlias, true}}, false, false, nil, 0)

	Paren = registerKind("Paren", []SlotSpec{{SlotThis, true}}, false, false, nil, 0)
	Neg = registerKind("Neg", []SlotSpec{{SlotThis, true}}, false, false, nil, 0)
	Not = registerKind("Not", []SlotSpec{{SlotThis, true}}, false, false, nil, FacetCondition)

	binary := func(tag string, names []string, facets Facet) Kind {
		return registerKind(tag, []SlotSpec{{SlotThis, true}, {SlotExpression, true}}, false, false, names, facets|FacetBinary)
	}
	Add = binary("Add", []string{"+"}, 0)
	Sub = binary("Sub", []string{"-"}, 0)
	Mul = binary("Mul", []string{"*"}, 0)
	Div = binary("Div", []string{"/"}, 0)
	Mod = binary("Mod", []string{"%"}, 0)
	BitwiseAnd = binary("BitwiseAnd", []string{"&"}, 0)
	BitwiseOr = binary("BitwiseOr", []string{"|"}, 0)
	BitwiseXor = binary("BitwiseXor", []string{"^"}, 0)
	Concat = binary("Concat", []string{"||"}, 0)

	predicate := func(tag string, names []string) Kind {
		return binary(tag, names, FacetCondition|FacetPredicate)
	}
	EQ = predicate("EQ", []string{"="})
	NEQ = predicate("NEQ", []string{"<>", "!="})
	GT = predicate("GT", []string{">"})
	GTE = predicate("GTE", []string{">="})
	LT = predicate("LT", []string{"<"})
	LTE = predicate("LTE", []string{"<="})
	Is = predicate("Is", []string{"IS"})
	Like = predicate("Like", []string{"LIKE"})
	ILike = predicate("ILike", []string{"ILIKE"})
	In = registerKind("In",
		[]SlotSpec{{SlotThis, true}, {SlotExpressions, false}, {SlotQuery, false}},
		false, false, []string{"IN"}, FacetCondition|FacetPredicate|FacetSubqueryPredicate)
	Between = registerKind("Between",
		[]SlotSpec{{SlotThis, true}, {SlotLow, true}, {SlotHigh, true}},
		false, false, []string{"BETWEEN"}, FacetCondition|FacetPredicate)
	Exists = registerKind("Exists",
		[]SlotSpec{{SlotThis, true}}, false, false, []string{"EXISTS"},
		FacetCondition|FacetSubqueryPredicate)

	connector := func(tag string, names []string) Kind {
		return binary(tag, names, FacetCondition|FacetConnector)
	}
	And = connector("And", []string{"AND"})
	Or = connector("Or", []string{"OR"})
	Xor = connector("Xor", []string{"XOR"})

	Case = registerKind("Case",
		[]SlotSpec{{SlotThis, false}, {SlotWhens, true}, {SlotDefault, false}}, false, false, []string{"CASE"}, 0)
	If = registerKind("If",
		[]SlotSpec{{SlotCondition, true}, {SlotTrue, true}, {SlotFalse, false}}, false, false, []string{"WHEN"}, 0)

	Anonymous = registerKind("Anonymous",
		[]SlotSpec{{SlotThis, true}, {SlotExpressions, false}}, true, false, nil, FacetFunc)
	Func = registerKind("Func",
		[]SlotSpec{{SlotThis, true}, {SlotExpressions, false}}, true, false, nil, FacetFunc)
	aggFunc := func(tag string) Kind {
		return registerKind(tag, []SlotSpec{{SlotThis, true}, {SlotDistinct, false}}, false, false, nil, FacetFunc|FacetAggFunc)
	}
	Count = aggFunc("Count")
	Sum = aggFunc("Sum")
	Avg = aggFunc("Avg")
	Min = aggFunc("Min")
	Max = aggFunc("Max")
	Distinct = registerKind("Distinct", []SlotSpec{{SlotExpressions, true}}, true, false, []string{"DISTINCT"}, 0)
	Window = registerKind("Window",
		[]SlotSpec{{SlotThis, true}, {SlotPartitionBy, false}, {SlotOrder, false}, {SlotIgnoreNulls, false}},
		false, false, []string{"OVER"}, 0)

	Select = registerKind("Select",
		[]SlotSpec{
			{SlotExpressions, true}, {SlotFrom, false}, {SlotJoins, false}, {SlotWhere, false},
			{SlotGroup, false}, {SlotHaving, false}, {SlotOrder, false}, {SlotLimit, false},
			{SlotOffset, false}, {SlotWith, false}, {SlotDistinct, false}, {SlotLock, false},
			{SlotHint, false},
		}, false, false, []string{"SELECT"}, FacetQuery|FacetDerivedTable)
	setOp := func(tag, name string) Kind {
		return registerKind(tag, []SlotSpec{{SlotThis, true}, {SlotExpression, true}, {SlotDistinct, false}}, false, false, []string{name}, FacetQuery|FacetDerivedTable|FacetBinary)
	}
	Union = setOp("Union", "UNION")
	Intersect = setOp("Intersect", "INTERSECT")
	Except = setOp("Except", "EXCEPT")
	Subquery = registerKind("Subquery",
		[]SlotSpec{{SlotThis, true}, {SlotAlias, false}}, false, false, nil, FacetDerivedTable)
	With = registerKind("With",
		[]SlotSpec{{SlotExpressions, true}, {SlotRecursive, false}}, true, false, []string{"WITH"}, 0)
	CTE = registerKind("CTE",
		[]SlotSpec{{SlotThis, true}, {SlotAlias, true}, {SlotMaterialized, false}, {SlotScalar, false}}, false, false, nil, 0)
	From = registerKind("From", []SlotSpec{{SlotExpressions, true}}, true, false, []string{"FROM"}, 0)
	Join = registerKind("Join",
		[]SlotSpec{{SlotThis, true}, {SlotKind, false}, {SlotSide, false}, {SlotOn, false}, {SlotUsing, false}},
		false, false, []string{"JOIN"}, 0)
	Where = registerKind("Where", []SlotSpec{{SlotThis, true}}, false, false, []string{"WHERE"}, 0)
	Group = registerKind("Group", []SlotSpec{{SlotExpressions, true}}, true, false, []string{"GROUP BY"}, 0)
	Having = registerKind("Having", []SlotSpec{{SlotThis, true}}, false, false, []string{"HAVING"}, 0)
	Order = registerKind("Order", []SlotSpec{{SlotExpressions, true}}, true, false, []string{"ORDER BY"}, 0)
	Ordered = registerKind("Ordered",
		[]SlotSpec{{SlotThis, true}, {SlotDesc, false}, {SlotNullsFirst, false}}, false, false, nil, 0)
	Limit = registerKind("Limit", []SlotSpec{{SlotThis, true}}, false, false, []string{"LIMIT"}, 0)
	Offset = registerKind("Offset", []SlotSpec{{SlotThis, true}}, false, false, []string{"OFFSET"}, 0)
	Lock = registerKind("Lock", []SlotSpec{{SlotThis, false}}, false, false, nil, 0)
	Hint = registerKind("Hint", []SlotSpec{{SlotExpressions, true}}, true, false, nil, 0)

	Insert = registerKind("Insert",
		[]SlotSpec{{SlotThis, true}, {SlotExpression, false}, {SlotColumns, false}, {SlotReturning, false}},
		false, false, []string{"INSERT INTO"}, FacetDML)
	Update = registerKind("Update",
		[]SlotSpec{{SlotThis, true}, {SlotExpressions, true}, {SlotFrom, false}, {SlotWhere, false}, {SlotWith, false}, {SlotReturning, false}},
		false, false, []string{"UPDATE"}, FacetDML)
	Delete = registerKind("Delete",
		[]SlotSpec{{SlotThis, true}, {SlotWhere, false}, {SlotWith, false}, {SlotReturning, false}},
		false, false, []string{"DELETE"}, FacetDML)
	Merge = registerKind("Merge",
		[]SlotSpec{{SlotThis, true}, {SlotUsing, true}, {SlotOn, true}, {SlotActions, true}},
		false, false, []string{"MERGE"}, FacetDML)
	Values = registerKind("Values", []SlotSpec{{SlotExpressions, true}}, true, false, []string{"VALUES"}, 0)
	SetItem = registerKind("SetItem",
		[]SlotSpec{{SlotThis, true}, {SlotExpression, true}}, false, false, nil, 0)
	Returning = registerKind("Returning", []SlotSpec{{SlotExpressions, true}}, true, false, []string{"RETURNING"}, 0)
	OnConflict = registerKind("OnConflict",
		[]SlotSpec{{SlotConflict, false}, {SlotActions, false}}, false, false, []string{"ON CONFLICT"}, 0)

	CreateTable = registerKind("CreateTable",
		[]SlotSpec{{SlotThis, true}, {SlotExpressions, false}, {SlotProperties, false}, {SlotExpression, false}},
		false, false, []string{"CREATE TABLE"}, FacetDDL)
	DropTable = registerKind("DropTable",
		[]SlotSpec{{SlotThis, true}}, false, false, []string{"DROP TABLE"}, FacetDDL)
	AlterTable = registerKind("AlterTable",
		[]SlotSpec{{SlotThis, true}, {SlotActions, true}}, false, false, []string{"ALTER TABLE"}, FacetDDL)
	TruncateTable = registerKind("TruncateTable",
		[]SlotSpec{{SlotExpressions, true}}, true, false, []string{"TRUNCATE TABLE"}, FacetDDL)
	ColumnDef = registerKind("ColumnDef",
		[]SlotSpec{{SlotThis, true}, {SlotKind, true}, {SlotConstraints, false}}, false, false, nil, 0)
	constraint := func(tag, name string) Kind {
		return registerKind(tag, []SlotSpec{{SlotThis, false}}, false, false, []string{name}, FacetColumnConstraintKind)
	}
	PrimaryKeyColumnConstraint = constraint("PrimaryKeyColumnConstraint", "PRIMARY KEY")
	NotNullColumnConstraint = constraint("NotNullColumnConstraint", "NOT NULL")
	UniqueColumnConstraint = constraint("UniqueColumnConstraint", "UNIQUE")
	DefaultColumnConstraint = constraint("DefaultColumnConstraint", "DEFAULT")
	CheckColumnConstraint = constraint("CheckColumnConstraint", "CHECK")
	ForeignKey = registerKind("ForeignKey",
		[]SlotSpec{{SlotExpressions, true}, {SlotReturning, false}}, false, false, []string{"FOREIGN KEY"}, FacetColumnConstraintKind)

	Transaction = registerKind("Transaction", nil, false, false, []string{"BEGIN"}, 0)
	Commit = registerKind("Commit", nil, false, false, []string{"COMMIT"}, 0)
	Rollback = registerKind("Rollback",
		[]SlotSpec{{SlotThis, false}}, false, false, []string{"ROLLBACK"}, 0)
	Savepoint = registerKind("Savepoint",
		[]SlotSpec{{SlotThis, true}}, false, false, []string{"SAVEPOINT"}, 0)

	Grant = registerKind("Grant",
		[]SlotSpec{{SlotExpressions, true}, {SlotTarget, true}, {SlotTo, true}}, false, false, []string{"GRANT"}, FacetDDL)
	Revoke = registerKind("Revoke",
		[]SlotSpec{{SlotExpressions, true}, {SlotTarget, true}, {SlotTo, true}}, false, false, []string{"REVOKE"}, FacetDDL)

	Interval = registerKind("Interval",
		[]SlotSpec{{SlotThis, true}, {SlotUnit, true}}, false, false, []string{"INTERVAL"}, FacetTimeUnit)
	DateAdd = registerKind("DateAdd",
		[]SlotSpec{{SlotThis, true}, {SlotExpression, true}, {SlotUnit, true}}, false, false, nil, FacetTimeUnit|FacetIntervalOp|FacetFunc)
	DateSub = registerKind("DateSub",
		[]SlotSpec{{SlotThis, true}, {SlotExpression, true}, {SlotUnit, true}}, false, false, nil, FacetTimeUnit|FacetIntervalOp|FacetFunc)
	DateTrunc = registerKind("DateTrunc",
		[]SlotSpec{{SlotThis, true}, {SlotUnit, true}}, false, false, nil, FacetTimeUnit|FacetFunc)
	Extract = registerKind("Extract",
		[]SlotSpec{{SlotThis, true}, {SlotExpression, true}}, false, false, []string{"EXTRACT"}, FacetFunc)
	TimeStrToTime = registerKind("TimeStrToTime", []SlotSpec{{SlotThis, true}, {SlotZone, false}}, false, false, nil, FacetFunc)
	DateStrToDate = registerKind("DateStrToDate", []SlotSpec{{SlotThis, true}}, false, false, nil, FacetFunc)
	TsOrDsToTime = registerKind("TsOrDsToTime", []SlotSpec{{SlotThis, true}}, false, false, nil, FacetFunc)

	Array = registerKind("Array", []SlotSpec{{SlotExpressions, false}}, true, false, []string{"ARRAY"}, 0)
	Tuple = registerKind("Tuple", []SlotSpec{{SlotExpressions, false}}, true, false, nil, 0)
	Struct = registerKind("Struct", []SlotSpec{{SlotExpressions, false}}, true, false, []string{"STRUCT"}, 0)
	Map = registerKind("Map",
		[]SlotSpec{{SlotKeys, true}, {SlotVals, true}}, false, false, []string{"MAP"}, 0)
	PropertyEQ = registerKind("PropertyEQ",
		[]SlotSpec{{SlotThis, true}, {SlotExpression, true}}, false, false, nil, FacetBinary)

	Cast = registerKind("Cast",
		[]SlotSpec{{SlotThis, true}, {SlotTo, true}}, false, false, []string{"CAST"}, FacetFunc)
	TryCast = registerKind("TryCast",
		[]SlotSpec{{SlotThis, true}, {SlotTo, true}}, false, false, []string{"TRY_CAST"}, FacetFunc)

	Explode = registerKind("Explode",
		[]SlotSpec{{SlotThis, true}}, false, false, []string{"EXPLODE"}, FacetUDTF|FacetFunc)
	PosExplode = registerKind("PosExplode",
		[]SlotSpec{{SlotThis, true}}, false, false, []string{"POSEXPLODE"}, FacetUDTF|FacetFunc)

	kindsFrozen = true
}

func init() {
	registerKinds()
}
