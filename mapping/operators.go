package mapping

// OperatorMap - Runtime mapping for translators
// Usage: OperatorMap["PostgreSQL"]["ILIKE"] returns "ILIKE"
var OperatorMap = map[string]map[string]string{
	"PostgreSQL": {
		// Basic comparison operators
		"=":  "=",
		"!=": "!=",
		">":  ">",
		"<":  "<",
		">=": ">=",
		"<=": "<=",

		// Advanced operators
		"IN":          "IN",
		"NOT_IN":      "NOT IN",
		"BETWEEN":     "BETWEEN",
		"NOT_BETWEEN": "NOT BETWEEN",
		"LIKE":        "LIKE",
		"NOT_LIKE":    "NOT LIKE",
		"ILIKE":       "ILIKE", // Case-insensitive LIKE (PostgreSQL specific)
		"NOT_ILIKE":   "NOT ILIKE",
		"IS_NULL":     "IS NULL",
		"IS_NOT_NULL": "IS NOT NULL",

		// Logical operators
		"AND": "AND",
		"OR":  "OR",
		"NOT": "NOT",
	},
	"MySQL": {
		// Basic comparison operators
		"=":  "=",
		"!=": "!=",
		">":  ">",
		"<":  "<",
		">=": ">=",
		"<=": "<=",

		// Advanced operators
		"IN":          "IN",
		"NOT_IN":      "NOT IN",
		"BETWEEN":     "BETWEEN",
		"NOT_BETWEEN": "NOT BETWEEN",
		"LIKE":        "LIKE",
		"NOT_LIKE":    "NOT LIKE",
		"ILIKE":       "LIKE", // MySQL doesn't have ILIKE; plain LIKE, no LOWER() wrapping
		"NOT_ILIKE":   "NOT LIKE",
		"IS_NULL":     "IS NULL",
		"IS_NOT_NULL": "IS NOT NULL",

		// Logical operators
		"AND": "AND",
		"OR":  "OR",
		"NOT": "NOT",
	},
	"SQLite": {
		// Basic comparison operators
		"=":  "=",
		"!=": "!=",
		">":  ">",
		"<":  "<",
		">=": ">=",
		"<=": "<=",

		// Advanced operators
		"IN":          "IN",
		"NOT_IN":      "NOT IN",
		"BETWEEN":     "BETWEEN",
		"NOT_BETWEEN": "NOT BETWEEN",
		"LIKE":        "LIKE",
		"NOT_LIKE":    "NOT LIKE",
		"ILIKE":       "LIKE", // SQLite LIKE is case-insensitive by default
		"NOT_ILIKE":   "NOT LIKE",
		"IS_NULL":     "IS NULL",
		"IS_NOT_NULL": "IS NOT NULL",

		// Logical operators
		"AND": "AND",
		"OR":  "OR",
		"NOT": "NOT",
	},
}
