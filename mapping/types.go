package mapping

// TypeMap - Runtime mapping for schema translators
// Usage: TypeMap["PostgreSQL"]["AUTO"] returns "SERIAL"
// Maps universal type names to database-specific type names
var TypeMap = map[string]map[string]string{
	"PostgreSQL": {
		// Primary Key Types
		"AUTO":      "SERIAL",           // Auto-incrementing integer
		"BIGAUTO":   "BIGSERIAL",        // Auto-incrementing big integer
		
		// Numeric Types
		"INT":       "INTEGER",
		"BIGINT":    "BIGINT",
		"SMALLINT":  "SMALLINT",
		"DECIMAL":   "DECIMAL",
		"NUMERIC":   "NUMERIC",
		"REAL":      "REAL",
		"FLOAT":     "DOUBLE PRECISION",
		
		// String Types
		"STRING":    "VARCHAR",          // Variable length string
		"TEXT":      "TEXT",             // Unlimited text
		"CHAR":      "CHAR",             // Fixed length string
		
		// Boolean
		"BOOLEAN":   "BOOLEAN",
		"BOOL":      "BOOLEAN",
		
		// Date/Time Types
		"TIMESTAMP": "TIMESTAMP",
		"DATETIME":  "TIMESTAMP",
		"DATE":      "DATE",
		"TIME":      "TIME",
		
		// Binary Types
		"BINARY":    "BYTEA",
		"BLOB":      "BYTEA",
		
		// JSON Types
		"JSON":      "JSON",
		"JSONB":     "JSONB",           // PostgreSQL optimized JSON
		
		// UUID
		"UUID":      "UUID",
	},
	
	"MySQL": {
		// Primary Key Types
		"AUTO":      "INT AUTO_INCREMENT",
		"BIGAUTO":   "BIGINT AUTO_INCREMENT",
		
		// Numeric Types
		"INT":       "INT",
		"BIGINT":    "BIGINT",
		"SMALLINT":  "SMALLINT",
		"DECIMAL":   "DECIMAL",
		"NUMERIC":   "DECIMAL",
		"REAL":      "FLOAT",
		"FLOAT":     "DOUBLE",
		
		// String Types
		"STRING":    "VARCHAR(255)",
		"TEXT":      "TEXT",
		"CHAR":      "CHAR",
		
		// Boolean
		"BOOLEAN":   "BOOLEAN",
		"BOOL":      "BOOLEAN",
		
		// Date/Time Types
		"TIMESTAMP": "TIMESTAMP",
		"DATETIME":  "DATETIME",
		"DATE":      "DATE",
		"TIME":      "TIME",
		
		// Binary Types
		"BINARY":    "BLOB",
		"BLOB":      "BLOB",
		
		// JSON Types
		"JSON":      "JSON",
		"JSONB":     "JSON",             // MySQL doesn't have JSONB, use JSON
		
		// UUID
		"UUID":      "CHAR(36)",         // MySQL stores UUID as string
	},
	
	"SQLite": {
		// Primary Key Types
		"AUTO":      "INTEGER PRIMARY KEY AUTOINCREMENT",
		"BIGAUTO":   "INTEGER PRIMARY KEY AUTOINCREMENT",
		
		// Numeric Types (SQLite has fewer types)
		"INT":       "INTEGER",
		"BIGINT":    "INTEGER",
		"SMALLINT":  "INTEGER",
		"DECIMAL":   "REAL",
		"NUMERIC":   "REAL",
		"REAL":      "REAL",
		"FLOAT":     "REAL",
		
		// String Types
		"STRING":    "TEXT",
		"TEXT":      "TEXT",
		"CHAR":      "TEXT",
		
		// Boolean (stored as INTEGER)
		"BOOLEAN":   "INTEGER",
		"BOOL":      "INTEGER",
		
		// Date/Time Types (stored as TEXT or INTEGER)
		"TIMESTAMP": "TEXT",
		"DATETIME":  "TEXT",
		"DATE":      "TEXT",
		"TIME":      "TEXT",
		
		// Binary Types
		"BINARY":    "BLOB",
		"BLOB":      "BLOB",
		
		// JSON Types (stored as TEXT)
		"JSON":      "TEXT",
		"JSONB":     "TEXT",
		
		// UUID (stored as TEXT)
		"UUID":      "TEXT",
	},
}