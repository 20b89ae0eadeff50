package ansi

// reservedKeywords is the ANSI reserved-word set: words that can never be
// used bare as an identifier. Grounded directly on sqruff's
// dialects/ansi_keywords.rs ANSI_RESERVED_KEYWORDS list.
var reservedKeywords = []string{
	"SELECT", "JOIN", "ON", "USING", "CROSS", "INNER", "LEFT", "RIGHT",
	"OUTER", "INTERVAL", "CASE", "FULL", "NOT", "NULL", "UNION", "IGNORE",
	"RESPECT", "PARTITION", "ORDER", "ROWS", "SET", "NATURAL",
}

// unreservedKeywords is a curated, grammar-relevant subset of sqruff's much
// larger ANSI_UNRESERVED_KEYWORDS list: enough vocabulary for every clause
// and expression shape this dialect's grammar library references. The full
// upstream list runs to several hundred words covering statements (DDL/DML)
// outside this engine's scope, and those words are not registered here.
var unreservedKeywords = []string{
	"AS", "FROM", "WHERE", "GROUP", "BY", "HAVING", "QUALIFY", "LIMIT",
	"OFFSET", "WITH", "RECURSIVE", "DISTINCT", "ALL", "WHEN", "THEN",
	"ELSE", "END", "AND", "OR", "IN", "IS", "LIKE", "ILIKE", "BETWEEN",
	"EXISTS", "TRUE", "FALSE", "UNKNOWN", "CAST", "TRY_CAST", "OVER",
	"WINDOW", "RANGE", "PRECEDING", "FOLLOWING", "CURRENT", "ROW",
	"UNBOUNDED", "CREATE", "TABLE", "REPLACE", "EXCEPT", "INTERSECT",
	"MINUS", "ASC", "DESC", "NULLS", "FIRST", "LAST", "FETCH", "NEXT",
	"ONLY", "LATERAL", "VALUES", "ARRAY", "STRUCT", "MAP", "DATE", "TIME",
	"TIMESTAMP", "YEAR", "MONTH", "DAY", "HOUR", "MINUTE", "SECOND",
	"FILTER", "WITHIN", "SEPARATOR", "INTO", "TOP", "PERCENT", "TIES",
	"TEMP", "TEMPORARY", "IF", "PRIMARY", "KEY", "DEFAULT", "UNIQUE",
	"CHECK", "REFERENCES", "FOREIGN", "COLUMN", "DROP", "ALTER",
}
