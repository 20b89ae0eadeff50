package postgres

// unreservedKeywords adds PostgreSQL-specific vocabulary the ANSI base
// doesn't register. Grounded on sqruff's dialects/postgres_keywords.rs
// (curated subset relevant to this engine's grammar surface, truncated the
// same way as the ANSI list in pkg/dialects/ansi/keywords.go).
var unreservedKeywords = []string{
	"RETURNING", "CONFLICT", "NOTHING", "DO", "UPDATE", "SERIAL",
	"BIGSERIAL", "JSONB", "TEXT",
}
