package util

import (
	"database/sql"
	"strings"
)

// StringToNullString converts a string to sql.NullString.
// Empty and whitespace-only strings are stored as NULL.
func StringToNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
