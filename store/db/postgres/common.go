package postgres

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed migration/LATEST.sql
var latestSchema string

// placeholder returns the nth placeholder for PostgreSQL (uses $1, $2, ...)
func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

// placeholders returns n placeholders for PostgreSQL
func placeholders(n int) string {
	list := []string{}
	for i := 0; i < n; i++ {
		list = append(list, placeholder(i+1))
	}
	return strings.Join(list, ", ")
}

// withPagination appends LIMIT/OFFSET clauses when requested.
func withPagination(query string, limit, offset *int) string {
	if limit == nil {
		return query
	}
	query = fmt.Sprintf("%s LIMIT %d", query, *limit)
	if offset != nil {
		query = fmt.Sprintf("%s OFFSET %d", query, *offset)
	}
	return query
}
