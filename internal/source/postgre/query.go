package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// buildListQuery selects every member in source order. A schema-qualified name ("admin.members") is quoted per part.
func buildListQuery(table string) string {
	parts := strings.Split(table, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return fmt.Sprintf("SELECT id::text, name, email, role FROM %s ORDER BY id", strings.Join(parts, "."))
}
