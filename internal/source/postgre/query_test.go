package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{"members", `SELECT id::text, name, email, role FROM "members" ORDER BY id`},
		{"admin.members", `SELECT id::text, name, email, role FROM "admin"."members" ORDER BY id`},
		{`members"; DROP TABLE x; --`, `SELECT id::text, name, email, role FROM "members""; DROP TABLE x; --" ORDER BY id`},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			assert.Equal(t, tt.want, buildListQuery(tt.table))
		})
	}
}
