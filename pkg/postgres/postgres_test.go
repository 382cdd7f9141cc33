package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://ews:ews@db:5432/ews?sslmode=disable", "pgx5://ews:ews@db:5432/ews?sslmode=disable"},
		{"postgresql://ews@localhost/ews", "pgx5://ews@localhost/ews"},
		{"pgx5://ews@localhost/ews", "pgx5://ews@localhost/ews"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MigrationURL(tt.in))
	}
}
