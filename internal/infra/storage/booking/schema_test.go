package booking

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableDDL вырезает блок CREATE TABLE из migrations/init.sql
func tableDDL(t *testing.T, table string) string {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "init.sql"))
	require.NoError(t, err)

	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(string(raw), marker)
	require.NotEqual(t, -1, start, "table %s not found in migration", table)

	rest := string(raw)[start:]
	end := strings.Index(rest, ");")
	require.NotEqual(t, -1, end)

	return rest[:end]
}

// Каждая колонка, которую репозиторий пишет или читает, должна быть
// объявлена в миграции, иначе любой запрос падает на 42703
func TestBookingsSchemaMatchesQueries(t *testing.T) {
	ddl := tableDDL(t, "bookings")

	for _, column := range []string{
		"id",
		"user_id",
		"venue_id",
		"start_datetime",
		"payment_method",
		"status",
		"created_at",
	} {
		assert.Contains(t, ddl, column)
	}

	assert.NotContains(t, ddl, "start_date_time")
}
