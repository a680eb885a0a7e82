package migrations

import (
	"io"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	src, err := iofs.New(files, "sql")
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	up, _, err := src.ReadUp(version)
	require.NoError(t, err)
	upSQL, err := io.ReadAll(up)
	require.NoError(t, err)
	_ = up.Close()

	down, _, err := src.ReadDown(version)
	require.NoError(t, err)
	_ = down.Close()

	schema := string(upSQL)
	for _, table := range []string{"users", "customers", "invoices", "revenue", "courses"} {
		assert.True(t, strings.Contains(schema, "CREATE TABLE IF NOT EXISTS "+table), table)
	}
	assert.Contains(t, schema, "name VARCHAR(255) NOT NULL UNIQUE")
	assert.Contains(t, schema, "course_number INT NOT NULL UNIQUE")
}
