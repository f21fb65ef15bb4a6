package log

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Use temp directory for test database
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		// Verify database file exists
		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "search:run",
			Action:  "search",
			Pattern: `(\w+)=(\d+)`,
			File:    "vars.env",
			Success: true,
		})

		// Verify entry was written
		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		var source, action, pattern, file string
		var success int
		err = db.QueryRow("SELECT source, action, pattern, file, success FROM log WHERE id = 1").
			Scan(&source, &action, &pattern, &file, &success)
		require.NoError(t, err)
		assert.Equal(t, "search:run", source)
		assert.Equal(t, "search", action)
		assert.Equal(t, `(\w+)=(\d+)`, pattern)
		assert.Equal(t, "vars.env", file)
		assert.Equal(t, 1, success)
	})

	t.Run("fluent builder derives outcome from error", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		Event("search:run", "search").
			Pattern("an").
			File("fruits.txt").
			Detail("matched", 1).
			Write(nil)
		Event("search:run", "search").
			Pattern("(oops").
			Write(assert.AnError)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var okCount, failCount int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log WHERE success = 1").Scan(&okCount))
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log WHERE success = 0").Scan(&failCount))
		assert.GreaterOrEqual(t, okCount, 1)
		assert.Equal(t, 1, failCount)

		var detail string
		require.NoError(t, db.QueryRow("SELECT detail FROM log WHERE file = 'fruits.txt'").Scan(&detail))
		assert.Contains(t, detail, `"matched":1`)
	})

	t.Run("log without open is a no-op", func(t *testing.T) {
		// No Open() here; must not panic
		Log(Entry{Source: "search:run", Action: "search"})
	})
}
