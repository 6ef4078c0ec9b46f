package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawInsert = `INSERT INTO users (id, email, first_name, last_name, gender, password) VALUES (?, ?, 'A', 'B', ?, 'pw')`

func TestIsSQLiteUniqueViolation(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, rawInsert, "u-1", "a@example.com", "female")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, rawInsert, "u-2", "a@example.com", "female")
	require.Error(t, err)
	assert.True(t, isSQLiteUniqueViolation(err), "duplicate email")

	_, err = db.ExecContext(ctx, rawInsert, "u-1", "b@example.com", "female")
	require.Error(t, err)
	assert.True(t, isSQLiteUniqueViolation(err), "duplicate id")

	_, err = db.ExecContext(ctx, rawInsert, "u-3", "c@example.com", "other")
	require.Error(t, err)
	assert.False(t, isSQLiteUniqueViolation(err), "check constraint")

	_, err = db.ExecContext(ctx, `INSERT INTO users (id, email, first_name, last_name, gender) VALUES ('u-4', 'd@example.com', 'A', 'B', 'male')`)
	require.Error(t, err)
	assert.False(t, isSQLiteUniqueViolation(err), "not null constraint")

	assert.False(t, isSQLiteUniqueViolation(nil))
}
