package repositories

import (
	"context"
	"testing"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetachTx(t *testing.T) {
	writeDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer writeDB.Close()

	readDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer readDB.Close()

	repo := NewSQLRepository(writeDB, readDB, config.Config{})

	t.Run("injected db serves both sides", func(t *testing.T) {
		ctx := injectTx(context.Background(), writeDB)

		assert.Equal(t, querier(writeDB), repo.extractTxRead(ctx))
		assert.Equal(t, querier(writeDB), repo.extractTxWrite(ctx))
	})

	t.Run("detached reads resolve to the read pool", func(t *testing.T) {
		ctx := DetachTx(injectTx(context.Background(), writeDB))

		assert.Equal(t, querier(readDB), repo.extractTxRead(ctx))
		assert.Equal(t, querier(writeDB), repo.extractTxWrite(ctx))
	})

	t.Run("no-op outside a transaction", func(t *testing.T) {
		ctx := context.Background()

		assert.Equal(t, ctx, DetachTx(ctx))
		assert.Equal(t, querier(readDB), repo.extractTxRead(ctx))
	})
}
