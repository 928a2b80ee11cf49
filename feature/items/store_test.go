package items_test

import (
	"context"
	"errors"
	"testing"

	"reorder/core/ordering"
	"reorder/feature/items"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SQLite(t *testing.T) {
	ctx := context.Background()

	t.Run("ListItems", func(t *testing.T) {
		store := items.NewStore(setupDB(t))

		list, err := store.ListItems(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "a", list[0].ID)
		assert.Equal(t, ownerID, list[0].OwnerID)
		assert.Equal(t, "red", list[0].Color)
		assert.Equal(t, "c", list[2].ID)

		empty, err := store.ListItems(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("UpdateItemPosition", func(t *testing.T) {
		db := setupDB(t)
		store := items.NewStore(db)

		item, err := store.UpdateItemPosition(ctx, "c", ownerID, 24576)
		require.NoError(t, err)
		assert.Equal(t, 24576.0, item.Position)
		assert.Equal(t, "C", item.Label)

		// Same value again must not look like a missing row.
		_, err = store.UpdateItemPosition(ctx, "c", ownerID, 24576)
		require.NoError(t, err)

		_, err = store.UpdateItemPosition(ctx, "x", ownerID, 1)
		assert.ErrorIs(t, err, ordering.ErrNotFound)
		assert.Equal(t, 16384.0, positions(t, db, "user-2")["x"])
	})

	t.Run("BulkWritePositions", func(t *testing.T) {
		db := setupDB(t)
		store := items.NewStore(db)

		err := store.BulkWritePositions(ctx, ownerID, []ordering.PositionUpdate{
			{ItemID: "a", Position: 16384},
			{ItemID: "c", Position: 32768},
			{ItemID: "b", Position: 49152},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"a": 16384, "c": 32768, "b": 49152}, positions(t, db, ownerID))
	})

	t.Run("BulkWriteForeignItemRollsBack", func(t *testing.T) {
		db := setupDB(t)
		store := items.NewStore(db)

		err := store.BulkWritePositions(ctx, ownerID, []ordering.PositionUpdate{
			{ItemID: "a", Position: 1},
			{ItemID: "x", Position: 2},
		})
		assert.ErrorIs(t, err, ordering.ErrNotFound)
		assert.Equal(t, map[string]float64{"a": 16384, "b": 32768, "c": 49152}, positions(t, db, ownerID))
	})

	t.Run("DeleteAndCreate", func(t *testing.T) {
		db := setupDB(t)
		store := items.NewStore(db)

		require.NoError(t, store.DeleteAllItems(ctx, ownerID))
		assert.Empty(t, positions(t, db, ownerID))
		assert.Len(t, positions(t, db, "user-2"), 1)

		seeds := ordering.Seeds(5, ordering.DefaultStep, ordering.DefaultPalette)
		require.NoError(t, store.CreateItems(ctx, ownerID, seeds))
		require.NoError(t, store.CreateItems(ctx, ownerID, nil))

		list, err := store.ListItems(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, list, 5)
		for i, it := range list {
			assert.Equal(t, seeds[i].Label, it.Label)
			assert.Equal(t, seeds[i].Position, it.Position)
		}
	})

	t.Run("InTxRollsBack", func(t *testing.T) {
		db := setupDB(t)
		store := items.NewStore(db)
		boom := errors.New("boom")

		err := store.InTx(ctx, func(s ordering.Store) error {
			if err := s.DeleteAllItems(ctx, ownerID); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Len(t, positions(t, db, ownerID), 3)
	})
}

func TestStore_BulkWritePositions_Statements(t *testing.T) {
	ctx := context.Background()
	updates := []ordering.PositionUpdate{
		{ItemID: "a", Position: 16384},
		{ItemID: "b", Position: 32768},
	}

	t.Run("Commit", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `order_items`").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))
		mock.ExpectExec("UPDATE `order_items` SET").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE `order_items` SET").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := items.NewStore(db).BulkWritePositions(ctx, ownerID, updates)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FailedUpdateRollsBack", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `order_items`").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))
		mock.ExpectExec("UPDATE `order_items` SET").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE `order_items` SET").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := items.NewStore(db).BulkWritePositions(ctx, ownerID, updates)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingRowRollsBack", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `order_items`").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
		mock.ExpectRollback()

		err := items.NewStore(db).BulkWritePositions(ctx, ownerID, updates)
		assert.ErrorIs(t, err, ordering.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyIsNoop", func(t *testing.T) {
		db, mock := setupMockDB(t)

		assert.NoError(t, items.NewStore(db).BulkWritePositions(ctx, ownerID, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
