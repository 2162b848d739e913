package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/clinicdesk/calendar/pkg/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NoteRepository runs the note repository suite. newRepository must return an empty repository on
// every call.
func NoteRepository(t *testing.T, newRepository func(t *testing.T) note.Repository) {
	march1 := model.NewDate(2024, time.March, 1, time.UTC)
	march2 := model.NewDate(2024, time.March, 2, time.UTC)

	t.Run("CreateAndFindByID", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		created := model.Note{UserID: 1, Date: march1, Content: "<p>Call the lab</p>"}
		require.NoError(t, repository.Create(ctx, &created))

		got, err := repository.FindByID(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, uint(1), got.ID)
		assert.Equal(t, uint(1), got.UserID)
		assert.Equal(t, "2024-03-01", got.Date.String())
		assert.Equal(t, "<p>Call the lab</p>", got.Content)
	})

	t.Run("FindByIDNotFound", func(t *testing.T) {
		repository := newRepository(t)

		_, err := repository.FindByID(context.Background(), 1)

		assert.True(t, errdef.IsNotFound(err))
	})

	t.Run("FindByDateAllowsDuplicatesOrderedByID", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		for _, n := range []model.Note{
			{UserID: 1, Date: march1, Content: "first"},
			{UserID: 1, Date: march2, Content: "other day"},
			{UserID: 1, Date: march1, Content: "second"},
		} {
			require.NoError(t, repository.Create(ctx, &n))
		}

		notes, err := repository.FindByDate(ctx, march1)

		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "first", notes[0].Content)
		assert.Equal(t, "second", notes[1].Content)
	})

	t.Run("FindByDateNone", func(t *testing.T) {
		repository := newRepository(t)

		notes, err := repository.FindByDate(context.Background(), march1)

		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("FindAllOrderedByID", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		for _, d := range []model.Date{march2, march1} {
			n := model.Note{UserID: 1, Date: d, Content: d.String()}
			require.NoError(t, repository.Create(ctx, &n))
		}

		notes, err := repository.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "2024-03-02", notes[0].Content)
		assert.Equal(t, "2024-03-01", notes[1].Content)
	})

	t.Run("UpdateReplacesAllFieldsButID", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		created := model.Note{UserID: 1, Date: march1, Content: "before"}
		require.NoError(t, repository.Create(ctx, &created))

		updated, err := repository.Update(ctx, created.ID, model.Note{ID: 5, UserID: 2, Date: march2, Content: "after"})
		require.NoError(t, err)
		got, err := repository.FindByID(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, uint(2), got.UserID)
		assert.Equal(t, "2024-03-02", got.Date.String())
		assert.Equal(t, "after", got.Content)
	})

	t.Run("UpdateNotFound", func(t *testing.T) {
		repository := newRepository(t)

		_, err := repository.Update(context.Background(), 3, model.Note{UserID: 1, Date: march1, Content: "x"})

		assert.True(t, errdef.IsNotFound(err))
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		repository := newRepository(t)

		assert.True(t, errdef.IsNotFound(repository.Delete(context.Background(), 3)))
	})

	t.Run("DeletedIDsAreNotReused", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		first := model.Note{UserID: 1, Date: march1, Content: "first"}
		require.NoError(t, repository.Create(ctx, &first))
		require.NoError(t, repository.Delete(ctx, first.ID))

		second := model.Note{UserID: 1, Date: march1, Content: "second"}
		require.NoError(t, repository.Create(ctx, &second))

		assert.Equal(t, uint(2), second.ID)
		notes, err := repository.FindByDate(ctx, march1)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "second", notes[0].Content)
	})
}
