package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	g := &Game{ID: 1, Title: "Jeu 1", Editor: "Ed1", Platforms: []string{"PC", "PS5"}, Quantity: 10}
	require.NoError(t, r.Create(ctx, g))
	require.False(t, g.OID.IsZero())

	got, err := r.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Jeu 1", got.Title)
	require.Equal(t, []string{"PC", "PS5"}, got.Platforms)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, r.Delete(ctx, 1))
	_, err = r.GetByID(ctx, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepositoryDuplicateID(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	require.NoError(t, r.Create(ctx, &Game{ID: 7, Title: "a"}))
	err := r.Create(ctx, &Game{ID: 7, Title: "b"})
	require.Error(t, err)

	// the first document is untouched
	got, err := r.GetByID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "a", got.Title)
}

func TestMemoryRepositoryPartialUpdate(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	require.NoError(t, r.Create(ctx, &Game{ID: 1, Title: "Jeu 1", Editor: "Ed1", Platforms: []string{"PC"}, Quantity: 10}))

	q := 5
	got, err := r.Update(ctx, 1, &Update{Quantity: &q})
	require.NoError(t, err)
	require.Equal(t, 5, got.Quantity)
	require.Equal(t, "Jeu 1", got.Title)
	require.Equal(t, "Ed1", got.Editor)
	require.Equal(t, []string{"PC"}, got.Platforms)

	// a read after the update reflects exactly the merged result
	again, err := r.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, got, again)

	_, err = r.Update(ctx, 999, &Update{Quantity: &q})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepositoryUpdateRekeysID(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	require.NoError(t, r.Create(ctx, &Game{ID: 1, Title: "Jeu 1"}))

	newID := 2
	got, err := r.Update(ctx, 1, &Update{ID: &newID})
	require.NoError(t, err)
	require.Equal(t, 2, got.ID)

	_, err = r.GetByID(ctx, 1)
	require.ErrorIs(t, err, ErrNotFound)
	moved, err := r.GetByID(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Jeu 1", moved.Title)
}

func TestUpdateSetFields(t *testing.T) {
	title := "t"
	platforms := []string{"PC"}
	u := &Update{Title: &title, Platforms: &platforms}
	set := u.setFields()
	require.Len(t, set, 2)
	require.Equal(t, "t", set["title"])
	require.Equal(t, platforms, set["platforms"])

	require.Empty(t, (&Update{}).setFields())
}
