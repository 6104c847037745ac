package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	c := &Customer{ID: 1, Name: "Doe", FirstName: "John", DateOfBirth: "1990-01-01", Address: "123 Rue de la Rue", PhoneNumber: "123-456-7890", Points: 100}
	require.NoError(t, r.Create(ctx, c))
	require.False(t, c.OID.IsZero())

	got, err := r.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Doe", got.Name)
	require.Equal(t, "1990-01-01", got.DateOfBirth)

	err = r.Create(ctx, &Customer{ID: 1, Name: "Smith"})
	require.Error(t, err)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, r.Delete(ctx, 1))
	require.ErrorIs(t, r.Delete(ctx, 1), ErrNotFound)
}

func TestMemoryRepositoryPartialUpdate(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	require.NoError(t, r.Create(ctx, &Customer{ID: 1, Name: "Doe", FirstName: "John", Points: 100}))

	pts := 150
	got, err := r.Update(ctx, 1, &Update{Points: &pts})
	require.NoError(t, err)
	require.Equal(t, 150, got.Points)
	require.Equal(t, "Doe", got.Name)
	require.Equal(t, "John", got.FirstName)

	_, err = r.Update(ctx, 42, &Update{Points: &pts})
	require.ErrorIs(t, err, ErrNotFound)
}
