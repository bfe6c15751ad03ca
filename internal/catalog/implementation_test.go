// internal/catalog/implementation_test.go
package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	first, err := svc.Register(ctx, "Clean Code", "Robert C. Martin", "978-0132350884")
	require.NoError(t, err)
	assert.True(t, first.Available)

	second, err := svc.Register(ctx, "The Pragmatic Programmer", "Andrew Hunt", "978-0201616224")
	require.NoError(t, err)

	books, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, first, books[0])
	assert.Equal(t, second, books[1])
}

func TestRegisterDuplicateISBN(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	_, err := svc.Register(ctx, "Clean Code", "Robert C. Martin", "978-0132350884")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Another Title", "Another Author", "978-0132350884")
	require.ErrorIs(t, err, ErrDuplicateISBN)

	// The failed call must not have touched the catalog.
	books, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Clean Code", books[0].Title)
}

func TestFindAvailable(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	_, err := svc.Register(ctx, "Clean Code", "Robert C. Martin", "978-0132350884")
	require.NoError(t, err)

	book, err := svc.FindAvailable(ctx, "978-0132350884")
	require.NoError(t, err)
	assert.Equal(t, "Clean Code", book.Title)

	_, err = svc.FindAvailable(ctx, "no-such-isbn")
	assert.ErrorIs(t, err, ErrNotFound)

	// An unavailable book looks the same as a missing one.
	require.NoError(t, svc.SetAvailability(ctx, "978-0132350884", false))
	_, err = svc.FindAvailable(ctx, "978-0132350884")
	assert.ErrorIs(t, err, ErrNotFound)

	// Get still sees it.
	book, err = svc.Get(ctx, "978-0132350884")
	require.NoError(t, err)
	assert.False(t, book.Available)
}

func TestSetAvailability(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	err := svc.SetAvailability(ctx, "no-such-isbn", false)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Register(ctx, "Clean Code", "Robert C. Martin", "978-0132350884")
	require.NoError(t, err)

	require.NoError(t, svc.SetAvailability(ctx, "978-0132350884", false))
	require.NoError(t, svc.SetAvailability(ctx, "978-0132350884", true))

	book, err := svc.Get(ctx, "978-0132350884")
	require.NoError(t, err)
	assert.True(t, book.Available)
}
