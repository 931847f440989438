package books

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "books.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db.DB
}

func seedBook() *entities.Book {
	return &entities.Book{
		ISBN:      "123456789",
		AmazonURL: "http://amazon.com/book1",
		Author:    "Author1",
		Language:  "English",
		Pages:     100,
		Publisher: "Publisher1",
		Title:     "Book1",
		Year:      2020,
	}
}

func ptr[T any](v T) *T { return &v }

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	book := seedBook()
	require.NoError(t, repo.Create(ctx, book))

	got, err := repo.Get(ctx, "123456789")
	require.NoError(t, err)
	assert.Equal(t, *book, *got)
}

func TestRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, seedBook()))

	dup := seedBook()
	dup.Title = "Another Title"
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateISBN), "got %v", err)

	got, err := repo.Get(ctx, "123456789")
	require.NoError(t, err)
	assert.Equal(t, "Book1", got.Title)
}

func TestRepository_GetNotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	book, err := repo.Get(context.Background(), "000")
	assert.Nil(t, book)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	t.Run("empty table returns empty slice", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("ordered by isbn", func(t *testing.T) {
		for _, isbn := range []string{"300", "100", "200"} {
			b := seedBook()
			b.ISBN = isbn
			require.NoError(t, repo.Create(ctx, b))
		}

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "100", list[0].ISBN)
		assert.Equal(t, "200", list[1].ISBN)
		assert.Equal(t, "300", list[2].ISBN)
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("changes only supplied fields", func(t *testing.T) {
		repo := NewRepository(setupTestDB(t))
		require.NoError(t, repo.Create(ctx, seedBook()))

		updated, err := repo.Update(ctx, "123456789", entities.BookPatch{
			Title: ptr("Updated Title"),
			Pages: ptr(150),
		})
		require.NoError(t, err)

		want := seedBook()
		want.Title = "Updated Title"
		want.Pages = 150
		assert.Equal(t, *want, *updated)

		stored, err := repo.Get(ctx, "123456789")
		require.NoError(t, err)
		assert.Equal(t, *want, *stored)
	})

	t.Run("same values still match the row", func(t *testing.T) {
		repo := NewRepository(setupTestDB(t))
		require.NoError(t, repo.Create(ctx, seedBook()))

		updated, err := repo.Update(ctx, "123456789", entities.BookPatch{Title: ptr("Book1")})
		require.NoError(t, err)
		assert.Equal(t, "Book1", updated.Title)
	})

	t.Run("empty patch returns current record", func(t *testing.T) {
		repo := NewRepository(setupTestDB(t))
		require.NoError(t, repo.Create(ctx, seedBook()))

		updated, err := repo.Update(ctx, "123456789", entities.BookPatch{})
		require.NoError(t, err)
		assert.Equal(t, *seedBook(), *updated)
	})

	t.Run("can clear a string field", func(t *testing.T) {
		repo := NewRepository(setupTestDB(t))
		require.NoError(t, repo.Create(ctx, seedBook()))

		updated, err := repo.Update(ctx, "123456789", entities.BookPatch{AmazonURL: ptr("")})
		require.NoError(t, err)
		assert.Empty(t, updated.AmazonURL)
	})

	t.Run("missing isbn", func(t *testing.T) {
		repo := NewRepository(setupTestDB(t))

		updated, err := repo.Update(ctx, "000", entities.BookPatch{Title: ptr("x")})
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, ErrNotFound)

		updated, err = repo.Update(ctx, "000", entities.BookPatch{})
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	require.NoError(t, repo.Create(ctx, seedBook()))

	require.NoError(t, repo.Delete(ctx, "123456789"))

	_, err := repo.Get(ctx, "123456789")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "123456789"), ErrNotFound)
}

func TestRepository_CanceledContext(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	assert.Error(t, err)
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, isDuplicateKey(nil))
	assert.False(t, isDuplicateKey(errors.New("boom")))
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
}
