// Package books provides database operations for the books table.
//
// Every operation is a single statement (or a read-after-write inside one
// transaction for updates), keyed by ISBN.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.Get(ctx, "123456789")
//	if errors.Is(err, books.ErrNotFound) {
//		// 404
//	}
package books

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// ErrNotFound indicates no book has the requested ISBN.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateISBN indicates a book with the same ISBN already exists.
var ErrDuplicateISBN = errors.New("book with this isbn already exists")

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book.
func (r *Repository) Create(ctx context.Context, book *entities.Book) error {
	err := r.db.WithContext(ctx).Create(book).Error
	if isDuplicateKey(err) {
		return fmt.Errorf("create book %s: %w", book.ISBN, ErrDuplicateISBN)
	}
	if err != nil {
		return fmt.Errorf("create book %s: %w", book.ISBN, err)
	}
	return nil
}

// Get retrieves a book by ISBN.
func (r *Repository) Get(ctx context.Context, isbn string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book %s: %w", isbn, err)
	}
	return &book, nil
}

// List returns all books ordered by ISBN.
func (r *Repository) List(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	if err := r.db.WithContext(ctx).Order("isbn ASC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Update writes the supplied patch fields of the book with the given ISBN
// and returns the merged record. The read and the write share a transaction.
func (r *Repository) Update(ctx context.Context, isbn string, patch entities.BookPatch) (*entities.Book, error) {
	if patch.IsEmpty() {
		return r.Get(ctx, isbn)
	}

	var book entities.Book
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("isbn = ?", isbn).First(&book).Error; err != nil {
			return err
		}
		result := tx.Model(&entities.Book{}).Where("isbn = ?", isbn).Updates(patch.Columns())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		patch.ApplyTo(&book)
		return nil
	})
	if errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update book %s: %w", isbn, err)
	}
	return &book, nil
}

// Delete permanently removes the book with the given ISBN.
func (r *Repository) Delete(ctx context.Context, isbn string) error {
	result := r.db.WithContext(ctx).Where("isbn = ?", isbn).Delete(&entities.Book{})
	if result.Error != nil {
		return fmt.Errorf("delete book %s: %w", isbn, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// isDuplicateKey recognises primary key violations from every supported
// driver, whether or not gorm translated them.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
