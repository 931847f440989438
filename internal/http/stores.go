package http

import (
	"context"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// This file consolidates the store interfaces used by HTTP controllers.
// Implementations live under internal/database; compile-time checks are in
// internal/interfaces.

// BookStore is the persistence contract of the books endpoints.
type BookStore interface {
	Create(ctx context.Context, book *entities.Book) error
	Get(ctx context.Context, isbn string) (*entities.Book, error)
	List(ctx context.Context) ([]entities.Book, error)
	Update(ctx context.Context, isbn string, patch entities.BookPatch) (*entities.Book, error)
	Delete(ctx context.Context, isbn string) error
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
