// Package database opens the relational store and owns its lifecycle.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, pool limits, migrations
//	└── books/           # Book CRUD keyed by ISBN
//
// # Usage
//
//	db, err := database.NewDatabase(cfg.Database)
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	booksRepo := books.NewRepository(db.DB)
//	book, err := booksRepo.Get(ctx, "123456789")
//
// # Drivers
//
// SQLite (default) stores the books table in a single file. PostgreSQL is
// selected with DATABASE_DRIVER=postgres and a connection string in
// DATABASE_DSN. Both share the same schema through gorm auto-migration.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Add the entity to the AutoMigrate call in NewDatabase
//  5. Add compile-time interface check: var _ SomeInterface = (*Repository)(nil)
package database
