// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore: Book CRUD keyed by ISBN (internal/http/stores.go)
//
// ## Health Interfaces
//
//   - Pinger: Database reachability for /health (internal/http/stores.go)
//
// # Adding a New Storage Backend
//
// The books repository runs on any gorm dialector. To support another database:
//
//  1. Add a Driver constant in internal/config/config.go
//
//  2. Return its dialector from openDialector in internal/database/database.go
//
//  3. Teach isDuplicateKey in internal/database/books about the driver's
//     unique-violation error if gorm does not translate it
//
// # Adding a New Resource
//
// To expose another table (e.g., authors):
//
//  1. Create sub-package: internal/database/authors/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Declare the store interface the controller needs in internal/http/stores.go
//
//  4. Add body validators in internal/validation/
//
//  5. Add compile-time check to checks.go:
//
//     var _ http.AuthorStore = (*authors.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
