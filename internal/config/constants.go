package config

const (
	// DefaultDatabasePath is the default SQLite file for the books table
	DefaultDatabasePath = "./bookshelf.db"
)
