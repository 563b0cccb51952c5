package config

const (
	// DefaultDatabasePath is the default path for the sqlite database
	DefaultDatabasePath = "./bookshelf.db"

	// DefaultPort is the default HTTP listen port
	DefaultPort = 8000
)
