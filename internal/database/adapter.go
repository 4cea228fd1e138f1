package database

import (
	"context"

	"github.com/Lumos-Labs-HQ/flashseed/internal/database/common"
	"github.com/Lumos-Labs-HQ/flashseed/internal/database/postgres"
	"github.com/Lumos-Labs-HQ/flashseed/internal/database/sqlite"
)

type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error
	Provider() string

	// RecreateTable drops the table if present and runs createSQL, both in one
	// transaction. On failure the transaction is rolled back.
	RecreateTable(ctx context.Context, tableName, createSQL string) error

	// InsertRows appends rows to an existing table and returns the number of
	// rows written.
	InsertRows(ctx context.Context, tableName string, columns []string, rows [][]interface{}) (int64, error)

	CountRows(ctx context.Context, tableName string) (int64, error)
	CheckTableExists(ctx context.Context, tableName string) (bool, error)
}

func NewAdapter(provider string, log *common.StatementLog) DatabaseAdapter {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New(log)
	case "sqlite", "sqlite3":
		return sqlite.New(log)
	default:
		return postgres.New(log)
	}
}
