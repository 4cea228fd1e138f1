package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/flashseed/internal/database/common"
	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

type Adapter struct {
	db  *sql.DB
	qb  squirrel.StatementBuilderType
	log *common.StatementLog
}

func New(log *common.StatementLog) *Adapter {
	return &Adapter{
		qb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		log: log,
	}
}

func (s *Adapter) Provider() string {
	return "sqlite"
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Connect opens the database file. Foreign key enforcement is left off: SQLite
// has no DROP ... CASCADE, and a referenced table must stay droppable while its
// dependents still hold rows.
func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	return nil
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) RecreateTable(ctx context.Context, tableName, createSQL string) error {
	if !common.IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	statements := []string{
		fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteIdentifier(tableName)),
		createSQL,
	}
	for _, stmt := range statements {
		s.log.Log(stmt)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			s.log.Log("ROLLBACK")
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
			}
			return err
		}
	}

	s.log.Log("COMMIT")
	return tx.Commit()
}

func (s *Adapter) InsertRows(ctx context.Context, tableName string, columns []string, rows [][]interface{}) (int64, error) {
	query, args, err := common.BuildInsert(s.qb, quoteIdentifier, tableName, columns, rows)
	if err != nil {
		return 0, err
	}

	s.log.Log(query, args...)
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *Adapter) CountRows(ctx context.Context, tableName string) (int64, error) {
	if !common.IsValidIdentifier(tableName) {
		return 0, fmt.Errorf("invalid table name: %s", tableName)
	}

	query, args, err := s.qb.Select("COUNT(*)").From(quoteIdentifier(tableName)).ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", tableName, err)
	}
	return count, nil
}

func (s *Adapter) CheckTableExists(ctx context.Context, tableName string) (bool, error) {
	query, args, err := s.qb.
		Select("COUNT(*)").
		From("sqlite_master").
		Where(squirrel.Eq{"type": "table", "name": tableName}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
