package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/flashseed/internal/database/common"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type Adapter struct {
	pool *pgxpool.Pool
	qb   squirrel.StatementBuilderType
	log  *common.StatementLog
}

func New(log *common.StatementLog) *Adapter {
	return &Adapter{
		qb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		log: log,
	}
}

func (p *Adapter) Provider() string {
	return "postgresql"
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	// Cached statements do not survive a DROP/CREATE of the same table.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeDescribeExec

	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Adapter) RecreateTable(ctx context.Context, tableName, createSQL string) error {
	if !common.IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	statements := []string{
		fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", pq.QuoteIdentifier(tableName)),
		createSQL,
	}
	for _, stmt := range statements {
		p.log.Log(stmt)
		if _, err := tx.Exec(ctx, stmt); err != nil {
			p.log.Log("ROLLBACK")
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
			}
			return err
		}
	}

	p.log.Log("COMMIT")
	return tx.Commit(ctx)
}

func (p *Adapter) InsertRows(ctx context.Context, tableName string, columns []string, rows [][]interface{}) (int64, error) {
	query, args, err := common.BuildInsert(p.qb, pq.QuoteIdentifier, tableName, columns, rows)
	if err != nil {
		return 0, err
	}

	p.log.Log(query, args...)
	tag, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (p *Adapter) CountRows(ctx context.Context, tableName string) (int64, error) {
	if !common.IsValidIdentifier(tableName) {
		return 0, fmt.Errorf("invalid table name: %s", tableName)
	}

	query, args, err := p.qb.Select("COUNT(*)").From(pq.QuoteIdentifier(tableName)).ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", tableName, err)
	}
	return count, nil
}

func (p *Adapter) CheckTableExists(ctx context.Context, tableName string) (bool, error) {
	query, args, err := p.qb.
		Select("1").
		Prefix("SELECT EXISTS (").
		From("information_schema.tables").
		Where(squirrel.Eq{"table_name": tableName}).
		Where("table_schema = current_schema()").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	err = p.pool.QueryRow(ctx, query, args...).Scan(&exists)
	return exists, err
}
