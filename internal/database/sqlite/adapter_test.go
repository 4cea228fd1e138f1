package sqlite

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lumos-Labs-HQ/flashseed/internal/database/common"
)

const createCurrencies = `
	CREATE TABLE currencies (
		id SERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL
	);
`

func openAdapter(t *testing.T, log *common.StatementLog) *Adapter {
	t.Helper()
	adapter := New(log)
	if err := adapter.Connect(context.Background(), "sqlite://"+filepath.Join(t.TempDir(), "seed.db")); err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() { adapter.Close() })
	if err := adapter.Ping(context.Background()); err != nil {
		t.Fatalf("Failed to ping: %v", err)
	}
	return adapter
}

func TestRecreateInsertAndCount(t *testing.T) {
	ctx := context.Background()
	adapter := openAdapter(t, nil)

	if err := adapter.RecreateTable(ctx, "currencies", createCurrencies); err != nil {
		t.Fatalf("Failed to recreate table: %v", err)
	}

	rows := [][]interface{}{{1, "RUB"}, {2, "USD"}, {3, "EUR"}}
	n, err := adapter.InsertRows(ctx, "currencies", []string{"id", "name"}, rows)
	if err != nil {
		t.Fatalf("Failed to insert rows: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 rows affected, got %d", n)
	}

	count, err := adapter.CountRows(ctx, "currencies")
	if err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 rows, got %d", count)
	}

	// A second recreate starts from an empty table.
	if err := adapter.RecreateTable(ctx, "currencies", createCurrencies); err != nil {
		t.Fatalf("Failed to recreate table again: %v", err)
	}
	count, err = adapter.CountRows(ctx, "currencies")
	if err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty table after recreate, got %d rows", count)
	}
}

func TestRecreateFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	adapter := openAdapter(t, nil)

	if err := adapter.RecreateTable(ctx, "currencies", createCurrencies); err != nil {
		t.Fatalf("Failed to recreate table: %v", err)
	}
	if _, err := adapter.InsertRows(ctx, "currencies", []string{"id", "name"}, [][]interface{}{{1, "RUB"}}); err != nil {
		t.Fatalf("Failed to insert rows: %v", err)
	}

	if err := adapter.RecreateTable(ctx, "currencies", "CREATE TABLE currencies ("); err == nil {
		t.Fatal("Expected malformed create statement to fail")
	}

	exists, err := adapter.CheckTableExists(ctx, "currencies")
	if err != nil {
		t.Fatalf("Failed to check table: %v", err)
	}
	if !exists {
		t.Fatal("Expected the drop to be rolled back")
	}
	count, err := adapter.CountRows(ctx, "currencies")
	if err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected original row to survive rollback, got %d rows", count)
	}
}

func TestDropParentWithDependentRows(t *testing.T) {
	ctx := context.Background()
	adapter := openAdapter(t, nil)

	parent := `CREATE TABLE categories (id SERIAL PRIMARY KEY, name VARCHAR(255) NOT NULL);`
	child := `CREATE TABLE products (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		category_id INT NOT NULL,
		FOREIGN KEY (category_id) REFERENCES categories(id)
	);`

	for i := 0; i < 2; i++ {
		if err := adapter.RecreateTable(ctx, "categories", parent); err != nil {
			t.Fatalf("Run %d: failed to recreate categories: %v", i, err)
		}
		if _, err := adapter.InsertRows(ctx, "categories", []string{"id", "name"}, [][]interface{}{{1, "Смартфоны"}}); err != nil {
			t.Fatalf("Run %d: failed to insert categories: %v", i, err)
		}
		if err := adapter.RecreateTable(ctx, "products", child); err != nil {
			t.Fatalf("Run %d: failed to recreate products: %v", i, err)
		}
		if _, err := adapter.InsertRows(ctx, "products", []string{"id", "name", "category_id"}, [][]interface{}{{1, "iPhone 12", 1}}); err != nil {
			t.Fatalf("Run %d: failed to insert products: %v", i, err)
		}
	}
}

func TestInsertIntoMissingTable(t *testing.T) {
	adapter := openAdapter(t, nil)

	_, err := adapter.InsertRows(context.Background(), "stores", []string{"id"}, [][]interface{}{{1}})
	if err == nil {
		t.Fatal("Expected insert into a missing table to fail")
	}
}

func TestRejectsInvalidIdentifiers(t *testing.T) {
	ctx := context.Background()
	adapter := openAdapter(t, nil)

	if err := adapter.RecreateTable(ctx, "users; DROP TABLE x", createCurrencies); err == nil {
		t.Error("Expected invalid table name to be rejected")
	}
	if _, err := adapter.InsertRows(ctx, "currencies", []string{"name--"}, [][]interface{}{{"x"}}); err == nil {
		t.Error("Expected invalid column name to be rejected")
	}
	if _, err := adapter.CountRows(ctx, "a b"); err == nil {
		t.Error("Expected invalid table name to be rejected")
	}
}

func TestStatementEcho(t *testing.T) {
	var buf bytes.Buffer
	adapter := openAdapter(t, common.NewStatementLog(&buf))

	if err := adapter.RecreateTable(context.Background(), "currencies", createCurrencies); err != nil {
		t.Fatalf("Failed to recreate table: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`DROP TABLE IF EXISTS "currencies"`, "CREATE TABLE currencies", "COMMIT"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected echo to contain %q, got:\n%s", want, out)
		}
	}
}
