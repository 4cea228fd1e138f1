package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/Masterminds/squirrel"
)

// validIdentifier validates SQL identifiers (table/column names) to prevent SQL injection
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func IsValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// StatementLog echoes every statement an adapter sends. A nil *StatementLog is
// valid and silent.
type StatementLog struct {
	logger *log.Logger
}

func NewStatementLog(w io.Writer) *StatementLog {
	if w == nil {
		w = os.Stderr
	}
	return &StatementLog{logger: log.New(w, "[sql] ", log.LstdFlags)}
}

func (l *StatementLog) Log(query string, args ...interface{}) {
	if l == nil {
		return
	}
	query = strings.Join(strings.Fields(query), " ")
	if len(args) == 0 {
		l.logger.Println(query)
		return
	}
	l.logger.Printf("%s %v", query, args)
}

// BuildInsert renders one multi-row INSERT for the given rows. quote is the
// dialect's identifier quoting function.
func BuildInsert(qb squirrel.StatementBuilderType, quote func(string) string, table string, columns []string, rows [][]interface{}) (string, []interface{}, error) {
	if !IsValidIdentifier(table) {
		return "", nil, fmt.Errorf("invalid table name: %s", table)
	}
	if len(columns) == 0 {
		return "", nil, fmt.Errorf("no columns given for table %s", table)
	}
	if len(rows) == 0 {
		return "", nil, fmt.Errorf("no rows given for table %s", table)
	}

	quoted := make([]string, len(columns))
	for i, col := range columns {
		if !IsValidIdentifier(col) {
			return "", nil, fmt.Errorf("invalid column name in table %s: %s", table, col)
		}
		quoted[i] = quote(col)
	}

	insert := qb.Insert(quote(table)).Columns(quoted...)
	for i, row := range rows {
		if len(row) != len(columns) {
			return "", nil, fmt.Errorf("row %d of %s has %d values, expected %d", i, table, len(row), len(columns))
		}
		insert = insert.Values(row...)
	}

	return insert.ToSql()
}
