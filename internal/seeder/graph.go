package seeder

import "fmt"

// DependencyGraph orders tables so every table comes after the tables it
// references. Among tables with no ordering constraint the declaration order
// is kept, so an already valid declaration comes back unchanged.
type DependencyGraph struct {
	tables   map[string]*TableDefinition
	declared []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		tables: make(map[string]*TableDefinition),
	}
}

func (g *DependencyGraph) AddTable(table *TableDefinition) error {
	if _, exists := g.tables[table.Name]; exists {
		return fmt.Errorf("table %s is declared twice", table.Name)
	}
	g.tables[table.Name] = table
	g.declared = append(g.declared, table.Name)
	return nil
}

func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		temp[tableName] = true
		for _, dep := range g.tables[tableName].DependsOn {
			if dep == tableName {
				continue
			}
			if _, ok := g.tables[dep]; !ok {
				return fmt.Errorf("table %s depends on undeclared table %s", tableName, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	for _, tableName := range g.declared {
		if !visited[tableName] {
			if err := visit(tableName); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}
