package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"portfolio-backend/internal/records"
)

// Entry is one record to create.
type Entry struct {
	Schema records.Schema
	Fields records.Fields
}

// Plan is a validated seed document in catalog order.
type Plan struct {
	Entries []Entry
}

// Counts returns the number of entries per table.
func (p Plan) Counts() map[string]int {
	out := map[string]int{}
	for _, e := range p.Entries {
		out[e.Schema.Table]++
	}
	return out
}

// ValidationError lists every problem found in a seed document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid seed document: " + strings.Join(e.Problems, "; ")
}

// LoadFile reads and validates a seed document from disk.
func LoadFile(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a YAML document keyed by table name (or kind), each holding a list of
// column/value mappings. Unknown tables or columns fail the whole document.
func Parse(r io.Reader) (Plan, error) {
	var doc map[string][]map[string]string
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Plan{}, nil
		}
		return Plan{}, fmt.Errorf("parse seed yaml: %w", err)
	}

	var problems []string
	bySchema := map[string][]map[string]string{}
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		schema, ok := records.Lookup(key)
		if !ok {
			problems = append(problems, fmt.Sprintf("unknown table %q", key))
			continue
		}
		for i, row := range doc[key] {
			cols := make([]string, 0, len(row))
			for col := range row {
				cols = append(cols, col)
			}
			sort.Strings(cols)
			for _, col := range cols {
				if !schema.HasColumn(col) {
					problems = append(problems, fmt.Sprintf("%s[%d]: unknown column %q", key, i, col))
				}
			}
		}
		bySchema[schema.Table] = append(bySchema[schema.Table], doc[key]...)
	}
	if len(problems) > 0 {
		return Plan{}, &ValidationError{Problems: problems}
	}

	var plan Plan
	for _, schema := range records.All() {
		for _, row := range bySchema[schema.Table] {
			plan.Entries = append(plan.Entries, Entry{
				Schema: schema,
				Fields: schema.Normalize(records.Fields(row)),
			})
		}
	}
	return plan, nil
}
