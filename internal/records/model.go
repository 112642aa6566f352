package records

import "strings"

// Fields maps column names to raw form values.
type Fields map[string]string

// Record is one row of an entity table.
type Record struct {
	ID     int64
	Fields Fields
}

// Value returns the value stored for col, or "" when unset.
func (r Record) Value(col string) string {
	return r.Fields[col]
}

// Column describes one editable text column.
type Column struct {
	Name      string
	Label     string
	Multiline bool
}

// Messages holds the user-facing text shown when a statement fails.
type Messages struct {
	List   string
	Load   string
	Create string
	Update string
	Delete string
}

// Schema describes how one entity kind maps onto its table and routes.
type Schema struct {
	// Kind is the URL slug used by /add-{kind}, /edit-{kind}/{id} and /delete-{kind}/{id}.
	Kind      string
	Title     string
	Table     string
	IDColumn  string
	Columns   []Column
	ListPath  string
	WriteOnly bool
	Messages  Messages
}

// ColumnNames returns the column names in declaration order.
func (s Schema) ColumnNames() []string {
	out := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		out = append(out, col.Name)
	}
	return out
}

// HasColumn reports whether name is one of the schema's columns.
func (s Schema) HasColumn(name string) bool {
	for _, col := range s.Columns {
		if col.Name == name {
			return true
		}
	}
	return false
}

// Normalize returns a copy of in holding exactly the schema's columns. Missing columns
// become empty strings and unknown keys are dropped; values are never trimmed.
func (s Schema) Normalize(in Fields) Fields {
	out := make(Fields, len(s.Columns))
	for _, col := range s.Columns {
		out[col.Name] = in[col.Name]
	}
	return out
}

// Supports reports whether op may be applied to the kind.
func (s Schema) Supports(op Op) bool {
	if s.WriteOnly {
		return op == OpCreate
	}
	return true
}

// AddPath returns the path of the create form.
func (s Schema) AddPath() string {
	return "/add-" + s.Kind
}

// EditPath returns the path of the edit form for id.
func (s Schema) EditPath(id int64) string {
	return "/edit-" + s.Kind + "/" + formatID(id)
}

// DeletePath returns the path that deletes id.
func (s Schema) DeletePath(id int64) string {
	return "/delete-" + s.Kind + "/" + formatID(id)
}

// Noun returns a lower-case label for headings such as "Add skill".
func (s Schema) Noun() string {
	return strings.ReplaceAll(s.Kind, "-", " ")
}
