package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Column represents a workflow stage of a board (e.g. "todo", "blocked").
// ID is immutable; Name is the lower-cased display label and may change.
type Column struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Collapsed bool   `json:"collapsed"`
	Tasks     []Task `json:"tasks"`
}

// UnmarshalJSON accepts the legacy "collpased" spelling written by older
// versions of the board data.
func (c *Column) UnmarshalJSON(data []byte) error {
	type plain Column
	var aux struct {
		plain
		LegacyCollapsed *bool `json:"collpased,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*c = Column(aux.plain)
	if aux.LegacyCollapsed != nil && !c.Collapsed {
		c.Collapsed = *aux.LegacyCollapsed
	}
	return nil
}

// Clone returns a copy of the column with its own task slice.
func (c Column) Clone() Column {
	c.Tasks = slices.Clone(c.Tasks)
	return c
}

// IsReserved reports whether the column is one of the built-in columns.
func (c Column) IsReserved() bool {
	return IsReservedColumn(c.Name)
}

// ColumnSet is the ordered set of columns of a board. Columns are
// identified by their immutable ID, so renaming never re-keys anything.
//
// On the wire the set is a JSON object keyed by column name, written in
// display order.
type ColumnSet []Column

// IndexByID returns the position of the column with the given ID, or -1.
func (cs ColumnSet) IndexByID(id string) int {
	return slices.IndexFunc(cs, func(c Column) bool { return c.ID == id })
}

// IndexByName returns the position of the column with the given name, or -1.
func (cs ColumnSet) IndexByName(name string) int {
	return slices.IndexFunc(cs, func(c Column) bool { return c.Name == name })
}

// Names lists the column names in display order.
func (cs ColumnSet) Names() []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return names
}

// Clone deep-copies the set.
func (cs ColumnSet) Clone() ColumnSet {
	if cs == nil {
		return nil
	}
	out := make(ColumnSet, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}

// MarshalJSON writes the set as an object keyed by column name, preserving
// display order.
func (cs ColumnSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range cs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of columns in document order. Keys are only
// used when a column carries no name of its own.
func (cs *ColumnSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("columns: expected object, got %v", tok)
	}

	out := ColumnSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		var col Column
		if err := dec.Decode(&col); err != nil {
			return err
		}
		if col.Name == "" {
			if key, ok := keyTok.(string); ok {
				col.Name = key
			}
		}
		out = append(out, col)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*cs = out
	return nil
}
