package decision

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Table maps profile names to decision records. The zero value is an empty
// table; use NewTable or Default to build a populated one.
type Table struct {
	records map[string]Record
	names   []string
}

// NewTable builds a Table from entries. The map is copied, so later changes
// to entries are not visible through the Table. Every name must be non-empty
// and every record must have all five fields set.
func NewTable(entries map[string]Record) (*Table, error) {
	records := make(map[string]Record, len(entries))
	names := make([]string, 0, len(entries))

	for name, rec := range entries {
		if name == "" {
			return nil, fmt.Errorf("%w: empty profile name", ErrInvalidTable)
		}
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: profile %q: %v", ErrInvalidTable, name, err)
		}
		records[name] = rec
		names = append(names, name)
	}
	sort.Strings(names)

	return &Table{records: records, names: names}, nil
}

// Default returns the built-in table of four profiles.
func Default() *Table {
	t, err := NewTable(defaultContracts())
	if err != nil {
		// ALLOW-PANIC: the literal table is fixed at compile time
		panic(fmt.Sprintf("built-in decision table is invalid: %v", err))
	}
	return t
}

// Lookup returns a copy of the record stored for name. If name is not in
// the table, including the empty string, the error is a *ProfileNotFoundError
// that matches ErrProfileNotFound.
func (t *Table) Lookup(name string) (Record, error) {
	rec, ok := t.records[name]
	if !ok {
		return Record{}, &ProfileNotFoundError{
			Profile:   name,
			Available: t.Profiles(),
		}
	}
	return rec, nil
}

// Profiles returns every profile name in ascending order.
// The returned slice belongs to the caller.
func (t *Table) Profiles() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of profiles in the table.
func (t *Table) Len() int {
	return len(t.names)
}
