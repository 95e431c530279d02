package memstore

import (
	"table-booking/internal/domain/table"
)

// TableStore serves the fixed table catalog. It is read-only after
// construction and needs no locking.
type TableStore struct {
	tables []*table.Table
}

func NewTableStore(tables []*table.Table) *TableStore {
	return &TableStore{tables: tables}
}

func NewDefaultTableStore() (*TableStore, error) {
	tables, err := table.BuildCatalog(table.DefaultCatalog)
	if err != nil {
		return nil, err
	}
	return NewTableStore(tables), nil
}

func (s *TableStore) List() []*table.Table {
	out := make([]*table.Table, len(s.tables))
	copy(out, s.tables)
	return out
}

// FindByID matches ids exactly (case-sensitive).
func (s *TableStore) FindByID(id string) (*table.Table, bool) {
	for _, t := range s.tables {
		if t.ID() == id {
			return t, true
		}
	}
	return nil, false
}
