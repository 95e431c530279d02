package table

type Spec struct {
	ID       string
	Capacity int
	Location string
}

// DefaultCatalog is the restaurant floor plan, in listing order.
var DefaultCatalog = []Spec{
	{ID: "T1", Capacity: 2, Location: "window"},
	{ID: "T2", Capacity: 4, Location: "center"},
	{ID: "T3", Capacity: 6, Location: "outdoor"},
	{ID: "T4", Capacity: 8, Location: "private room"},
	{ID: "T5", Capacity: 2, Location: "bar"},
}

// BuildCatalog validates specs and keeps their order. Ids must be unique.
func BuildCatalog(specs []Spec) ([]*Table, error) {
	seen := make(map[string]struct{}, len(specs))
	tables := make([]*Table, 0, len(specs))
	for _, s := range specs {
		if _, dup := seen[s.ID]; dup {
			return nil, ErrDuplicateTableID
		}
		seen[s.ID] = struct{}{}

		t, err := NewTable(s.ID, s.Capacity, s.Location)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}
