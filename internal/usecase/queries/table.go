package queries

//go:generate mockgen -source=table.go -destination=../../../tests/mock/queries/table.go -package=queriesmock

import (
	"context"

	"table-booking/internal/domain/table"
)

type TableReadStore interface {
	List() []*table.Table
}

type TableQueries interface {
	List(ctx context.Context) []*TableView
}

type tableQueriesImpl struct {
	store TableReadStore
}

func NewTableQueries(store TableReadStore) TableQueries {
	return &tableQueriesImpl{store: store}
}

func (q *tableQueriesImpl) List(_ context.Context) []*TableView {
	tables := q.store.List()
	views := make([]*TableView, len(tables))
	for i, t := range tables {
		views[i] = ToTableView(t)
	}
	return views
}
