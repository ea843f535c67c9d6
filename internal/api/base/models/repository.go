// Package models holds the types shared by every repository: paging,
// list envelopes and reference lookups.
package models

const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
	MaxLimit     int64 = 100
)

// PaginateResult is the envelope every list endpoint returns.
type PaginateResult[T any] struct {
	Items     []T   `json:"items" bson:"items"`
	Total     int64 `json:"total" bson:"total"`
	Page      int64 `json:"page" bson:"page"`
	Limit     int64 `json:"limit" bson:"limit"`
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// NewPaginateResult fills TotalPage and guarantees a non-nil Items slice.
func NewPaginateResult[T any](items []T, total, page, limit int64) *PaginateResult[T] {
	if items == nil {
		items = []T{}
	}
	var totalPage int64
	if total > 0 && limit > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return &PaginateResult[T]{
		Items:     items,
		Total:     total,
		Page:      page,
		Limit:     limit,
		TotalPage: totalPage,
	}
}

// FetchQuery is the parsed query string of a /fetch request. Params holds
// every other query parameter for entity-specific filters.
type FetchQuery struct {
	Search string
	Page   int64
	Limit  int64
	Params map[string]string
}

// Normalize clamps paging: page<1 -> 1, limit<=0 -> 10, limit>100 -> 100.
func (q FetchQuery) Normalize() FetchQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Skip is the number of documents before the requested page.
func (q FetchQuery) Skip() int64 {
	q = q.Normalize()
	return (q.Page - 1) * q.Limit
}

// Lookup expands Field (an ObjectID, or an array of them when Many) into
// the referenced document(s) of collection From.
type Lookup struct {
	Field string
	From  string
	Many  bool
}

// FetchSpec describes how an entity is listed.
type FetchSpec struct {
	SearchFields []string
	Lookups      []Lookup
	// query parameter -> ObjectID field, e.g. "bill_id" -> "bill_id"
	IDFilters map[string]string
}

// DeleteResult is the body of a successful delete.
type DeleteResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
