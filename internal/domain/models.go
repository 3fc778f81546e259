package domain

// Product represents one search result returned by the remote product
// endpoint. Immutable once received; identity is ID.
type Product struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Thumbnail string  `json:"thumbnail"`
	Price     float64 `json:"price"`
	Brand     string  `json:"brand"`
}

// QueryState is the UI-visible state derived from input and fetch
// outcomes. It is owned by the query service; everyone else reads
// snapshots.
type QueryState struct {
	InputText       string
	Results         []Product
	IsLoading       bool
	ErrorMessage    string // empty when the last fetch did not fail
	DropdownVisible bool
}
