package query

import (
	"context"

	"searchbox/internal/domain"
)

// Searcher issues one query against the remote product endpoint.
// *search.Client satisfies this; tests substitute fakes.
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.Product, error)
}

// ErrorText is the fixed user-facing message set for any failed fetch.
// Network failures, non-2xx statuses, and parse errors are deliberately
// not distinguished for the user.
const ErrorText = "Something went wrong. Please try again."
