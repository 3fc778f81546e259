//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// stubProduct mirrors the wire shape of the product search endpoint
type stubProduct struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Thumbnail string  `json:"thumbnail"`
	Price     float64 `json:"price"`
	Brand     string  `json:"brand"`
}

// catalog is the canned inventory served by the stub endpoint
var catalog = []stubProduct{
	{ID: 1, Title: "iPhone 9", Price: 549, Brand: "Apple"},
	{ID: 2, Title: "iPhone X", Price: 899, Brand: "Apple"},
	{ID: 3, Title: "Samsung Universe 9", Price: 1249, Brand: "Samsung"},
	{ID: 4, Title: "Infinix INBOOK", Price: 1099, Brand: "Infinix"},
	{ID: 5, Title: "Orange Essence Food Flavour", Price: 14, Brand: "Penbol"},
}

// requestLog records the queries the stub server received
type requestLog struct {
	mu      sync.Mutex
	queries []string
}

func (l *requestLog) add(q string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queries = append(l.queries, q)
}

// Count returns how many search requests arrived so far
func (l *requestLog) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queries)
}

// Last returns the most recent query, or "" if none arrived
func (l *requestLog) Last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queries) == 0 {
		return ""
	}
	return l.queries[len(l.queries)-1]
}

// newStubSearchServer serves a dummyjson-compatible product search API,
// matching titles by case-insensitive substring
func newStubSearchServer() (*httptest.Server, *requestLog) {
	log := &requestLog{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		log.add(q)

		matched := []stubProduct{}
		for _, p := range catalog {
			if strings.Contains(strings.ToLower(p.Title), strings.ToLower(q)) {
				matched = append(matched, p)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"products": matched,
			"total":    len(matched),
		})
	}))
	return server, log
}

// newFailingSearchServer answers every request with HTTP 500
func newFailingSearchServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
}
