package query

import (
	"context"
	"log"
	"sync"
	"time"

	"searchbox/internal/clock"
	"searchbox/internal/debounce"
	"searchbox/internal/domain"
	"searchbox/internal/eventbus"
)

// Service is the query controller: it owns the query state, debounces
// keystrokes into fetches, applies fetch outcomes, and handles
// selection and blur. Every transition publishes a StateChangedEvent
// snapshot on the bus; the presentation layer subscribes and re-renders
// from snapshots, never reaching into the service.
//
// Fetches are debounced but not cancelled once in flight. Instead each
// issued fetch carries a generation number and a completion whose
// generation is no longer current is discarded, so a slow early
// response can never overwrite a faster later one.
type Service struct {
	bus       eventbus.EventBus
	searcher  Searcher
	clock     clock.Clock
	debouncer *debounce.Debouncer
	blurGrace time.Duration

	mu          sync.Mutex
	state       domain.QueryState
	generation  uint64
	focusInside bool
	blurTimer   *clock.Timer
}

// NewService creates a query controller. The debouncer is created once
// here and lives as long as the service; recreating it per keystroke
// would discard the pending-timer state that debouncing depends on.
func NewService(bus eventbus.EventBus, searcher Searcher, c clock.Clock, debounceWait, blurGrace time.Duration) *Service {
	return &Service{
		bus:       bus,
		searcher:  searcher,
		clock:     c,
		debouncer: debounce.New(c, debounceWait),
		blurGrace: blurGrace,
	}
}

// State returns a snapshot of the current query state. The results
// slice is copied so callers cannot observe later mutations.
func (s *Service) State() domain.QueryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.state
	if s.state.Results != nil {
		snapshot.Results = make([]domain.Product, len(s.state.Results))
		copy(snapshot.Results, s.state.Results)
	}
	return snapshot
}

// OnInputChange replaces the input text, unconditionally. Non-empty
// text schedules a debounced fetch; empty text schedules nothing and
// discards any fetch still pending from earlier keystrokes.
func (s *Service) OnInputChange(text string) {
	s.mu.Lock()
	s.state.InputText = text
	s.publishStateLocked()
	s.mu.Unlock()

	if text == "" {
		s.debouncer.Cancel()
		return
	}
	s.debouncer.Call(func() { s.fetch(text) })
}

// OnResultSelect fills the input with the selected title, clears the
// results, and hides the dropdown. It ends the search session: any
// pending or in-flight fetch is superseded.
func (s *Service) OnResultSelect(title string) {
	s.debouncer.Cancel()

	s.mu.Lock()
	s.generation++
	s.state.InputText = title
	s.state.Results = nil
	s.state.DropdownVisible = false
	s.state.IsLoading = false
	s.bus.Publish(eventbus.ResultSelectedEvent{Title: title})
	s.publishStateLocked()
	s.mu.Unlock()
}

// OnInputBlur starts the blur grace timer. The dropdown hides when the
// timer expires unless focus has returned inside the widget by then —
// checked at expiry, not at blur time, so a click on a result gets a
// chance to land first.
func (s *Service) OnInputBlur() {
	s.mu.Lock()
	s.focusInside = false
	if s.blurTimer != nil {
		s.blurTimer.Stop()
	}
	s.blurTimer = s.clock.AfterFunc(s.blurGrace, s.confirmBlur)
	s.mu.Unlock()
}

// OnFocusGained records that focus is back inside the widget. A blur
// timer that expires after this call leaves the dropdown alone.
func (s *Service) OnFocusGained() {
	s.mu.Lock()
	s.focusInside = true
	s.mu.Unlock()
}

// fetch is the debounced target. It marks the fetch as issued and runs
// the request off the timer goroutine.
func (s *Service) fetch(query string) {
	if query == "" {
		// The input emptied between scheduling and firing.
		return
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state.IsLoading = true
	s.state.ErrorMessage = ""
	wasVisible := s.state.DropdownVisible
	s.state.DropdownVisible = false
	s.bus.Publish(eventbus.SearchStartedEvent{Query: query, Generation: gen})
	if wasVisible {
		s.bus.Publish(eventbus.DropdownHiddenEvent{Reason: "fetch"})
	}
	s.publishStateLocked()
	s.mu.Unlock()

	go s.complete(gen, query)
}

// complete resolves one issued fetch. Stale generations are dropped
// without touching state.
func (s *Service) complete(gen uint64, query string) {
	products, err := s.searcher.Search(context.Background(), query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		log.Printf("query: dropping stale response for %q (generation %d, now %d)", query, gen, s.generation)
		return
	}

	s.state.IsLoading = false
	if err != nil {
		log.Printf("query: fetch for %q failed: %v", query, err)
		s.state.ErrorMessage = ErrorText
		s.bus.Publish(eventbus.SearchFailedEvent{Query: query, Generation: gen, Err: err})
	} else {
		s.state.Results = products
		s.state.ErrorMessage = ""
		s.state.DropdownVisible = len(products) > 0
		s.bus.Publish(eventbus.SearchCompletedEvent{Query: query, Generation: gen, ResultCount: len(products)})
	}
	s.publishStateLocked()
}

// confirmBlur runs at blur-grace expiry.
func (s *Service) confirmBlur() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blurTimer = nil
	if s.focusInside {
		return
	}
	if !s.state.DropdownVisible {
		return
	}
	s.state.DropdownVisible = false
	s.bus.Publish(eventbus.DropdownHiddenEvent{Reason: "blur"})
	s.publishStateLocked()
}

// publishStateLocked publishes a state snapshot. Callers hold s.mu;
// bus publishing is non-blocking so this cannot deadlock.
func (s *Service) publishStateLocked() {
	snapshot := s.state
	if s.state.Results != nil {
		snapshot.Results = make([]domain.Product, len(s.state.Results))
		copy(snapshot.Results, s.state.Results)
	}
	s.bus.Publish(eventbus.StateChangedEvent{State: snapshot})
}
