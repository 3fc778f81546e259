package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventResultSelected  EventType = "ResultSelected"
	EventDropdownHidden  EventType = "DropdownHidden"
	EventStateChanged    EventType = "StateChanged"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a debounced fetch is issued
type SearchStartedEvent struct {
	Query      string
	Generation uint64
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a fetch resolves successfully
// and its results are applied
type SearchCompletedEvent struct {
	Query       string
	Generation  uint64
	ResultCount int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a fetch fails (network error,
// non-2xx status, or unparseable body)
type SearchFailedEvent struct {
	Query      string
	Generation uint64
	Err        error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// ResultSelectedEvent is emitted when the user selects a result,
// ending the search session
type ResultSelectedEvent struct {
	Title string
}

func (e ResultSelectedEvent) Type() EventType { return EventResultSelected }

// DropdownHiddenEvent is emitted when the dropdown transitions to
// hidden outside of a selection (blur confirmation or a new fetch)
type DropdownHiddenEvent struct {
	Reason string // "blur" or "fetch"
}

func (e DropdownHiddenEvent) Type() EventType { return EventDropdownHidden }

// StateChangedEvent carries a snapshot of the query state after any
// transition. The presentation layer subscribes to this to re-render.
type StateChangedEvent struct {
	State QueryState
}

func (e StateChangedEvent) Type() EventType { return EventStateChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	SearchURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
