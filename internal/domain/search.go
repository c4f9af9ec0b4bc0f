package domain

// Outcome classifies what a search produced.
type Outcome string

const (
	OutcomeResults    Outcome = "results"
	OutcomeEmptyInput Outcome = "empty_input"
	OutcomeNoResults  Outcome = "no_results"
	OutcomeLoading    Outcome = "loading"
	OutcomeLoadFailed Outcome = "load_failed"
)

// SearchResult is everything a caller needs to present a search:
// the normalized keyword, the outcome, the hint text, and at most
// MaxResults places. Places is empty for every outcome except OutcomeResults.
type SearchResult struct {
	Keyword Keyword
	Outcome Outcome
	Hint    string
	Places  []Place
}

// CatalogState is the lifecycle state of the loaded dataset.
type CatalogState string

const (
	CatalogLoading CatalogState = "loading"
	CatalogLoaded  CatalogState = "loaded"
	CatalogFailed  CatalogState = "failed"
)

// CatalogStatus describes the dataset for health reporting.
// Snapshot is only meaningful when State is CatalogLoaded.
type CatalogStatus struct {
	State    CatalogState
	Snapshot Snapshot
	Err      error
}
