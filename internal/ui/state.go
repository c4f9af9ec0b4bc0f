// Package ui models the search page as explicit state. User actions arrive
// as Events and Reduce folds them into a new State; rendering is a separate
// projection of that State (see package render).
package ui

import (
	"strings"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
	"github.com/Abdullahever182/travel-recomend/internal/service"
)

// Page identifies a navigation target.
type Page string

const (
	PageHome    Page = "home"
	PageAbout   Page = "about"
	PageContact Page = "contact"
)

// Pages lists the navigation targets in navbar order.
var Pages = []Page{PageHome, PageAbout, PageContact}

// ParsePage maps a navigation link value to a Page.
// Unknown or empty values fall back to PageHome.
func ParsePage(s string) Page {
	switch p := Page(strings.ToLower(strings.TrimSpace(s))); p {
	case PageAbout, PageContact:
		return p
	default:
		return PageHome
	}
}

// Flash messages shown after a contact form submission.
const (
	ContactThanks     = "Thanks! Your message has been submitted."
	ContactIncomplete = "Please fill in every field."
)

// Contact holds the contact form fields.
type Contact struct {
	Name    string
	Email   string
	Message string
}

func (c Contact) complete() bool {
	return strings.TrimSpace(c.Name) != "" &&
		strings.TrimSpace(c.Email) != "" &&
		strings.TrimSpace(c.Message) != ""
}

// State is everything the page shows.
type State struct {
	Page    Page
	Query   string
	Hint    string
	Outcome domain.Outcome // empty until the first search
	Results []domain.Place
	Flash   string
	Contact Contact
	Dataset domain.CatalogState // last reported catalog state
}

// SearchVisible reports whether the search area is shown.
// It is only visible on the home page.
func (s State) SearchVisible() bool {
	return s.Page == PageHome
}

// Initial returns the state of a freshly opened page.
func Initial() State {
	return State{Page: PageHome, Hint: service.DefaultHint, Results: []domain.Place{}}
}

// Event is a user action or a dataset notification. The concrete events are
// Search, Reset, NavigateTo, SubmitContact and DatasetState.
type Event interface {
	event()
}

// Search runs a keyword search with the text typed by the user.
type Search struct{ Text string }

// Reset clears the search field and the results.
type Reset struct{}

// NavigateTo switches the visible page.
type NavigateTo struct{ Page Page }

// SubmitContact sends the contact form.
type SubmitContact struct{ Contact Contact }

// DatasetState reports the catalog lifecycle state. A failed load replaces
// the idle hint with the failure hint until a search result overrides it.
type DatasetState struct{ State domain.CatalogState }

func (Search) event()        {}
func (Reset) event()         {}
func (NavigateTo) event()    {}
func (SubmitContact) event() {}
func (DatasetState) event()  {}

// Searcher resolves raw search text. *service.SearchService implements it.
type Searcher interface {
	Search(raw string) domain.SearchResult
}

// Reduce applies ev to s and returns the resulting state. s is not modified.
// searcher is only consulted for Search events.
func Reduce(s State, ev Event, searcher Searcher) State {
	next := s
	next.Flash = ""

	switch e := ev.(type) {
	case Search:
		res := searcher.Search(e.Text)
		next.Query = e.Text
		next.Hint = res.Hint
		next.Outcome = res.Outcome
		next.Results = res.Places
		if res.Outcome != domain.OutcomeResults {
			next.Results = []domain.Place{}
		}
	case Reset:
		next.Query = ""
		next.Hint = idleHint(next.Dataset)
		next.Outcome = ""
		next.Results = []domain.Place{}
	case NavigateTo:
		next.Page = ParsePage(string(e.Page))
	case SubmitContact:
		if e.Contact.complete() {
			next.Flash = ContactThanks
			next.Contact = Contact{}
		} else {
			next.Flash = ContactIncomplete
			next.Contact = e.Contact
		}
	case DatasetState:
		next.Dataset = e.State
		if next.Outcome == "" {
			next.Hint = idleHint(e.State)
		}
	}

	return next
}

// idleHint is the hint shown when no search result is on screen.
func idleHint(st domain.CatalogState) string {
	if st == domain.CatalogFailed {
		return service.LoadFailedHint
	}
	return service.DefaultHint
}
