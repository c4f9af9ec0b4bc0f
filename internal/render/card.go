// Package render projects search results into presentable form: result
// cards for the JSON API and a full HTML page for the browser UI.
package render

import (
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host's zoneinfo

	"github.com/Abdullahever182/travel-recomend/internal/domain"
)

// TimeUnavailable replaces the local time when a zone cannot be resolved.
const TimeUnavailable = "Unavailable"

// localTimeLayout matches en-US 12-hour time with seconds, e.g. "3:04:05 PM".
const localTimeLayout = "3:04:05 PM"

// Card is one rendered destination.
// LocalTime is empty when the place has no time zone.
type Card struct {
	ImageURL    string
	ImageAlt    string
	Title       string
	Description string
	LocalTime   string
}

// Renderer turns a bounded list of places into cards, one per place.
type Renderer interface {
	Render(items []domain.Place) []Card
}

// CardRenderer is the Renderer used by the HTTP handlers.
type CardRenderer struct {
	now func() time.Time
}

// NewCardRenderer returns a CardRenderer reading the clock from now.
// A nil now uses time.Now.
func NewCardRenderer(now func() time.Time) *CardRenderer {
	if now == nil {
		now = time.Now
	}
	return &CardRenderer{now: now}
}

// Render builds one card per item, preserving order. All cards share a
// single clock reading so their local times are consistent.
func (r *CardRenderer) Render(items []domain.Place) []Card {
	at := r.now()
	cards := make([]Card, len(items))
	for i, p := range items {
		cards[i] = Card{
			ImageURL:    p.ImageURL,
			ImageAlt:    p.Name,
			Title:       p.Name,
			Description: p.Description,
		}
		if p.TimeZone != "" {
			cards[i].LocalTime = LocalTime(p.TimeZone, at)
		}
	}
	return cards
}

// LocalTime formats at in the named IANA zone. Unknown or malformed zone
// names yield TimeUnavailable; it never fails.
func LocalTime(zone string, at time.Time) string {
	if zone == "" || zone == "Local" {
		return TimeUnavailable
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return TimeUnavailable
	}
	return at.In(loc).Format(localTimeLayout)
}
