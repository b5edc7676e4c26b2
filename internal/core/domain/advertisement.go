package domain

import (
	"time"

	"github.com/google/uuid"
)

// Position is a named ad slot on a page.
type Position string

const (
	PositionHeader           Position = "header"
	PositionFooter           Position = "footer"
	PositionInArticle        Position = "in-article"
	PositionBeforeContent    Position = "before-content"
	PositionAfterContent     Position = "after-content"
	PositionHomepageFeatured Position = "homepage-featured"
	PositionCategoryTop      Position = "category-top"
)

// Positions lists every slot in display order.
var Positions = []Position{
	PositionHeader,
	PositionFooter,
	PositionInArticle,
	PositionBeforeContent,
	PositionAfterContent,
	PositionHomepageFeatured,
	PositionCategoryTop,
}

// Valid reports whether p is one of the known slots.
func (p Position) Valid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

// Advertisement is a creative scheduled into one slot. A nil EndDate means
// the ad runs indefinitely. Impressions and Clicks are lifetime counters
// maintained by storage.
type Advertisement struct {
	ID          uuid.UUID
	Name        string
	Description string
	ImageURL    string
	HTMLContent string
	TargetURL   string
	Position    Position
	Priority    int
	IsActive    bool
	StartDate   time.Time
	EndDate     *time.Time
	Impressions int64
	Clicks      int64
	Targets     []PageTarget
	ZoneIDs     []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EligibleAt reports whether the ad may be served at t: it must be active
// and t must fall inside [StartDate, EndDate].
func (a *Advertisement) EligibleAt(t time.Time) bool {
	if !a.IsActive || t.Before(a.StartDate) {
		return false
	}
	return a.EndDate == nil || !t.After(*a.EndDate)
}

// TargetsPage reports whether the ad may appear on the given page. A global
// page type matches every ad regardless of its targets. For a scoped page
// type at least one target must match; an ad without targets only shows on
// global requests.
func (a *Advertisement) TargetsPage(pageType string, pageID *string) bool {
	if pageType == GlobalPageType {
		return true
	}
	for _, t := range a.Targets {
		if t.Matches(pageType, pageID) {
			return true
		}
	}
	return false
}

// Zone groups advertisements for delivery. It plays no part in selection.
type Zone struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}
