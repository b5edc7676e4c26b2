package domain

import "github.com/google/uuid"

// GlobalPageType is the wildcard page type. As a request argument it turns
// page targeting off; as a stored target it matches every page.
const GlobalPageType = "global"

// PageTarget scopes an advertisement to a page type and, optionally, one
// page of that type. A nil PageIdentifier matches every page of the type.
type PageTarget struct {
	ID              uuid.UUID
	AdvertisementID uuid.UUID
	PageType        string
	PageIdentifier  *string
}

// Matches reports whether the rule admits the page. A stored global rule
// admits any page even when the request is scoped.
func (t PageTarget) Matches(pageType string, pageID *string) bool {
	if t.PageType == GlobalPageType {
		return true
	}
	if t.PageType != pageType {
		return false
	}
	if t.PageIdentifier == nil {
		return true
	}
	return pageID != nil && *pageID == *t.PageIdentifier
}
