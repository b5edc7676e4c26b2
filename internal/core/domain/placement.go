package domain

import "time"

// AdQuery asks for the best ad for one slot on one page at one instant.
type AdQuery struct {
	Position       Position
	PageType       string
	PageIdentifier *string
	At             time.Time
}

// Normalize applies the request defaults: an empty page type becomes
// GlobalPageType, and the page identifier is dropped for global requests
// because it carries no meaning there.
func (q AdQuery) Normalize() AdQuery {
	if q.PageType == "" {
		q.PageType = GlobalPageType
	}
	if q.PageType == GlobalPageType {
		q.PageIdentifier = nil
	}
	return q
}

// Scoped reports whether page targeting applies to the query.
func (q AdQuery) Scoped() bool {
	return q.PageType != "" && q.PageType != GlobalPageType
}

// SelectAd picks the ad to serve from a snapshot of candidates. Every rule
// is applied here regardless of any filtering done by storage: matching
// position, eligibility at q.At and page targeting. Survivors are ranked by
// Priority, then by the newest CreatedAt. It returns nil when nothing
// qualifies and never mutates candidates.
func SelectAd(candidates []Advertisement, q AdQuery) *Advertisement {
	q = q.Normalize()

	var best *Advertisement
	for i := range candidates {
		c := &candidates[i]
		if c.Position != q.Position || !c.EligibleAt(q.At) || !c.TargetsPage(q.PageType, q.PageIdentifier) {
			continue
		}
		if best == nil || outranks(c, best) {
			best = c
		}
	}
	if best == nil {
		return nil
	}
	chosen := *best
	return &chosen
}

func outranks(a, b *Advertisement) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.CreatedAt.After(b.CreatedAt)
}
