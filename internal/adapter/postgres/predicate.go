package postgres

import (
	"strconv"
	"strings"
	"time"

	"newsdesk/internal/core/domain"
)

// predicate is a fragment of a WHERE clause with "?" placeholders and the
// arguments bound to them, in order. Predicates compose with and/or and are
// numbered for PostgreSQL by rebind once the full statement is assembled.
type predicate struct {
	sql  string
	args []any
}

func cond(sql string, args ...any) predicate {
	return predicate{sql: sql, args: args}
}

func (p predicate) empty() bool { return p.sql == "" }

// and joins the non-empty predicates. AND binds tighter than OR, so the
// operands need no parentheses.
func and(ps ...predicate) predicate {
	return join(" AND ", false, ps)
}

// or joins the non-empty predicates inside parentheses.
func or(ps ...predicate) predicate {
	return join(" OR ", true, ps)
}

func join(op string, wrap bool, ps []predicate) predicate {
	parts := make([]string, 0, len(ps))
	var args []any
	for _, p := range ps {
		if p.empty() {
			continue
		}
		parts = append(parts, p.sql)
		args = append(args, p.args...)
	}
	switch len(parts) {
	case 0:
		return predicate{}
	case 1:
		return predicate{sql: parts[0], args: args}
	}
	sql := strings.Join(parts, op)
	if wrap {
		sql = "(" + sql + ")"
	}
	return predicate{sql: sql, args: args}
}

// whereClause renders p as a WHERE clause, or nothing when p is empty.
func whereClause(p predicate) string {
	if p.empty() {
		return ""
	}
	return " WHERE " + p.sql
}

// rebind numbers "?" placeholders as $1, $2, ... in order of appearance.
// Statements built here never contain a literal question mark.
func rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

func positionIs(p domain.Position) predicate {
	return cond("a.position = ?", string(p))
}

func isActive(active bool) predicate {
	return cond("a.is_active = ?", active)
}

// inWindow admits ads whose [start_date, end_date] contains at. A NULL end
// date is open ended.
func inWindow(at time.Time) predicate {
	return and(
		cond("a.start_date <= ?", at),
		or(cond("a.end_date IS NULL"), cond("a.end_date >= ?", at)),
	)
}

// targetsPage admits ads with at least one target matching the page: the
// exact identifier, any page of the type, or a stored global target.
func targetsPage(pageType string, pageID *string) predicate {
	match := or(
		cond("t.page_type = ?", domain.GlobalPageType),
		and(cond("t.page_type = ?", pageType), cond("t.page_identifier IS NULL")),
	)
	if pageID != nil {
		match = or(match, and(cond("t.page_type = ?", pageType), cond("t.page_identifier = ?", *pageID)))
	}
	return predicate{
		sql:  "EXISTS (SELECT 1 FROM ad_page_targets t WHERE t.advertisement_id = a.id AND " + match.sql + ")",
		args: match.args,
	}
}

func statusIs(s domain.ArticleStatus) predicate {
	return cond("status = ?", string(s))
}

func scheduledBy(now time.Time) predicate {
	return cond("scheduled_at <= ?", now)
}
