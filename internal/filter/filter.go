// Package filter computes the visible subset of a category's records.
//
// Filtering is pure: Apply never mutates or reorders its input and always
// returns the full matching set. Truncation for list rendering is a separate
// step so match counts stay exact.
package filter

import "strings"

// All is the sentinel that disables a status or type filter.
const All = "all"

// DefaultListLimit is how many matches a sidebar list renders.
const DefaultListLimit = 8

// Criteria - active search and filter selection of one category
type Criteria struct {
	SearchTerm string `json:"search_term"`
	Status     string `json:"status"`
	Type       string `json:"type"`
}

// DefaultCriteria matches everything.
func DefaultCriteria() Criteria {
	return Criteria{Status: All, Type: All}
}

// Normalize maps empty filter values onto All.
func (c Criteria) Normalize() Criteria {
	if c.Status == "" {
		c.Status = All
	}
	if c.Type == "" {
		c.Type = All
	}
	return c
}

// IsDefault reports whether c filters nothing out.
func (c Criteria) IsDefault() bool {
	n := c.Normalize()
	return strings.TrimSpace(n.SearchTerm) == "" && n.Status == All && n.Type == All
}

// Record is what the engine needs from an entity.
type Record interface {
	SearchText() string
	StatusValue() string
	HasType(t string) bool
	TypeValues() []string
}

// Apply returns the records matching every active criterion, in input order.
func Apply[T Record](records []T, c Criteria) []T {
	if records == nil {
		return nil
	}
	m := newMatcher(c)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single record passes c.
func Matches(r Record, c Criteria) bool {
	return newMatcher(c).match(r)
}

// Truncate caps items at limit for rendering. limit <= 0 means no cap.
func Truncate[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return items[:limit]
}

type matcher struct {
	term   string
	status string
	typ    string
}

func newMatcher(c Criteria) matcher {
	c = c.Normalize()
	return matcher{
		term:   strings.ToLower(strings.TrimSpace(c.SearchTerm)),
		status: c.Status,
		typ:    c.Type,
	}
}

func (m matcher) match(r Record) bool {
	if m.term != "" && !strings.Contains(strings.ToLower(r.SearchText()), m.term) {
		return false
	}
	if m.status != All && r.StatusValue() != m.status {
		return false
	}
	if m.typ != All && !r.HasType(m.typ) {
		return false
	}
	return true
}
