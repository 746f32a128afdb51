package rewriter

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrDuplicateKey = errors.New("duplicate replacement key")
	ErrEmptyKey     = errors.New("empty replacement key")
)

// Table is an ordered, immutable replacement table.
type Table struct {
	entries []Entry
}

// NewTable copies entries into a Table. Keys must be non-empty and unique.
func NewTable(entries []Entry) (*Table, error) {
	seen := make(map[string]int, len(entries))
	cp := make([]Entry, 0, len(entries))
	for i, e := range entries {
		if e.From == "" {
			return nil, errors.Wrapf(ErrEmptyKey, "entry %d", i)
		}
		if j, ok := seen[e.From]; ok {
			return nil, errors.Wrapf(ErrDuplicateKey, "%q at entries %d and %d", e.From, j, i)
		}
		seen[e.From] = i
		cp = append(cp, e)
	}
	return &Table{entries: cp}, nil
}

// DefaultTable returns the built-in Chinese to English table for auth.js.
func DefaultTable() *Table {
	t, err := NewTable(defaultEntries)
	if err != nil {
		panic(err)
	}
	return t
}

// Entries returns a copy of the table's entries in application order.
func (t *Table) Entries() []Entry {
	cp := make([]Entry, len(t.entries))
	copy(cp, t.entries)
	return cp
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the replacement for an exact key.
func (t *Table) Lookup(from string) (string, bool) {
	for _, e := range t.entries {
		if e.From == from {
			return e.To, true
		}
	}
	return "", false
}

// LintKind classifies an ordering hazard in a table.
type LintKind string

const (
	// LintShadowed means an earlier key is a substring of this key, so the
	// earlier replacement breaks this one up before it can match.
	LintShadowed LintKind = "shadowed"
	// LintCollision means this key occurs inside an earlier entry's value and
	// would rewrite text the table itself produced.
	LintCollision LintKind = "collision"
)

// LintFinding is one ordering hazard between two table entries.
type LintFinding struct {
	Kind    LintKind `json:"kind"`
	Index   int      `json:"index"`
	Entry   Entry    `json:"entry"`
	Earlier int      `json:"earlier"`
	With    Entry    `json:"with"`
}

// Lint reports ordering hazards. ApplyLiteralReplacements does not consult it.
func (t *Table) Lint() []LintFinding {
	var out []LintFinding
	for j, later := range t.entries {
		for i := 0; i < j; i++ {
			earlier := t.entries[i]
			if strings.Contains(later.From, earlier.From) {
				out = append(out, LintFinding{Kind: LintShadowed, Index: j, Entry: later, Earlier: i, With: earlier})
			}
			if strings.Contains(earlier.To, later.From) {
				out = append(out, LintFinding{Kind: LintCollision, Index: j, Entry: later, Earlier: i, With: earlier})
			}
		}
	}
	return out
}
