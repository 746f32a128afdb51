package rewriter

import "strings"

// ApplyLiteralReplacements replaces every non-overlapping occurrence of each
// key with its value, entry by entry in table order. Later entries see the
// output of earlier ones, so table order matters; see Table.Lint.
func ApplyLiteralReplacements(content string, t *Table) (string, []EntryStat) {
	stats := make([]EntryStat, 0, t.Len())
	for _, e := range t.entries {
		n := strings.Count(content, e.From)
		if n > 0 {
			content = strings.ReplaceAll(content, e.From, e.To)
		}
		stats = append(stats, EntryStat{Entry: e, Count: n})
	}
	return content, stats
}
