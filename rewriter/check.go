package rewriter

import (
	"strings"
	"unicode"
)

// ResidualLine is a line that still holds Han characters after both passes.
type ResidualLine struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// Report is the outcome of a read-only check of one buffer.
type Report struct {
	Path     string         `json:"path,omitempty"`
	Hits     []EntryStat    `json:"hits"`
	Emoji    []RuleStat     `json:"emoji"`
	Residual []ResidualLine `json:"residual"`
	Lint     []LintFinding  `json:"lint"`
}

// Clean reports whether nothing is left to translate and the table has no hazards.
func (r Report) Clean() bool {
	return len(r.Residual) == 0 && len(r.Lint) == 0
}

// Check runs both passes over content in memory and reports what they would
// do and what they would leave behind.
func Check(content string, rs *Ruleset) Report {
	out, stats := Rewrite(content, rs.Table, rs.Rules)

	rep := Report{
		Hits:     []EntryStat{},
		Emoji:    []RuleStat{},
		Residual: ResidualHan(out),
		Lint:     rs.Table.Lint(),
	}
	for _, st := range stats.Literal {
		if st.Count > 0 {
			rep.Hits = append(rep.Hits, st)
		}
	}
	for _, st := range stats.Emoji {
		if st.Count > 0 {
			rep.Emoji = append(rep.Emoji, st)
		}
	}
	if rep.Lint == nil {
		rep.Lint = []LintFinding{}
	}
	return rep
}

// ResidualHan returns the 1-based lines of content that contain Han characters.
func ResidualHan(content string) []ResidualLine {
	out := []ResidualLine{}
	for i, line := range strings.Split(content, "\n") {
		if strings.IndexFunc(line, isHan) >= 0 {
			out = append(out, ResidualLine{Line: i + 1, Text: strings.TrimSpace(line)})
		}
	}
	return out
}

func isHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}
