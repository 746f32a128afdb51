package rewriter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// ExemptCall is the call kind whose emoji prefixes stay: they are shown to
// the user on purpose.
const ExemptCall = "showToast"

const variationSelector = "\uFE0F"

// unicodeSpace matches a run of Unicode whitespace, the U+001C..U+001F
// separators included. RE2's \s alone is ASCII-only and would leave
// U+00A0 or U+3000 after a removed emoji.
const unicodeSpace = `[\s\v\x{1C}-\x{1F}\x{85}\p{Z}]+`

var (
	ErrExemptCall = errors.New("call kind is exempt from emoji cleanup")
	ErrNoEmoji    = errors.New("empty emoji set")
	ErrEmptyCall  = errors.New("empty call name")
)

var defaultEmoji = []string{
	"🔐", "📧", "🔑", "⏳", "❌", "✅", "📱", "🚪", "👤",
	"📝", "💾", "🗑️", "⚠️", "🔍", "📤", "💡", "⏰",
}

// DefaultEmoji returns the emoji recognised as removable log prefixes.
func DefaultEmoji() []string {
	cp := make([]string, len(defaultEmoji))
	copy(cp, defaultEmoji)
	return cp
}

// CleanupRule removes a leading emoji from the first string argument of one
// call kind, e.g. console.log("🔐 x") -> console.log("x").
type CleanupRule struct {
	Name string
	Call string
	// StripSpace also removes the whitespace after the emoji and then
	// requires at least one whitespace character to match.
	StripSpace bool

	pattern     *regexp.Regexp
	replacement string
}

// NewCleanupRule compiles a rule for call. Each emoji matches with or
// without a trailing U+FE0F, so "⚠️" and "⚠" are both removed whole.
func NewCleanupRule(call string, emoji []string, stripSpace bool) (CleanupRule, error) {
	if call == "" {
		return CleanupRule{}, ErrEmptyCall
	}
	if call == ExemptCall || strings.HasSuffix(call, "."+ExemptCall) {
		return CleanupRule{}, errors.Wrapf(ErrExemptCall, "%s", call)
	}

	alt := emojiAlternation(emoji)
	if alt == "" {
		return CleanupRule{}, errors.Wrapf(ErrNoEmoji, "%s", call)
	}

	expr := regexp.QuoteMeta(call) + `\("(?:` + alt + `)` + `\x{FE0F}?`
	name := call
	if stripSpace {
		expr += unicodeSpace
		name += "+space"
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return CleanupRule{}, errors.Wrapf(err, "compile rule %s", name)
	}
	return CleanupRule{
		Name:        name,
		Call:        call,
		StripSpace:  stripSpace,
		pattern:     re,
		replacement: call + `("`,
	}, nil
}

func emojiAlternation(emoji []string) string {
	seen := make(map[string]bool, len(emoji))
	parts := make([]string, 0, len(emoji))
	for _, e := range emoji {
		e = strings.TrimSpace(strings.ReplaceAll(e, variationSelector, ""))
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		parts = append(parts, regexp.QuoteMeta(e))
	}
	// longest first so multi-rune sequences win over their prefixes
	sort.SliceStable(parts, func(i, j int) bool { return len(parts[i]) > len(parts[j]) })
	return strings.Join(parts, "|")
}

// Apply rewrites every match in content and reports how many there were.
func (r CleanupRule) Apply(content string) (string, int) {
	if r.pattern == nil {
		return content, 0
	}
	n := len(r.pattern.FindAllStringIndex(content, -1))
	if n == 0 {
		return content, 0
	}
	return r.pattern.ReplaceAllLiteralString(content, r.replacement), n
}

// CleanupRules builds the four passes over the given emoji set, in the order
// they must run: console.log with whitespace, bare console.log, console.warn
// with whitespace, console.error with whitespace.
func CleanupRules(emoji []string) ([]CleanupRule, error) {
	specs := []struct {
		call  string
		space bool
	}{
		{"console.log", true},
		{"console.log", false},
		{"console.warn", true},
		{"console.error", true},
	}
	rules := make([]CleanupRule, 0, len(specs))
	for _, s := range specs {
		r, err := NewCleanupRule(s.call, emoji, s.space)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// DefaultCleanup returns CleanupRules over DefaultEmoji.
func DefaultCleanup() []CleanupRule {
	rules, err := CleanupRules(defaultEmoji)
	if err != nil {
		panic(err)
	}
	return rules
}

// ApplyEmojiCleanup runs rules over content in order.
func ApplyEmojiCleanup(content string, rules []CleanupRule) (string, []RuleStat) {
	stats := make([]RuleStat, 0, len(rules))
	for _, r := range rules {
		var n int
		content, n = r.Apply(content)
		stats = append(stats, RuleStat{Rule: r.Name, Count: n})
	}
	return content, stats
}
