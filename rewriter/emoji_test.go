package rewriter

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEmojiCleanup(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"log with space", `console.log("🔐 Login Start");`, `console.log("Login Start");`},
		{"log with several spaces", `console.log("📧   Email:", email);`, `console.log("Email:", email);`},
		{"log bare", `console.log("✅Done");`, `console.log("Done");`},
		{"log emoji only", `console.log("❌", err);`, `console.log("", err);`},
		{"warn with space", `console.warn("⚠️ Login failed");`, `console.warn("Login failed");`},
		{"warn bare kept", `console.warn("⚠️Login failed");`, `console.warn("⚠️Login failed");`},
		{"error with space", `console.error("❌ Login failed");`, `console.error("Login failed");`},
		{"error bare kept", `console.error("❌", msg);`, `console.error("❌", msg);`},
		{"variation selector", `console.log("🗑️ removed");`, `console.log("removed");`},
		{"second emoji hit by bare pass", `console.log("🔐 🔑 x");`, `console.log(" x");`},
		{"unknown emoji", `console.log("🚀 launch");`, `console.log("🚀 launch");`},
		{"not leading", `console.log("x 🔐 y");`, `console.log("x 🔐 y");`},
		{"single quotes untouched", `console.log('🔐 x');`, `console.log('🔐 x');`},
		{"toast exempt", `showToast("✅ Login successful", "success");`, `showToast("✅ Login successful", "success");`},
		{"info untouched", `console.info("🔐 x");`, `console.info("🔐 x");`},
		{"log with no-break space", "console.log(\"🔐\u00a0y\");", `console.log("y");`},
		{"warn with ideographic space", "console.warn(\"⚠️\u3000x\");", `console.warn("x");`},
		{"error with tab", "console.error(\"❌\tboom\");", `console.error("boom");`},
		{"log with line separator", "console.log(\"📤\u2028z\");", `console.log("z");`},
	}
	rules := DefaultCleanup()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := ApplyEmojiCleanup(tc.in, rules)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplyEmojiCleanupStats(t *testing.T) {
	in := "console.log(\"🔐 a\");\nconsole.log(\"📝b\");\nconsole.warn(\"⚠️ c\");\nconsole.error(\"❌ d\");\nconsole.error(\"❌ e\");\n"
	out, stats := ApplyEmojiCleanup(in, DefaultCleanup())

	assert.Equal(t, "console.log(\"a\");\nconsole.log(\"b\");\nconsole.warn(\"c\");\nconsole.error(\"d\");\nconsole.error(\"e\");\n", out)
	assert.Equal(t, []RuleStat{
		{Rule: "console.log+space", Count: 1},
		{Rule: "console.log", Count: 1},
		{Rule: "console.warn+space", Count: 1},
		{Rule: "console.error+space", Count: 2},
	}, stats)
}

func TestWhitespaceRuleRunsBeforeBare(t *testing.T) {
	rules := DefaultCleanup()
	require.Len(t, rules, 4)
	assert.True(t, rules[0].StripSpace)
	assert.False(t, rules[1].StripSpace)
	assert.Equal(t, rules[0].Call, rules[1].Call)
}

func TestNewCleanupRuleRejectsExemptCall(t *testing.T) {
	_, err := NewCleanupRule("showToast", DefaultEmoji(), true)
	assert.True(t, errors.Is(err, ErrExemptCall))

	_, err = NewCleanupRule("window.showToast", DefaultEmoji(), false)
	assert.True(t, errors.Is(err, ErrExemptCall))
}

func TestNewCleanupRuleValidation(t *testing.T) {
	_, err := NewCleanupRule("", DefaultEmoji(), true)
	assert.True(t, errors.Is(err, ErrEmptyCall))

	_, err = NewCleanupRule("console.log", []string{"", " ", "\uFE0F"}, true)
	assert.True(t, errors.Is(err, ErrNoEmoji))
}

func TestCustomEmojiSet(t *testing.T) {
	rules, err := CleanupRules([]string{"🚀", "🚀"})
	require.NoError(t, err)

	got, _ := ApplyEmojiCleanup(`console.log("🚀 go"); console.log("🔐 keep");`, rules)
	assert.Equal(t, `console.log("go"); console.log("🔐 keep");`, got)
}

func TestDefaultEmojiIsCopy(t *testing.T) {
	e := DefaultEmoji()
	e[0] = "x"
	assert.Equal(t, "🔐", DefaultEmoji()[0])
}
