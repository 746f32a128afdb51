package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xishang0128/textfix/common/file"
	"github.com/xishang0128/textfix/common/i18n"
	"github.com/xishang0128/textfix/rewriter"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.English)
	os.Exit(m.Run())
}

func TestTargets(t *testing.T) {
	assert.Equal(t, []string{"src/js/auth.js"}, targets(nil))
	assert.Equal(t, []string{"a.js", "b.js"}, targets([]string{"a.js", "b.js"}))
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"rewrite", "check", "table", "restore", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
	for _, flag := range []string{"dry-run", "no-backup", "backup-format", "interactive"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(flag), flag)
	}
}

func TestWithHint(t *testing.T) {
	_, err := file.Load(filepath.Join(t.TempDir(), "missing.js"))
	require.Error(t, err)

	msg := withHint(err)
	assert.Contains(t, msg, "missing.js")
	assert.Contains(t, msg, "HINT: "+i18n.I18nMsg.Common.HintFileNotFound)

	plain := withHint(errors.New("boom"))
	assert.Equal(t, "boom", plain)
}

func TestHintFor(t *testing.T) {
	assert.Equal(t, i18n.I18nMsg.Common.HintDecode, hintFor(errors.Wrap(file.ErrDecode, "x")))
	assert.Equal(t, i18n.I18nMsg.Common.HintWrite, hintFor(errors.Mark(errors.New("disk full"), file.ErrWrite)))
	assert.Empty(t, hintFor(errors.New("other")))
}

func TestWriteResult(t *testing.T) {
	cases := []struct {
		name   string
		res    rewriter.Result
		dryRun bool
		want   string
	}{
		{
			name: "backup created",
			res:  rewriter.Result{Path: "auth.js", Stats: rewriter.Stats{Changed: true}, Stored: true, BackupPath: "auth.js.backup", BackupCreated: true},
			want: "✅ Fixed Chinese characters in auth.js\n📝 Backup saved as auth.js.backup\n",
		},
		{
			name: "backup kept",
			res:  rewriter.Result{Path: "auth.js", Stats: rewriter.Stats{Changed: true}, Stored: true, BackupPath: "auth.js.backup"},
			want: "✅ Fixed Chinese characters in auth.js\n📝 Existing backup kept: auth.js.backup\n",
		},
		{
			name: "no backup",
			res:  rewriter.Result{Path: "auth.js", Stats: rewriter.Stats{Changed: true}, Stored: true},
			want: "✅ Fixed Chinese characters in auth.js\n",
		},
		{
			name: "unchanged",
			res:  rewriter.Result{Path: "auth.js"},
			want: "auth.js: no changes\n",
		},
		{
			name:   "dry run",
			res:    rewriter.Result{Path: "auth.js", Stats: rewriter.Stats{Changed: true, Literal: []rewriter.EntryStat{{Count: 3}}, Emoji: []rewriter.RuleStat{{Count: 2}}}},
			dryRun: true,
			want:   "auth.js: 3 replacements, 2 emoji removed (dry run)\n",
		},
		{
			name: "declined",
			res:  rewriter.Result{Path: "auth.js", Stats: rewriter.Stats{Changed: true}, Declined: true},
			want: "auth.js: skipped\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			res := tc.res
			writeResult(&buf, &res, tc.dryRun)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestWriteReport(t *testing.T) {
	rep := rewriter.Check("console.log(\"🔐 开始登录\");\n// 会话信息\n", rewriter.DefaultRuleset())
	rep.Path = "auth.js"

	var buf bytes.Buffer
	writeReport(&buf, rep)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "== auth.js\n"))
	assert.Contains(t, out, "Replacements (1):")
	assert.Contains(t, out, "开始登录 → Login Start")
	assert.Contains(t, out, "Emoji removals (1):")
	assert.Contains(t, out, "Lines still containing Chinese text (1):")
	assert.Contains(t, out, "2: // 会话信息")
	assert.NotContains(t, out, "Table hazards")
}

func TestWriteReportLint(t *testing.T) {
	table, err := rewriter.NewTable([]rewriter.Entry{{From: "注册", To: "Register"}, {From: "注册中", To: "Registering"}})
	require.NoError(t, err)
	rep := rewriter.Check("", &rewriter.Ruleset{Table: table, Rules: rewriter.DefaultCleanup()})

	var buf bytes.Buffer
	writeReport(&buf, rep)
	assert.Contains(t, buf.String(), `entry #2 "注册中" is shadowed by earlier entry #1 "注册"`)
	assert.Contains(t, buf.String(), "No Chinese text left.")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	writeTable(&buf, rewriter.DefaultRuleset())
	out := buf.String()

	assert.Contains(t, out, "  1. 用户登录（密码登录） → User login (password)\n")
	assert.Contains(t, out, "Total 80 entries\n")
	assert.Contains(t, out, "Emoji: 🔐 📧")
}
