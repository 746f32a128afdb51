package i18n

// CheckMessages holds check command translatable strings
type CheckMessages struct {
	Use   string
	Short string
	Long  string

	FlagStrict string

	ErrorFailedToCheck string
	StrictFailed       string

	FileHeader    string
	HitsTitle     string
	EmojiTitle    string
	ResidualTitle string
	LintTitle     string
	NothingLeft   string
	LintShadowed  string
	LintCollision string
}

// English check messages
var EnglishCheckMessages = CheckMessages{
	Use:   "check [file ...]",
	Short: "Report what a rewrite would change and leave behind",
	Long: `Run the rewrite in memory and report which table entries match, how many
emoji prefixes would be removed, which lines would still contain Chinese
text, and any ordering hazards in the replacement table. Nothing is written.`,

	FlagStrict: "exit with an error when residual Chinese text or table hazards are found",

	ErrorFailedToCheck: "Failed to check %s: %v",
	StrictFailed:       "check failed: %d file(s) not clean",

	FileHeader:    "== %s",
	HitsTitle:     "Replacements (%d):",
	EmojiTitle:    "Emoji removals (%d):",
	ResidualTitle: "Lines still containing Chinese text (%d):",
	LintTitle:     "Table hazards (%d):",
	NothingLeft:   "No Chinese text left.",
	LintShadowed:  "entry #%d %q is shadowed by earlier entry #%d %q",
	LintCollision: "entry #%d %q occurs in the value of earlier entry #%d %q",
}

// Chinese check messages
var ChineseCheckMessages = CheckMessages{
	Use:   "check [文件 ...]",
	Short: "报告改写将修改和遗留的内容",
	Long: `在内存中执行改写并报告：命中的对照表条目、将移除的 emoji 数量、
仍包含中文的行，以及替换表中的顺序问题。不会写入任何文件。`,

	FlagStrict: "发现遗留中文或替换表问题时以错误退出",

	ErrorFailedToCheck: "无法检查 %s: %v",
	StrictFailed:       "检查未通过: %d 个文件存在问题",

	FileHeader:    "== %s",
	HitsTitle:     "替换 (%d):",
	EmojiTitle:    "移除 emoji (%d):",
	ResidualTitle: "仍包含中文的行 (%d):",
	LintTitle:     "替换表问题 (%d):",
	NothingLeft:   "没有遗留中文。",
	LintShadowed:  "条目 #%d %q 被前面的条目 #%d %q 遮蔽",
	LintCollision: "条目 #%d %q 出现在前面条目 #%d %q 的译文中",
}
