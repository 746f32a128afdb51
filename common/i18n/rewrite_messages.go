package i18n

// RewriteMessages holds rewrite command translatable strings
type RewriteMessages struct {
	Use   string
	Short string
	Long  string

	FlagDryRun       string
	FlagNoBackup     string
	FlagBackupFormat string

	ErrorFailedToRewrite string

	// Completion report
	Completed     string
	BackupSaved   string
	BackupKept    string
	NoChanges     string
	DryRunSummary string
	Declined      string
	ConfirmPrompt string
}

// English rewrite messages
var EnglishRewriteMessages = RewriteMessages{
	Use:   "rewrite [file ...]",
	Short: "Replace Chinese literals and strip emoji from log calls",
	Long: `Rewrite the given files in place (default: src/js/auth.js).

The built-in table replaces each Chinese phrase with its English
equivalent, then emoji prefixes are removed from console.log, console.warn
and console.error messages. A backup of the original is written next to
the file unless --no-backup is given; an existing backup is never replaced.`,

	FlagDryRun:       "show what would change without writing anything",
	FlagNoBackup:     "do not write a backup before overwriting",
	FlagBackupFormat: "backup format: none, xz, zstd or brotli",

	ErrorFailedToRewrite: "Failed to rewrite %s: %v",

	Completed:     "✅ Fixed Chinese characters in %s",
	BackupSaved:   "📝 Backup saved as %s",
	BackupKept:    "📝 Existing backup kept: %s",
	NoChanges:     "%s: no changes",
	DryRunSummary: "%s: %d replacements, %d emoji removed (dry run)",
	Declined:      "%s: skipped",
	ConfirmPrompt: "Write %d replacements and %d emoji removals to %s?",
}

// Chinese rewrite messages
var ChineseRewriteMessages = RewriteMessages{
	Use:   "rewrite [文件 ...]",
	Short: "替换中文文本并移除日志调用中的 emoji",
	Long: `原地改写指定文件（默认: src/js/auth.js）。

内置对照表将每个中文短语替换为英文，随后移除 console.log、
console.warn 和 console.error 消息开头的 emoji。除非指定 --no-backup，
会先在文件旁写入原文件备份；已存在的备份不会被覆盖。`,

	FlagDryRun:       "仅显示将要修改的内容，不写入任何文件",
	FlagNoBackup:     "覆盖前不写入备份",
	FlagBackupFormat: "备份格式: none、xz、zstd 或 brotli",

	ErrorFailedToRewrite: "无法改写 %s: %v",

	Completed:     "✅ 已修复 %s 中的中文字符",
	BackupSaved:   "📝 备份已保存为 %s",
	BackupKept:    "📝 保留已有备份: %s",
	NoChanges:     "%s: 无需修改",
	DryRunSummary: "%s: %d 处替换, 移除 %d 个 emoji (试运行)",
	Declined:      "%s: 已跳过",
	ConfirmPrompt: "将 %d 处替换和 %d 处 emoji 移除写入 %s?",
}
