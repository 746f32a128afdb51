package i18n

// RestoreMessages holds restore command translatable strings
type RestoreMessages struct {
	Use   string
	Short string
	Long  string

	ErrorFailedToRestore string
	Restored             string
	ConfirmPrompt        string
	Skipped              string
}

// English restore messages
var EnglishRestoreMessages = RestoreMessages{
	Use:   "restore [file ...]",
	Short: "Restore files from their backups",
	Long: `Overwrite each file (default: src/js/auth.js) with the content of its
backup. Compressed backups (.backup.br, .backup.zst, .backup.xz) are
preferred over the plain one (.backup). The backup is kept.`,

	ErrorFailedToRestore: "Failed to restore %s: %v",
	Restored:             "✅ Restored %s from %s",
	ConfirmPrompt:        "Overwrite %s with %s?",
	Skipped:              "%s: skipped",
}

// Chinese restore messages
var ChineseRestoreMessages = RestoreMessages{
	Use:   "restore [文件 ...]",
	Short: "从备份恢复文件",
	Long: `用备份内容覆盖每个文件（默认: src/js/auth.js）。
优先使用压缩备份 (.backup.br、.backup.zst、.backup.xz)，其次为普通备份 (.backup)。备份文件会保留。`,

	ErrorFailedToRestore: "无法恢复 %s: %v",
	Restored:             "✅ 已从 %[2]s 恢复 %[1]s",
	ConfirmPrompt:        "用 %[2]s 覆盖 %[1]s?",
	Skipped:              "%s: 已跳过",
}
