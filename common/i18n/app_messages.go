package i18n

// AppMessages holds application-level translatable strings
type AppMessages struct {
	AppDescription     string
	AppLongDescription string

	// Version command messages
	VersionTitle    string
	VersionLabel    string
	GoVersionLabel  string
	PlatformLabel   string
	CodecsLabel     string
	VersionCmdShort string
	VersionCmdLong  string
}

// English app messages
var EnglishAppMessages = AppMessages{
	AppDescription: "Replace Chinese literals in JavaScript sources with English",
	AppLongDescription: `A tool for translating the fixed Chinese strings of a JavaScript file.

It replaces comments, log messages and user-facing text with their
English equivalents from a fixed table, removes decorative emoji from
console.log/warn/error calls (showToast keeps them), and writes the file
back in place after saving a backup.

Without a subcommand it behaves like "rewrite".`,

	VersionTitle:    "textfix",
	VersionLabel:    "Version",
	GoVersionLabel:  "Go Version",
	PlatformLabel:   "Platform",
	CodecsLabel:     "Backup codecs",
	VersionCmdShort: "Show version information",
	VersionCmdLong:  "Display version information including available backup codecs",
}

// Chinese app messages
var ChineseAppMessages = AppMessages{
	AppDescription: "将 JavaScript 源码中的中文文本替换为英文",
	AppLongDescription: `用于翻译 JavaScript 文件中固定中文字符串的工具。

按固定对照表将注释、日志和界面文本替换为英文，
移除 console.log/warn/error 调用中的装饰性 emoji（showToast 保留），
并在保存备份后原地写回文件。

未指定子命令时等同于 "rewrite"。`,

	VersionTitle:    "textfix",
	VersionLabel:    "版本",
	GoVersionLabel:  "Go 版本",
	PlatformLabel:   "平台",
	CodecsLabel:     "备份编码",
	VersionCmdShort: "显示版本信息",
	VersionCmdLong:  "显示版本信息，包括可用的备份编码",
}
