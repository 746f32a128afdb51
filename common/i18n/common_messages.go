package i18n

// CommonMessages holds common translatable strings
type CommonMessages struct {
	// Error messages
	ErrorFailedToLoadRuleset  string
	ErrorInvalidBackupFormat  string
	ErrorFailedToMarshalJSON  string
	ErrorFailedToCreateLogger string
	ErrorFailedToPrompt       string
	HintFileNotFound          string
	HintDecode                string
	HintWrite                 string

	// Common flag descriptions
	FlagJSON        string
	FlagTable       string
	FlagVerbose     string
	FlagLogJSON     string
	FlagLang        string
	FlagInteractive string
	ElapsedTime     string
	FilesLabel      string
}

// English common messages
var EnglishCommonMessages = CommonMessages{
	ErrorFailedToLoadRuleset:  "Failed to load replacement table: %v",
	ErrorInvalidBackupFormat:  "Invalid backup format: %v",
	ErrorFailedToMarshalJSON:  "Failed to marshal JSON: %v",
	ErrorFailedToCreateLogger: "Failed to create logger: %v",
	ErrorFailedToPrompt:       "Prompt failed: %v",
	HintFileNotFound:          "check the path; the default target is src/js/auth.js relative to the working directory",
	HintDecode:                "the file must be UTF-8 encoded",
	HintWrite:                 "check permissions and free disk space; the original file was not modified",

	FlagJSON:        "output as JSON",
	FlagTable:       "YAML replacement table to use instead of the built-in one",
	FlagVerbose:     "increase log verbosity (-v info, -vv debug)",
	FlagLogJSON:     "write diagnostics as JSON",
	FlagLang:        "interface language (en, zh); detected from LANG by default",
	FlagInteractive: "ask before writing each file",
	ElapsedTime:     "Elapsed time: %s",
	FilesLabel:      "files",
}

// Chinese common messages
var ChineseCommonMessages = CommonMessages{
	ErrorFailedToLoadRuleset:  "无法加载替换表: %v",
	ErrorInvalidBackupFormat:  "无效的备份格式: %v",
	ErrorFailedToMarshalJSON:  "无法序列化JSON: %v",
	ErrorFailedToCreateLogger: "无法创建日志: %v",
	ErrorFailedToPrompt:       "交互提示失败: %v",
	HintFileNotFound:          "请检查路径；默认目标为当前目录下的 src/js/auth.js",
	HintDecode:                "文件必须为 UTF-8 编码",
	HintWrite:                 "请检查权限和磁盘空间；原文件未被修改",

	FlagJSON:        "以JSON格式输出",
	FlagTable:       "使用 YAML 替换表代替内置对照表",
	FlagVerbose:     "提高日志详细程度 (-v 信息, -vv 调试)",
	FlagLogJSON:     "以JSON格式输出诊断日志",
	FlagLang:        "界面语言 (en, zh)；默认根据 LANG 检测",
	FlagInteractive: "写入每个文件前确认",
	ElapsedTime:     "耗时: %s",
	FilesLabel:      "文件",
}
