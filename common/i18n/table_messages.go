package i18n

// TableMessages holds table command translatable strings
type TableMessages struct {
	Use   string
	Short string
	Long  string

	FlagYAML     string
	FlagTOML     string
	TotalEntries string
	EmojiSet     string
}

// English table messages
var EnglishTableMessages = TableMessages{
	Use:   "table",
	Short: "Print the replacement table",
	Long: `Print the active replacement table in application order.

With --yaml or --toml the table is written in a format accepted by
--table, which is a convenient starting point for a custom table. A
--table file ending in .toml is read as TOML, anything else as YAML.`,

	FlagYAML:     "output as YAML usable with --table",
	FlagTOML:     "output as TOML usable with --table",
	TotalEntries: "Total %d entries",
	EmojiSet:     "Emoji: %s",
}

// Chinese table messages
var ChineseTableMessages = TableMessages{
	Use:   "table",
	Short: "打印替换表",
	Long: `按应用顺序打印当前使用的替换表。

使用 --yaml 或 --toml 时以 --table 可读取的格式输出，便于编写自定义替换表。
以 .toml 结尾的 --table 文件按 TOML 读取，其余按 YAML 读取。`,

	FlagYAML:     "以可用于 --table 的 YAML 格式输出",
	FlagTOML:     "以可用于 --table 的 TOML 格式输出",
	TotalEntries: "共 %d 条",
	EmojiSet:     "Emoji: %s",
}
