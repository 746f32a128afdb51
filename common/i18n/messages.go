package i18n

import (
	"os"
	"strings"
)

// Language represents supported languages
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// AllMessages holds all translatable strings grouped by module
type AllMessages struct {
	App     AppMessages
	Common  CommonMessages
	Rewrite RewriteMessages
	Check   CheckMessages
	Table   TableMessages
	Restore RestoreMessages
}

// CurrentLanguage holds the current language setting
var CurrentLanguage Language = English

// I18nMsg holds the current message set - Global variable for easy access
var I18nMsg AllMessages

// English messages
var EnglishAllMessages = AllMessages{
	App:     EnglishAppMessages,
	Common:  EnglishCommonMessages,
	Rewrite: EnglishRewriteMessages,
	Check:   EnglishCheckMessages,
	Table:   EnglishTableMessages,
	Restore: EnglishRestoreMessages,
}

// Chinese messages
var ChineseAllMessages = AllMessages{
	App:     ChineseAppMessages,
	Common:  ChineseCommonMessages,
	Rewrite: ChineseRewriteMessages,
	Check:   ChineseCheckMessages,
	Table:   ChineseTableMessages,
	Restore: ChineseRestoreMessages,
}

// DetectLanguage detects the user's language preference based on environment variables
func DetectLanguage() Language {
	envVars := []string{"LANG", "LANGUAGE", "LC_ALL", "LC_MESSAGES"}

	for _, envVar := range envVars {
		if lang := os.Getenv(envVar); lang != "" {
			if l, ok := ParseLanguage(lang); ok {
				return l
			}
		}
	}

	return English
}

// ParseLanguage maps a locale string such as "zh_CN.UTF-8" or "en" to a Language.
// It reports false for values it does not recognise.
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return English, false
	case strings.Contains(s, "zh"),
		strings.Contains(s, "chinese"),
		strings.Contains(s, "cn"):
		return Chinese, true
	case strings.HasPrefix(s, "en"), s == "c", s == "posix":
		return English, true
	}
	return English, false
}

// SetLanguage sets the current language and updates messages
func SetLanguage(lang Language) {
	CurrentLanguage = lang
	switch lang {
	case Chinese:
		I18nMsg = ChineseAllMessages
	default:
		I18nMsg = EnglishAllMessages
	}
}

// InitLanguage initializes the language system
func InitLanguage() {
	detectedLang := DetectLanguage()
	SetLanguage(detectedLang)
}

// IsChineseEnvironment returns true if the current environment is Chinese
func IsChineseEnvironment() bool {
	return CurrentLanguage == Chinese
}
