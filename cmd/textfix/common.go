package main

import (
	"fmt"
	"log"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cockroachdb/errors"

	"github.com/xishang0128/textfix/common/file"
	"github.com/xishang0128/textfix/common/i18n"
	"github.com/xishang0128/textfix/rewriter"
)

const defaultTarget = "src/js/auth.js"

// targets falls back to the default file when no paths were given.
func targets(args []string) []string {
	if len(args) == 0 {
		return []string{defaultTarget}
	}
	return args
}

func loadRuleset() *rewriter.Ruleset {
	path := cfg.GetString("table")
	if path == "" {
		return rewriter.DefaultRuleset()
	}
	rs, err := rewriter.LoadRuleset(path)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToLoadRuleset, withHint(err))
	}
	return rs
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, file.ErrFileNotFound):
		return i18n.I18nMsg.Common.HintFileNotFound
	case errors.Is(err, file.ErrDecode):
		return i18n.I18nMsg.Common.HintDecode
	case errors.Is(err, file.ErrWrite):
		return i18n.I18nMsg.Common.HintWrite
	}
	return ""
}

// withHint renders err followed by the hint matching its class, if any.
func withHint(err error) string {
	if hint := hintFor(err); hint != "" {
		err = errors.WithHint(err, hint)
	}
	msg := err.Error()
	if h := errors.FlattenHints(err); h != "" {
		msg += "\nHINT: " + h
	}
	return msg
}

// fatalf reports a per-file failure and exits with status 1.
func fatalf(format string, path string, err error) {
	log.Fatalf(format, path, withHint(err))
}

func askConfirm(message string) (bool, error) {
	ok := false
	prompt := &survey.Confirm{
		Message: message,
		Default: true,
	}
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, errors.Wrap(err, "confirm")
	}
	return ok, nil
}

func confirmWrite(path string, stats rewriter.Stats) (bool, error) {
	return askConfirm(fmt.Sprintf(i18n.I18nMsg.Rewrite.ConfirmPrompt, stats.Replacements(), stats.EmojiRemoved(), path))
}
