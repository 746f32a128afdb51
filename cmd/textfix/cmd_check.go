package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/xishang0128/textfix/common/file"
	"github.com/xishang0128/textfix/common/i18n"
	"github.com/xishang0128/textfix/rewriter"
)

var (
	checkJSON   bool
	checkStrict bool
)

func initCheckCmd() {
	checkCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Check.Use,
		Short: i18n.I18nMsg.Check.Short,
		Long:  i18n.I18nMsg.Check.Long,
		Args:  cobra.ArbitraryArgs,
		Run:   runCheck,
	}

	checkCmd.Flags().BoolVarP(&checkJSON, "json", "j", false, i18n.I18nMsg.Common.FlagJSON)
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, i18n.I18nMsg.Check.FlagStrict)

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	rs := loadRuleset()

	reports := make([]rewriter.Report, 0, len(args))
	for _, p := range targets(args) {
		content, err := file.Load(p)
		if err != nil {
			fatalf(i18n.I18nMsg.Check.ErrorFailedToCheck, p, err)
		}
		rep := rewriter.Check(content, rs)
		rep.Path = p
		reports = append(reports, rep)
	}

	if checkJSON {
		data, err := json.MarshalIndent(reports, "", "    ")
		if err != nil {
			log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToMarshalJSON, err)
		}
		fmt.Println(string(data))
	} else {
		for _, rep := range reports {
			writeReport(os.Stdout, rep)
		}
	}

	if checkStrict {
		dirty := 0
		for _, rep := range reports {
			if !rep.Clean() {
				dirty++
			}
		}
		if dirty > 0 {
			log.Fatalf(i18n.I18nMsg.Check.StrictFailed, dirty)
		}
	}
}

func writeReport(out io.Writer, rep rewriter.Report) {
	msg := i18n.I18nMsg.Check

	fmt.Fprintf(out, msg.FileHeader+"\n", rep.Path)

	fmt.Fprintf(out, msg.HitsTitle+"\n", len(rep.Hits))
	for _, h := range rep.Hits {
		fmt.Fprintf(out, "  %4d  %s → %s\n", h.Count, h.Entry.From, h.Entry.To)
	}

	fmt.Fprintf(out, msg.EmojiTitle+"\n", len(rep.Emoji))
	for _, e := range rep.Emoji {
		fmt.Fprintf(out, "  %4d  %s\n", e.Count, e.Rule)
	}

	if len(rep.Residual) == 0 {
		fmt.Fprintln(out, msg.NothingLeft)
	} else {
		fmt.Fprintf(out, msg.ResidualTitle+"\n", len(rep.Residual))
		for _, r := range rep.Residual {
			fmt.Fprintf(out, "  %4d: %s\n", r.Line, r.Text)
		}
	}

	if len(rep.Lint) > 0 {
		fmt.Fprintf(out, msg.LintTitle+"\n", len(rep.Lint))
		for _, f := range rep.Lint {
			format, with := msg.LintShadowed, f.With.From
			if f.Kind == rewriter.LintCollision {
				format, with = msg.LintCollision, f.With.To
			}
			fmt.Fprintf(out, "  "+format+"\n", f.Index+1, f.Entry.From, f.Earlier+1, with)
		}
	}
	fmt.Fprintln(out)
}
