package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/xishang0128/textfix/common/i18n"
	"github.com/xishang0128/textfix/compression"
	"github.com/xishang0128/textfix/rewriter"
)

var (
	rewriteDryRun       bool
	rewriteNoBackup     bool
	rewriteBackupFormat string
	rewriteInteractive  bool
)

// addRewriteFlags registers the rewrite flags on cmd. The root command gets
// them too, since it rewrites when no subcommand is given.
func addRewriteFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&rewriteDryRun, "dry-run", false, i18n.I18nMsg.Rewrite.FlagDryRun)
	cmd.Flags().BoolVar(&rewriteNoBackup, "no-backup", false, i18n.I18nMsg.Rewrite.FlagNoBackup)
	cmd.Flags().StringVar(&rewriteBackupFormat, "backup-format", "none", i18n.I18nMsg.Rewrite.FlagBackupFormat)
	cmd.Flags().BoolVarP(&rewriteInteractive, "interactive", "i", false, i18n.I18nMsg.Common.FlagInteractive)
}

func initRewriteCmd() {
	rewriteCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Rewrite.Use,
		Short: i18n.I18nMsg.Rewrite.Short,
		Long:  i18n.I18nMsg.Rewrite.Long,
		Args:  cobra.ArbitraryArgs,
		Run:   runRewrite,
	}

	addRewriteFlags(rewriteCmd)

	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) {
	paths := targets(args)
	rs := loadRuleset()

	codecType, err := compression.ParseType(rewriteBackupFormat)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorInvalidBackupFormat, err)
	}
	codec, err := codecs.GetCodec(codecType)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorInvalidBackupFormat, err)
	}

	opts := rewriter.Options{
		Ruleset:  rs,
		Codec:    codec,
		Codecs:   codecs,
		NoBackup: rewriteNoBackup,
		DryRun:   rewriteDryRun,
		Logger:   diag,
	}
	if rewriteInteractive {
		opts.Confirm = confirmWrite
	}
	w := rewriter.New(opts)

	// Prompts and a live bar would fight over the terminal.
	var (
		progress *mpb.Progress
		bar      *mpb.Bar
	)
	if len(paths) > 1 && !rewriteInteractive {
		progress = mpb.New(mpb.WithWidth(60), mpb.WithOutput(os.Stderr))
		bar = progress.AddBar(int64(len(paths)),
			mpb.PrependDecorators(
				decor.Name(i18n.I18nMsg.Common.FilesLabel, decor.WCSyncSpaceR),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WC{W: 5}),
				decor.Counters(0, " | %d/%d"),
			),
		)
	}

	results := make([]*rewriter.Result, 0, len(paths))
	for _, p := range paths {
		res, err := w.Run(p)
		if err != nil {
			if progress != nil {
				bar.Abort(false)
				progress.Wait()
			}
			for _, done := range results {
				writeResult(os.Stdout, done, rewriteDryRun)
			}
			fatalf(i18n.I18nMsg.Rewrite.ErrorFailedToRewrite, p, err)
		}
		results = append(results, res)
		if bar != nil {
			bar.Increment()
		}
	}
	if progress != nil {
		progress.Wait()
	}

	for _, res := range results {
		writeResult(os.Stdout, res, rewriteDryRun)
	}
}

// writeResult prints the completion report for one file.
func writeResult(out io.Writer, res *rewriter.Result, dryRun bool) {
	msg := i18n.I18nMsg.Rewrite
	switch {
	case res.Declined:
		fmt.Fprintf(out, msg.Declined+"\n", res.Path)
	case !res.Stats.Changed:
		fmt.Fprintf(out, msg.NoChanges+"\n", res.Path)
	case dryRun:
		fmt.Fprintf(out, msg.DryRunSummary+"\n", res.Path, res.Stats.Replacements(), res.Stats.EmojiRemoved())
	default:
		fmt.Fprintf(out, msg.Completed+"\n", res.Path)
		if res.BackupCreated {
			fmt.Fprintf(out, msg.BackupSaved+"\n", res.BackupPath)
		} else if res.BackupPath != "" {
			fmt.Fprintf(out, msg.BackupKept+"\n", res.BackupPath)
		}
	}
}
