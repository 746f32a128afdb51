package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/xishang0128/textfix/common/file"
	"github.com/xishang0128/textfix/common/i18n"
)

var restoreInteractive bool

func initRestoreCmd() {
	restoreCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Restore.Use,
		Short: i18n.I18nMsg.Restore.Short,
		Long:  i18n.I18nMsg.Restore.Long,
		Args:  cobra.ArbitraryArgs,
		Run:   runRestore,
	}

	restoreCmd.Flags().BoolVarP(&restoreInteractive, "interactive", "i", false, i18n.I18nMsg.Common.FlagInteractive)

	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) {
	msg := i18n.I18nMsg.Restore

	for _, p := range targets(args) {
		if restoreInteractive {
			backupPath, _, err := file.FindBackup(p, codecs)
			if err != nil {
				fatalf(msg.ErrorFailedToRestore, p, err)
			}
			ok, err := askConfirm(fmt.Sprintf(msg.ConfirmPrompt, p, backupPath))
			if err != nil {
				log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToPrompt, err)
			}
			if !ok {
				fmt.Printf(msg.Skipped+"\n", p)
				continue
			}
		}

		backupPath, err := file.Restore(p, codecs)
		if err != nil {
			fatalf(msg.ErrorFailedToRestore, p, err)
		}
		fmt.Printf(msg.Restored+"\n", p, backupPath)
	}
}
