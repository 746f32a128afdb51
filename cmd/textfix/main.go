package main

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xishang0128/textfix/common/i18n"
	"github.com/xishang0128/textfix/common/logger"
	"github.com/xishang0128/textfix/compression"
)

var (
	rootCmd *cobra.Command
	cfg     *viper.Viper
	diag    *zap.Logger
	codecs  = compression.NewCodecManager()
)

func init() {
	log.SetFlags(0)

	// TEXTFIX_LANG, TEXTFIX_VERBOSE, TEXTFIX_TABLE, TEXTFIX_LOG_JSON
	cfg = viper.New()
	cfg.SetEnvPrefix("textfix")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	i18n.InitLanguage()
	// help text is built below, so only the environment can pick its language
	if l, ok := i18n.ParseLanguage(cfg.GetString("lang")); ok {
		i18n.SetLanguage(l)
	}

	rootCmd = &cobra.Command{
		Use:   "textfix [file ...]",
		Short: i18n.I18nMsg.App.AppDescription,
		Long:  i18n.I18nMsg.App.AppLongDescription,
		Args:  cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if l, ok := i18n.ParseLanguage(cfg.GetString("lang")); ok {
				i18n.SetLanguage(l)
			}
			diag = logger.New(cfg.GetInt("verbose"), cfg.GetBool("log-json"))
		},
		Run: runRewrite,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountP("verbose", "v", i18n.I18nMsg.Common.FlagVerbose)
	pf.Bool("log-json", false, i18n.I18nMsg.Common.FlagLogJSON)
	pf.String("lang", "", i18n.I18nMsg.Common.FlagLang)
	pf.String("table", "", i18n.I18nMsg.Common.FlagTable)
	if err := cfg.BindPFlags(pf); err != nil {
		log.Fatal(err)
	}

	addRewriteFlags(rootCmd)

	initRewriteCmd()
	initCheckCmd()
	initTableCmd()
	initRestoreCmd()
	initVersionCmd()
}

func main() {
	err := rootCmd.Execute()
	if diag != nil {
		_ = diag.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}
