package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xishang0128/textfix/common/i18n"
	"github.com/xishang0128/textfix/rewriter"
)

var (
	tableJSON bool
	tableYAML bool
	tableTOML bool
)

func initTableCmd() {
	tableCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Table.Use,
		Short: i18n.I18nMsg.Table.Short,
		Long:  i18n.I18nMsg.Table.Long,
		Args:  cobra.NoArgs,
		Run:   runTable,
	}

	tableCmd.Flags().BoolVarP(&tableJSON, "json", "j", false, i18n.I18nMsg.Common.FlagJSON)
	tableCmd.Flags().BoolVar(&tableYAML, "yaml", false, i18n.I18nMsg.Table.FlagYAML)
	tableCmd.Flags().BoolVar(&tableTOML, "toml", false, i18n.I18nMsg.Table.FlagTOML)

	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) {
	rs := loadRuleset()

	switch {
	case tableYAML:
		data, err := rs.EncodeYAML()
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(data)
	case tableTOML:
		data, err := rs.EncodeTOML()
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(data)
	case tableJSON:
		data, err := json.MarshalIndent(rs.Table.Entries(), "", "    ")
		if err != nil {
			log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToMarshalJSON, err)
		}
		fmt.Println(string(data))
	default:
		writeTable(os.Stdout, rs)
	}
}

func writeTable(out io.Writer, rs *rewriter.Ruleset) {
	for i, e := range rs.Table.Entries() {
		fmt.Fprintf(out, "%3d. %s → %s\n", i+1, e.From, e.To)
	}
	fmt.Fprintf(out, i18n.I18nMsg.Table.TotalEntries+"\n", rs.Table.Len())
	fmt.Fprintf(out, i18n.I18nMsg.Table.EmojiSet+"\n", strings.Join(rs.Emoji, " "))
}
