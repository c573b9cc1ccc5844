package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/abhisek/ratiolab/internal/problemgen"
)

var ratiosCmd = &cobra.Command{
	Use:   "ratios",
	Short: "List the supported ratios with formulas and interpretation bands",
	Run: func(cmd *cobra.Command, args []string) {
		writeRatioTable(cmd.OutOrStdout(), problemgen.Catalog())
	},
}

func writeRatioTable(w io.Writer, infos []problemgen.RatioInfo) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.SeparateRows = true
	tw.AppendHeader(table.Row{"Ratio", "Slug", "Formula", "Tolerance", "Decimals", "Bands"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, WidthMax: 40},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, WidthMax: 48},
	})

	for _, info := range infos {
		bands := make([]string, 0, len(info.Bands))
		for _, b := range info.Bands {
			bands = append(bands, fmt.Sprintf("%s: %s", b.Level.Title(), b.Description))
		}
		tw.AppendRow(table.Row{
			info.Name,
			info.Slug,
			info.Formula,
			fmt.Sprintf("±%g", info.Tolerance),
			info.Precision,
			strings.Join(bands, "\n"),
		})
	}
	tw.Render()
}
