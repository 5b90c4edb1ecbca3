// Package dre handles the income statement report command
package dre

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"caixadre/cmd/root"
	"caixadre/internal/currencyutils"
	"caixadre/internal/dateutils"
	"caixadre/internal/report"
)

var (
	inicio  string
	fim     string
	csvFile string
)

// Cmd represents the dre command
var Cmd = &cobra.Command{
	Use:   "dre",
	Short: "Compute the period income statement",
	Long: `Compute the DRE for a period. Both --inicio and --fim must be given to
filter by settlement date; otherwise every settled entry is included.`,
	Run: dreFunc,
}

func dreFunc(cmd *cobra.Command, args []string) {
	vals := root.Statement().Compute(inicio, fim)

	for _, line := range vals.Lines() {
		root.Log.Infof("%-28s %s", line.Nome, currencyutils.FormatAmount(line.Valor))
	}

	if csvFile != "" {
		if err := report.WriteDRECSV(vals, csvFile); err != nil {
			root.Log.Fatalf("Error writing CSV: %v", err)
		}
		root.Log.Infof("Statement written to %s", csvFile)
	}
}

func init() {
	now := time.Now()
	Cmd.Flags().StringVar(&inicio, "inicio", "",
		fmt.Sprintf("Period start DD/MM/YYYY (e.g. %s)", dateutils.FormatDate(dateutils.StartOfMonth(now))))
	Cmd.Flags().StringVar(&fim, "fim", "",
		fmt.Sprintf("Period end DD/MM/YYYY (e.g. %s)", dateutils.FormatDate(dateutils.EndOfMonth(now))))
	Cmd.Flags().StringVarP(&csvFile, "csv", "o", "", "Write the statement to a CSV file")
}
