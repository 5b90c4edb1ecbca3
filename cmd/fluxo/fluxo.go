// Package fluxo handles the cash-flow report command
package fluxo

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"caixadre/cmd/root"
	"caixadre/internal/cashflow"
	"caixadre/internal/currencyutils"
	"caixadre/internal/dateutils"
	"caixadre/internal/report"
)

var (
	inicio    string
	fim       string
	categoria string
	banco     string
	csvFile   string
)

// Cmd represents the fluxo command
var Cmd = &cobra.Command{
	Use:   "fluxo",
	Short: "Compute the cash-flow report",
	Long: `List settled entries in date order with inflow, outflow and running
balance. Category and bank filters are exact matches; "Todos"/"Todas"
or an empty value disables them.`,
	Run: fluxoFunc,
}

func fluxoFunc(cmd *cobra.Command, args []string) {
	r := root.CashFlow().Compute(cashflow.Filter{
		DataInicio: inicio,
		DataFim:    fim,
		Categoria:  categoria,
		Banco:      banco,
	})

	for _, row := range r.Rows {
		root.Log.Infof("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
			row.Data, row.Tipo, row.Descricao, row.Categoria, row.Banco,
			currencyutils.FormatAmount(row.Entrada),
			currencyutils.FormatAmount(row.Saida),
			currencyutils.FormatAmount(row.Saldo))
	}
	root.Log.Infof("Total Entradas: %s", currencyutils.FormatAmount(r.TotalEntradas))
	root.Log.Infof("Total Saídas: %s", currencyutils.FormatAmount(r.TotalSaidas))
	root.Log.Infof("Saldo Final: %s", currencyutils.FormatAmount(r.SaldoFinal))

	if csvFile != "" {
		if err := report.WriteCashFlowCSV(r, csvFile); err != nil {
			root.Log.Fatalf("Error writing CSV: %v", err)
		}
		root.Log.Infof("Cash flow written to %s", csvFile)
	}
}

func init() {
	now := time.Now()
	Cmd.Flags().StringVar(&inicio, "inicio", "",
		fmt.Sprintf("Period start DD/MM/YYYY (e.g. %s)", dateutils.FormatDate(dateutils.StartOfMonth(now))))
	Cmd.Flags().StringVar(&fim, "fim", "",
		fmt.Sprintf("Period end DD/MM/YYYY (e.g. %s)", dateutils.FormatDate(dateutils.EndOfMonth(now))))
	Cmd.Flags().StringVarP(&categoria, "categoria", "c", "", "Filter by category")
	Cmd.Flags().StringVarP(&banco, "banco", "b", "", "Filter by bank")
	Cmd.Flags().StringVarP(&csvFile, "csv", "o", "", "Write the report to a CSV file")
}
