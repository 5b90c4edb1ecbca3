// Package conta handles chart-of-accounts commands
package conta

import (
	"caixadre/cmd/root"
	"caixadre/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	id         int
	nome       string
	campo      string
	tipo       string
	percentual float64
)

// Cmd represents the conta command
var Cmd = &cobra.Command{
	Use:   "conta",
	Short: "Manage the chart of accounts",
	Long:  `Add, list, update and remove chart-of-accounts entries mapped to DRE statement lines.`,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a chart account",
	Run:   addFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List chart accounts",
	Run:   listFunc,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a chart account",
	Run:   updateFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a chart account",
	Run:   removeFunc,
}

func addFunc(cmd *cobra.Command, args []string) {
	c, err := root.Registry().Add(nome, models.DREField(campo),
		models.AccountKind(tipo), decimal.NewFromFloat(percentual))
	if err != nil {
		root.Log.Fatalf("Error adding account: %v", err)
	}
	root.Log.Infof("Added account %d: %s (%s)", c.ID, c.Nome, c.Field)
}

func listFunc(cmd *cobra.Command, args []string) {
	var contas []models.Conta
	if tipo != "" {
		contas = root.Registry().ListByKind(models.AccountKind(tipo))
	} else {
		contas = root.Registry().All()
	}
	for _, c := range contas {
		root.Log.Infof("%d\t%s\t%s\t%s\t%s%%", c.ID, c.Nome, c.Field, c.Kind, c.Percentual)
	}
}

func updateFunc(cmd *cobra.Command, args []string) {
	ok := root.Registry().Update(id, nome, models.DREField(campo),
		models.AccountKind(tipo), decimal.NewFromFloat(percentual))
	if !ok {
		root.Log.Fatalf("No account with id %d", id)
	}
	root.Log.Infof("Updated account %d", id)
}

func removeFunc(cmd *cobra.Command, args []string) {
	if err := root.Registry().Remove(id); err != nil {
		root.Log.Fatalf("Error removing account: %v", err)
	}
	root.Log.Infof("Removed account %d", id)
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(removeCmd)

	addCmd.Flags().StringVarP(&nome, "nome", "n", "", "Account name (required)")
	addCmd.Flags().StringVarP(&campo, "campo", "c", "", "DRE statement field (required)")
	addCmd.Flags().StringVarP(&tipo, "tipo", "t", string(models.KindReceita), "Account kind (receita|despesa|outro)")
	addCmd.Flags().Float64VarP(&percentual, "percentual", "p", 0, "Automatic percentage over gross revenue")
	addCmd.MarkFlagRequired("nome")
	addCmd.MarkFlagRequired("campo")

	listCmd.Flags().StringVarP(&tipo, "tipo", "t", "", "Filter by account kind")

	updateCmd.Flags().IntVar(&id, "id", 0, "Account id (required)")
	updateCmd.Flags().StringVarP(&nome, "nome", "n", "", "Account name (required)")
	updateCmd.Flags().StringVarP(&campo, "campo", "c", "", "DRE statement field (required)")
	updateCmd.Flags().StringVarP(&tipo, "tipo", "t", string(models.KindReceita), "Account kind (receita|despesa|outro)")
	updateCmd.Flags().Float64VarP(&percentual, "percentual", "p", 0, "Automatic percentage over gross revenue")
	updateCmd.MarkFlagRequired("id")
	updateCmd.MarkFlagRequired("nome")
	updateCmd.MarkFlagRequired("campo")

	removeCmd.Flags().IntVar(&id, "id", 0, "Account id (required)")
	removeCmd.MarkFlagRequired("id")
}
