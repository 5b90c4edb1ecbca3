// Package lancamento handles ledger entry commands
package lancamento

import (
	"caixadre/cmd/root"
	"caixadre/internal/currencyutils"
	"caixadre/internal/ledger"
	"caixadre/internal/models"

	"github.com/spf13/cobra"
)

var (
	id         int
	tipo       string
	vencimento string
	entidade   string
	descricao  string
	valor      string
	status     string
	baixa      string
	banco      string
	contaID    int
	categoria  string
)

// Cmd represents the lancamento command
var Cmd = &cobra.Command{
	Use:   "lancamento",
	Short: "Manage receivable and payable entries",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a ledger entry",
	Run:   addFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger entries",
	Run:   listFunc,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update fields of a ledger entry",
	Run:   updateFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a ledger entry",
	Run:   removeFunc,
}

var baixarCmd = &cobra.Command{
	Use:   "baixar",
	Short: "Settle an entry as received or paid on a date",
	Run:   baixarFunc,
}

func addFunc(cmd *cobra.Command, args []string) {
	in := ledger.Input{
		Direction:      models.Direction(tipo),
		DataVencimento: vencimento,
		Entidade:       entidade,
		Descricao:      descricao,
		Valor:          valor,
		Status:         models.Status(status),
		DataBaixa:      baixa,
		ContaBanco:     banco,
		CategoriaTexto: categoria,
	}
	if cmd.Flags().Changed("conta") {
		in.ContaDREID = &contaID
	}

	l, err := root.Ledger().Add(in)
	if err != nil {
		root.Log.Fatalf("Error adding entry: %v", err)
	}
	root.Log.Infof("Added entry %d: %s %s (%s)", l.ID, l.Descricao,
		currencyutils.FormatAmount(l.Valor), l.Status)
}

func listFunc(cmd *cobra.Command, args []string) {
	var entries []models.Lancamento
	if tipo != "" {
		entries = root.Ledger().ListByDirection(models.Direction(tipo))
	} else {
		entries = root.Ledger().All()
	}
	for _, l := range entries {
		root.Log.Infof("%d\t%s\t%s\t%s\t%s\t%s\t%s", l.ID, l.Direction,
			l.DataVencimento, l.Entidade, l.Descricao,
			currencyutils.FormatAmount(l.Valor), l.Status)
	}
}

func updateFunc(cmd *cobra.Command, args []string) {
	var p ledger.Patch
	if cmd.Flags().Changed("tipo") {
		d := models.Direction(tipo)
		p.Direction = &d
	}
	if cmd.Flags().Changed("vencimento") {
		p.DataVencimento = &vencimento
	}
	if cmd.Flags().Changed("entidade") {
		p.Entidade = &entidade
	}
	if cmd.Flags().Changed("descricao") {
		p.Descricao = &descricao
	}
	if cmd.Flags().Changed("valor") {
		p.Valor = &valor
	}
	if cmd.Flags().Changed("status") {
		s := models.Status(status)
		p.Status = &s
	}
	if cmd.Flags().Changed("baixa") {
		p.DataBaixa = &baixa
	}
	if cmd.Flags().Changed("banco") {
		p.ContaBanco = &banco
	}
	if cmd.Flags().Changed("conta") {
		p.ContaDREID = &contaID
	}
	if cmd.Flags().Changed("categoria") {
		p.CategoriaTexto = &categoria
	}

	ok, err := root.Ledger().Update(id, p)
	if err != nil {
		root.Log.Fatalf("Error updating entry: %v", err)
	}
	if !ok {
		root.Log.Fatalf("No entry with id %d", id)
	}
	root.Log.Infof("Updated entry %d", id)
}

func removeFunc(cmd *cobra.Command, args []string) {
	if !root.Ledger().Remove(id) {
		root.Log.Fatalf("No entry with id %d", id)
	}
	root.Log.Infof("Removed entry %d", id)
}

func baixarFunc(cmd *cobra.Command, args []string) {
	if err := root.Ledger().Settle(id, baixa); err != nil {
		root.Log.Fatalf("Error settling entry: %v", err)
	}
	root.Log.Infof("Settled entry %d on %s", id, baixa)
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(baixarCmd)

	addFlags := func(c *cobra.Command) {
		c.Flags().StringVarP(&tipo, "tipo", "t", "", "Direction (receber|pagar)")
		c.Flags().StringVar(&vencimento, "vencimento", "", "Due date DD/MM/YYYY")
		c.Flags().StringVarP(&entidade, "entidade", "e", "", "Customer or supplier")
		c.Flags().StringVarP(&descricao, "descricao", "d", "", "Description")
		c.Flags().StringVarP(&valor, "valor", "v", "", "Amount, e.g. 1.234,56")
		c.Flags().StringVarP(&status, "status", "s", string(models.StatusPendente), "Status (Pendente|Recebido|Pago)")
		c.Flags().StringVar(&baixa, "baixa", "", "Settlement date DD/MM/YYYY")
		c.Flags().StringVarP(&banco, "banco", "b", "", "Bank name")
		c.Flags().IntVar(&contaID, "conta", 0, "Chart account id")
		c.Flags().StringVarP(&categoria, "categoria", "c", "", "Category name")
	}

	addFlags(addCmd)
	addCmd.MarkFlagRequired("tipo")
	addCmd.MarkFlagRequired("vencimento")
	addCmd.MarkFlagRequired("valor")

	listCmd.Flags().StringVarP(&tipo, "tipo", "t", "", "Filter by direction (receber|pagar)")

	addFlags(updateCmd)
	updateCmd.Flags().IntVar(&id, "id", 0, "Entry id (required)")
	updateCmd.MarkFlagRequired("id")

	removeCmd.Flags().IntVar(&id, "id", 0, "Entry id (required)")
	removeCmd.MarkFlagRequired("id")

	baixarCmd.Flags().IntVar(&id, "id", 0, "Entry id (required)")
	baixarCmd.Flags().StringVar(&baixa, "data", "", "Settlement date DD/MM/YYYY (required)")
	baixarCmd.MarkFlagRequired("id")
	baixarCmd.MarkFlagRequired("data")
}
