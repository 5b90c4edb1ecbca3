package store

import (
	"github.com/shopspring/decimal"

	"caixadre/internal/models"
)

// seedDefaultChart installs the standard chart of accounts on first run.
// Impostos and Despesas Administrativas carry default automatic
// percentages over gross revenue.
func seedDefaultChart(b *Book) {
	defaults := []struct {
		nome       string
		field      models.DREField
		kind       models.AccountKind
		percentual float64
	}{
		{"Venda de Mercadoria", models.FieldReceitaBruta, models.KindReceita, 0},
		{"Impostos sobre Vendas", models.FieldImpostos, models.KindDespesa, 5.0},
		{"Compra de Mercadoria", models.FieldCusto, models.KindDespesa, 0},
		{"Despesas Administrativas", models.FieldDespesasAdmin, models.KindDespesa, 10.0},
		{"Distribuição de Lucro", models.FieldDistribuicaoLucro, models.KindDespesa, 0},
		{"Investimento", models.FieldInvestimento, models.KindOutro, 0},
		{"Empréstimos", models.FieldEmprestimos, models.KindOutro, 0},
	}
	for _, d := range defaults {
		b.Contas = append(b.Contas, models.Conta{
			ID:         b.AllocContaID(),
			Nome:       d.nome,
			Field:      d.field,
			Kind:       d.kind,
			Percentual: decimal.NewFromFloat(d.percentual),
		})
	}
	b.Persist()
}
