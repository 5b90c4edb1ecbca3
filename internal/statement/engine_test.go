package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caixadre/internal/models"
	"caixadre/internal/store"
)

// newBook builds a book with one account per statement field. Account
// IDs follow the order of fields; percentuals are zero unless set by the
// test.
func newBook() *store.Book {
	b := store.NewBook(store.NoopPersister{})
	for _, f := range models.AccountFields {
		b.Contas = append(b.Contas, models.Conta{
			ID:         b.AllocContaID(),
			Nome:       string(f),
			Field:      f,
			Kind:       models.KindOutro,
			Percentual: decimal.Zero,
		})
	}
	return b
}

func contaID(b *store.Book, f models.DREField) *int {
	for i := range b.Contas {
		if b.Contas[i].Field == f {
			return &b.Contas[i].ID
		}
	}
	return nil
}

func setPercent(b *store.Book, f models.DREField, pct float64) {
	for i := range b.Contas {
		if b.Contas[i].Field == f {
			b.Contas[i].Percentual = decimal.NewFromFloat(pct)
		}
	}
}

func addEntry(b *store.Book, f models.DREField, valor float64, status models.Status, baixa string) {
	dir := models.DirectionReceber
	if status == models.StatusPago {
		dir = models.DirectionPagar
	}
	b.Lancamentos = append(b.Lancamentos, models.Lancamento{
		ID:             b.AllocLancID(),
		Direction:      dir,
		DataVencimento: "01/03/2024",
		Valor:          decimal.NewFromFloat(valor),
		Status:         status,
		DataBaixa:      baixa,
		ContaDREID:     contaID(b, f),
	})
}

func assertIdentities(t *testing.T, v models.DREValues) {
	t.Helper()
	assert.True(t, v.ReceitaLiquida.Add(v.Impostos).Equal(v.ReceitaBruta),
		"receita_liquida + impostos must equal receita_bruta")
	assert.True(t, v.LucroBruto.Add(v.Custo).Equal(v.ReceitaLiquida),
		"lucro_bruto + custo must equal receita_liquida")
	assert.True(t, v.ResultadoOperacional.Add(v.DespesasAdmin).Equal(v.LucroBruto),
		"resultado_operacional + despesas must equal lucro_bruto")
	assert.True(t, v.ResultadoPeriodo.Add(v.DistribuicaoLucro).Equal(v.ResultadoOperacional),
		"resultado_periodo + distribuicao must equal resultado_operacional")
}

func TestComputeBasicScenario(t *testing.T) {
	b := newBook()
	addEntry(b, models.FieldReceitaBruta, 500, models.StatusRecebido, "10/03/2024")
	addEntry(b, models.FieldCusto, 100, models.StatusPago, "11/03/2024")

	v := NewEngine(b, Policy{}).Compute("", "")

	assert.True(t, v.ReceitaBruta.Equal(decimal.NewFromInt(500)))
	assert.True(t, v.Custo.Equal(decimal.NewFromInt(100)))
	assert.True(t, v.Impostos.IsZero())
	assert.True(t, v.ReceitaLiquida.Equal(decimal.NewFromInt(500)))
	assert.True(t, v.LucroBruto.Equal(decimal.NewFromInt(400)))
	assert.True(t, v.ResultadoOperacional.Equal(decimal.NewFromInt(400)))
	assert.True(t, v.ResultadoPeriodo.Equal(decimal.NewFromInt(400)))
	assertIdentities(t, v)
}

func TestComputePercentageAccounts(t *testing.T) {
	b := newBook()
	setPercent(b, models.FieldImpostos, 5)
	setPercent(b, models.FieldDespesasAdmin, 10)
	addEntry(b, models.FieldReceitaBruta, 1000, models.StatusRecebido, "10/03/2024")

	v := NewEngine(b, Policy{}).Compute("", "")

	assert.True(t, v.Impostos.Equal(decimal.NewFromInt(50)), "5%% of 1000, got %s", v.Impostos)
	assert.True(t, v.DespesasAdmin.Equal(decimal.NewFromInt(100)), "10%% of 1000, got %s", v.DespesasAdmin)
	assert.True(t, v.ReceitaLiquida.Equal(decimal.NewFromInt(950)))
	assert.True(t, v.ResultadoOperacional.Equal(decimal.NewFromInt(850)))
	assertIdentities(t, v)
}

func TestComputeExcludesPendingEntries(t *testing.T) {
	b := newBook()
	addEntry(b, models.FieldReceitaBruta, 500, models.StatusRecebido, "10/03/2024")
	addEntry(b, models.FieldReceitaBruta, 999, models.StatusPendente, "")

	tests := []struct {
		name   string
		inicio string
		fim    string
	}{
		{"No filter", "", ""},
		{"With filter", "01/03/2024", "31/03/2024"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewEngine(b, Policy{}).Compute(tc.inicio, tc.fim)
			assert.True(t, v.ReceitaBruta.Equal(decimal.NewFromInt(500)))
		})
	}
}

func TestComputeExcludesUnresolvableAccounts(t *testing.T) {
	b := newBook()
	addEntry(b, models.FieldReceitaBruta, 500, models.StatusRecebido, "10/03/2024")

	unknown := 999
	b.Lancamentos = append(b.Lancamentos,
		models.Lancamento{
			ID: b.AllocLancID(), Direction: models.DirectionReceber,
			Valor: decimal.NewFromInt(111), Status: models.StatusRecebido,
			DataBaixa: "10/03/2024", ContaDREID: &unknown,
		},
		models.Lancamento{
			ID: b.AllocLancID(), Direction: models.DirectionReceber,
			Valor: decimal.NewFromInt(222), Status: models.StatusRecebido,
			DataBaixa: "10/03/2024", ContaDREID: nil,
		},
	)

	v := NewEngine(b, Policy{}).Compute("", "")
	assert.True(t, v.ReceitaBruta.Equal(decimal.NewFromInt(500)))
}

func TestComputeDateFilter(t *testing.T) {
	b := newBook()
	addEntry(b, models.FieldReceitaBruta, 100, models.StatusRecebido, "15/03/2024")
	addEntry(b, models.FieldReceitaBruta, 200, models.StatusRecebido, "15/04/2024")
	// Settled but no settlement date recorded: excluded under a filter,
	// included without one.
	b.Lancamentos = append(b.Lancamentos, models.Lancamento{
		ID: b.AllocLancID(), Direction: models.DirectionReceber,
		Valor: decimal.NewFromInt(400), Status: models.StatusRecebido,
		ContaDREID: contaID(b, models.FieldReceitaBruta),
	})

	tests := []struct {
		name     string
		inicio   string
		fim      string
		expected int64
	}{
		{"March only", "01/03/2024", "31/03/2024", 100},
		{"April only", "01/04/2024", "30/04/2024", 200},
		{"Both months", "01/03/2024", "30/04/2024", 300},
		{"Bounds inclusive", "15/03/2024", "15/04/2024", 300},
		{"No filter includes undated", "", "", 700},
		{"Only start given disables filter", "01/03/2024", "", 700},
		{"Unparseable bounds disable filter", "03-2024", "04-2024", 700},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewEngine(b, Policy{}).Compute(tc.inicio, tc.fim)
			assert.True(t, v.ReceitaBruta.Equal(decimal.NewFromInt(tc.expected)),
				"expected %d, got %s", tc.expected, v.ReceitaBruta)
		})
	}
}

func TestComputeInvertedRangeYieldsZero(t *testing.T) {
	b := newBook()
	setPercent(b, models.FieldImpostos, 5)
	addEntry(b, models.FieldReceitaBruta, 1000, models.StatusRecebido, "15/03/2024")

	// Start after end: the bounds parse, so the filter stays active and
	// nothing can satisfy it.
	v := NewEngine(b, Policy{}).Compute("01/04/2024", "01/03/2024")

	assert.True(t, v.ReceitaBruta.IsZero())
	assert.True(t, v.Impostos.IsZero())
	assert.True(t, v.ResultadoPeriodo.IsZero())
	assertIdentities(t, v)
}

func TestComputeDirectTaxAndAdminPolicy(t *testing.T) {
	build := func() *store.Book {
		b := newBook()
		setPercent(b, models.FieldImpostos, 5)
		addEntry(b, models.FieldReceitaBruta, 1000, models.StatusRecebido, "10/03/2024")
		addEntry(b, models.FieldImpostos, 30, models.StatusPago, "11/03/2024")
		addEntry(b, models.FieldDespesasAdmin, 20, models.StatusPago, "11/03/2024")
		return b
	}

	t.Run("Percentage only", func(t *testing.T) {
		v := NewEngine(build(), Policy{DirectTaxAndAdmin: false}).Compute("", "")
		assert.True(t, v.Impostos.Equal(decimal.NewFromInt(50)),
			"direct entries ignored, got %s", v.Impostos)
		assert.True(t, v.DespesasAdmin.IsZero())
	})

	t.Run("Direct plus percentage", func(t *testing.T) {
		v := NewEngine(build(), Policy{DirectTaxAndAdmin: true}).Compute("", "")
		assert.True(t, v.Impostos.Equal(decimal.NewFromInt(80)),
			"30 direct + 50 percentage, got %s", v.Impostos)
		assert.True(t, v.DespesasAdmin.Equal(decimal.NewFromInt(20)))
		assertIdentities(t, v)
	})
}

func TestComputeInformationalFields(t *testing.T) {
	b := newBook()
	addEntry(b, models.FieldReceitaBruta, 1000, models.StatusRecebido, "10/03/2024")
	addEntry(b, models.FieldInvestimento, 300, models.StatusPago, "11/03/2024")
	addEntry(b, models.FieldEmprestimos, 200, models.StatusRecebido, "12/03/2024")
	addEntry(b, models.FieldDistribuicaoLucro, 150, models.StatusPago, "13/03/2024")

	v := NewEngine(b, Policy{}).Compute("", "")

	assert.True(t, v.Investimento.Equal(decimal.NewFromInt(300)))
	assert.True(t, v.Emprestimos.Equal(decimal.NewFromInt(200)))
	// Investimento and Emprestimos stay out of the bottom line.
	assert.True(t, v.ResultadoPeriodo.Equal(decimal.NewFromInt(850)),
		"1000 - 150 distribuicao, got %s", v.ResultadoPeriodo)
	assertIdentities(t, v)
}

func TestLinesOrder(t *testing.T) {
	b := newBook()
	addEntry(b, models.FieldReceitaBruta, 100, models.StatusRecebido, "10/03/2024")

	lines := NewEngine(b, Policy{}).Compute("", "").Lines()
	require.Len(t, lines, 11)
	assert.Equal(t, "Receita Bruta", lines[0].Nome)
	assert.Equal(t, "Resultado do Período", lines[10].Nome)
}
