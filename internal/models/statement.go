package models

import "github.com/shopspring/decimal"

// DREValues holds one computed income statement. The first group of
// fields accumulates directly from ledger entries (and from percentage
// accounts for Impostos and DespesasAdmin); the second group is derived
// and never stored independently.
type DREValues struct {
	ReceitaBruta      decimal.Decimal
	Impostos          decimal.Decimal
	Custo             decimal.Decimal
	DespesasAdmin     decimal.Decimal
	Investimento      decimal.Decimal
	Emprestimos       decimal.Decimal
	DistribuicaoLucro decimal.Decimal

	ReceitaLiquida       decimal.Decimal
	LucroBruto           decimal.Decimal
	ResultadoOperacional decimal.Decimal
	ResultadoPeriodo     decimal.Decimal
}

// AddToField accumulates amount into the base field f.
// Derived fields are not valid targets and are ignored.
func (v *DREValues) AddToField(f DREField, amount decimal.Decimal) {
	switch f {
	case FieldReceitaBruta:
		v.ReceitaBruta = v.ReceitaBruta.Add(amount)
	case FieldImpostos:
		v.Impostos = v.Impostos.Add(amount)
	case FieldCusto:
		v.Custo = v.Custo.Add(amount)
	case FieldDespesasAdmin:
		v.DespesasAdmin = v.DespesasAdmin.Add(amount)
	case FieldInvestimento:
		v.Investimento = v.Investimento.Add(amount)
	case FieldEmprestimos:
		v.Emprestimos = v.Emprestimos.Add(amount)
	case FieldDistribuicaoLucro:
		v.DistribuicaoLucro = v.DistribuicaoLucro.Add(amount)
	}
}

// Derive fills the subtotal fields from the base fields, in statement
// order. Investimento and Emprestimos are informational lines and do not
// enter ResultadoPeriodo.
func (v *DREValues) Derive() {
	v.ReceitaLiquida = v.ReceitaBruta.Sub(v.Impostos)
	v.LucroBruto = v.ReceitaLiquida.Sub(v.Custo)
	v.ResultadoOperacional = v.LucroBruto.Sub(v.DespesasAdmin)
	v.ResultadoPeriodo = v.ResultadoOperacional.Sub(v.DistribuicaoLucro)
}

// DRELine is one row of the rendered statement.
type DRELine struct {
	Nome  string          `csv:"linha"`
	Valor decimal.Decimal `csv:"valor"`
}

// Lines returns the statement rows in presentation order.
func (v DREValues) Lines() []DRELine {
	return []DRELine{
		{"Receita Bruta", v.ReceitaBruta},
		{"Impostos", v.Impostos},
		{"Receita Líquida", v.ReceitaLiquida},
		{"Custo", v.Custo},
		{"Lucro Bruto", v.LucroBruto},
		{"Despesas Administrativas", v.DespesasAdmin},
		{"Resultado Operacional", v.ResultadoOperacional},
		{"Investimento", v.Investimento},
		{"Empréstimos", v.Emprestimos},
		{"Distribuição de Lucro", v.DistribuicaoLucro},
		{"Resultado do Período", v.ResultadoPeriodo},
	}
}
