// Package models defines the domain types shared by the bookkeeping core:
// chart-of-accounts entries, ledger entries and the enumerations that
// drive income-statement aggregation.
package models

import (
	"github.com/shopspring/decimal"
)

// DREField identifies the income-statement line an account feeds into.
// The string values are the ones persisted in the data file and must not
// change without a migration.
type DREField string

const (
	FieldReceitaBruta      DREField = "receita_bruta"
	FieldImpostos          DREField = "impostos"
	FieldCusto             DREField = "custo"
	FieldDespesasAdmin     DREField = "despesas_administrativas"
	FieldDistribuicaoLucro DREField = "distribuicao_lucro"
	FieldInvestimento      DREField = "investimento"
	FieldEmprestimos       DREField = "emprestimos"
)

// AccountFields lists every field an account may be mapped to, in
// statement order.
var AccountFields = []DREField{
	FieldReceitaBruta,
	FieldImpostos,
	FieldCusto,
	FieldDespesasAdmin,
	FieldDistribuicaoLucro,
	FieldInvestimento,
	FieldEmprestimos,
}

// Valid reports whether f is one of the recognized account fields.
func (f DREField) Valid() bool {
	switch f {
	case FieldReceitaBruta, FieldImpostos, FieldCusto, FieldDespesasAdmin,
		FieldDistribuicaoLucro, FieldInvestimento, FieldEmprestimos:
		return true
	}
	return false
}

// AccountKind classifies an account as revenue, expense or other.
type AccountKind string

const (
	KindReceita AccountKind = "receita"
	KindDespesa AccountKind = "despesa"
	KindOutro   AccountKind = "outro"
)

// Valid reports whether k is a recognized account kind.
func (k AccountKind) Valid() bool {
	return k == KindReceita || k == KindDespesa || k == KindOutro
}

// Direction tells whether a ledger entry is a receivable or a payable.
type Direction string

const (
	DirectionReceber Direction = "receber"
	DirectionPagar   Direction = "pagar"
)

// Valid reports whether d is a recognized direction.
func (d Direction) Valid() bool {
	return d == DirectionReceber || d == DirectionPagar
}

// Status is the settlement state of a ledger entry.
type Status string

const (
	StatusPendente Status = "Pendente"
	StatusRecebido Status = "Recebido"
	StatusPago     Status = "Pago"
)

// Valid reports whether s is a recognized status.
func (s Status) Valid() bool {
	return s == StatusPendente || s == StatusRecebido || s == StatusPago
}

// IsSettled reports whether the entry has actually been received or paid.
func (s Status) IsSettled() bool {
	return s == StatusRecebido || s == StatusPago
}

// MatchesDirection reports whether a settled status is consistent with
// the entry direction: receivables settle as Recebido, payables as Pago.
// Pendente matches either direction.
func (s Status) MatchesDirection(d Direction) bool {
	switch s {
	case StatusRecebido:
		return d == DirectionReceber
	case StatusPago:
		return d == DirectionPagar
	}
	return true
}

// Conta is a chart-of-accounts entry. Each conta maps ledger entries to
// one income-statement field and may carry an automatic percentage
// applied over gross revenue (impostos / despesas administrativas only).
type Conta struct {
	ID         int
	Nome       string
	Field      DREField
	Kind       AccountKind
	Percentual decimal.Decimal
}

// Lancamento is a single receivable or payable.
// Dates are DD/MM/YYYY strings, matching the persisted format; DataBaixa
// is empty while the entry is pending.
type Lancamento struct {
	ID             int
	Direction      Direction
	DataVencimento string
	Entidade       string
	Descricao      string
	Valor          decimal.Decimal
	Status         Status
	DataBaixa      string
	ContaBanco     string
	ContaDREID     *int
	CategoriaTexto string
}

// EffectiveDate returns the settlement date when present, otherwise the
// due date. Cash-flow ordering uses this.
func (l Lancamento) EffectiveDate() string {
	if l.DataBaixa != "" {
		return l.DataBaixa
	}
	return l.DataVencimento
}
