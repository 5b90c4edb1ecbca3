package models

import "github.com/shopspring/decimal"

// CashFlowRow is one line of the cash-flow report. Entrada and Saida are
// mutually exclusive; Saldo is the running balance after this row.
type CashFlowRow struct {
	Data      string          `csv:"data"`
	Tipo      string          `csv:"tipo"`
	Descricao string          `csv:"descricao"`
	Categoria string          `csv:"categoria"`
	Banco     string          `csv:"banco"`
	Entrada   decimal.Decimal `csv:"entrada"`
	Saida     decimal.Decimal `csv:"saida"`
	Saldo     decimal.Decimal `csv:"saldo"`
}
