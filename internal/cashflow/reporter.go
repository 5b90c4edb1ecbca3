// Package cashflow builds the chronological inflow/outflow report with
// a running balance.
package cashflow

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"caixadre/internal/dateutils"
	"caixadre/internal/models"
	"caixadre/internal/store"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Filter restricts the report. Empty strings and the "Todos"/"Todas"
// sentinels bypass the respective filter.
type Filter struct {
	DataInicio string
	DataFim    string
	Categoria  string
	Banco      string
}

// Report is the computed cash flow: ordered rows plus totals.
type Report struct {
	Rows          []models.CashFlowRow
	TotalEntradas decimal.Decimal
	TotalSaidas   decimal.Decimal
	SaldoFinal    decimal.Decimal
}

// Reporter computes cash-flow reports over a book.
type Reporter struct {
	book *store.Book
}

// NewReporter creates a cash-flow reporter over the given book.
func NewReporter(b *store.Book) *Reporter {
	return &Reporter{book: b}
}

func bypassed(filter string) bool {
	return filter == "" || filter == "Todos" || filter == "Todas"
}

// Compute builds the report. Entries are ordered by settlement date when
// present, otherwise due date, parsed as true dates. Only settled
// entries contribute: receivables marked Recebido as inflow, payables
// marked Pago as outflow. The running balance accumulates inflow minus
// outflow row by row in date order.
func (r *Reporter) Compute(f Filter) Report {
	var start, end time.Time
	dateFilter := f.DataInicio != "" && f.DataFim != ""
	if dateFilter {
		var err error
		start, err = dateutils.ParseDate(f.DataInicio)
		if err == nil {
			end, err = dateutils.ParseDate(f.DataFim)
		}
		if err != nil {
			log.WithError(err).Warn("Invalid period bounds, disabling date filter")
			dateFilter = false
		}
	}

	type dated struct {
		entry models.Lancamento
		date  time.Time
		ok    bool
	}
	entries := make([]dated, 0, len(r.book.Lancamentos))
	for _, l := range r.book.Lancamentos {
		d, err := dateutils.ParseDate(l.EffectiveDate())
		entries = append(entries, dated{entry: l, date: d, ok: err == nil})
	}
	// String-lexicographic order on DD/MM/YYYY is wrong across months
	// and years, so sort on the parsed dates. Unparseable dates go last.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ok != entries[j].ok {
			return entries[i].ok
		}
		if !entries[i].ok {
			return false
		}
		return dateutils.CompareDates(entries[i].date, entries[j].date) < 0
	})

	report := Report{}
	saldo := decimal.Zero
	for _, d := range entries {
		l := d.entry
		if !bypassed(f.Categoria) && l.CategoriaTexto != f.Categoria {
			continue
		}
		if !bypassed(f.Banco) && l.ContaBanco != f.Banco {
			continue
		}
		if dateFilter {
			if !d.ok || !dateutils.InRange(d.date, start, end) {
				continue
			}
		}

		entrada := decimal.Zero
		saida := decimal.Zero
		switch {
		case l.Direction == models.DirectionReceber && l.Status == models.StatusRecebido:
			entrada = l.Valor
			report.TotalEntradas = report.TotalEntradas.Add(entrada)
		case l.Direction == models.DirectionPagar && l.Status == models.StatusPago:
			saida = l.Valor
			report.TotalSaidas = report.TotalSaidas.Add(saida)
		default:
			continue
		}

		saldo = saldo.Add(entrada).Sub(saida)
		tipo := "Receita"
		if l.Direction == models.DirectionPagar {
			tipo = "Despesa"
		}
		report.Rows = append(report.Rows, models.CashFlowRow{
			Data:      l.EffectiveDate(),
			Tipo:      tipo,
			Descricao: l.Descricao,
			Categoria: l.CategoriaTexto,
			Banco:     l.ContaBanco,
			Entrada:   entrada,
			Saida:     saida,
			Saldo:     saldo,
		})
	}

	report.SaldoFinal = report.TotalEntradas.Sub(report.TotalSaidas)
	return report
}
