// Package statement computes the period income statement (DRE) from
// settled ledger entries.
package statement

import (
	"time"

	"github.com/sirupsen/logrus"

	"caixadre/internal/currencyutils"
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

// Policy selects between the two historical accumulation behaviors for
// the Impostos and Despesas Administrativas lines.
//
// When DirectTaxAndAdmin is false (the default), those two lines are
// fed exclusively by the percentage pass over gross revenue; entries
// classified against them are ignored during direct accumulation. When
// true, such entries accumulate directly and the percentage pass adds
// on top.
type Policy struct {
	DirectTaxAndAdmin bool
}

// Engine aggregates ledger entries into statement values.
type Engine struct {
	book   *store.Book
	policy Policy
}

// NewEngine creates a statement engine over the given book.
func NewEngine(b *store.Book, policy Policy) *Engine {
	return &Engine{book: b, policy: policy}
}

// Compute builds the income statement for the period [periodStart,
// periodEnd], both DD/MM/YYYY and inclusive. Empty or unparseable
// bounds silently disable filtering and every settled entry is
// considered. With an active filter, only settled entries whose
// settlement date parses and falls within the period contribute.
func (e *Engine) Compute(periodStart, periodEnd string) models.DREValues {
	var vals models.DREValues

	var start, end time.Time
	filter := periodStart != "" && periodEnd != ""
	if filter {
		var err error
		start, err = dateutils.ParseDate(periodStart)
		if err == nil {
			end, err = dateutils.ParseDate(periodEnd)
		}
		if err != nil {
			log.WithError(err).Warn("Invalid period bounds, disabling date filter")
			filter = false
		}
	}

	for _, l := range e.book.Lancamentos {
		if !l.Status.IsSettled() {
			continue
		}
		if filter {
			if l.DataBaixa == "" {
				continue
			}
			baixa, err := dateutils.ParseDate(l.DataBaixa)
			if err != nil {
				log.WithFields(logrus.Fields{
					"id":         l.ID,
					"data_baixa": l.DataBaixa,
				}).Debug("Skipping entry with unparseable settlement date")
				continue
			}
			if !dateutils.InRange(baixa, start, end) {
				continue
			}
		}

		conta, ok := e.conta(l.ContaDREID)
		if !ok {
			continue
		}

		if !e.policy.DirectTaxAndAdmin &&
			(conta.Field == models.FieldImpostos || conta.Field == models.FieldDespesasAdmin) {
			continue
		}
		vals.AddToField(conta.Field, l.Valor)
	}

	// Percentage pass: automatic accounts contribute a share of gross
	// revenue regardless of period filtering.
	for _, c := range e.book.Contas {
		if c.Field != models.FieldImpostos && c.Field != models.FieldDespesasAdmin {
			continue
		}
		if !currencyutils.IsPositive(c.Percentual) {
			continue
		}
		share := currencyutils.PercentageOf(vals.ReceitaBruta, c.Percentual)
		vals.AddToField(c.Field, share)
		log.WithFields(logrus.Fields{
			"conta":      c.Nome,
			"percentual": c.Percentual,
			"valor":      share,
		}).Debug("Applied automatic percentage account")
	}

	vals.Derive()
	return vals
}

func (e *Engine) conta(id *int) (models.Conta, bool) {
	if id == nil {
		return models.Conta{}, false
	}
	for _, c := range e.book.Contas {
		if c.ID == *id {
			return c, true
		}
	}
	return models.Conta{}, false
}
