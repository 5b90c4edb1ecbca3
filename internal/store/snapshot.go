package store

import (
	"github.com/shopspring/decimal"

	"caixadre/internal/models"
	"caixadre/internal/refdata"
)

// The persisted document keeps the historical field names and stores
// monetary values as plain JSON numbers. Percentual is omitted when zero
// so files written by installations without percentage accounts stay
// byte-compatible.

type contaJSON struct {
	ID         int     `json:"id"`
	Nome       string  `json:"nome"`
	DREField   string  `json:"dre_field"`
	Tipo       string  `json:"tipo"`
	Percentual float64 `json:"percentual,omitempty"`
}

type lancamentoJSON struct {
	ID             int     `json:"id"`
	Tipo           string  `json:"tipo"`
	DataVencimento string  `json:"data_vencimento"`
	Entidade       string  `json:"entidade"`
	Descricao      string  `json:"descricao"`
	Valor          float64 `json:"valor"`
	Status         string  `json:"status"`
	DataBaixa      string  `json:"data_baixa"`
	ContaBanco     string  `json:"conta_banco"`
	ContaDREID     *int    `json:"conta_dre_id"`
	CategoriaTexto string  `json:"categoria_texto"`
}

type snapshot struct {
	Contas      []contaJSON      `json:"contas_dre"`
	Lancamentos []lancamentoJSON `json:"lancamentos"`
	Bancos      []string         `json:"bancos"`
	Categorias  []string         `json:"categorias"`
	NextContaID int              `json:"next_conta_dre_id"`
	NextLancID  int              `json:"next_lanc_id"`
}

func snapshotOf(b *Book) snapshot {
	s := snapshot{
		Contas:      make([]contaJSON, 0, len(b.Contas)),
		Lancamentos: make([]lancamentoJSON, 0, len(b.Lancamentos)),
		Bancos:      b.Bancos.All(),
		Categorias:  b.Categorias.All(),
		NextContaID: b.NextContaID,
		NextLancID:  b.NextLancID,
	}
	for _, c := range b.Contas {
		pct, _ := c.Percentual.Float64()
		s.Contas = append(s.Contas, contaJSON{
			ID:         c.ID,
			Nome:       c.Nome,
			DREField:   string(c.Field),
			Tipo:       string(c.Kind),
			Percentual: pct,
		})
	}
	for _, l := range b.Lancamentos {
		valor, _ := l.Valor.Float64()
		s.Lancamentos = append(s.Lancamentos, lancamentoJSON{
			ID:             l.ID,
			Tipo:           string(l.Direction),
			DataVencimento: l.DataVencimento,
			Entidade:       l.Entidade,
			Descricao:      l.Descricao,
			Valor:          valor,
			Status:         string(l.Status),
			DataBaixa:      l.DataBaixa,
			ContaBanco:     l.ContaBanco,
			ContaDREID:     l.ContaDREID,
			CategoriaTexto: l.CategoriaTexto,
		})
	}
	return s
}

func (s snapshot) restore(b *Book) {
	b.Contas = make([]models.Conta, 0, len(s.Contas))
	for _, c := range s.Contas {
		b.Contas = append(b.Contas, models.Conta{
			ID:         c.ID,
			Nome:       c.Nome,
			Field:      models.DREField(c.DREField),
			Kind:       models.AccountKind(c.Tipo),
			Percentual: decimal.NewFromFloat(c.Percentual),
		})
	}
	b.Lancamentos = make([]models.Lancamento, 0, len(s.Lancamentos))
	for _, l := range s.Lancamentos {
		b.Lancamentos = append(b.Lancamentos, models.Lancamento{
			ID:             l.ID,
			Direction:      models.Direction(l.Tipo),
			DataVencimento: l.DataVencimento,
			Entidade:       l.Entidade,
			Descricao:      l.Descricao,
			Valor:          decimal.NewFromFloat(l.Valor),
			Status:         models.Status(l.Status),
			DataBaixa:      l.DataBaixa,
			ContaBanco:     l.ContaBanco,
			ContaDREID:     l.ContaDREID,
			CategoriaTexto: l.CategoriaTexto,
		})
	}
	b.Bancos = refdata.NewSet(s.Bancos)
	b.Categorias = refdata.NewSet(s.Categorias)
	if s.NextContaID > 0 {
		b.NextContaID = s.NextContaID
	}
	if s.NextLancID > 0 {
		b.NextLancID = s.NextLancID
	}
}
