// Package ledger provides CRUD over receivable and payable entries.
//
// Settlement consistency is enforced here rather than trusted to the
// caller: pending entries must not carry a settlement date, settled
// entries must, and the settled status must match the entry direction.
package ledger

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"caixadre/internal/bookerr"
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

// Service manages ledger entries on a book.
type Service struct {
	book *store.Book
}

// NewService creates a ledger service over the given book.
func NewService(b *store.Book) *Service {
	return &Service{book: b}
}

// Input carries the fields of a new entry. Valor accepts both the
// canonical form ("1234.56") and the Brazilian form ("1.234,56").
type Input struct {
	Direction      models.Direction
	DataVencimento string
	Entidade       string
	Descricao      string
	Valor          string
	Status         models.Status
	DataBaixa      string
	ContaBanco     string
	ContaDREID     *int
	CategoriaTexto string
}

// Add validates the input and appends a new entry with a monotonically
// assigned ID.
func (s *Service) Add(in Input) (models.Lancamento, error) {
	valor, err := currencyutils.ParseAmount(in.Valor)
	if err != nil {
		return models.Lancamento{}, &bookerr.ParseError{Field: "valor", Value: in.Valor, Err: err}
	}

	l := models.Lancamento{
		Direction:      in.Direction,
		DataVencimento: in.DataVencimento,
		Entidade:       in.Entidade,
		Descricao:      in.Descricao,
		Valor:          valor,
		Status:         in.Status,
		DataBaixa:      in.DataBaixa,
		ContaBanco:     in.ContaBanco,
		ContaDREID:     in.ContaDREID,
		CategoriaTexto: in.CategoriaTexto,
	}
	if err := s.validate(l); err != nil {
		return models.Lancamento{}, err
	}

	l.ID = s.book.AllocLancID()
	s.book.Lancamentos = append(s.book.Lancamentos, l)
	s.book.Persist()

	log.WithFields(logrus.Fields{
		"id":     l.ID,
		"tipo":   l.Direction,
		"status": l.Status,
		"valor":  l.Valor,
	}).Debug("Added ledger entry")
	return l, nil
}

// Patch carries the fields of a partial update; nil fields are left
// untouched. ClearContaDRE drops the account reference.
type Patch struct {
	Direction      *models.Direction
	DataVencimento *string
	Entidade       *string
	Descricao      *string
	Valor          *string
	Status         *models.Status
	DataBaixa      *string
	ContaBanco     *string
	ContaDREID     *int
	ClearContaDRE  bool
	CategoriaTexto *string
}

// Update applies a partial update and re-validates the merged entry.
// Returns false when the ID is unknown.
func (s *Service) Update(id int, p Patch) (bool, error) {
	for i := range s.book.Lancamentos {
		if s.book.Lancamentos[i].ID != id {
			continue
		}

		merged := s.book.Lancamentos[i]
		if p.Direction != nil {
			merged.Direction = *p.Direction
		}
		if p.DataVencimento != nil {
			merged.DataVencimento = *p.DataVencimento
		}
		if p.Entidade != nil {
			merged.Entidade = *p.Entidade
		}
		if p.Descricao != nil {
			merged.Descricao = *p.Descricao
		}
		if p.Valor != nil {
			valor, err := currencyutils.ParseAmount(*p.Valor)
			if err != nil {
				return false, &bookerr.ParseError{Field: "valor", Value: *p.Valor, Err: err}
			}
			merged.Valor = valor
		}
		if p.Status != nil {
			merged.Status = *p.Status
		}
		if p.DataBaixa != nil {
			merged.DataBaixa = *p.DataBaixa
		}
		if p.ContaBanco != nil {
			merged.ContaBanco = *p.ContaBanco
		}
		if p.ClearContaDRE {
			merged.ContaDREID = nil
		} else if p.ContaDREID != nil {
			merged.ContaDREID = p.ContaDREID
		}
		if p.CategoriaTexto != nil {
			merged.CategoriaTexto = *p.CategoriaTexto
		}

		if err := s.validate(merged); err != nil {
			return false, err
		}

		s.book.Lancamentos[i] = merged
		s.book.Persist()
		return true, nil
	}
	return false, nil
}

// Remove deletes an entry. Returns false when the ID is unknown.
func (s *Service) Remove(id int) bool {
	for i := range s.book.Lancamentos {
		if s.book.Lancamentos[i].ID == id {
			s.book.Lancamentos = append(s.book.Lancamentos[:i], s.book.Lancamentos[i+1:]...)
			s.book.Persist()
			return true
		}
	}
	return false
}

// Settle marks an entry as received or paid on the given date, picking
// the status that matches its direction.
func (s *Service) Settle(id int, dataBaixa string) error {
	for i := range s.book.Lancamentos {
		if s.book.Lancamentos[i].ID != id {
			continue
		}
		merged := s.book.Lancamentos[i]
		if merged.Direction == models.DirectionReceber {
			merged.Status = models.StatusRecebido
		} else {
			merged.Status = models.StatusPago
		}
		merged.DataBaixa = dataBaixa
		if err := s.validate(merged); err != nil {
			return err
		}
		s.book.Lancamentos[i] = merged
		s.book.Persist()
		return nil
	}
	return &bookerr.ValidationError{Field: "id", Reason: "unknown ledger entry id " + strconv.Itoa(id)}
}

// Get returns the entry with the given ID.
func (s *Service) Get(id int) (models.Lancamento, bool) {
	for _, l := range s.book.Lancamentos {
		if l.ID == id {
			return l, true
		}
	}
	return models.Lancamento{}, false
}

// ListByDirection returns all receivables or all payables, in insertion
// order.
func (s *Service) ListByDirection(d models.Direction) []models.Lancamento {
	var out []models.Lancamento
	for _, l := range s.book.Lancamentos {
		if l.Direction == d {
			out = append(out, l)
		}
	}
	return out
}

// All returns every entry in insertion order. The slice is a copy.
func (s *Service) All() []models.Lancamento {
	out := make([]models.Lancamento, len(s.book.Lancamentos))
	copy(out, s.book.Lancamentos)
	return out
}

func (s *Service) validate(l models.Lancamento) error {
	if !l.Direction.Valid() {
		return &bookerr.ValidationError{Field: "tipo", Reason: "unknown direction: " + string(l.Direction)}
	}
	if !l.Status.Valid() {
		return &bookerr.ValidationError{Field: "status", Reason: "unknown status: " + string(l.Status)}
	}
	if !currencyutils.IsPositive(l.Valor) {
		return &bookerr.ValidationError{Field: "valor", Reason: "amount must be greater than zero"}
	}
	if !dateutils.IsValid(l.DataVencimento) {
		return &bookerr.ParseError{Field: "data_vencimento", Value: l.DataVencimento, Err: errInvalidDate}
	}

	if l.Status == models.StatusPendente && l.DataBaixa != "" {
		return &bookerr.ValidationError{Field: "data_baixa",
			Reason: "a pending entry cannot carry a settlement date"}
	}
	if l.Status.IsSettled() {
		if l.DataBaixa == "" {
			return &bookerr.ValidationError{Field: "data_baixa",
				Reason: "status " + string(l.Status) + " requires a settlement date"}
		}
		if !dateutils.IsValid(l.DataBaixa) {
			return &bookerr.ParseError{Field: "data_baixa", Value: l.DataBaixa, Err: errInvalidDate}
		}
		if !l.Status.MatchesDirection(l.Direction) {
			return &bookerr.ValidationError{Field: "status",
				Reason: "status " + string(l.Status) + " does not match direction " + string(l.Direction)}
		}
	}

	if l.ContaDREID != nil {
		found := false
		for _, c := range s.book.Contas {
			if c.ID == *l.ContaDREID {
				found = true
				break
			}
		}
		if !found {
			return &bookerr.ValidationError{Field: "conta_dre_id",
				Reason: "unknown account id " + strconv.Itoa(*l.ContaDREID)}
		}
	}
	if l.ContaBanco != "" && !s.book.Bancos.Contains(l.ContaBanco) {
		return &bookerr.ValidationError{Field: "conta_banco",
			Reason: "unknown bank: " + l.ContaBanco}
	}
	return nil
}

var errInvalidDate = &bookerr.ValidationError{Field: "data", Reason: "expected DD/MM/YYYY"}
