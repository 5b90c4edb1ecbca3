// Package registry provides CRUD over the chart of accounts.
package registry

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"caixadre/internal/bookerr"
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

// Service manages chart-of-accounts entries on a book. Account names are
// not required to be unique; lookups by name return the first match.
type Service struct {
	book *store.Book
}

// NewService creates a registry service over the given book.
func NewService(b *store.Book) *Service {
	return &Service{book: b}
}

// Add creates a new account with a monotonically assigned ID.
func (s *Service) Add(nome string, field models.DREField, kind models.AccountKind, percentual decimal.Decimal) (models.Conta, error) {
	if nome == "" {
		return models.Conta{}, &bookerr.ValidationError{Field: "nome", Reason: "account name is required"}
	}
	if !field.Valid() {
		return models.Conta{}, &bookerr.ValidationError{Field: "dre_field", Reason: "unknown statement field: " + string(field)}
	}
	if !kind.Valid() {
		return models.Conta{}, &bookerr.ValidationError{Field: "tipo", Reason: "unknown account kind: " + string(kind)}
	}
	if percentual.IsNegative() {
		return models.Conta{}, &bookerr.ValidationError{Field: "percentual", Reason: "percentage cannot be negative"}
	}

	c := models.Conta{
		ID:         s.book.AllocContaID(),
		Nome:       nome,
		Field:      field,
		Kind:       kind,
		Percentual: percentual,
	}
	s.book.Contas = append(s.book.Contas, c)
	s.book.Persist()

	log.WithFields(logrus.Fields{
		"id":    c.ID,
		"nome":  c.Nome,
		"field": c.Field,
	}).Debug("Added chart account")
	return c, nil
}

// Update replaces every field of the identified account. Returns false
// when the ID is unknown.
func (s *Service) Update(id int, nome string, field models.DREField, kind models.AccountKind, percentual decimal.Decimal) bool {
	for i := range s.book.Contas {
		if s.book.Contas[i].ID == id {
			s.book.Contas[i].Nome = nome
			s.book.Contas[i].Field = field
			s.book.Contas[i].Kind = kind
			s.book.Contas[i].Percentual = percentual
			s.book.Persist()
			return true
		}
	}
	return false
}

// Remove deletes an account. It is rejected while any ledger entry still
// references the account; the registry is left unchanged in that case.
func (s *Service) Remove(id int) error {
	refs := 0
	for _, l := range s.book.Lancamentos {
		if l.ContaDREID != nil && *l.ContaDREID == id {
			refs++
		}
	}
	if refs > 0 {
		return &bookerr.ReferenceError{Entity: "conta", Key: strconv.Itoa(id), Count: refs}
	}

	for i := range s.book.Contas {
		if s.book.Contas[i].ID == id {
			s.book.Contas = append(s.book.Contas[:i], s.book.Contas[i+1:]...)
			s.book.Persist()
			return nil
		}
	}
	return &bookerr.ValidationError{Field: "id", Reason: "unknown account id " + strconv.Itoa(id)}
}

// GetByID returns the account with the given ID.
func (s *Service) GetByID(id int) (models.Conta, bool) {
	for _, c := range s.book.Contas {
		if c.ID == id {
			return c, true
		}
	}
	return models.Conta{}, false
}

// GetByName returns the first account with the given name.
func (s *Service) GetByName(nome string) (models.Conta, bool) {
	for _, c := range s.book.Contas {
		if c.Nome == nome {
			return c, true
		}
	}
	return models.Conta{}, false
}

// ListByKind returns all accounts of the given kind, in insertion order.
func (s *Service) ListByKind(kind models.AccountKind) []models.Conta {
	var out []models.Conta
	for _, c := range s.book.Contas {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// All returns every account in insertion order. The slice is a copy.
func (s *Service) All() []models.Conta {
	out := make([]models.Conta, len(s.book.Contas))
	copy(out, s.book.Contas)
	return out
}
