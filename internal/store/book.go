// Package store owns the in-memory book and its persistence to the
// single JSON data file. Mutations flow through the registry and ledger
// services, which call Persist after every change.
package store

import (
	"github.com/sirupsen/logrus"

	"caixadre/internal/bookerr"
	"caixadre/internal/models"
	"caixadre/internal/refdata"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Persister flushes the book to durable storage. The default wiring uses
// a FilePersister so every mutation hits disk; tests use NoopPersister.
type Persister interface {
	Persist(b *Book) error
}

// Book is the whole in-memory state: chart of accounts, ledger entries,
// bank and category names, and the two monotonic ID counters. IDs are
// never reused after deletion.
type Book struct {
	Contas      []models.Conta
	Lancamentos []models.Lancamento
	Bancos      refdata.Set
	Categorias  refdata.Set
	NextContaID int
	NextLancID  int

	persister Persister
}

// NewBook returns an empty book with counters at 1.
func NewBook(p Persister) *Book {
	if p == nil {
		p = NoopPersister{}
	}
	return &Book{
		NextContaID: 1,
		NextLancID:  1,
		persister:   p,
	}
}

// Persist flushes the book through the injected persister. Save errors
// are reported but never crash the process.
func (b *Book) Persist() error {
	if err := b.persister.Persist(b); err != nil {
		log.WithError(err).Warn("Failed to persist book")
		return err
	}
	return nil
}

// AllocContaID returns the next chart-account ID and advances the counter.
func (b *Book) AllocContaID() int {
	id := b.NextContaID
	b.NextContaID++
	return id
}

// AllocLancID returns the next ledger-entry ID and advances the counter.
func (b *Book) AllocLancID() int {
	id := b.NextLancID
	b.NextLancID++
	return id
}

// AddBanco adds a bank name. Returns false for empty or duplicate names.
func (b *Book) AddBanco(nome string) bool {
	if !b.Bancos.Add(nome) {
		return false
	}
	b.Persist()
	return true
}

// RemoveBanco removes a bank name. It is rejected while any ledger entry
// still references the bank.
func (b *Book) RemoveBanco(nome string) (bool, error) {
	if n := b.countBancoRefs(nome); n > 0 {
		return false, &bookerr.ReferenceError{Entity: "banco", Key: nome, Count: n}
	}
	if !b.Bancos.Remove(nome) {
		return false, nil
	}
	b.Persist()
	return true, nil
}

// AddCategoria adds a category name. Returns false for empty or
// duplicate names.
func (b *Book) AddCategoria(nome string) bool {
	if !b.Categorias.Add(nome) {
		return false
	}
	b.Persist()
	return true
}

// RemoveCategoria removes a category name. It is rejected while any
// ledger entry still references the category.
func (b *Book) RemoveCategoria(nome string) (bool, error) {
	if n := b.countCategoriaRefs(nome); n > 0 {
		return false, &bookerr.ReferenceError{Entity: "categoria", Key: nome, Count: n}
	}
	if !b.Categorias.Remove(nome) {
		return false, nil
	}
	b.Persist()
	return true, nil
}

func (b *Book) countBancoRefs(nome string) int {
	n := 0
	for _, l := range b.Lancamentos {
		if l.ContaBanco == nome {
			n++
		}
	}
	return n
}

func (b *Book) countCategoriaRefs(nome string) int {
	n := 0
	for _, l := range b.Lancamentos {
		if l.CategoriaTexto == nome {
			n++
		}
	}
	return n
}
