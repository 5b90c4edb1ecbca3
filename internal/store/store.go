package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"caixadre/internal/bookerr"
)

// DefaultFileName is the data file used when no path is configured.
const DefaultFileName = "dados_sistema.json"

// NoopPersister discards every flush. Used by tests and by callers that
// manage persistence themselves.
type NoopPersister struct{}

// Persist implements Persister.
func (NoopPersister) Persist(*Book) error { return nil }

// FilePersister writes the whole book to a single JSON file on every
// flush, via a temp file renamed over the target so a crash mid-write
// cannot leave a truncated document behind.
type FilePersister struct {
	Path string
}

// Persist implements Persister.
func (p FilePersister) Persist(b *Book) error {
	return Save(p.Path, b)
}

// Load reads the data file into a fresh book. A missing file yields an
// empty book seeded with the default chart of accounts. An unreadable or
// malformed file yields a fully empty book with counters reset to 1;
// this is a silent-recovery policy, logged but not returned as an error.
func Load(path string, p Persister) *Book {
	b := NewBook(p)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Info("No data file found, seeding default chart of accounts")
			seedDefaultChart(b)
			return b
		}
		log.WithError(err).WithField("file", path).Warn("Failed to read data file, starting empty")
		return b
	}

	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		log.WithError(err).WithField("file", path).Warn("Data file is malformed, starting empty")
		return b
	}

	s.restore(b)
	log.WithFields(logrus.Fields{
		"contas":      len(b.Contas),
		"lancamentos": len(b.Lancamentos),
		"bancos":      b.Bancos.Len(),
		"categorias":  b.Categorias.Len(),
	}).Debug("Loaded data file")
	return b
}

// Save serializes the whole book and replaces the data file in one shot.
func Save(path string, b *Book) error {
	data, err := json.MarshalIndent(snapshotOf(b), "", "  ")
	if err != nil {
		return &bookerr.PersistenceError{Op: "marshal", Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return &bookerr.PersistenceError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &bookerr.PersistenceError{Op: "write", Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &bookerr.PersistenceError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
