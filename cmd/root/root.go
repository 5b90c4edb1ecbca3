// Package root contains the root command for the application
package root

import (
	"caixadre/internal/cashflow"
	"caixadre/internal/config"
	"caixadre/internal/currencyutils"
	"caixadre/internal/ledger"
	"caixadre/internal/registry"
	"caixadre/internal/report"
	"caixadre/internal/statement"
	"caixadre/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Book is the opened data store, auto-saving on every mutation
	Book *store.Book

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "caixadre",
		Short: "A bookkeeping CLI for receivables, payables, DRE and cash flow.",
		Long: `caixadre tracks receivables and payables, classifies them against a
chart of accounts mapped to DRE statement lines, and computes the period
income statement and cash-flow report.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to caixadre!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Push the configured logger into the core packages
			store.SetLogger(Log)
			registry.SetLogger(Log)
			ledger.SetLogger(Log)
			statement.SetLogger(Log)
			cashflow.SetLogger(Log)
			report.SetLogger(Log)
			currencyutils.SetLogger(Log)

			report.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])

			Book = store.Load(Cfg.Data.File, store.FilePersister{Path: Cfg.Data.File})
		},
	}
)

// Registry returns a chart-of-accounts service over the opened book.
func Registry() *registry.Service {
	return registry.NewService(Book)
}

// Ledger returns a ledger service over the opened book.
func Ledger() *ledger.Service {
	return ledger.NewService(Book)
}

// Statement returns the statement engine configured by Cfg.
func Statement() *statement.Engine {
	return statement.NewEngine(Book, statement.Policy{
		DirectTaxAndAdmin: Cfg.Statement.DirectTaxAndAdmin,
	})
}

// CashFlow returns the cash-flow reporter over the opened book.
func CashFlow() *cashflow.Reporter {
	return cashflow.NewReporter(Book)
}
