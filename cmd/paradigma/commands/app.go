// Package commands provides the subcommands of the paradigma CLI.
package commands

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cours-de-latin/paradigma"
	"github.com/cours-de-latin/paradigma/internal/config"
	"github.com/cours-de-latin/paradigma/internal/logging"
)

// App carries the state shared by every subcommand. ConfigPath and
// DataDir are bound to persistent flags; Setup fills the rest.
type App struct {
	ConfigPath string
	DataDir    string

	Config *config.Config
	Logger *zap.Logger

	idx *paradigma.Index
}

// Setup loads the configuration and builds the logger.
func (a *App) Setup() error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	if a.DataDir != "" {
		cfg.DataDir = a.DataDir
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	a.Config = cfg
	a.Logger = logger
	return nil
}

// Index builds the form index from the data directory on first use.
func (a *App) Index() (*paradigma.Index, error) {
	if a.idx != nil {
		return a.idx, nil
	}
	a.Logger.Info("loading lexicon", zap.String("data_dir", a.Config.DataDir))
	idx, err := paradigma.LoadIndex(os.DirFS(a.Config.DataDir),
		paradigma.WithDerivationTables(a.Config.Derivation),
		paradigma.WithLogger(a.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", a.Config.DataDir, err)
	}
	stats := idx.Stats()
	a.Logger.Info("lexicon loaded",
		zap.Int("lemmas", stats.Lemmas),
		zap.Int("derived", stats.Derived),
		zap.Int("forms", stats.Forms),
	)
	a.idx = idx
	return idx, nil
}

// Sync flushes buffered log entries.
func (a *App) Sync() {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}

// printer formats counts with thousands separators.
var printer = message.NewPrinter(language.English)
