package backend

import (
	"context"
	"fmt"

	"addressbook/internal/log"
	"addressbook/internal/sheets"
	gsheet "addressbook/internal/sheets/google"
	memledger "addressbook/internal/sheets/memory"
	"addressbook/internal/storage"
	"addressbook/internal/storage/jsonfile"
	"addressbook/internal/storage/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(_ context.Context, config Config) (*StoreResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteStore(config)
	case JSONBackend:
		return f.createJSONStore(config)
	case MemoryBackend:
		return f.createMemoryStore()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteStore(config Config) (*StoreResult, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)

	return &StoreResult{
		Store:   repo,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createJSONStore(config Config) (*StoreResult, error) {
	store := jsonfile.New(config.DataFile)

	f.logger.Info("Initialized JSON file backend", "data_file", store.Path())

	return &StoreResult{Store: store}, nil
}

func (f *DefaultFactory) createMemoryStore() (*StoreResult, error) {
	store := memory.NewWithSampleData()

	f.logger.Info("Initialized memory backend with sample contacts")

	return &StoreResult{Store: store}, nil
}

// CreateLedger returns the Google Sheets ledger when a spreadsheet is
// configured and an in-memory ledger otherwise.
func (f *DefaultFactory) CreateLedger(ctx context.Context, config Config) (sheets.Ledger, error) {
	if config.GoogleSpreadsheetID == "" {
		f.logger.Warn("No spreadsheet configured, payments are kept in memory only")
		return memledger.NewLedger(), nil
	}

	cli, err := gsheet.New(ctx, gsheet.Options{
		SpreadsheetID:      config.GoogleSpreadsheetID,
		SheetName:          config.GoogleSheetName,
		ServiceAccountJSON: config.GoogleServiceAccountJSON,
		ServiceAccountFile: config.GoogleServiceAccountFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}

	f.logger.Info("Initialized Google Sheets ledger", "sheet", cli.SheetName())

	return cli, nil
}
