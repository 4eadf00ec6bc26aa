package store

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ltnguyen/folio/internal/models"
)

// Config holds storage configuration
type Config struct {
	Path string
}

// NewConfig creates a storage configuration from environment variables
func NewConfig() *Config {
	return &Config{
		Path: getEnv("DB_PATH", "folio.db"),
	}
}

// Store persists raw holdings, market prices and transactions in an
// embedded SQLite database. It only materializes in-memory collections
// for the engines; all derived views (valuations, ledger entries) are
// recomputed per request and never written back.
type Store struct {
	db *gorm.DB
}

// Open opens the database and migrates the schema
func Open(config *Config) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(config.Path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&models.Transaction{}, &models.Holding{}, &models.MarketPrice{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Health checks if the database connection is healthy
func (s *Store) Health() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// SaveTransaction validates and stores a transaction, minting an ID when
// the caller did not supply one
func (s *Store) SaveTransaction(ctx context.Context, tx *models.Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("transaction validation failed: %w", err)
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// SaveTransactions stores a batch of transactions atomically
func (s *Store) SaveTransactions(ctx context.Context, txs []*models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(dbTx *gorm.DB) error {
		for _, tx := range txs {
			if err := tx.Validate(); err != nil {
				return fmt.Errorf("transaction validation failed: %w", err)
			}
			if tx.ID == "" {
				tx.ID = uuid.NewString()
			}
			if err := dbTx.Create(tx).Error; err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}
		}
		return nil
	})
}

// ListTransactions returns all transactions for an account. Ordering is
// left to the ledger engine.
func (s *Store) ListTransactions(ctx context.Context, accountID string) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// UpsertHolding stores or replaces the holding row for (account, asset)
func (s *Store) UpsertHolding(ctx context.Context, h *models.Holding) error {
	if err := h.Validate(); err != nil {
		return fmt.Errorf("holding validation failed: %w", err)
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(h).Error
	if err != nil {
		return fmt.Errorf("failed to upsert holding: %w", err)
	}
	return nil
}

// ListHoldings returns all holdings for an account in stable asset order
func (s *Store) ListHoldings(ctx context.Context, accountID string) ([]*models.Holding, error) {
	var holdings []*models.Holding
	err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("asset_name asc").
		Find(&holdings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	return holdings, nil
}

// UpsertPrice stores or replaces the quote for (symbol, asset type)
func (s *Store) UpsertPrice(ctx context.Context, p *models.MarketPrice) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("price validation failed: %w", err)
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(p).Error
	if err != nil {
		return fmt.Errorf("failed to upsert price: %w", err)
	}
	return nil
}

// PriceSnapshot materializes the full price table as a lookup map keyed
// by the wire-contract snapshot keys
func (s *Store) PriceSnapshot(ctx context.Context) (map[string]*models.MarketPrice, error) {
	var prices []*models.MarketPrice
	if err := s.db.WithContext(ctx).Find(&prices).Error; err != nil {
		return nil, fmt.Errorf("failed to load price snapshot: %w", err)
	}

	snapshot := make(map[string]*models.MarketPrice, len(prices))
	for _, p := range prices {
		snapshot[p.Key()] = p
	}
	return snapshot, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
