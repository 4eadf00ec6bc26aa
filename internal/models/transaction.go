package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single immutable ledger movement. At most one
// of Credit/Debit is expected to be non-zero in well-formed input, but
// the ledger does not require this; the balance recurrence always applies
// both sides.
type Transaction struct {
	ID        string          `json:"id" gorm:"column:id;type:varchar(255);primaryKey"`
	AccountID string          `json:"account_id" gorm:"column:account_id;type:varchar(255);not null;index"`
	Date      time.Time       `json:"date" gorm:"column:date;type:date;not null;index"`
	AssetName string          `json:"asset_name" gorm:"column:asset_name;type:varchar(255);not null;index"`
	Symbol    string          `json:"symbol" gorm:"column:symbol;type:varchar(50);not null"`
	Unit      string          `json:"unit" gorm:"column:unit;type:varchar(50)"`
	AssetType AssetType       `json:"asset_type" gorm:"column:asset_type;type:varchar(20);not null"`
	Credit    decimal.Decimal `json:"credit" gorm:"column:credit;type:decimal(30,18);not null;default:0"`
	Debit     decimal.Decimal `json:"debit" gorm:"column:debit;type:decimal(30,18);not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// Validate validates the transaction data
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		return errors.New("date is required")
	}
	if t.AccountID == "" {
		return errors.New("account_id is required")
	}
	if t.AssetName == "" {
		return errors.New("asset_name is required")
	}
	if t.Symbol == "" {
		return errors.New("symbol is required")
	}
	if t.Credit.IsNegative() {
		return errors.New("credit must be non-negative")
	}
	if t.Debit.IsNegative() {
		return errors.New("debit must be non-negative")
	}
	return nil
}

// Net returns the signed quantity movement of the transaction
func (t *Transaction) Net() decimal.Decimal {
	return t.Credit.Sub(t.Debit)
}

// LedgerEntry is a transaction annotated with the running balance of its
// asset immediately before and after the movement. Entries are computed
// views owned by the ledger that produced them.
type LedgerEntry struct {
	Transaction
	TotalBalanceBefore decimal.Decimal `json:"total_balance_before"`
	TotalBalanceAfter  decimal.Decimal `json:"total_balance_after"`
}
