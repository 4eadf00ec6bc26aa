package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTransactionValidate(t *testing.T) {
	valid := func() *Transaction {
		return &Transaction{
			ID:        "tx-1",
			AccountID: "acc-1",
			Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			AssetName: "Apple",
			Symbol:    "AAPL",
			Unit:      "share",
			AssetType: AssetTypeStock,
			Credit:    decimal.NewFromInt(10),
		}
	}

	tests := []struct {
		name          string
		mutate        func(*Transaction)
		expectError   bool
		expectedError string
	}{
		{
			name:   "valid credit transaction",
			mutate: func(tx *Transaction) {},
		},
		{
			name: "valid debit transaction",
			mutate: func(tx *Transaction) {
				tx.Credit = decimal.Zero
				tx.Debit = decimal.NewFromInt(3)
			},
		},
		{
			name: "both sides set is accepted",
			mutate: func(tx *Transaction) {
				tx.Debit = decimal.NewFromInt(1)
			},
		},
		{
			name:          "missing date",
			mutate:        func(tx *Transaction) { tx.Date = time.Time{} },
			expectError:   true,
			expectedError: "date is required",
		},
		{
			name:          "missing account",
			mutate:        func(tx *Transaction) { tx.AccountID = "" },
			expectError:   true,
			expectedError: "account_id is required",
		},
		{
			name:          "missing asset name",
			mutate:        func(tx *Transaction) { tx.AssetName = "" },
			expectError:   true,
			expectedError: "asset_name is required",
		},
		{
			name:          "missing symbol",
			mutate:        func(tx *Transaction) { tx.Symbol = "" },
			expectError:   true,
			expectedError: "symbol is required",
		},
		{
			name:          "negative credit",
			mutate:        func(tx *Transaction) { tx.Credit = decimal.NewFromInt(-5) },
			expectError:   true,
			expectedError: "credit must be non-negative",
		},
		{
			name: "negative debit",
			mutate: func(tx *Transaction) {
				tx.Debit = decimal.NewFromInt(-5)
			},
			expectError:   true,
			expectedError: "debit must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid()
			tt.mutate(tx)
			err := tx.Validate()

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got none")
					return
				}
				if tt.expectedError != "" && err.Error() != tt.expectedError {
					t.Errorf("Expected error '%s' but got '%s'", tt.expectedError, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Expected no error but got: %v", err)
				}
			}
		})
	}
}

func TestTransactionNet(t *testing.T) {
	tests := []struct {
		name   string
		credit decimal.Decimal
		debit  decimal.Decimal
		want   decimal.Decimal
	}{
		{name: "credit only", credit: decimal.NewFromInt(50), want: decimal.NewFromInt(50)},
		{name: "debit only", debit: decimal.NewFromInt(30), want: decimal.NewFromInt(-30)},
		{name: "both sides", credit: decimal.NewFromInt(50), debit: decimal.NewFromInt(20), want: decimal.NewFromInt(30)},
		{name: "zero movement", want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &Transaction{Credit: tt.credit, Debit: tt.debit}
			if got := tx.Net(); !got.Equal(tt.want) {
				t.Errorf("Net() = %s, want %s", got.String(), tt.want.String())
			}
		})
	}
}

func TestHoldingIdentity(t *testing.T) {
	h := &Holding{AccountID: "acc-1", AssetName: "Bitcoin", Symbol: "BTC", AssetType: AssetTypeCrypto}
	id := h.Identity()
	if id.Name != "Bitcoin" || id.Symbol != "BTC" || id.Type != AssetTypeCrypto {
		t.Errorf("unexpected identity: %+v", id)
	}
}
