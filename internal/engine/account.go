package engine

import (
	"github.com/sangkips/distributor-orders/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Account is the buyer a computation is made for.
type Account struct {
	ID                string
	StoreID           string
	PriceTierID       string
	WalletBalance     decimal.Decimal
	CreditLimit       decimal.Decimal
	HasSpecialSchemes bool
}

// AvailableFunds is wallet balance plus credit limit.
func (a *Account) AvailableFunds() decimal.Decimal {
	return a.WalletBalance.Add(a.CreditLimit)
}

// DistributorAccount builds an Account from a distributor record.
func DistributorAccount(d *entity.Distributor) *Account {
	if d == nil {
		return nil
	}
	return &Account{
		ID:                d.ID,
		StoreID:           deref(d.StoreID),
		PriceTierID:       deref(d.PriceTierID),
		WalletBalance:     d.WalletBalance,
		CreditLimit:       d.CreditLimit,
		HasSpecialSchemes: d.HasSpecialSchemes,
	}
}

// StoreAccount builds an Account for a store receiving a dispatch.
func StoreAccount(s *entity.Store) *Account {
	if s == nil {
		return nil
	}
	return &Account{
		ID:            s.ID,
		StoreID:       s.ID,
		WalletBalance: s.WalletBalance,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
