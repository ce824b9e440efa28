// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile represents the single business-identity record of the dashboard:
// company details plus its headline financials. At most one Profile exists
// at any time.
type Profile struct {
	ID          uuid.UUID
	CompanyName string
	Industry    string
	Employees   int
	Revenue     decimal.Decimal
	Costs       decimal.Decimal
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	CashFlow    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfilePatch carries the fields supplied by a caller when setting the
// profile. Nil fields fall back to their zero defaults; ID and CreatedAt
// fall back to the values of the existing profile, when one exists.
type ProfilePatch struct {
	ID          *uuid.UUID
	CompanyName *string
	Industry    *string
	Employees   *int
	Revenue     *decimal.Decimal
	Costs       *decimal.Decimal
	Assets      *decimal.Decimal
	Liabilities *decimal.Decimal
	CashFlow    *decimal.Decimal
	CreatedAt   *time.Time
}

// NewProfile creates a Profile from a patch, applying defaults for every
// omitted field. ID and CreatedAt are taken from previous when the patch
// does not supply them; previous may be nil.
func NewProfile(patch ProfilePatch, previous *Profile) *Profile {
	now := time.Now().UTC()

	profile := &Profile{
		ID:          uuid.New(),
		Revenue:     decimal.Zero,
		Costs:       decimal.Zero,
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		CashFlow:    decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if previous != nil {
		profile.ID = previous.ID
		profile.CreatedAt = previous.CreatedAt
	}
	if patch.ID != nil {
		profile.ID = *patch.ID
	}
	if patch.CreatedAt != nil {
		profile.CreatedAt = *patch.CreatedAt
	}
	if patch.CompanyName != nil {
		profile.CompanyName = *patch.CompanyName
	}
	if patch.Industry != nil {
		profile.Industry = *patch.Industry
	}
	if patch.Employees != nil {
		profile.Employees = *patch.Employees
	}
	if patch.Revenue != nil {
		profile.Revenue = *patch.Revenue
	}
	if patch.Costs != nil {
		profile.Costs = *patch.Costs
	}
	if patch.Assets != nil {
		profile.Assets = *patch.Assets
	}
	if patch.Liabilities != nil {
		profile.Liabilities = *patch.Liabilities
	}
	if patch.CashFlow != nil {
		profile.CashFlow = *patch.CashFlow
	}

	return profile
}
