package commerce

import (
	"github.com/shopspring/decimal"
)

// MoneyType discriminates the typed money representations used by the
// commerce platform.
type MoneyType string

const (
	// MoneyTypeCentPrecision stores the amount as an integer number of cents
	MoneyTypeCentPrecision MoneyType = "centPrecision"
	// MoneyTypeHighPrecision stores the amount with extra fraction digits
	MoneyTypeHighPrecision MoneyType = "highPrecision"
)

// TypedMoney is a platform monetary amount. The amount is always an
// integer scaled by FractionDigits; high precision amounts carry the
// scaled value in PreciseAmount instead of CentAmount.
type TypedMoney struct {
	Type           MoneyType `json:"type,omitempty"`
	CurrencyCode   string    `json:"currencyCode,omitempty"`
	CentAmount     int64     `json:"centAmount"`
	FractionDigits int32     `json:"fractionDigits"`
	PreciseAmount  int64     `json:"preciseAmount,omitempty"`
}

// Decimal converts the typed amount into a plain decimal value,
// e.g. {centAmount: 1250, fractionDigits: 2} -> 12.50.
func (m TypedMoney) Decimal() decimal.Decimal {
	amount := m.CentAmount
	if m.Type == MoneyTypeHighPrecision {
		amount = m.PreciseAmount
	}
	return decimal.New(amount, -m.FractionDigits)
}

// IsZero returns true if the normalized amount is zero.
func (m TypedMoney) IsZero() bool {
	return m.Decimal().IsZero()
}
