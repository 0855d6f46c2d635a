package pricing

import (
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/shopspring/decimal"
)

// Tables is the static pricing configuration. Base prices and exchange
// rates are USD-denominated and injected, so operators can change them
// without touching code and without affecting already-snapshotted orders.
type Tables struct {
	BasePrices          map[domain.ServiceType]float64
	AcademicMultipliers map[domain.AcademicLevel]float64
	CurrencyRates       map[string]float64
	Urgency24h          float64
}

// DefaultAcademicMultipliers is the fixed four-tier table.
func DefaultAcademicMultipliers() map[domain.AcademicLevel]float64 {
	return map[domain.AcademicLevel]float64{
		domain.LevelHighSchool: 1.0,
		domain.LevelBachelor:   1.2,
		domain.LevelMasters:    1.5,
		domain.LevelPhD:        2.0,
	}
}

type Breakdown struct {
	BasePrice          float64 `json:"base_price"`
	AcademicMultiplier float64 `json:"academic_multiplier"`
	UrgencyMultiplier  float64 `json:"urgency_multiplier"`
	TotalPrice         float64 `json:"total_price"`
	TotalPriceUSD      float64 `json:"total_price_usd"`
	Currency           string  `json:"currency"`
}

// Engine computes deterministic quotes. It holds no mutable state and is
// safe under arbitrary concurrency.
type Engine struct {
	tables Tables
}

func NewEngine(tables Tables) *Engine {
	if tables.AcademicMultipliers == nil {
		tables.AcademicMultipliers = DefaultAcademicMultipliers()
	}
	if tables.Urgency24h == 0 {
		tables.Urgency24h = 2.0
	}
	return &Engine{tables: tables}
}

// Quote turns (service type, academic level, urgency window, currency)
// into a price breakdown. Unknown inputs fail loudly: the legacy system
// silently defaulted them, which masked operator typos in the price table.
func (e *Engine) Quote(service domain.ServiceType, level domain.AcademicLevel, daysUntilDeadline int, currency string) (*Breakdown, error) {
	base, ok := e.tables.BasePrices[service]
	if !ok {
		return nil, domain.ErrInvalidServiceType
	}

	academic, ok := e.tables.AcademicMultipliers[level]
	if !ok {
		return nil, domain.ErrInvalidAcademicLevel
	}

	urgency := e.UrgencyMultiplier(daysUntilDeadline)

	// Rounding happens once, at the conversion point, so multiplier and
	// rate errors do not compound.
	totalUSD := decimal.NewFromFloat(base).
		Mul(decimal.NewFromFloat(academic)).
		Mul(decimal.NewFromFloat(urgency))

	total := totalUSD
	if currency != "USD" {
		rate, ok := e.tables.CurrencyRates[currency]
		if !ok {
			return nil, domain.ErrInvalidCurrency
		}
		total = totalUSD.Mul(decimal.NewFromFloat(rate))
	}

	return &Breakdown{
		BasePrice:          base,
		AcademicMultiplier: academic,
		UrgencyMultiplier:  urgency,
		TotalPrice:         total.Round(2).InexactFloat64(),
		TotalPriceUSD:      totalUSD.Round(2).InexactFloat64(),
		Currency:           currency,
	}, nil
}

// UrgencyMultiplier is a step function of the days left until the
// deadline. Boundaries are inclusive on the lower day count: exactly two
// days maps to the 1.5 tier, not 1.3.
func (e *Engine) UrgencyMultiplier(daysUntilDeadline int) float64 {
	switch {
	case daysUntilDeadline <= 1:
		return e.tables.Urgency24h
	case daysUntilDeadline <= 2:
		return 1.5
	case daysUntilDeadline <= 3:
		return 1.3
	case daysUntilDeadline <= 5:
		return 1.1
	default:
		return 1.0
	}
}

// SupportedCurrency reports whether a currency code can be quoted.
func (e *Engine) SupportedCurrency(currency string) bool {
	if currency == "USD" {
		return true
	}
	_, ok := e.tables.CurrencyRates[currency]
	return ok
}

// DaysUntil computes whole days from now to the deadline, floored and
// clamped to at least 1 so near-immediate deadlines hit the 24h tier
// instead of producing multiplier anomalies.
func DaysUntil(now, deadline time.Time) int {
	days := int(deadline.Sub(now).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
