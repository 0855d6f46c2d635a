package pricing

import (
	"testing"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTables() Tables {
	return Tables{
		BasePrices: map[domain.ServiceType]float64{
			domain.ServiceAssignment:   20,
			domain.ServiceProject:      50,
			domain.ServicePresentation: 30,
			domain.ServiceRedesign:     25,
			domain.ServiceSummary:      15,
			domain.ServiceExpress:      50,
		},
		AcademicMultipliers: DefaultAcademicMultipliers(),
		CurrencyRates: map[string]float64{
			"USD": 1.0,
			"JOD": 0.71,
			"AED": 3.67,
			"SAR": 3.75,
		},
		Urgency24h: 2.0,
	}
}

func TestUrgencyMultiplier_Steps(t *testing.T) {
	engine := NewEngine(testTables())

	tests := []struct {
		days int
		want float64
	}{
		{1, 2.0},
		{2, 1.5},
		{3, 1.3},
		{4, 1.1},
		{5, 1.1},
		{6, 1.0},
		{30, 1.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.UrgencyMultiplier(tt.days), "days=%d", tt.days)
	}
}

func TestQuote_USD(t *testing.T) {
	engine := NewEngine(testTables())

	breakdown, err := engine.Quote(domain.ServiceAssignment, domain.LevelBachelor, 1, "USD")
	require.NoError(t, err)

	assert.Equal(t, 20.0, breakdown.BasePrice)
	assert.Equal(t, 1.2, breakdown.AcademicMultiplier)
	assert.Equal(t, 2.0, breakdown.UrgencyMultiplier)
	assert.Equal(t, 48.0, breakdown.TotalPrice)
	assert.Equal(t, 48.0, breakdown.TotalPriceUSD)
	assert.Equal(t, "USD", breakdown.Currency)
}

func TestQuote_CurrencyConversionRoundsOnce(t *testing.T) {
	engine := NewEngine(testTables())

	// 50 * 1.5 * 1.3 = 97.5 USD; 97.5 * 3.67 = 357.825 AED, rounded 357.83.
	breakdown, err := engine.Quote(domain.ServiceProject, domain.LevelMasters, 3, "AED")
	require.NoError(t, err)
	assert.Equal(t, 97.5, breakdown.TotalPriceUSD)
	assert.Equal(t, 357.83, breakdown.TotalPrice)

	// 15 * 2.0 * 1.1 = 33 USD; 33 * 0.71 = 23.43 JOD exactly.
	breakdown, err = engine.Quote(domain.ServiceSummary, domain.LevelPhD, 5, "JOD")
	require.NoError(t, err)
	assert.Equal(t, 33.0, breakdown.TotalPriceUSD)
	assert.Equal(t, 23.43, breakdown.TotalPrice)
}

func TestQuote_UnknownInputsFail(t *testing.T) {
	engine := NewEngine(testTables())

	_, err := engine.Quote("thesis", domain.LevelBachelor, 3, "USD")
	assert.ErrorIs(t, err, domain.ErrInvalidServiceType)

	_, err = engine.Quote(domain.ServiceAssignment, "postdoc", 3, "USD")
	assert.ErrorIs(t, err, domain.ErrInvalidAcademicLevel)

	_, err = engine.Quote(domain.ServiceAssignment, domain.LevelBachelor, 3, "EUR")
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)
}

func TestSupportedCurrency(t *testing.T) {
	engine := NewEngine(testTables())

	assert.True(t, engine.SupportedCurrency("USD"))
	assert.True(t, engine.SupportedCurrency("JOD"))
	assert.False(t, engine.SupportedCurrency("EUR"))
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"under a day clamps to 1", now.Add(6 * time.Hour), 1},
		{"exactly two days", now.Add(48 * time.Hour), 2},
		{"partial days floor", now.Add(71 * time.Hour), 2},
		{"past deadline clamps to 1", now.Add(-time.Hour), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(now, tt.deadline))
		})
	}
}
