package scenarios

import (
	"math"
	"testing"
)

// fixedBuyResult builds a minimal pass-1 buy record with a known adjusted
// outflow; LeaseYear reads nothing else from it.
func fixedBuyResult(year int, adjustedOutflow float64) YearlyBuyResult {
	return YearlyBuyResult{Year: year, AdjustedCashOutflow: adjustedOutflow}
}

func TestLeaseYearPaymentCompounds(t *testing.T) {
	lease := defaultLeaseParameters()
	preliminary := ResolvePreliminary(defaultBuyParameters(), lease)

	tests := []struct {
		year            int
		expectedMonthly float64
	}{
		{1, 500.00},   // year 1 equals the base rate exactly
		{2, 515.00},   // 500 × 1.03
		{5, 562.754},  // 500 × 1.03^4
		{10, 652.395}, // 500 × 1.03^9
	}

	for _, tt := range tests {
		result := LeaseYear(tt.year, lease, fixedBuyResult(tt.year, 10000), nil, preliminary)
		if math.Abs(result.MonthlyLease-tt.expectedMonthly) > 0.01 {
			t.Errorf("year %d monthly lease %.3f, expected %.3f", tt.year, result.MonthlyLease, tt.expectedMonthly)
		}
		if math.Abs(result.AnnualLeaseCost-result.MonthlyLease*12) > 0.001 {
			t.Errorf("year %d annual cost %.2f is not 12 × monthly %.2f", tt.year, result.AnnualLeaseCost, result.MonthlyLease)
		}
		if result.CashOutflow != result.AnnualLeaseCost {
			t.Errorf("year %d outflow %.2f differs from annual cost %.2f", tt.year, result.CashOutflow, result.AnnualLeaseCost)
		}
	}
}

func TestLeaseYearInvestableNeverNegative(t *testing.T) {
	lease := defaultLeaseParameters()
	preliminary := ResolvePreliminary(defaultBuyParameters(), lease)

	// Lease costs 6000/yr; a buy outflow below that must not drive the
	// investable amount negative.
	result := LeaseYear(1, lease, fixedBuyResult(1, 4000), nil, preliminary)
	if result.InvestedThisYear != 0 {
		t.Errorf("invested %.2f when leasing costs more than buying, expected 0", result.InvestedThisYear)
	}
	if result.PortfolioValue != 0 {
		t.Errorf("portfolio %.2f with nothing invested, expected 0", result.PortfolioValue)
	}

	// A buy outflow above the lease cost invests exactly the surplus.
	surplus := LeaseYear(1, lease, fixedBuyResult(1, 10000), nil, preliminary)
	expected := 10000.0 - surplus.CashOutflow
	if math.Abs(surplus.InvestedThisYear-expected) > 0.01 {
		t.Errorf("invested %.2f, expected surplus %.2f", surplus.InvestedThisYear, expected)
	}
}

func TestLeaseYearPortfolioCompounds(t *testing.T) {
	lease := defaultLeaseParameters()
	preliminary := ResolvePreliminary(defaultBuyParameters(), lease)

	year1 := LeaseYear(1, lease, fixedBuyResult(1, 10000), nil, preliminary)

	expectedInvested := 10000 - year1.CashOutflow
	expectedPortfolio := expectedInvested * (1 + preliminary.InvestmentReturnRate/100)
	if math.Abs(year1.PortfolioValue-expectedPortfolio) > 0.01 {
		t.Errorf("year 1 portfolio %.2f, expected %.2f", year1.PortfolioValue, expectedPortfolio)
	}

	year2 := LeaseYear(2, lease, fixedBuyResult(2, 10000), &year1, preliminary)

	invested2 := 10000 - year2.CashOutflow
	beforeGrowth := year1.PortfolioValue + invested2
	expectedPortfolio2 := beforeGrowth * (1 + preliminary.InvestmentReturnRate/100)
	if math.Abs(year2.PortfolioValue-expectedPortfolio2) > 0.01 {
		t.Errorf("year 2 portfolio %.2f, expected %.2f", year2.PortfolioValue, expectedPortfolio2)
	}

	expectedBasis := year1.TotalCashInvested + invested2
	if math.Abs(year2.TotalCashInvested-expectedBasis) > 0.01 {
		t.Errorf("year 2 cumulative invested %.2f, expected %.2f", year2.TotalCashInvested, expectedBasis)
	}
}

func TestLeaseYearLiquidateTax(t *testing.T) {
	lease := defaultLeaseParameters()
	preliminary := ResolvePreliminary(defaultBuyParameters(), lease)

	result := LeaseYear(1, lease, fixedBuyResult(1, 10000), nil, preliminary)

	if result.NetWorthHold != result.PortfolioValue {
		t.Errorf("hold net worth %.2f differs from portfolio %.2f", result.NetWorthHold, result.PortfolioValue)
	}

	expectedGain := result.PortfolioValue - result.TotalCashInvested
	if math.Abs(result.CapitalGain-expectedGain) > 0.001 {
		t.Errorf("capital gain %.2f, expected %.2f", result.CapitalGain, expectedGain)
	}
	if result.TaxableGain < 0 {
		t.Errorf("taxable gain %.2f is negative", result.TaxableGain)
	}

	expectedTax := result.TaxableGain * lease.CapitalGainsTaxRateInvestment / 100
	if math.Abs(result.TaxOnGain-expectedTax) > 0.001 {
		t.Errorf("tax %.2f, expected %.2f", result.TaxOnGain, expectedTax)
	}
	if math.Abs(result.NetWorthLiquidate-(result.PortfolioValue-result.TaxOnGain)) > 0.001 {
		t.Errorf("liquidate net worth %.2f, expected portfolio minus tax", result.NetWorthLiquidate)
	}
}

func TestLeaseYearPortfolioLossNotTaxed(t *testing.T) {
	lease := defaultLeaseParameters()
	lease.InvestmentOption = InvestmentOptionCustom
	lease.CustomInvestmentReturn = -20
	preliminary := ResolvePreliminary(defaultBuyParameters(), lease)

	result := LeaseYear(1, lease, fixedBuyResult(1, 10000), nil, preliminary)

	if result.CapitalGain >= 0 {
		t.Fatalf("expected a portfolio loss, got gain %.2f", result.CapitalGain)
	}
	if result.TaxableGain != 0 {
		t.Errorf("taxable gain %.2f for a loss, expected exactly 0", result.TaxableGain)
	}
	if result.TaxOnGain != 0 {
		t.Errorf("tax %.2f on a loss, expected 0", result.TaxOnGain)
	}
}
