package scenarios

import (
	"math"

	"github.com/iwvelando/buy-vs-lease/pkg/mathutil"
)

// LeaseYear computes one projection year of the lease-and-invest scenario.
//
// buyPass1 must be the same year's buy result computed without lease
// feedback; its tax-adjusted outflow defines how much surplus cash the
// lessee has available to invest. previous is the prior year's lease result
// (nil in year 1).
func LeaseYear(year int, lease LeaseParameters, buyPass1 YearlyBuyResult, previous *YearlyLeaseResult, preliminary PreliminaryValues) YearlyLeaseResult {
	// Growth compounds from year 1, so year 1 equals the base rate exactly.
	monthlyLease := lease.MonthlyPayment * mathutil.CompoundFactor(lease.GrowthRateAnnual, year-1)
	annualLeaseCost := monthlyLease * 12
	cashOutflow := annualLeaseCost

	// The lessee invests only the positive surplus versus what the buyer
	// spent this year; leasing never borrows to invest.
	investedThisYear := math.Max(0, buyPass1.AdjustedCashOutflow-cashOutflow)

	var portfolioBeforeGrowth, totalCashInvested float64
	if year == 1 || previous == nil {
		portfolioBeforeGrowth = investedThisYear
		totalCashInvested = investedThisYear
	} else {
		portfolioBeforeGrowth = previous.PortfolioValue + investedThisYear
		totalCashInvested = previous.TotalCashInvested + investedThisYear
	}

	investmentReturn := mathutil.ApplyPercentage(portfolioBeforeGrowth, preliminary.InvestmentReturnRate)
	portfolioValue := portfolioBeforeGrowth + investmentReturn

	// Liquidate path: cash out the portfolio and pay capital gains tax on
	// the gain over cost basis. Investment gains have no tax-free
	// threshold; a portfolio loss is never taxed.
	capitalGain := portfolioValue - totalCashInvested
	taxableGain := math.Max(0, capitalGain)
	taxOnGain := mathutil.ApplyPercentage(taxableGain, lease.CapitalGainsTaxRateInvestment)

	return YearlyLeaseResult{
		Year:                  year,
		MonthlyLease:          monthlyLease,
		AnnualLeaseCost:       annualLeaseCost,
		CashOutflow:           cashOutflow,
		InvestedThisYear:      investedThisYear,
		PortfolioBeforeGrowth: portfolioBeforeGrowth,
		InvestmentReturn:      investmentReturn,
		PortfolioValue:        portfolioValue,
		TotalCashInvested:     totalCashInvested,
		NetWorthHold:          portfolioValue,
		NetWorthLiquidate:     portfolioValue - taxOnGain,
		CapitalGain:           capitalGain,
		TaxableGain:           taxableGain,
		TaxOnGain:             taxOnGain,
	}
}
