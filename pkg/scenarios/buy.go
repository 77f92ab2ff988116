package scenarios

import (
	"math"

	"github.com/iwvelando/buy-vs-lease/pkg/loans"
	"github.com/iwvelando/buy-vs-lease/pkg/mathutil"
)

// BuyYear computes one projection year of the buy scenario.
//
// leaseCashOutflow is nil on the first calculation pass, where the lease
// side's spending is not yet known; the excess-investment sub-ledger is
// skipped entirely in that case. On the second pass it carries the lease
// scenario's cash outflow for the same year, and previous carries the prior
// year's final buy result (nil in year 1). The core cost fields are
// independent of both optional inputs and identical between passes.
func BuyYear(year int, buy BuyParameters, loanYear loans.YearBreakdown, preliminary PreliminaryValues, leaseCashOutflow *float64, previous *YearlyBuyResult) YearlyBuyResult {
	vehicleValue := buy.VehiclePrice * mathutil.CompoundFactor(-buy.DepreciationRateAnnual, year)

	insuranceAndRegistration := mathutil.ApplyPercentage(buy.VehiclePrice, buy.InsuranceAndRegistrationRateAnnual)
	maintenanceAndFuel := mathutil.ApplyPercentage(buy.VehiclePrice, buy.MaintenanceAndFuelRateAnnual)
	fixedCosts := buy.FixedCostsAnnual
	totalHoldingCosts := insuranceAndRegistration + maintenanceAndFuel + fixedCosts

	// Loan service comes straight from the schedule and is already zero once
	// the loan retires.
	loanPayment := loanYear.InterestPaid + loanYear.PrincipalPaid

	taxSavings := 0.00
	if buy.LoanInterestDeduction {
		taxSavings = mathutil.ApplyPercentage(loanYear.InterestPaid, buy.MarginalTaxRate)
	}

	cashOutflow := loanPayment + totalHoldingCosts
	if year == 1 {
		cashOutflow += preliminary.DownPaymentAmount + preliminary.DealerFeesAmount
	}
	adjustedCashOutflow := cashOutflow - taxSavings

	// Excess-investment sub-ledger: when leasing would have cost more this
	// year, the surplus the lessee would have spent is credited to the buyer
	// as additional investable cash, compounding on top of prior years.
	excessPortfolio := 0.00
	excessCostBasis := 0.00
	if leaseCashOutflow != nil {
		contribution := math.Max(0, *leaseCashOutflow-adjustedCashOutflow)

		var beforeGrowth float64
		if year == 1 || previous == nil {
			beforeGrowth = contribution
			excessCostBasis = contribution
		} else {
			beforeGrowth = previous.ExcessPortfolioValue + contribution
			excessCostBasis = previous.ExcessCostBasis + contribution
		}

		growth := mathutil.ApplyPercentage(beforeGrowth, preliminary.InvestmentReturnRate)
		excessPortfolio = beforeGrowth + growth
	}

	netWorthHold := vehicleValue - loanYear.RemainingBalance + excessPortfolio

	// Liquidate path: sell the vehicle net of selling costs, repay the loan,
	// settle taxes on both the vehicle and the sub-ledger. A depreciation
	// loss is never taxed.
	sellingCosts := mathutil.ApplyPercentage(vehicleValue, buy.SellingCostsPercentage)
	proceedsBeforeTaxAndLoan := vehicleValue - sellingCosts
	capitalGain := vehicleValue - buy.VehiclePrice
	taxableGain := math.Max(0, capitalGain-preliminary.TaxFreeCapitalGainAmount)
	taxOnVehicleGain := mathutil.ApplyPercentage(taxableGain, buy.CapitalGainsTaxRateVehicle)

	excessGains := 0.00
	taxOnExcessGains := 0.00
	if excessPortfolio > 0 {
		excessGains = math.Max(0, excessPortfolio-excessCostBasis)
		taxOnExcessGains = mathutil.ApplyPercentage(excessGains, buy.CapitalGainsTaxRateVehicle)
	}

	netWorthLiquidate := proceedsBeforeTaxAndLoan - loanYear.RemainingBalance - taxOnVehicleGain +
		excessPortfolio - taxOnExcessGains

	return YearlyBuyResult{
		Year:                     year,
		VehicleValue:             vehicleValue,
		InsuranceAndRegistration: insuranceAndRegistration,
		MaintenanceAndFuel:       maintenanceAndFuel,
		FixedCosts:               fixedCosts,
		TotalHoldingCosts:        totalHoldingCosts,
		LoanPayment:              loanPayment,
		LoanInterest:             loanYear.InterestPaid,
		LoanPrincipal:            loanYear.PrincipalPaid,
		TaxSavingsFromDeduction:  taxSavings,
		CashOutflow:              cashOutflow,
		AdjustedCashOutflow:      adjustedCashOutflow,
		NetWorthHold:             netWorthHold,
		NetWorthLiquidate:        netWorthLiquidate,
		CapitalGainOnVehicle:     capitalGain,
		TaxableGainOnVehicle:     taxableGain,
		TaxOnVehicleGain:         taxOnVehicleGain,
		RemainingLoanBalance:     loanYear.RemainingBalance,
		ExcessPortfolioValue:     excessPortfolio,
		ExcessCostBasis:          excessCostBasis,
		ExcessGains:              excessGains,
		TaxOnExcessGains:         taxOnExcessGains,
	}
}
