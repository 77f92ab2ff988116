package scenarios

import (
	"github.com/iwvelando/buy-vs-lease/pkg/loans"
	"github.com/iwvelando/buy-vs-lease/pkg/mathutil"
)

// ResolvePreliminary derives the one-time starting quantities consumed by
// both scenario calculators: down payment, financed principal, dealer fees,
// the fixed monthly loan payment, and the effective investment return rate.
func ResolvePreliminary(buy BuyParameters, lease LeaseParameters) PreliminaryValues {
	downPaymentAmount := mathutil.ApplyPercentage(buy.VehiclePrice, buy.DownPaymentPercentage)
	loanAmount := buy.VehiclePrice - downPaymentAmount
	dealerFeesAmount := mathutil.ApplyPercentage(buy.VehiclePrice, buy.DealerFeesPercentage)

	return PreliminaryValues{
		LoanAmount:           loanAmount,
		DownPaymentAmount:    downPaymentAmount,
		DealerFeesAmount:     dealerFeesAmount,
		MonthlyLoanPayment:   loans.MonthlyPayment(loanAmount, buy.LoanInterestRateAnnual, buy.LoanTermYears),
		InvestmentReturnRate: ResolveInvestmentReturnRate(lease),
		// Vehicles have no tax-free capital gains exclusion; the field is
		// kept generic for asset classes that do.
		TaxFreeCapitalGainAmount: 0,
	}
}
