// Package formulas renders human-readable versions of the projection
// formulas with the run's actual values plugged in. Rendering has no effect
// on computed numbers; it exists purely for explanatory display.
package formulas

import (
	"github.com/iwvelando/buy-vs-lease/pkg/constants"
	"github.com/iwvelando/buy-vs-lease/pkg/scenarios"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formulas holds the display strings for each computation rule.
type Formulas struct {
	MonthlyLoanPayment     string `json:"monthlyLoanPayment"`
	VehicleDepreciation    string `json:"vehicleDepreciation"`
	InvestmentGrowth       string `json:"investmentGrowth"`
	LoanInterestDeduction  string `json:"loanInterestDeduction"`
	VehicleCapitalGains    string `json:"vehicleCapitalGains"`
	InvestmentCapitalGains string `json:"investmentCapitalGains"`
}

// Describe renders the formula set for one parameter tuple.
func Describe(buy scenarios.BuyParameters, lease scenarios.LeaseParameters, preliminary scenarios.PreliminaryValues) Formulas {
	p := message.NewPrinter(language.English)

	monthlyRatePercent := buy.LoanInterestRateAnnual / constants.MonthsPerYear
	numberOfPayments := buy.LoanTermYears * constants.MonthsPerYear

	return Formulas{
		MonthlyLoanPayment: p.Sprintf("M = $%.2f × [%.4f%% × (1 + %.4f%%)^%d] / [(1 + %.4f%%)^%d - 1] = $%.2f",
			preliminary.LoanAmount, monthlyRatePercent, monthlyRatePercent, numberOfPayments,
			monthlyRatePercent, numberOfPayments, preliminary.MonthlyLoanPayment),

		VehicleDepreciation: p.Sprintf("Vehicle Value = $%.2f × (1 - %v%%)^Year",
			buy.VehiclePrice, buy.DepreciationRateAnnual),

		InvestmentGrowth: p.Sprintf("Portfolio Value = (Previous Value + New Investment) × (1 + %v%%)",
			preliminary.InvestmentReturnRate),

		LoanInterestDeduction: p.Sprintf("Tax Savings = Annual Interest × %v%%",
			buy.MarginalTaxRate),

		VehicleCapitalGains: p.Sprintf("Vehicle Tax = max(0, (Sale Price - $%.2f) - $%.2f) × %v%%",
			buy.VehiclePrice, preliminary.TaxFreeCapitalGainAmount, buy.CapitalGainsTaxRateVehicle),

		InvestmentCapitalGains: p.Sprintf("Investment Tax = max(0, Portfolio Value - Total Invested) × %v%%",
			lease.CapitalGainsTaxRateInvestment),
	}
}
