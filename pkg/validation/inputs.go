package validation

import (
	"fmt"

	"github.com/iwvelando/buy-vs-lease/pkg/scenarios"
)

// LoanTermsYears is the enumerated set of supported loan terms.
var LoanTermsYears = []int{3, 5, 7, 10}

// ValidLoanTerm reports whether the term is in the supported set.
func ValidLoanTerm(termYears int) bool {
	for _, term := range LoanTermsYears {
		if termYears == term {
			return true
		}
	}
	return false
}

func checkPercentage(name string, value float64) []string {
	if value < 0 || value > 100 {
		return []string{fmt.Sprintf("%s %.2f is outside [0, 100]", name, value)}
	}
	return nil
}

// ValidateBuyParameters range-checks the buy inputs and returns warnings.
// The engine will still produce structurally complete output for values
// flagged here; it just may not mean anything.
func ValidateBuyParameters(buy scenarios.BuyParameters) []string {
	var warnings []string

	if buy.VehiclePrice < 0 {
		warnings = append(warnings, fmt.Sprintf("vehicle price %.2f is negative", buy.VehiclePrice))
	}
	if !ValidLoanTerm(buy.LoanTermYears) {
		warnings = append(warnings, fmt.Sprintf("loan term %d years is not one of %v", buy.LoanTermYears, LoanTermsYears))
	}
	if buy.LoanInterestRateAnnual < 0 {
		warnings = append(warnings, fmt.Sprintf("loan interest rate %.2f is negative", buy.LoanInterestRateAnnual))
	}
	if buy.DepreciationRateAnnual >= 100 {
		warnings = append(warnings, fmt.Sprintf("depreciation rate %.2f would drive the vehicle value negative", buy.DepreciationRateAnnual))
	}
	if buy.FixedCostsAnnual < 0 {
		warnings = append(warnings, fmt.Sprintf("fixed annual costs %.2f are negative", buy.FixedCostsAnnual))
	}

	warnings = append(warnings, checkPercentage("down payment percentage", buy.DownPaymentPercentage)...)
	warnings = append(warnings, checkPercentage("depreciation rate", buy.DepreciationRateAnnual)...)
	warnings = append(warnings, checkPercentage("dealer fees percentage", buy.DealerFeesPercentage)...)
	warnings = append(warnings, checkPercentage("selling costs percentage", buy.SellingCostsPercentage)...)
	warnings = append(warnings, checkPercentage("insurance and registration rate", buy.InsuranceAndRegistrationRateAnnual)...)
	warnings = append(warnings, checkPercentage("maintenance and fuel rate", buy.MaintenanceAndFuelRateAnnual)...)
	warnings = append(warnings, checkPercentage("marginal tax rate", buy.MarginalTaxRate)...)
	warnings = append(warnings, checkPercentage("vehicle capital gains tax rate", buy.CapitalGainsTaxRateVehicle)...)

	return warnings
}

// ValidateLeaseParameters range-checks the lease inputs and returns warnings.
func ValidateLeaseParameters(lease scenarios.LeaseParameters) []string {
	var warnings []string

	if lease.MonthlyPayment < 0 {
		warnings = append(warnings, fmt.Sprintf("monthly lease payment %.2f is negative", lease.MonthlyPayment))
	}
	if lease.GrowthRateAnnual < 0 {
		warnings = append(warnings, fmt.Sprintf("lease growth rate %.2f is negative", lease.GrowthRateAnnual))
	}
	if lease.InvestmentOption != scenarios.InvestmentOptionCustom {
		if _, ok := scenarios.InvestmentCatalog[lease.InvestmentOption]; !ok {
			warnings = append(warnings, fmt.Sprintf("investment option %q is not in the catalog; the custom return rate will be used", lease.InvestmentOption))
		}
	}
	if lease.InvestmentOption == scenarios.InvestmentOptionCustom && lease.CustomInvestmentReturn < 0 {
		warnings = append(warnings, fmt.Sprintf("custom investment return %.2f is negative", lease.CustomInvestmentReturn))
	}

	warnings = append(warnings, checkPercentage("investment capital gains tax rate", lease.CapitalGainsTaxRateInvestment)...)

	return warnings
}

// ValidateProjectionYears checks the projection horizon.
func ValidateProjectionYears(years int) []string {
	if years <= 0 {
		return []string{fmt.Sprintf("projection years %d must be positive", years)}
	}
	return nil
}
