// Package loans provides vehicle loan payment and amortization utilities.
package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/buy-vs-lease/pkg/constants"
	"github.com/iwvelando/buy-vs-lease/pkg/mathutil"
	"go.uber.org/zap"
)

// YearBreakdown holds one projection year's share of the amortization
// schedule.
type YearBreakdown struct {
	Year             int     `json:"year"`
	InterestPaid     float64 `json:"interestPaid"`
	PrincipalPaid    float64 `json:"principalPaid"`
	RemainingBalance float64 `json:"remainingBalance"`
	TotalPaid        float64 `json:"totalPaid"`
}

// MonthlyPayment calculates the fixed monthly payment for a loan using the
// standard annuity formula M = P·i(1+i)^n / ((1+i)^n − 1) with monthly
// compounding.
//
// A principal or annual rate at or below zero is treated as a degenerate
// loan (full cash purchase or unmodeled promotional financing) and yields no
// payment. The straight-line fallback below sits behind the rate guard and
// is therefore unreachable; it is retained deliberately to preserve
// long-standing behavior.
func MonthlyPayment(principal, annualInterestRate float64, termYears int) float64 {
	if principal <= 0 || annualInterestRate <= 0 {
		return 0
	}

	monthlyRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	numberOfPayments := termYears * constants.MonthsPerYear

	if monthlyRate == 0 {
		return principal / float64(numberOfPayments)
	}

	power := math.Pow(1.00+monthlyRate, float64(numberOfPayments))
	return principal * monthlyRate * power / (power - 1.00)
}

// Schedule simulates month-by-month paydown at the fixed payment and
// aggregates it into exactly one YearBreakdown per projection year, in year
// order. The principal portion of each payment is clamped to the remaining
// balance so the final partial payment never overshoots. Once the loan
// retires, the remaining years are emitted with zero interest and principal
// and a frozen cumulative total; a term longer than the horizon is simply
// cut off at projectionYears.
func Schedule(logger *zap.Logger, principal, annualInterestRate float64, termYears, projectionYears int) []YearBreakdown {
	if logger == nil {
		logger = zap.NewNop()
	}

	monthlyPayment := MonthlyPayment(principal, annualInterestRate, termYears)
	monthlyRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)

	remainingBalance := principal
	totalPaid := 0.00
	schedule := make([]YearBreakdown, 0, projectionYears)

	for year := 1; year <= projectionYears; year++ {
		annualInterest := 0.00
		annualPrincipal := 0.00

		for month := 1; month <= constants.MonthsPerYear && remainingBalance > 0; month++ {
			interestPayment := remainingBalance * monthlyRate
			principalPayment := math.Min(monthlyPayment-interestPayment, remainingBalance)

			annualInterest += interestPayment
			annualPrincipal += principalPayment
			remainingBalance -= principalPayment
			totalPaid += monthlyPayment

			// Snap sub-cent residue to zero so the payoff month actually
			// retires the loan instead of leaking a stub payment into the
			// following year.
			if mathutil.IsZero(remainingBalance) {
				remainingBalance = 0
			}
		}

		schedule = append(schedule, YearBreakdown{
			Year:             year,
			InterestPaid:     annualInterest,
			PrincipalPaid:    annualPrincipal,
			RemainingBalance: math.Max(0, remainingBalance),
			TotalPaid:        totalPaid,
		})

		// Once retired the loan is never reactivated; pad out the horizon
		// with zeroed years.
		if remainingBalance <= 0 {
			logger.Debug(fmt.Sprintf("loan retired in year %d after %.2f paid", year, totalPaid),
				zap.String("op", "loans.Schedule"),
			)
			for remainingYear := year + 1; remainingYear <= projectionYears; remainingYear++ {
				schedule = append(schedule, YearBreakdown{
					Year:      remainingYear,
					TotalPaid: totalPaid,
				})
			}
			break
		}
	}

	return schedule
}
