// Package projection drives the year-by-year buy versus lease comparison
// and assembles the full multi-year result set.
package projection

import (
	"fmt"

	"github.com/iwvelando/buy-vs-lease/pkg/loans"
	"github.com/iwvelando/buy-vs-lease/pkg/scenarios"
	"go.uber.org/zap"
)

// Settings controls the projection horizon and the presentation-only
// display modes. The display flags never affect computed numbers.
type Settings struct {
	ProjectionYears int
	ShowCashOut     bool
	ShowYearlyMode  bool
}

// YearlyCalculation pairs the final buy and lease results for one year.
type YearlyCalculation struct {
	Year  int                         `json:"year"`
	Buy   scenarios.YearlyBuyResult   `json:"buy"`
	Lease scenarios.YearlyLeaseResult `json:"lease"`
}

// CalculationResults holds the complete output of one projection run.
type CalculationResults struct {
	Preliminary     scenarios.PreliminaryValues `json:"preliminary"`
	Years           []YearlyCalculation         `json:"years"`
	ProjectionYears int                         `json:"projectionYears"`
}

// Run resolves the preliminary values, builds the amortization schedule for
// the whole horizon, then walks the years in strict order. Each year takes
// two buy passes: the first establishes the buy outflow with no lease
// feedback, the lease calculator consumes that to produce its own outflow,
// and the second pass re-derives the buy side's excess-investment
// sub-ledger from the now-known lease outflow. The core cost fields are
// identical between passes, so the dependency stays one-directional and no
// fixed-point iteration is needed. Prior-year state is threaded explicitly;
// Run keeps no state between calls and identical inputs yield identical
// results.
func Run(logger *zap.Logger, buy scenarios.BuyParameters, lease scenarios.LeaseParameters, settings Settings) CalculationResults {
	if logger == nil {
		logger = zap.NewNop()
	}

	preliminary := scenarios.ResolvePreliminary(buy, lease)
	schedule := loans.Schedule(logger, preliminary.LoanAmount, buy.LoanInterestRateAnnual,
		buy.LoanTermYears, settings.ProjectionYears)

	results := CalculationResults{
		Preliminary:     preliminary,
		Years:           make([]YearlyCalculation, 0, settings.ProjectionYears),
		ProjectionYears: settings.ProjectionYears,
	}

	var previousBuy *scenarios.YearlyBuyResult
	var previousLease *scenarios.YearlyLeaseResult

	for year := 1; year <= settings.ProjectionYears; year++ {
		loanYear := schedule[year-1]

		buyPass1 := scenarios.BuyYear(year, buy, loanYear, preliminary, nil, nil)

		leaseResult := scenarios.LeaseYear(year, lease, buyPass1, previousLease, preliminary)

		buyFinal := scenarios.BuyYear(year, buy, loanYear, preliminary, &leaseResult.CashOutflow, previousBuy)

		results.Years = append(results.Years, YearlyCalculation{
			Year:  year,
			Buy:   buyFinal,
			Lease: leaseResult,
		})

		logger.Debug(fmt.Sprintf("year %d: buy net worth %.2f, lease net worth %.2f",
			year, buyFinal.NetWorthHold, leaseResult.NetWorthHold),
			zap.String("op", "projection.Run"),
		)

		latest := &results.Years[len(results.Years)-1]
		previousBuy = &latest.Buy
		previousLease = &latest.Lease
	}

	return results
}
