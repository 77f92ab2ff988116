// Package output provides utilities for formatting and displaying
// projection results.
package output

import (
	"fmt"

	"github.com/iwvelando/buy-vs-lease/internal/projection"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
// The cash-out display mode swaps the hold-scenario net worth columns for
// their liquidate counterparts; the yearly-detail mode adds per-year cash
// flow lines. Neither changes any computed number.
func PrettyFormat(results projection.CalculationResults, settings projection.Settings) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Buy vs. lease projection over %d years ---\n", results.ProjectionYears)
	_, _ = p.Printf("Down payment: $%.2f | Dealer fees: $%.2f | Monthly loan payment: $%.2f | Investment return: %.2f%%\n",
		results.Preliminary.DownPaymentAmount,
		results.Preliminary.DealerFeesAmount,
		results.Preliminary.MonthlyLoanPayment,
		results.Preliminary.InvestmentReturnRate,
	)

	scenario := "hold"
	if settings.ShowCashOut {
		scenario = "cash out"
	}
	fmt.Printf("\nNet worth shown for the %s scenario\n", scenario)
	fmt.Printf("Year | Buy Net Worth   | Lease Net Worth | Difference\n")
	fmt.Printf("____ | _____________   | _______________ | __________\n")

	for _, year := range results.Years {
		buyNetWorth := year.Buy.NetWorthHold
		leaseNetWorth := year.Lease.NetWorthHold
		if settings.ShowCashOut {
			buyNetWorth = year.Buy.NetWorthLiquidate
			leaseNetWorth = year.Lease.NetWorthLiquidate
		}

		_, _ = p.Printf("%4d | $%.2f | $%.2f | $%.2f\n",
			year.Year, buyNetWorth, leaseNetWorth, buyNetWorth-leaseNetWorth)

		if settings.ShowYearlyMode {
			_, _ = p.Printf("       buy: outflow $%.2f (adjusted $%.2f), vehicle $%.2f, loan balance $%.2f\n",
				year.Buy.CashOutflow, year.Buy.AdjustedCashOutflow,
				year.Buy.VehicleValue, year.Buy.RemainingLoanBalance)
			_, _ = p.Printf("       lease: outflow $%.2f, invested $%.2f, portfolio $%.2f\n",
				year.Lease.CashOutflow, year.Lease.InvestedThisYear, year.Lease.PortfolioValue)
		}
	}
}

// CsvFormat outputs in comma-separated value format. CSV always carries the
// full column set; the display flags only shape the pretty output.
func CsvFormat(results projection.CalculationResults) {
	fmt.Printf(`"year","buyNetWorthHold","buyNetWorthCashOut","leaseNetWorthHold","leaseNetWorthCashOut","buyCashOutflow","buyAdjustedCashOutflow","leaseCashOutflow","vehicleValue","remainingLoanBalance","leasePortfolioValue","leaseTotalCashInvested"`)
	fmt.Printf("\n")
	for _, year := range results.Years {
		fmt.Printf(`"%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			year.Year,
			year.Buy.NetWorthHold,
			year.Buy.NetWorthLiquidate,
			year.Lease.NetWorthHold,
			year.Lease.NetWorthLiquidate,
			year.Buy.CashOutflow,
			year.Buy.AdjustedCashOutflow,
			year.Lease.CashOutflow,
			year.Buy.VehicleValue,
			year.Buy.RemainingLoanBalance,
			year.Lease.PortfolioValue,
			year.Lease.TotalCashInvested,
		)
		fmt.Printf("\n")
	}
}
