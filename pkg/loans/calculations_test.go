package loans

import (
	"math"
	"testing"

	"go.uber.org/zap"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name               string
		principal          float64
		annualInterestRate float64
		termYears          int
		expectedRange      []float64 // [min, max] expected range
	}{
		{
			name:               "Standard 5-year vehicle loan",
			principal:          28000,
			annualInterestRate: 5.5,
			termYears:          5,
			expectedRange:      []float64{530, 540}, // Around $535
		},
		{
			name:               "3-year economy loan",
			principal:          20000,
			annualInterestRate: 5.0,
			termYears:          3,
			expectedRange:      []float64{595, 605}, // Around $599
		},
		{
			name:               "High interest loan",
			principal:          10000,
			annualInterestRate: 18.0,
			termYears:          3,
			expectedRange:      []float64{360, 380}, // Around $372
		},
		{
			name:               "Zero rate is a degenerate loan, not straight-line",
			principal:          12000,
			annualInterestRate: 0.0,
			termYears:          5,
			expectedRange:      []float64{0, 0}, // The rate guard wins before the principal/n fallback
		},
		{
			name:               "Full cash purchase",
			principal:          0,
			annualInterestRate: 5.5,
			termYears:          5,
			expectedRange:      []float64{0, 0},
		},
		{
			name:               "Negative principal",
			principal:          -1000,
			annualInterestRate: 5.5,
			termYears:          5,
			expectedRange:      []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyPayment(tt.principal, tt.annualInterestRate, tt.termYears)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("MonthlyPayment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestScheduleFullyAmortizes(t *testing.T) {
	logger := zap.NewNop()
	principal := 28000.0
	rate := 5.5
	termYears := 5

	schedule := Schedule(logger, principal, rate, termYears, termYears)

	if len(schedule) != termYears {
		t.Fatalf("expected %d records, got %d", termYears, len(schedule))
	}

	final := schedule[len(schedule)-1]
	if final.RemainingBalance > 0.01 {
		t.Errorf("final balance %.4f, expected 0 within a cent", final.RemainingBalance)
	}

	// Every month paid the fixed payment, so the cumulative total must be
	// payment times the number of months.
	monthlyPayment := MonthlyPayment(principal, rate, termYears)
	expectedTotal := monthlyPayment * float64(termYears*12)
	if math.Abs(final.TotalPaid-expectedTotal) > 0.01 {
		t.Errorf("cumulative paid %.2f, expected %.2f", final.TotalPaid, expectedTotal)
	}

	// Interest plus principal for a full year equals twelve payments.
	for _, year := range schedule[:len(schedule)-1] {
		annualPaid := year.InterestPaid + year.PrincipalPaid
		if math.Abs(annualPaid-monthlyPayment*12) > 0.01 {
			t.Errorf("year %d paid %.2f, expected %.2f", year.Year, annualPaid, monthlyPayment*12)
		}
	}
}

func TestScheduleBalanceMonotonic(t *testing.T) {
	schedule := Schedule(zap.NewNop(), 28000, 5.5, 5, 8)

	previousBalance := math.Inf(1)
	for _, year := range schedule {
		if year.RemainingBalance > previousBalance {
			t.Errorf("year %d balance %.2f exceeds previous %.2f", year.Year, year.RemainingBalance, previousBalance)
		}
		previousBalance = year.RemainingBalance
	}
}

func TestScheduleRetiredLoanStaysRetired(t *testing.T) {
	// 3-year loan over an 6-year horizon: years 4-6 carry no payments and a
	// frozen cumulative total.
	schedule := Schedule(zap.NewNop(), 20000, 5.0, 3, 6)

	if len(schedule) != 6 {
		t.Fatalf("expected 6 records, got %d", len(schedule))
	}

	payoffTotal := schedule[2].TotalPaid
	for _, year := range schedule[3:] {
		if year.InterestPaid != 0 || year.PrincipalPaid != 0 {
			t.Errorf("year %d has payments after payoff: interest %.2f principal %.2f",
				year.Year, year.InterestPaid, year.PrincipalPaid)
		}
		if year.RemainingBalance != 0 {
			t.Errorf("year %d balance %.2f after payoff", year.Year, year.RemainingBalance)
		}
		if year.TotalPaid != payoffTotal {
			t.Errorf("year %d cumulative %.2f, expected frozen %.2f", year.Year, year.TotalPaid, payoffTotal)
		}
	}
}

func TestScheduleTruncatedAtHorizon(t *testing.T) {
	// 10-year loan projected for 4 years: the schedule is cut off, not the
	// loan, so a balance remains.
	schedule := Schedule(zap.NewNop(), 40000, 6.0, 10, 4)

	if len(schedule) != 4 {
		t.Fatalf("expected 4 records, got %d", len(schedule))
	}
	if schedule[3].RemainingBalance <= 0 {
		t.Errorf("expected outstanding balance at the horizon, got %.2f", schedule[3].RemainingBalance)
	}
}

func TestScheduleDegenerateLoan(t *testing.T) {
	// A zero-rate loan has no payment, so the balance never moves.
	schedule := Schedule(zap.NewNop(), 12000, 0, 5, 2)

	if len(schedule) != 2 {
		t.Fatalf("expected 2 records, got %d", len(schedule))
	}
	for _, year := range schedule {
		if year.InterestPaid != 0 || year.PrincipalPaid != 0 || year.TotalPaid != 0 {
			t.Errorf("year %d has activity for a degenerate loan: %+v", year.Year, year)
		}
		if year.RemainingBalance != 12000 {
			t.Errorf("year %d balance %.2f, expected untouched 12000", year.Year, year.RemainingBalance)
		}
	}
}

func TestScheduleNilLogger(t *testing.T) {
	schedule := Schedule(nil, 20000, 5.0, 3, 3)
	if len(schedule) != 3 {
		t.Fatalf("expected 3 records, got %d", len(schedule))
	}
}
