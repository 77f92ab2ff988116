// Package scenarios implements the yearly buy and lease calculators and the
// preliminary value resolver shared between them. Every function here is
// pure: records are constructed fresh, never mutated, and prior-year state
// is threaded explicitly by the caller.
package scenarios

// FilingStatus values accepted in BuyParameters. Filing status feeds no
// current computation (the vehicle tax-free carve-out is zero for both) but
// is carried for tax-bracket display.
const (
	FilingStatusSingle  = "single"
	FilingStatusMarried = "married"
)

// BuyParameters holds the immutable inputs for the buy scenario. All rates
// are annual percentages (e.g. 5.5 means 5.5%).
type BuyParameters struct {
	VehiclePrice                       float64
	DownPaymentPercentage              float64
	LoanInterestRateAnnual             float64
	LoanTermYears                      int
	DepreciationRateAnnual             float64
	DealerFeesPercentage               float64
	SellingCostsPercentage             float64
	InsuranceAndRegistrationRateAnnual float64
	MaintenanceAndFuelRateAnnual       float64
	FixedCostsAnnual                   float64
	MarginalTaxRate                    float64
	LoanInterestDeduction              bool
	CapitalGainsTaxRateVehicle         float64
	FilingStatus                       string
}

// LeaseParameters holds the immutable inputs for the lease-and-invest
// scenario.
type LeaseParameters struct {
	MonthlyPayment                float64
	GrowthRateAnnual              float64
	SameAsDepreciation            bool
	InvestmentOption              string
	CustomInvestmentReturn        float64
	CapitalGainsTaxRateInvestment float64
}

// PreliminaryValues holds the one-time quantities derived from the raw
// inputs before the yearly loop starts.
type PreliminaryValues struct {
	LoanAmount               float64 `json:"loanAmount"`
	DownPaymentAmount        float64 `json:"downPaymentAmount"`
	DealerFeesAmount         float64 `json:"dealerFeesAmount"`
	MonthlyLoanPayment       float64 `json:"monthlyLoanPayment"`
	InvestmentReturnRate     float64 `json:"investmentReturnRate"`
	TaxFreeCapitalGainAmount float64 `json:"taxFreeCapitalGainAmount"`
}

// YearlyBuyResult holds one projection year of the buy scenario. The
// Excess* fields form the excess-investment sub-ledger: cash the buyer
// would have had left over versus leasing, invested and carried
// cumulatively year over year. They are only populated on the second
// calculation pass once the lease outflow is known.
type YearlyBuyResult struct {
	Year                     int     `json:"year"`
	VehicleValue             float64 `json:"vehicleValue"`
	InsuranceAndRegistration float64 `json:"insuranceAndRegistration"`
	MaintenanceAndFuel       float64 `json:"maintenanceAndFuel"`
	FixedCosts               float64 `json:"fixedCosts"`
	TotalHoldingCosts        float64 `json:"totalHoldingCosts"`
	LoanPayment              float64 `json:"loanPayment"`
	LoanInterest             float64 `json:"loanInterest"`
	LoanPrincipal            float64 `json:"loanPrincipal"`
	TaxSavingsFromDeduction  float64 `json:"taxSavingsFromDeduction"`
	CashOutflow              float64 `json:"cashOutflow"`
	AdjustedCashOutflow      float64 `json:"adjustedCashOutflow"`
	NetWorthHold             float64 `json:"netWorthHold"`
	NetWorthLiquidate        float64 `json:"netWorthLiquidate"`
	CapitalGainOnVehicle     float64 `json:"capitalGainOnVehicle"`
	TaxableGainOnVehicle     float64 `json:"taxableGainOnVehicle"`
	TaxOnVehicleGain         float64 `json:"taxOnVehicleGain"`
	RemainingLoanBalance     float64 `json:"remainingLoanBalance"`
	ExcessPortfolioValue     float64 `json:"excessPortfolioValue"`
	ExcessCostBasis          float64 `json:"excessCostBasis"`
	ExcessGains              float64 `json:"excessGains"`
	TaxOnExcessGains         float64 `json:"taxOnExcessGains"`
}

// YearlyLeaseResult holds one projection year of the lease-and-invest
// scenario.
type YearlyLeaseResult struct {
	Year                  int     `json:"year"`
	MonthlyLease          float64 `json:"monthlyLease"`
	AnnualLeaseCost       float64 `json:"annualLeaseCost"`
	CashOutflow           float64 `json:"cashOutflow"`
	InvestedThisYear      float64 `json:"investedThisYear"`
	PortfolioBeforeGrowth float64 `json:"portfolioBeforeGrowth"`
	InvestmentReturn      float64 `json:"investmentReturn"`
	PortfolioValue        float64 `json:"portfolioValue"`
	TotalCashInvested     float64 `json:"totalCashInvested"`
	NetWorthHold          float64 `json:"netWorthHold"`
	NetWorthLiquidate     float64 `json:"netWorthLiquidate"`
	CapitalGain           float64 `json:"capitalGain"`
	TaxableGain           float64 `json:"taxableGain"`
	TaxOnGain             float64 `json:"taxOnGain"`
}
