package scenarios

// Investment option keys accepted in LeaseParameters.InvestmentOption.
const (
	InvestmentOptionSP500  = "sp500"
	InvestmentOptionNasdaq = "nasdaq100"
	InvestmentOptionCustom = "custom"
)

// InvestmentBenchmark describes one catalog entry.
type InvestmentBenchmark struct {
	Name       string  `json:"name"`
	ReturnRate float64 `json:"returnRate"`
}

// InvestmentCatalog maps option keys to historical-average annual returns.
// These figures are product data, not algorithm inputs; updating them does
// not affect correctness of the projection.
var InvestmentCatalog = map[string]InvestmentBenchmark{
	InvestmentOptionSP500:  {Name: "S&P 500", ReturnRate: 12.5},
	InvestmentOptionNasdaq: {Name: "Nasdaq 100", ReturnRate: 16.5},
}

// ResolveInvestmentReturnRate resolves the selected investment option to a
// single effective annual return rate. The custom sentinel, and any key
// missing from the catalog, uses the user-supplied override.
func ResolveInvestmentReturnRate(lease LeaseParameters) float64 {
	if lease.InvestmentOption == InvestmentOptionCustom {
		return lease.CustomInvestmentReturn
	}
	if benchmark, ok := InvestmentCatalog[lease.InvestmentOption]; ok {
		return benchmark.ReturnRate
	}
	return lease.CustomInvestmentReturn
}
