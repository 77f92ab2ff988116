package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/buy-vs-lease/pkg/scenarios"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
buy:
  vehiclePrice: 42000
  loanTermYears: 7
  loanInterestRateAnnual: 6.25
lease:
  monthlyPayment: 650
projection:
  years: 10
logging:
  level: debug
  format: console
output:
  format: csv
`)

	conf, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, 42000.0, conf.Buy.VehiclePrice)
	assert.Equal(t, 7, conf.Buy.LoanTermYears)
	assert.Equal(t, 6.25, conf.Buy.LoanInterestRateAnnual)
	assert.Equal(t, 650.0, conf.Lease.MonthlyPayment)
	assert.Equal(t, 10, conf.Projection.Years)
	assert.Equal(t, "debug", conf.Logging.Level)
	assert.Equal(t, "console", conf.Logging.Format)
	assert.Equal(t, "csv", conf.Output.Format)

	// Omitted fields fall back to the stock defaults.
	assert.Equal(t, 20.0, conf.Buy.DownPaymentPercentage)
	assert.Equal(t, 24.0, conf.Buy.MarginalTaxRate)
	assert.Equal(t, 3.0, conf.Lease.GrowthRateAnnual)
	assert.Equal(t, scenarios.InvestmentOptionSP500, conf.Lease.InvestmentOption)
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultConfiguration(t *testing.T) {
	conf, err := DefaultConfiguration()
	require.NoError(t, err)

	assert.Equal(t, 35000.0, conf.Buy.VehiclePrice)
	assert.Equal(t, 5, conf.Buy.LoanTermYears)
	assert.Equal(t, 500.0, conf.Lease.MonthlyPayment)
	assert.Equal(t, 5, conf.Projection.Years)
	assert.Equal(t, scenarios.FilingStatusMarried, conf.Buy.FilingStatus)

	// The stock defaults carry no warnings.
	assert.Empty(t, conf.ValidateConfiguration())
}

func TestLeaseParametersMirrorsDepreciation(t *testing.T) {
	conf, err := DefaultConfiguration()
	require.NoError(t, err)

	conf.Buy.DepreciationRateAnnual = 18
	conf.Lease.GrowthRateAnnual = 3
	conf.Lease.SameAsDepreciation = true

	lease := conf.LeaseParameters()
	assert.Equal(t, 18.0, lease.GrowthRateAnnual,
		"lease growth should mirror the depreciation rate when sameAsDepreciation is set")

	conf.Lease.SameAsDepreciation = false
	lease = conf.LeaseParameters()
	assert.Equal(t, 3.0, lease.GrowthRateAnnual)
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf, err := DefaultConfiguration()
	require.NoError(t, err)

	conf.Buy.LoanTermYears = 4
	conf.Buy.DownPaymentPercentage = 150
	conf.Projection.Years = 0
	conf.Output.Format = "xml"

	warnings := conf.ValidateConfiguration()
	assert.Len(t, warnings, 4)
}

func TestBuyParametersConversion(t *testing.T) {
	conf, err := DefaultConfiguration()
	require.NoError(t, err)

	buy := conf.BuyParameters()
	assert.Equal(t, conf.Buy.VehiclePrice, buy.VehiclePrice)
	assert.Equal(t, conf.Buy.LoanTermYears, buy.LoanTermYears)
	assert.Equal(t, conf.Buy.CapitalGainsTaxRateVehicle, buy.CapitalGainsTaxRateVehicle)

	settings := conf.ProjectionSettings()
	assert.Equal(t, conf.Projection.Years, settings.ProjectionYears)
	assert.False(t, settings.ShowCashOut)
}
