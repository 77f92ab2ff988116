// Package config defines the data structures related to configuration and
// includes functions for loading, defaulting, and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/buy-vs-lease/internal/projection"
	"github.com/iwvelando/buy-vs-lease/pkg/constants"
	"github.com/iwvelando/buy-vs-lease/pkg/scenarios"
	"github.com/iwvelando/buy-vs-lease/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for buy-vs-lease.
type Configuration struct {
	Buy        BuyConfig        `yaml:"buy"`
	Lease      LeaseConfig      `yaml:"lease"`
	Projection ProjectionConfig `yaml:"projection"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
	Server     ServerConfig     `yaml:"server,omitempty"`
}

// BuyConfig holds the buy-scenario inputs. All rates are annual percentages.
type BuyConfig struct {
	VehiclePrice                       float64 `yaml:"vehiclePrice"`
	DownPaymentPercentage              float64 `yaml:"downPaymentPercentage"`
	LoanInterestRateAnnual             float64 `yaml:"loanInterestRateAnnual"`
	LoanTermYears                      int     `yaml:"loanTermYears"`
	DepreciationRateAnnual             float64 `yaml:"depreciationRateAnnual"`
	DealerFeesPercentage               float64 `yaml:"dealerFeesPercentage"`
	SellingCostsPercentage             float64 `yaml:"sellingCostsPercentage"`
	InsuranceAndRegistrationRateAnnual float64 `yaml:"insuranceAndRegistrationRateAnnual"`
	MaintenanceAndFuelRateAnnual       float64 `yaml:"maintenanceAndFuelRateAnnual"`
	FixedCostsAnnual                   float64 `yaml:"fixedCostsAnnual"`
	MarginalTaxRate                    float64 `yaml:"marginalTaxRate"`
	LoanInterestDeduction              bool    `yaml:"loanInterestDeduction"`
	CapitalGainsTaxRateVehicle         float64 `yaml:"capitalGainsTaxRateVehicle"`
	FilingStatus                       string  `yaml:"filingStatus"`
}

// LeaseConfig holds the lease-scenario inputs.
type LeaseConfig struct {
	MonthlyPayment                float64 `yaml:"monthlyPayment"`
	GrowthRateAnnual              float64 `yaml:"growthRateAnnual"`
	SameAsDepreciation            bool    `yaml:"sameAsDepreciation"`
	InvestmentOption              string  `yaml:"investmentOption"`
	CustomInvestmentReturn        float64 `yaml:"customInvestmentReturn"`
	CapitalGainsTaxRateInvestment float64 `yaml:"capitalGainsTaxRateInvestment"`
}

// ProjectionConfig holds the horizon and display-mode settings.
type ProjectionConfig struct {
	Years          int  `yaml:"years"`
	ShowCashOut    bool `yaml:"showCashOut"`
	ShowYearlyMode bool `yaml:"showYearlyMode"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds HTTP API configuration options
type ServerConfig struct {
	Address           string `yaml:"address,omitempty"`
	MaxUploadSizeByte int64  `yaml:"maxUploadSizeBytes,omitempty"`
}

// setDefaults registers the stock parameter set with viper; omitted config
// fields fall back to these.
func setDefaults(v *viper.Viper) {
	v.SetDefault("buy.vehiclePrice", 35000.0)
	v.SetDefault("buy.downPaymentPercentage", 20.0)
	v.SetDefault("buy.loanInterestRateAnnual", 5.5)
	v.SetDefault("buy.loanTermYears", 5)
	v.SetDefault("buy.depreciationRateAnnual", 15.0)
	v.SetDefault("buy.dealerFeesPercentage", 3.0)
	v.SetDefault("buy.sellingCostsPercentage", 5.0)
	v.SetDefault("buy.insuranceAndRegistrationRateAnnual", 2.5)
	v.SetDefault("buy.maintenanceAndFuelRateAnnual", 1.5)
	v.SetDefault("buy.fixedCostsAnnual", 2000.0)
	v.SetDefault("buy.marginalTaxRate", 24.0)
	v.SetDefault("buy.loanInterestDeduction", false)
	v.SetDefault("buy.capitalGainsTaxRateVehicle", 15.0)
	v.SetDefault("buy.filingStatus", scenarios.FilingStatusMarried)

	v.SetDefault("lease.monthlyPayment", 500.0)
	v.SetDefault("lease.growthRateAnnual", 3.0)
	v.SetDefault("lease.sameAsDepreciation", false)
	v.SetDefault("lease.investmentOption", scenarios.InvestmentOptionSP500)
	v.SetDefault("lease.customInvestmentReturn", 10.0)
	v.SetDefault("lease.capitalGainsTaxRateInvestment", 15.0)

	v.SetDefault("projection.years", 5)
	v.SetDefault("projection.showCashOut", false)
	v.SetDefault("projection.showYearlyMode", false)
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, applying the stock defaults for omitted fields.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// DefaultConfiguration returns a Configuration populated entirely from the
// stock defaults, for runs without a config file.
func DefaultConfiguration() (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// BuyParameters converts the config into the engine's buy parameters.
func (conf *Configuration) BuyParameters() scenarios.BuyParameters {
	return scenarios.BuyParameters{
		VehiclePrice:                       conf.Buy.VehiclePrice,
		DownPaymentPercentage:              conf.Buy.DownPaymentPercentage,
		LoanInterestRateAnnual:             conf.Buy.LoanInterestRateAnnual,
		LoanTermYears:                      conf.Buy.LoanTermYears,
		DepreciationRateAnnual:             conf.Buy.DepreciationRateAnnual,
		DealerFeesPercentage:               conf.Buy.DealerFeesPercentage,
		SellingCostsPercentage:             conf.Buy.SellingCostsPercentage,
		InsuranceAndRegistrationRateAnnual: conf.Buy.InsuranceAndRegistrationRateAnnual,
		MaintenanceAndFuelRateAnnual:       conf.Buy.MaintenanceAndFuelRateAnnual,
		FixedCostsAnnual:                   conf.Buy.FixedCostsAnnual,
		MarginalTaxRate:                    conf.Buy.MarginalTaxRate,
		LoanInterestDeduction:              conf.Buy.LoanInterestDeduction,
		CapitalGainsTaxRateVehicle:         conf.Buy.CapitalGainsTaxRateVehicle,
		FilingStatus:                       conf.Buy.FilingStatus,
	}
}

// LeaseParameters converts the config into the engine's lease parameters.
// When sameAsDepreciation is set the lease growth rate mirrors the vehicle
// depreciation rate, so the engine always sees a plain rate.
func (conf *Configuration) LeaseParameters() scenarios.LeaseParameters {
	growthRate := conf.Lease.GrowthRateAnnual
	if conf.Lease.SameAsDepreciation {
		growthRate = conf.Buy.DepreciationRateAnnual
	}

	return scenarios.LeaseParameters{
		MonthlyPayment:                conf.Lease.MonthlyPayment,
		GrowthRateAnnual:              growthRate,
		SameAsDepreciation:            conf.Lease.SameAsDepreciation,
		InvestmentOption:              conf.Lease.InvestmentOption,
		CustomInvestmentReturn:        conf.Lease.CustomInvestmentReturn,
		CapitalGainsTaxRateInvestment: conf.Lease.CapitalGainsTaxRateInvestment,
	}
}

// ProjectionSettings converts the config into the orchestrator's settings.
func (conf *Configuration) ProjectionSettings() projection.Settings {
	return projection.Settings{
		ProjectionYears: conf.Projection.Years,
		ShowCashOut:     conf.Projection.ShowCashOut,
		ShowYearlyMode:  conf.Projection.ShowYearlyMode,
	}
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings. The engine itself does not re-validate; this is the
// boundary layer the calculators rely on.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	warnings = append(warnings, validation.ValidateBuyParameters(conf.BuyParameters())...)
	warnings = append(warnings, validation.ValidateLeaseParameters(conf.LeaseParameters())...)
	warnings = append(warnings, validation.ValidateProjectionYears(conf.Projection.Years)...)

	if conf.Output.Format != "" {
		if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	return warnings
}

// MaxUploadSize returns the configured upload cap or the default.
func (conf *Configuration) MaxUploadSize() int64 {
	if conf.Server.MaxUploadSizeByte > 0 {
		return conf.Server.MaxUploadSizeByte
	}
	return constants.DefaultMaxUploadSizeBytes
}

// ServerAddress returns the configured listen address or the default.
func (conf *Configuration) ServerAddress() string {
	if conf.Server.Address != "" {
		return conf.Server.Address
	}
	return constants.DefaultServerAddress
}
