package config

// Preset is a vehicle archetype: a bundle of buy and lease inputs loaded by
// lookup key. The engine treats an applied preset as ordinary input.
type Preset struct {
	ID                                 string  `json:"id" yaml:"id"`
	Name                               string  `json:"name" yaml:"name"`
	VehiclePrice                       float64 `json:"vehiclePrice" yaml:"vehiclePrice"`
	DownPaymentPercentage              float64 `json:"downPaymentPercentage" yaml:"downPaymentPercentage"`
	LoanInterestRateAnnual             float64 `json:"loanInterestRateAnnual" yaml:"loanInterestRateAnnual"`
	LoanTermYears                      int     `json:"loanTermYears" yaml:"loanTermYears"`
	DepreciationRateAnnual             float64 `json:"depreciationRateAnnual" yaml:"depreciationRateAnnual"`
	InsuranceAndRegistrationRateAnnual float64 `json:"insuranceAndRegistrationRateAnnual" yaml:"insuranceAndRegistrationRateAnnual"`
	MaintenanceAndFuelRateAnnual       float64 `json:"maintenanceAndFuelRateAnnual" yaml:"maintenanceAndFuelRateAnnual"`
	FixedCostsAnnual                   float64 `json:"fixedCostsAnnual" yaml:"fixedCostsAnnual"`
	MonthlyLease                       float64 `json:"monthlyLease" yaml:"monthlyLease"`
	LeaseGrowthRateAnnual              float64 `json:"leaseGrowthRateAnnual" yaml:"leaseGrowthRateAnnual"`
}

// presets is the built-in archetype catalog, in display order.
var presets = []Preset{
	{
		ID:                                 "default",
		Name:                               "Default",
		VehiclePrice:                       35000,
		DownPaymentPercentage:              20,
		LoanInterestRateAnnual:             5.5,
		LoanTermYears:                      5,
		DepreciationRateAnnual:             15,
		InsuranceAndRegistrationRateAnnual: 2.5,
		MaintenanceAndFuelRateAnnual:       1.5,
		FixedCostsAnnual:                   2000,
		MonthlyLease:                       500,
		LeaseGrowthRateAnnual:              3.0,
	},
	{
		ID:                                 "economy",
		Name:                               "Economy Car",
		VehiclePrice:                       25000,
		DownPaymentPercentage:              20,
		LoanInterestRateAnnual:             5.0,
		LoanTermYears:                      5,
		DepreciationRateAnnual:             20,
		InsuranceAndRegistrationRateAnnual: 2.0,
		MaintenanceAndFuelRateAnnual:       1.0,
		FixedCostsAnnual:                   1500,
		MonthlyLease:                       350,
		LeaseGrowthRateAnnual:              3.0,
	},
	{
		ID:                                 "midrange",
		Name:                               "Mid-Range Car",
		VehiclePrice:                       40000,
		DownPaymentPercentage:              20,
		LoanInterestRateAnnual:             5.5,
		LoanTermYears:                      5,
		DepreciationRateAnnual:             15,
		InsuranceAndRegistrationRateAnnual: 2.5,
		MaintenanceAndFuelRateAnnual:       1.5,
		FixedCostsAnnual:                   2000,
		MonthlyLease:                       550,
		LeaseGrowthRateAnnual:              3.0,
	},
	{
		ID:                                 "luxury",
		Name:                               "Luxury Car",
		VehiclePrice:                       60000,
		DownPaymentPercentage:              20,
		LoanInterestRateAnnual:             6.0,
		LoanTermYears:                      5,
		DepreciationRateAnnual:             12,
		InsuranceAndRegistrationRateAnnual: 3.0,
		MaintenanceAndFuelRateAnnual:       2.0,
		FixedCostsAnnual:                   2500,
		MonthlyLease:                       800,
		LeaseGrowthRateAnnual:              3.0,
	},
	{
		ID:                                 "suv",
		Name:                               "SUV",
		VehiclePrice:                       45000,
		DownPaymentPercentage:              20,
		LoanInterestRateAnnual:             5.5,
		LoanTermYears:                      5,
		DepreciationRateAnnual:             18,
		InsuranceAndRegistrationRateAnnual: 2.8,
		MaintenanceAndFuelRateAnnual:       1.8,
		FixedCostsAnnual:                   3000,
		MonthlyLease:                       600,
		LeaseGrowthRateAnnual:              3.0,
	},
}

// Presets returns the archetype catalog in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// GetPreset looks up an archetype by ID.
func GetPreset(id string) (Preset, bool) {
	for _, preset := range presets {
		if preset.ID == id {
			return preset, true
		}
	}
	return Preset{}, false
}

// ApplyPreset overwrites the preset-covered fields of the configuration.
// Fields a preset does not carry (taxes, fees, display modes) are left as
// configured.
func (conf *Configuration) ApplyPreset(preset Preset) {
	conf.Buy.VehiclePrice = preset.VehiclePrice
	conf.Buy.DownPaymentPercentage = preset.DownPaymentPercentage
	conf.Buy.LoanInterestRateAnnual = preset.LoanInterestRateAnnual
	conf.Buy.LoanTermYears = preset.LoanTermYears
	conf.Buy.DepreciationRateAnnual = preset.DepreciationRateAnnual
	conf.Buy.InsuranceAndRegistrationRateAnnual = preset.InsuranceAndRegistrationRateAnnual
	conf.Buy.MaintenanceAndFuelRateAnnual = preset.MaintenanceAndFuelRateAnnual
	conf.Buy.FixedCostsAnnual = preset.FixedCostsAnnual
	conf.Lease.MonthlyPayment = preset.MonthlyLease
	conf.Lease.GrowthRateAnnual = preset.LeaseGrowthRateAnnual
}
