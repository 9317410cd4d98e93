package domain

type Year = int

// CompanyRecord is one yearly row of the company dataset. Optional columns are
// nil when the dataset does not carry them.
type CompanyRecord struct {
	CompanyID             string  `db:"company_id"`
	CompanyName           string  `db:"company_name"`
	Year                  Year    `db:"year"`
	CoalProducedTons      float64 `db:"coal_produced_tons"`
	TotalCO2EmissionsTons float64 `db:"total_co2_emissions_tons"`

	NetCO2EmissionsTons     *float64 `db:"net_co2_emissions_tons"`
	CarbonOffsetsTons       *float64 `db:"carbon_offsets_tons"`
	EmissionIntensity       *float64 `db:"emission_intensity"`
	GreenInvestmentRatio    *float64 `db:"green_investment_ratio"`
	RenewableEnergyUsageMWh *float64 `db:"renewable_energy_usage_mwh"`
	AfforestationAcres      *float64 `db:"afforestation_acres"`
	Score                   *float64 `db:"score"`
}

// Intensity returns the emission intensity of the record. When the dataset has
// no intensity value it is derived as net emissions per produced ton; a zero
// production figure leaves it absent.
func (r *CompanyRecord) Intensity() (float64, bool) {
	if r.EmissionIntensity != nil {
		return *r.EmissionIntensity, true
	}
	if r.NetCO2EmissionsTons == nil || r.CoalProducedTons == 0 {
		return 0, false
	}
	return *r.NetCO2EmissionsTons / r.CoalProducedTons, true
}

// Alias maps a short company code to the canonical dataset name.
type Alias struct {
	Alias string `mapstructure:"alias" yaml:"alias"`
	Name  string `mapstructure:"name" yaml:"name"`
}
