package energy

// Plan is a billing plan definition from the catalog.
type Plan struct {
	Name        string  `json:"name" yaml:"name"`
	RatePerKwh  float64 `json:"rate_per_kwh" yaml:"rate_per_kwh"`
	FixedFee    float64 `json:"fixed_fee" yaml:"fixed_fee"`
	UsageCapKwh float64 `json:"usage_cap_kwh" yaml:"usage_cap_kwh"`
}

// Valid reports whether the catalog entry carries the fields required
// for synthesis and scoring.
func (p Plan) Valid() bool {
	return p.Name != "" && p.RatePerKwh > 0
}

// DefaultCatalog returns the built-in four-plan catalog used whenever
// no external catalog is supplied.
func DefaultCatalog() []Plan {
	return []Plan{
		{Name: "Basic", RatePerKwh: 0.15, FixedFee: 10.0, UsageCapKwh: 30.0},
		{Name: "Standard", RatePerKwh: 0.12, FixedFee: 20.0, UsageCapKwh: 50.0},
		{Name: "Premium", RatePerKwh: 0.10, FixedFee: 35.0, UsageCapKwh: 100.0},
		{Name: "Green", RatePerKwh: 0.14, FixedFee: 25.0, UsageCapKwh: 60.0},
	}
}

// ValidCatalog filters a supplied catalog down to usable entries,
// falling back to the default catalog when nothing usable remains.
func ValidCatalog(catalog []Plan) []Plan {
	valid := make([]Plan, 0, len(catalog))
	for _, p := range catalog {
		if p.Valid() {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return DefaultCatalog()
	}
	return valid
}
