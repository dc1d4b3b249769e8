package energy

// IncomeLevel is the customer's stated income bracket, used only for
// plan preference scoring.
type IncomeLevel string

const (
	IncomeLow    IncomeLevel = "Low"
	IncomeMedium IncomeLevel = "Medium"
	IncomeHigh   IncomeLevel = "High"
)

// Customer describes a customer record as supplied by the marketplace,
// or a synthesized placeholder when none are available.
type Customer struct {
	ID                 string      `json:"id"`
	Location           string      `json:"location,omitempty"`
	HasSolar           bool        `json:"has_solar"`
	HasElectricVehicle bool        `json:"has_electric_vehicle"`
	HomeSize           HomeSize    `json:"home_size"`
	HouseholdSize      int         `json:"household_size"`
	Income             IncomeLevel `json:"income,omitempty"`
}

// UsageRecord is one entry of a customer's billing history, the input
// to plan recommendation.
type UsageRecord struct {
	EnergyConsumptionKwh float64 `json:"energy_consumption_kwh"`
	Cost                 float64 `json:"cost"`
}
