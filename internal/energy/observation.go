package energy

import "time"

// Season represents a meteorological season.
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
)

// HomeSize categorizes a household dwelling.
type HomeSize string

const (
	HomeSizeSmall  HomeSize = "Small"
	HomeSizeMedium HomeSize = "Medium"
	HomeSizeLarge  HomeSize = "Large"
)

// IsValid checks if the home size is a known category.
func (h HomeSize) IsValid() bool {
	switch h {
	case HomeSizeSmall, HomeSizeMedium, HomeSizeLarge:
		return true
	}
	return false
}

// CarbonKgPerKwh is the emission factor applied to consumption.
const CarbonKgPerKwh = 0.5

// Observation is a single usage sample, synthetic or historical.
// Cost and CarbonFootprintKg are always derived from the consumption
// value, never set independently.
type Observation struct {
	CustomerID           string    `json:"customer_id"`
	Timestamp            time.Time `json:"timestamp"`
	Temperature          float64   `json:"temperature"`
	Humidity             float64   `json:"humidity"`
	HourOfDay            int       `json:"hour_of_day"`
	DayOfWeek            int       `json:"day_of_week"`
	Month                int       `json:"month"` // 0-11
	Season               Season    `json:"season"`
	IsHoliday            bool      `json:"is_holiday"`
	IsWeekend            bool      `json:"is_weekend"`
	HouseholdSize        int       `json:"household_size"`
	HomeSize             HomeSize  `json:"home_size"`
	HasSolar             bool      `json:"has_solar"`
	HasElectricVehicle   bool      `json:"has_electric_vehicle"`
	PlanType             string    `json:"plan_type"`
	PlanCost             float64   `json:"plan_cost"`
	EnergyConsumptionKwh float64   `json:"energy_consumption_kwh"`
	Cost                 float64   `json:"cost"`
	CarbonFootprintKg    float64   `json:"carbon_footprint_kg"`
}

// Finalize derives the cost and carbon footprint from the finalized
// consumption value.
func (o *Observation) Finalize() {
	o.Cost = o.EnergyConsumptionKwh * o.PlanCost
	o.CarbonFootprintKg = o.EnergyConsumptionKwh * CarbonKgPerKwh
}

// IsPeakHour reports whether the hour falls in an elevated-consumption
// window (07:00-09:00 or 17:00-21:00). The same rule drives synthesis
// and pattern analysis.
func IsPeakHour(hour int) bool {
	return (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 21)
}

// IsOvernightHour reports whether the hour falls in the low-consumption
// overnight window (00:00-06:00).
func IsOvernightHour(hour int) bool {
	return hour >= 0 && hour <= 6
}

// SeasonForMonth maps a zero-based month (0 = January) to its season.
func SeasonForMonth(month int) Season {
	switch {
	case month >= 2 && month <= 4:
		return SeasonSpring
	case month >= 5 && month <= 7:
		return SeasonSummer
	case month >= 8 && month <= 10:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

// Seasons lists all seasons in calendar order starting from spring.
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}
}
