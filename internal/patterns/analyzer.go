// Package patterns aggregates a corpus into hourly, daily and seasonal
// consumption summaries.
package patterns

import "github.com/wattwise/wattwise/internal/energy"

// HourBucket is the average consumption for one hour of the day.
type HourBucket struct {
	Hour    int     `json:"hour"`
	AvgKwh  float64 `json:"avg_kwh"`
	IsPeak  bool    `json:"is_peak"`
	Samples int     `json:"samples"`
}

// DayBucket is the average consumption for one weekday (0 = Sunday).
type DayBucket struct {
	DayOfWeek int     `json:"day_of_week"`
	AvgKwh    float64 `json:"avg_kwh"`
	Samples   int     `json:"samples"`
}

// SeasonBucket is the average consumption for one season.
type SeasonBucket struct {
	Season  energy.Season `json:"season"`
	AvgKwh  float64       `json:"avg_kwh"`
	Samples int           `json:"samples"`
}

// Summary holds the aggregated consumption patterns of a corpus.
type Summary struct {
	Hourly   [24]HourBucket `json:"hourly"`
	Daily    [7]DayBucket   `json:"daily"`
	Seasonal []SeasonBucket `json:"seasonal"`
}

// Analyze groups the corpus by hour of day, weekday and season,
// averaging consumption in each bucket. It holds no state: the same
// corpus always yields the same summary.
func Analyze(corpus []energy.Observation) Summary {
	var summary Summary

	var hourSums [24]float64
	var daySums [7]float64
	seasonSums := make(map[energy.Season]float64, 4)
	seasonCounts := make(map[energy.Season]int, 4)

	for _, obs := range corpus {
		if obs.HourOfDay >= 0 && obs.HourOfDay < 24 {
			hourSums[obs.HourOfDay] += obs.EnergyConsumptionKwh
			summary.Hourly[obs.HourOfDay].Samples++
		}
		if obs.DayOfWeek >= 0 && obs.DayOfWeek < 7 {
			daySums[obs.DayOfWeek] += obs.EnergyConsumptionKwh
			summary.Daily[obs.DayOfWeek].Samples++
		}
		seasonSums[obs.Season] += obs.EnergyConsumptionKwh
		seasonCounts[obs.Season]++
	}

	for hour := 0; hour < 24; hour++ {
		bucket := &summary.Hourly[hour]
		bucket.Hour = hour
		bucket.IsPeak = energy.IsPeakHour(hour)
		if bucket.Samples > 0 {
			bucket.AvgKwh = hourSums[hour] / float64(bucket.Samples)
		}
	}

	for day := 0; day < 7; day++ {
		bucket := &summary.Daily[day]
		bucket.DayOfWeek = day
		if bucket.Samples > 0 {
			bucket.AvgKwh = daySums[day] / float64(bucket.Samples)
		}
	}

	summary.Seasonal = make([]SeasonBucket, 0, 4)
	for _, season := range energy.Seasons() {
		bucket := SeasonBucket{Season: season, Samples: seasonCounts[season]}
		if bucket.Samples > 0 {
			bucket.AvgKwh = seasonSums[season] / float64(bucket.Samples)
		}
		summary.Seasonal = append(summary.Seasonal, bucket)
	}

	return summary
}
