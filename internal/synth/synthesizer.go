package synth

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/wattwise/wattwise/internal/energy"
)

const (
	// placeholderPoolSize is the minimum synthesized customer pool when
	// no real customers are supplied.
	placeholderPoolSize = 10

	lookbackDays = 2 * 365
)

// monthlyTemperatureC is the baseline temperature per zero-based month.
// Uniform noise in [-5, +5] is added on top.
var monthlyTemperatureC = [12]float64{5, 7, 11, 16, 21, 26, 29, 28, 24, 17, 10, 6}

// Synthesizer produces labeled training corpora from live customer and
// plan records, falling back to placeholder data when either is missing.
type Synthesizer struct {
	rng    *rand.Rand
	now    func() time.Time
	logger *slog.Logger
}

// New creates a Synthesizer. A zero seed selects a time-based seed;
// tests pass a fixed seed for deterministic output.
func New(seed int64, logger *slog.Logger) *Synthesizer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Synthesizer{
		rng:    rand.New(rand.NewSource(seed)),
		now:    time.Now,
		logger: logger,
	}
}

// Generate produces count observations drawn from the given customer
// pool and plan catalog. Empty or invalid inputs never fail: a
// placeholder pool and the default catalog are substituted instead.
func (s *Synthesizer) Generate(count int, pool []energy.Customer, catalog []energy.Plan) []energy.Observation {
	if count < 1 {
		count = 1
	}

	if len(pool) == 0 {
		pool = s.placeholderPool()
		s.logger.Info("customer pool empty, synthesized placeholders", "customers", len(pool))
	}
	plans := energy.ValidCatalog(catalog)
	if len(catalog) == 0 || len(plans) != len(catalog) {
		s.logger.Info("plan catalog missing or invalid, using defaults", "plans", len(plans))
	}

	observations := make([]energy.Observation, 0, count)
	for i := 0; i < count; i++ {
		customer := pool[s.rng.Intn(len(pool))]
		plan := plans[s.rng.Intn(len(plans))]
		observations = append(observations, s.observation(customer, plan))
	}

	s.logger.Debug("generated corpus", "records", len(observations))
	return observations
}

func (s *Synthesizer) observation(customer energy.Customer, plan energy.Plan) energy.Observation {
	ts := s.randomTimestamp()
	hour := ts.Hour()
	month := int(ts.Month()) - 1

	obs := energy.Observation{
		CustomerID:         customer.ID,
		Timestamp:          ts,
		Temperature:        monthlyTemperatureC[month] + s.uniform(-5, 5),
		Humidity:           s.uniform(30, 80),
		HourOfDay:          hour,
		DayOfWeek:          int(ts.Weekday()),
		Month:              month,
		Season:             energy.SeasonForMonth(month),
		IsHoliday:          isHoliday(ts),
		IsWeekend:          ts.Weekday() == time.Saturday || ts.Weekday() == time.Sunday,
		HouseholdSize:      customer.HouseholdSize,
		HomeSize:           customer.HomeSize,
		HasSolar:           customer.HasSolar,
		HasElectricVehicle: customer.HasElectricVehicle,
		PlanType:           plan.Name,
		PlanCost:           plan.RatePerKwh,
	}
	if obs.HouseholdSize < 1 {
		obs.HouseholdSize = 1 + s.rng.Intn(5)
	}
	if !obs.HomeSize.IsValid() {
		obs.HomeSize = energy.HomeSizeMedium
	}

	obs.EnergyConsumptionKwh = s.consumption(hour, customer)
	obs.Finalize()
	return obs
}

// consumption draws a base load for the hour bucket and composes the
// household multipliers on top. Multipliers are order-independent.
func (s *Synthesizer) consumption(hour int, customer energy.Customer) float64 {
	var kwh float64
	switch {
	case energy.IsPeakHour(hour):
		kwh = s.uniform(25, 55)
	case energy.IsOvernightHour(hour):
		kwh = s.uniform(5, 15)
	default:
		kwh = s.uniform(15, 35)
	}

	if customer.HasSolar {
		kwh *= 0.6
	}
	if customer.HasElectricVehicle {
		kwh *= 1.4
	}
	switch customer.HomeSize {
	case energy.HomeSizeLarge:
		kwh *= 1.3
	case energy.HomeSizeSmall:
		kwh *= 0.8
	}

	return kwh
}

func (s *Synthesizer) randomTimestamp() time.Time {
	offset := time.Duration(s.rng.Int63n(int64(lookbackDays) * int64(24*time.Hour)))
	return s.now().Add(-offset)
}

func (s *Synthesizer) uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: s.rng}.Rand()
}

func (s *Synthesizer) placeholderPool() []energy.Customer {
	sizes := []energy.HomeSize{energy.HomeSizeSmall, energy.HomeSizeMedium, energy.HomeSizeLarge}
	incomes := []energy.IncomeLevel{energy.IncomeLow, energy.IncomeMedium, energy.IncomeHigh}

	pool := make([]energy.Customer, 0, placeholderPoolSize)
	for i := 0; i < placeholderPoolSize; i++ {
		pool = append(pool, energy.Customer{
			ID:                 uuid.New().String(),
			HasSolar:           s.rng.Float64() < 0.3,
			HasElectricVehicle: s.rng.Float64() < 0.25,
			HomeSize:           sizes[s.rng.Intn(len(sizes))],
			HouseholdSize:      1 + s.rng.Intn(5),
			Income:             incomes[s.rng.Intn(len(incomes))],
		})
	}
	return pool
}

// isHoliday marks the fixed-date public holidays the billing system
// recognizes.
func isHoliday(ts time.Time) bool {
	switch {
	case ts.Month() == time.January && ts.Day() == 1:
		return true
	case ts.Month() == time.December && ts.Day() == 25:
		return true
	}
	return false
}
