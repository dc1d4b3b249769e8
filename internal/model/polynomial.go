package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/wattwise/wattwise/internal/energy"
)

// polynomialTerms is the number of design-matrix columns for the
// degree-2 expansion of [temperature, hour]:
// [1, t, h, t^2, h^2, t*h].
const polynomialTerms = 6

// Polynomial is a degree-2 regression of consumption on temperature and
// hour of day.
type Polynomial struct {
	// Coefficients follow the design-matrix column order.
	Coefficients []float64 `json:"coefficients"`
}

// FitPolynomial fits the polynomial candidate by solving the normal
// equations with a Cholesky factorization. A singular system or an
// undersized corpus yields ErrFitFailed, which the ensemble trainer
// recovers from by falling back to the linear candidate.
func FitPolynomial(corpus []energy.Observation) (*Polynomial, error) {
	n := len(corpus)
	if n < polynomialTerms {
		return nil, fmt.Errorf("%w: %d observations for %d terms", ErrFitFailed, n, polynomialTerms)
	}

	X := mat.NewDense(n, polynomialTerms, nil)
	y := mat.NewVecDense(n, nil)
	for i, obs := range corpus {
		X.SetRow(i, polynomialRow(obs.Temperature, float64(obs.HourOfDay)))
		y.SetVec(i, obs.EnergyConsumptionKwh)
	}

	var xtx mat.Dense
	xtx.Mul(X.T(), X)

	sym := mat.NewSymDense(polynomialTerms, nil)
	for i := 0; i < polynomialTerms; i++ {
		for j := 0; j <= i; j++ {
			sym.SetSym(i, j, xtx.At(i, j))
		}
	}

	var xty mat.VecDense
	xty.MulVec(X.T(), y)

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, fmt.Errorf("%w: normal equations not positive definite", ErrFitFailed)
	}

	var beta mat.VecDense
	if err := chol.SolveVecTo(&beta, &xty); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFitFailed, err)
	}

	coeffs := make([]float64, polynomialTerms)
	copy(coeffs, beta.RawVector().Data)
	return &Polynomial{Coefficients: coeffs}, nil
}

func polynomialRow(t, h float64) []float64 {
	return []float64{1, t, h, t * t, h * h, t * h}
}

// Kind returns the candidate type.
func (m *Polynomial) Kind() Kind {
	return KindPolynomial
}

// Predict returns the predicted consumption in kWh. Household size is
// not part of this candidate's feature set.
func (m *Polynomial) Predict(f Features) float64 {
	row := polynomialRow(f.Temperature, float64(f.HourOfDay))
	var kwh float64
	for i, c := range m.Coefficients {
		kwh += c * row[i]
	}
	return kwh
}

// FeatureImportance returns nil: polynomial terms have no per-feature
// weight interpretation.
func (m *Polynomial) FeatureImportance() map[string]float64 {
	return nil
}
