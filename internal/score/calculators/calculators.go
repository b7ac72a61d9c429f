// Package calculators holds the calculator units: independently authored pure
// computations registered under stable score ids. Registration goes through
// the explicit table in All so the full calculator set is auditable statically
// and a duplicate id fails at startup, not silently at runtime.
package calculators

import "medcalc/internal/score"

// All returns the static registration table. Order is not significant; the
// registry sorts by id.
func All() []score.Definition {
	return []score.Definition{
		cerebralPerfusionPressure(),
		cha2ds2VAScore(),
		chads2Score(),
		chads65(),
		childPughScore(),
		fisherGradingScale(),
		ldlCalculated(),
		news2(),
		roxIndex(),
		wellsCriteriaPE(),
		wintersFormula(),
	}
}

// yesNo declares a required yes/no enum parameter, the shape most clinical
// criteria take.
func yesNo(name, description string) score.ParamSpec {
	return score.ParamSpec{
		Name:        name,
		Kind:        score.KindEnum,
		Allowed:     []string{"no", "yes"},
		Required:    true,
		Description: description,
	}
}

// num declares a required bounded numeric parameter.
func num(name, unit, description string, min, max float64) score.ParamSpec {
	return score.ParamSpec{
		Name:        name,
		Kind:        score.KindNumber,
		Min:         score.F(min),
		Max:         score.F(max),
		Required:    true,
		Unit:        unit,
		Description: description,
	}
}

// round1 rounds to one decimal place, the precision clinical results are
// reported at.
func round1(v float64) float64 {
	return float64(int(v*10+sign(v)*0.5)) / 10
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return float64(int(v*100+sign(v)*0.5)) / 100
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
