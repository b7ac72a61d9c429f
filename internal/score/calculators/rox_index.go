package calculators

import (
	"fmt"

	"medcalc/internal/score"
)

func roxIndex() score.Definition {
	return score.Definition{
		ID:          "rox_index",
		Title:       "ROX Index",
		Description: "Predicts risk of high-flow nasal cannula failure and need for intubation in acute hypoxemic respiratory failure.",
		Category:    "pulmonology",
		Version:     "2016",
		Params: []score.ParamSpec{
			num("spo2", "%", "Pulse oximetry oxygen saturation", 0, 100),
			num("fio2", "fraction", "Fraction of inspired oxygen (0.21 for room air)", 0.21, 1.0),
			num("respiratory_rate", "breaths/min", "Respiratory rate", 1, 80),
		},
		Example: map[string]any{
			"spo2":             95,
			"fio2":             0.6,
			"respiratory_rate": 24,
		},
		Compute: func(p score.Params) (*score.Result, error) {
			spo2 := p.Float("spo2")
			fio2 := p.Float("fio2")
			rr := p.Float("respiratory_rate")

			rox := round2((spo2 / fio2) / rr)

			var stage, description, advice string
			switch {
			case rox < 3.85:
				stage = "High Risk"
				description = "High risk of HFNC failure"
				advice = "High risk of high-flow nasal cannula failure; consider early intubation."
			case rox < 4.88:
				stage = "Indeterminate Risk"
				description = "Indeterminate risk of HFNC failure"
				advice = "Indeterminate risk; reassess in 1-2 hours and monitor closely."
			default:
				stage = "Lower Risk"
				description = "Lower risk of HFNC failure"
				advice = "Lower risk of high-flow nasal cannula failure; continue therapy with routine monitoring."
			}

			return &score.Result{
				Result:           rox,
				Unit:             "index",
				Interpretation:   fmt.Sprintf("ROX index %.2f (SpO2/FiO2 = %.1f, RR = %.0f). %s", rox, spo2/fio2, rr, advice),
				Stage:            stage,
				StageDescription: description,
				Extra: map[string]any{
					"spo2_fio2_ratio": round1(spo2 / fio2),
				},
			}, nil
		},
	}
}
