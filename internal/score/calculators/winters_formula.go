package calculators

import (
	"fmt"

	"medcalc/internal/score"
)

func wintersFormula() score.Definition {
	return score.Definition{
		ID:          "winters_formula_metabolic_acidosis",
		Title:       "Winters' Formula",
		Description: "Expected arterial pCO2 compensation for a metabolic acidosis, with optional comparison against the measured pCO2.",
		Category:    "nephrology",
		Version:     "1",
		Params: []score.ParamSpec{
			num("bicarbonate", "mEq/L", "Serum bicarbonate", 5, 35),
			{Name: "measured_pco2", Kind: score.KindNumber, Min: score.F(10), Max: score.F(80), Unit: "mmHg", Description: "Measured arterial pCO2 (optional, for compensation assessment)"},
		},
		Example: map[string]any{
			"bicarbonate":   15,
			"measured_pco2": 30,
		},
		Compute: func(p score.Params) (*score.Result, error) {
			hco3 := p.Float("bicarbonate")
			expected := round1(1.5*hco3 + 8)
			low := round1(expected - 2)
			high := round1(expected + 2)

			res := &score.Result{
				Result: expected,
				Unit:   "mmHg",
				Extra: map[string]any{
					"expected_range": map[string]any{"low": low, "high": high},
				},
			}

			if !p.Has("measured_pco2") {
				res.Stage = "Expected Compensation"
				res.StageDescription = "Expected respiratory compensation"
				res.Interpretation = fmt.Sprintf(
					"For a bicarbonate of %.1f mEq/L the expected pCO2 is %.1f mmHg (range %.1f-%.1f). Compare against the measured arterial pCO2 to assess compensation.",
					hco3, expected, low, high)
				return res, nil
			}

			measured := p.Float("measured_pco2")
			res.Extra["measured_pco2"] = measured

			switch {
			case measured < low:
				res.Stage = "Overcompensation"
				res.StageDescription = "Measured pCO2 below the expected range"
				res.Interpretation = fmt.Sprintf(
					"Measured pCO2 %.1f mmHg is below the expected range %.1f-%.1f mmHg, suggesting a concurrent respiratory alkalosis.",
					measured, low, high)
			case measured > high:
				res.Stage = "Undercompensation"
				res.StageDescription = "Measured pCO2 above the expected range"
				res.Interpretation = fmt.Sprintf(
					"Measured pCO2 %.1f mmHg is above the expected range %.1f-%.1f mmHg, suggesting a concurrent respiratory acidosis.",
					measured, low, high)
			default:
				res.Stage = "Appropriate Compensation"
				res.StageDescription = "Measured pCO2 within the expected range"
				res.Interpretation = fmt.Sprintf(
					"Measured pCO2 %.1f mmHg is within the expected range %.1f-%.1f mmHg, consistent with appropriate respiratory compensation.",
					measured, low, high)
			}
			return res, nil
		},
	}
}
