package calculators

import (
	"fmt"

	"medcalc/internal/score"
)

func ldlCalculated() score.Definition {
	return score.Definition{
		ID:          "ldl_calculated",
		Title:       "LDL Cholesterol (Calculated)",
		Description: "Estimates LDL cholesterol from a standard lipid panel using the Friedewald formula.",
		Category:    "cardiology",
		Version:     "Friedewald",
		Params: []score.ParamSpec{
			num("total_cholesterol", "mg/dL", "Total cholesterol", 50, 1000),
			num("hdl_cholesterol", "mg/dL", "HDL cholesterol", 10, 200),
			num("triglycerides", "mg/dL", "Triglycerides (fasting)", 30, 5000),
		},
		Example: map[string]any{
			"total_cholesterol": 200,
			"hdl_cholesterol":   50,
			"triglycerides":     150,
		},
		Compute: func(p score.Params) (*score.Result, error) {
			tc := p.Float("total_cholesterol")
			hdl := p.Float("hdl_cholesterol")
			tg := p.Float("triglycerides")

			if hdl >= tc {
				return nil, score.BadParam("hdl_cholesterol",
					fmt.Sprintf("must be lower than total_cholesterol (%.1f >= %.1f)", hdl, tc))
			}

			ldl := round1(tc - hdl - tg/5)

			var stage, description string
			switch {
			case ldl < 100:
				stage, description = "Optimal", "Optimal LDL cholesterol"
			case ldl < 130:
				stage, description = "Near Optimal", "Near optimal/above optimal LDL cholesterol"
			case ldl < 160:
				stage, description = "Borderline High", "Borderline high LDL cholesterol"
			case ldl < 190:
				stage, description = "High", "High LDL cholesterol"
			default:
				stage, description = "Very High", "Very high LDL cholesterol"
			}

			interp := fmt.Sprintf("Calculated LDL cholesterol is %.1f mg/dL (%s).", ldl, description)
			extra := map[string]any{
				"non_hdl_cholesterol": round1(tc - hdl),
			}
			if tg > 400 {
				interp += " Triglycerides exceed 400 mg/dL; the Friedewald estimate is unreliable and a direct LDL measurement is recommended."
				extra["accuracy_warning"] = "triglycerides > 400 mg/dL: estimate unreliable, obtain direct LDL measurement"
			}

			return &score.Result{
				Result:           ldl,
				Unit:             "mg/dL",
				Interpretation:   interp,
				Stage:            stage,
				StageDescription: description,
				Extra:            extra,
			}, nil
		},
	}
}
