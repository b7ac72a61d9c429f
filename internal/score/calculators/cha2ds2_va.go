package calculators

import (
	"fmt"

	"medcalc/internal/score"
)

// Annual stroke rate per 100 patient-years by CHA2DS2-VA score.
var cha2ds2VARates = map[int]float64{
	0: 0.5, 1: 1.5, 2: 2.9, 3: 4.6, 4: 6.7, 5: 9.2, 6: 11.9, 7: 15.2, 8: 19.5,
}

func cha2ds2VAScore() score.Definition {
	return score.Definition{
		ID:          "cha2ds2_va_score",
		Title:       "CHA2DS2-VA Score for Atrial Fibrillation Stroke Risk",
		Description: "Sex-independent refinement of CHA2DS2-VASc estimating stroke risk in atrial fibrillation to guide anticoagulation.",
		Category:    "cardiology",
		Params: []score.ParamSpec{
			num("age", "years", "Patient age in years", 18, 120),
			yesNo("congestive_heart_failure", "History of congestive heart failure or left ventricular dysfunction"),
			yesNo("hypertension", "History of hypertension or current antihypertensive treatment"),
			yesNo("diabetes_mellitus", "History of diabetes mellitus or current treatment"),
			yesNo("stroke_tia_thromboembolism", "Prior stroke, TIA, or thromboembolism"),
			yesNo("vascular_disease", "Vascular disease: prior MI, peripheral artery disease, or aortic plaque"),
		},
		Example: map[string]any{
			"age":                        72,
			"congestive_heart_failure":   "no",
			"hypertension":               "yes",
			"diabetes_mellitus":          "no",
			"stroke_tia_thromboembolism": "no",
			"vascular_disease":           "no",
		},
		Compute: func(p score.Params) (*score.Result, error) {
			age := p.Int("age")
			agePoints := 0
			switch {
			case age >= 75:
				agePoints = 2
			case age >= 65:
				agePoints = 1
			}

			total := agePoints
			if p.Yes("congestive_heart_failure") {
				total++
			}
			if p.Yes("hypertension") {
				total++
			}
			if p.Yes("diabetes_mellitus") {
				total++
			}
			if p.Yes("stroke_tia_thromboembolism") {
				total += 2
			}
			if p.Yes("vascular_disease") {
				total++
			}

			rate, ok := cha2ds2VARates[total]
			if !ok {
				rate = cha2ds2VARates[8]
			}

			var stage, description, interpretation string
			switch {
			case total == 0:
				stage = "Low Risk"
				description = "Very low stroke risk"
				interpretation = fmt.Sprintf("CHA2DS2-VA score %d: very low stroke risk (%.1f strokes per 100 patient-years). Anticoagulation is not recommended; consider bleeding risk assessment.", total, rate)
			case total == 1:
				stage = "Moderate Risk"
				description = "Low-moderate stroke risk"
				interpretation = fmt.Sprintf("CHA2DS2-VA score %d: low-moderate stroke risk (%.1f strokes per 100 patient-years). Use clinical judgment to weigh risks and benefits of anticoagulation.", total, rate)
			default:
				stage = "High Risk"
				description = "High stroke risk"
				interpretation = fmt.Sprintf("CHA2DS2-VA score %d: high stroke risk (%.1f strokes per 100 patient-years). Oral anticoagulation is recommended unless contraindicated.", total, rate)
			}

			return &score.Result{
				Result:           total,
				Unit:             "points",
				Interpretation:   interpretation,
				Stage:            stage,
				StageDescription: description,
				Extra: map[string]any{
					"annual_stroke_risk_percent": rate,
					"stroke_incidence":           fmt.Sprintf("%.1f per 100 patient-years", rate),
					"age_points":                 agePoints,
				},
			}, nil
		},
	}
}
