package calculators

import (
	"fmt"

	"medcalc/internal/score"
)

// Annual stroke risk by CHADS2 score (Gage 2001 validation cohort).
var chads2Risk = map[int]struct {
	rate      float64
	rateRange string
	category  string
}{
	0: {1.9, "1.2-3.0", "Low"},
	1: {2.8, "2.0-3.8", "Low-Intermediate"},
	2: {4.0, "3.1-5.1", "Intermediate"},
	3: {5.9, "4.6-7.3", "High"},
	4: {8.5, "6.3-11.1", "High"},
	5: {12.5, "8.2-17.5", "Very High"},
	6: {18.2, "10.5-27.4", "Very High"},
}

func chads2Score() score.Definition {
	return score.Definition{
		ID:          "chads2_score",
		Title:       "CHADS2 Score for Atrial Fibrillation Stroke Risk",
		Description: "Estimates annual stroke risk in patients with atrial fibrillation to guide anticoagulation therapy decisions.",
		Category:    "cardiology",
		Params: []score.ParamSpec{
			yesNo("congestive_heart_failure", "History of congestive heart failure or left ventricular dysfunction"),
			yesNo("hypertension", "History of hypertension or current antihypertensive treatment"),
			yesNo("age_75_or_older", "Patient age 75 years or older"),
			yesNo("diabetes_mellitus", "History of diabetes mellitus or current treatment"),
			yesNo("stroke_tia_thromboembolism", "Previous stroke, TIA, or thromboembolism"),
		},
		Example: map[string]any{
			"congestive_heart_failure":   "no",
			"hypertension":               "yes",
			"age_75_or_older":            "no",
			"diabetes_mellitus":          "yes",
			"stroke_tia_thromboembolism": "no",
		},
		Compute: func(p score.Params) (*score.Result, error) {
			total := 0
			for _, name := range []string{
				"congestive_heart_failure", "hypertension",
				"age_75_or_older", "diabetes_mellitus",
			} {
				if p.Yes(name) {
					total++
				}
			}
			if p.Yes("stroke_tia_thromboembolism") {
				total += 2 // prior stroke/TIA/thromboembolism is worth 2 points
			}

			risk := chads2Risk[total]
			var stage, description, recommendation string
			switch {
			case total == 0:
				stage = "Low Risk"
				description = "Low stroke risk"
				recommendation = "Consider further risk stratification with CHA2DS2-VASc or aspirin based on bleeding risk."
			case total == 1:
				stage = "Low-Intermediate Risk"
				description = "Low-intermediate stroke risk"
				recommendation = "Consider anticoagulation or further risk stratification based on bleeding risk assessment."
			case total == 2:
				stage = "Intermediate Risk"
				description = "Intermediate stroke risk"
				recommendation = "Anticoagulation generally recommended unless contraindicated."
			case total <= 4:
				stage = "High Risk"
				description = "High stroke risk"
				recommendation = "Strong recommendation for anticoagulation with warfarin or DOACs."
			default:
				stage = "Very High Risk"
				description = "Very high stroke risk"
				recommendation = "Strong recommendation for anticoagulation with warfarin or DOACs."
			}

			return &score.Result{
				Result: total,
				Unit:   "points",
				Interpretation: fmt.Sprintf(
					"CHADS2 score %d: annual stroke risk %.1f%% (range %s%%). %s",
					total, risk.rate, risk.rateRange, recommendation),
				Stage:            stage,
				StageDescription: description,
				Extra: map[string]any{
					"annual_stroke_risk_percent":     risk.rate,
					"stroke_risk_range":              risk.rateRange,
					"risk_category":                  risk.category,
					"anticoagulation_recommendation": recommendation,
				},
			}, nil
		},
	}
}
