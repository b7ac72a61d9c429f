package calculators

import "medcalc/internal/score"

// CHADS-65 is a decision algorithm, not a point score: the result is the
// recommended therapy, reached at the first satisfied step.
func chads65() score.Definition {
	return score.Definition{
		ID:          "chads_65",
		Title:       "CHADS-65 Algorithm for Antithrombotic Therapy",
		Description: "Canadian age-based decision algorithm selecting antithrombotic therapy for patients with nonvalvular atrial fibrillation.",
		Category:    "cardiology",
		Params: []score.ParamSpec{
			yesNo("age_65_or_older", "Patient age 65 years or older"),
			yesNo("congestive_heart_failure", "History of congestive heart failure or left ventricular dysfunction"),
			yesNo("hypertension", "History of hypertension or current treatment"),
			yesNo("diabetes_mellitus", "History of diabetes mellitus or current treatment"),
			yesNo("stroke_tia_history", "Previous stroke, TIA, or thromboembolism"),
			yesNo("coronary_artery_disease", "Coronary artery disease including MI or revascularization"),
			yesNo("peripheral_artery_disease", "Peripheral artery disease including amputation, bypass, or angioplasty"),
		},
		Example: map[string]any{
			"age_65_or_older":           "yes",
			"congestive_heart_failure":  "no",
			"hypertension":              "no",
			"diabetes_mellitus":         "no",
			"stroke_tia_history":        "no",
			"coronary_artery_disease":   "no",
			"peripheral_artery_disease": "no",
		},
		Compute: func(p score.Params) (*score.Result, error) {
			type outcome struct {
				therapy        string
				step           int
				rationale      string
				description    string
				interpretation string
			}

			var o outcome
			switch {
			case p.Yes("age_65_or_older"):
				o = outcome{
					therapy:        "Oral Anticoagulation",
					step:           1,
					rationale:      "Age 65 years or older",
					description:    "Oral anticoagulation recommended",
					interpretation: "CHADS-65 step 1: age 65 years or older. Oral anticoagulation (DOAC preferred over warfarin) is recommended regardless of other risk factors.",
				}
			case p.Yes("congestive_heart_failure") || p.Yes("hypertension") ||
				p.Yes("diabetes_mellitus") || p.Yes("stroke_tia_history"):
				o = outcome{
					therapy:        "Oral Anticoagulation",
					step:           2,
					rationale:      "CHADS2 risk factor present despite age under 65",
					description:    "Oral anticoagulation recommended",
					interpretation: "CHADS-65 step 2: at least one CHADS2 risk factor present. Oral anticoagulation is recommended despite age under 65 years.",
				}
			case p.Yes("coronary_artery_disease") || p.Yes("peripheral_artery_disease"):
				o = outcome{
					therapy:        "Antiplatelet Therapy",
					step:           3,
					rationale:      "Arterial vascular disease without CHADS2 risk factors",
					description:    "ASA 81 mg daily recommended",
					interpretation: "CHADS-65 step 3: coronary or peripheral artery disease without CHADS2 risk factors. Antiplatelet therapy with ASA 81 mg daily is recommended.",
				}
			default:
				o = outcome{
					therapy:        "No Antithrombotic Therapy",
					step:           3,
					rationale:      "No high-risk features",
					description:    "No antithrombotic therapy recommended",
					interpretation: "CHADS-65: age under 65 years, no CHADS2 risk factors, and no vascular disease. No antithrombotic therapy is recommended; reassess annually.",
				}
			}

			return &score.Result{
				Result: map[string]any{
					"therapy_recommendation": o.therapy,
					"decision_step":          o.step,
					"rationale":              o.rationale,
				},
				Unit:             "recommendation",
				Interpretation:   o.interpretation,
				Stage:            o.therapy,
				StageDescription: o.description,
			}, nil
		},
	}
}
