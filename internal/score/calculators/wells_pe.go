package calculators

import (
	"fmt"

	"medcalc/internal/score"
)

// wellsWeights carries the criterion weights of the Wells pulmonary embolism
// score as published by the upstream service.
var wellsWeights = []struct {
	param  string
	points float64
	label  string
}{
	{"clinical_signs_dvt", 3.0, "Clinical signs and symptoms of DVT"},
	{"pe_most_likely", 4.5, "PE is the most likely diagnosis"},
	{"heart_rate_over_100", 1.5, "Heart rate over 100 beats per minute"},
	{"immobilization_surgery_recent", 1.5, "Immobilization or surgery in the previous four weeks"},
	{"previous_dvt_pe", 1.5, "Previous objectively diagnosed DVT or PE"},
	{"hemoptysis", 1.0, "Hemoptysis"},
	{"active_malignancy", 1.0, "Active malignancy"},
}

func wellsCriteriaPE() score.Definition {
	params := make([]score.ParamSpec, 0, len(wellsWeights))
	for _, w := range wellsWeights {
		params = append(params, yesNo(w.param, w.label))
	}

	return score.Definition{
		ID:          "wells_criteria_pe",
		Title:       "Wells' Criteria for Pulmonary Embolism",
		Description: "Estimates the pretest probability of pulmonary embolism to guide D-dimer testing and CT pulmonary angiography.",
		Category:    "emergency",
		Params:      params,
		Example: map[string]any{
			"clinical_signs_dvt":            "no",
			"pe_most_likely":                "yes",
			"heart_rate_over_100":           "no",
			"immobilization_surgery_recent": "no",
			"previous_dvt_pe":               "no",
			"hemoptysis":                    "no",
			"active_malignancy":             "no",
		},
		Compute: func(p score.Params) (*score.Result, error) {
			total := 0.0
			breakdown := make(map[string]any, len(wellsWeights))
			for _, w := range wellsWeights {
				pts := 0.0
				if p.Yes(w.param) {
					pts = w.points
				}
				total += pts
				breakdown[w.param] = pts
			}

			var stage, stageDescription, guidance string
			switch {
			case total < 2:
				stage = "Low Risk"
				stageDescription = "Low probability of pulmonary embolism"
				guidance = "Consider D-dimer testing or PERC rule to rule out PE."
			case total <= 6:
				stage = "Intermediate Risk"
				stageDescription = "Moderate probability of pulmonary embolism"
				guidance = "Consider high-sensitivity D-dimer testing or CT pulmonary angiography."
			default:
				stage = "High Risk"
				stageDescription = "High probability of pulmonary embolism"
				guidance = "CT pulmonary angiography is recommended; D-dimer is insufficient to rule out PE."
			}

			twoTier := "PE Unlikely"
			if total > 4 {
				twoTier = "PE Likely"
			}

			return &score.Result{
				Result: total,
				Unit:   "points",
				Interpretation: fmt.Sprintf("Wells score %.1f: %s (two-tier: %s). %s",
					total, stageDescription, twoTier, guidance),
				Stage:            stage,
				StageDescription: stageDescription,
				Extra: map[string]any{
					"two_tier":  twoTier,
					"breakdown": breakdown,
				},
			}, nil
		},
	}
}
