package calculators

import (
	"fmt"

	"medcalc/internal/score"
)

func childPughScore() score.Definition {
	return score.Definition{
		ID:          "child_pugh_score",
		Title:       "Child-Pugh Score for Cirrhosis Mortality",
		Description: "Assesses severity of cirrhosis and operative risk from bilirubin, albumin, INR, ascites, and encephalopathy.",
		Category:    "gastroenterology",
		Params: []score.ParamSpec{
			num("total_bilirubin", "mg/dL", "Serum total bilirubin", 0.1, 50.0),
			num("serum_albumin", "g/dL", "Serum albumin", 1.0, 5.0),
			num("inr", "", "International Normalized Ratio", 0.8, 10.0),
			{
				Name:        "ascites",
				Kind:        score.KindEnum,
				Allowed:     []string{"absent", "slight", "moderate"},
				Required:    true,
				Description: "Ascites severity on examination or imaging",
			},
			{
				Name:        "encephalopathy",
				Kind:        score.KindEnum,
				Allowed:     []string{"none", "grade_1_2", "grade_3_4"},
				Required:    true,
				Description: "Hepatic encephalopathy grade (West Haven)",
			},
		},
		Example: map[string]any{
			"total_bilirubin": 1.5,
			"serum_albumin":   3.8,
			"inr":             1.2,
			"ascites":         "absent",
			"encephalopathy":  "none",
		},
		Compute: func(p score.Params) (*score.Result, error) {
			bilirubin := scoreBilirubin(p.Float("total_bilirubin"))
			albumin := scoreAlbumin(p.Float("serum_albumin"))
			inr := scoreINR(p.Float("inr"))
			ascites := map[string]int{"absent": 1, "slight": 2, "moderate": 3}[p.Str("ascites")]
			enceph := map[string]int{"none": 1, "grade_1_2": 2, "grade_3_4": 3}[p.Str("encephalopathy")]

			total := bilirubin + albumin + inr + ascites + enceph

			var grade, description, interpretation string
			var oneYear, twoYear int
			switch {
			case total <= 6:
				grade = "A"
				description = "Well-compensated disease"
				oneYear, twoYear = 100, 85
				interpretation = fmt.Sprintf("Child-Pugh Grade A (score %d): well-compensated cirrhosis. Excellent operative risk; suitable for major surgery and liver resection.", total)
			case total <= 9:
				grade = "B"
				description = "Significant functional compromise"
				oneYear, twoYear = 80, 60
				interpretation = fmt.Sprintf("Child-Pugh Grade B (score %d): significant functional compromise. Consider surgery with caution; may require liver transplant evaluation.", total)
			default:
				grade = "C"
				description = "Decompensated disease"
				oneYear, twoYear = 45, 35
				interpretation = fmt.Sprintf("Child-Pugh Grade C (score %d): decompensated cirrhosis. High surgical mortality; priority candidate for liver transplantation.", total)
			}

			return &score.Result{
				Result:           total,
				Unit:             "points",
				Interpretation:   interpretation,
				Stage:            "Child-Pugh " + grade,
				StageDescription: description,
				Extra: map[string]any{
					"grade":                     grade,
					"one_year_survival_percent": oneYear,
					"two_year_survival_percent": twoYear,
					"component_points": map[string]any{
						"total_bilirubin": bilirubin,
						"serum_albumin":   albumin,
						"inr":             inr,
						"ascites":         ascites,
						"encephalopathy":  enceph,
					},
				},
			}, nil
		},
	}
}

func scoreBilirubin(v float64) int {
	switch {
	case v < 2.0:
		return 1
	case v <= 3.0:
		return 2
	default:
		return 3
	}
}

func scoreAlbumin(v float64) int {
	switch {
	case v > 3.5:
		return 1
	case v >= 2.8:
		return 2
	default:
		return 3
	}
}

func scoreINR(v float64) int {
	switch {
	case v < 1.7:
		return 1
	case v <= 2.3:
		return 2
	default:
		return 3
	}
}
