package calculators

import (
	"fmt"

	"medcalc/internal/score"
)

// fisherGrade maps one CT finding to its Fisher grade and vasospasm risk.
type fisherGrade struct {
	grade          int
	stage          string
	description    string
	vasospasmRisk  string
	recommendation string
}

var fisherGrades = map[string]fisherGrade{
	"no_hemorrhage": {
		grade:          1,
		stage:          "Grade I",
		description:    "No hemorrhage evident on CT",
		vasospasmRisk:  "low (0-21%)",
		recommendation: "Routine monitoring is appropriate.",
	},
	"diffuse_thin": {
		grade:          2,
		stage:          "Grade II",
		description:    "Diffuse deposition or thin layer of subarachnoid blood <1mm thick",
		vasospasmRisk:  "low (0-25%)",
		recommendation: "Routine monitoring is appropriate.",
	},
	"localized_thick": {
		grade:          3,
		stage:          "Grade III",
		description:    "Localized clot or layer >1mm thick in the vertical plane",
		vasospasmRisk:  "high (23-96%)",
		recommendation: "Close monitoring for delayed cerebral ischemia is warranted; consider nimodipine prophylaxis.",
	},
	"intracerebral_intraventricular": {
		grade:          4,
		stage:          "Grade IV",
		description:    "Intracerebral or intraventricular clot with diffuse or no subarachnoid blood",
		vasospasmRisk:  "low to moderate (31-35%)",
		recommendation: "Monitor for hydrocephalus and mass effect in addition to vasospasm.",
	},
}

func fisherGradingScale() score.Definition {
	return score.Definition{
		ID:          "fisher_grading_scale",
		Title:       "Fisher Grading Scale for Subarachnoid Hemorrhage",
		Description: "Grades the appearance of subarachnoid hemorrhage on non-contrast head CT to predict the risk of cerebral vasospasm.",
		Category:    "neurology",
		Params: []score.ParamSpec{
			{
				Name:     "ct_findings",
				Kind:     score.KindEnum,
				Allowed:  []string{"no_hemorrhage", "diffuse_thin", "localized_thick", "intracerebral_intraventricular"},
				Required: true,
				Description: "Appearance of blood on the initial non-contrast head CT within 5 days " +
					"of aneurysm rupture",
			},
		},
		Example: map[string]any{"ct_findings": "localized_thick"},
		Compute: func(p score.Params) (*score.Result, error) {
			g := fisherGrades[p.Str("ct_findings")]
			return &score.Result{
				Result: g.grade,
				Unit:   "grade",
				Interpretation: fmt.Sprintf("Fisher %s: %s. Risk of cerebral vasospasm is %s. %s",
					g.stage, g.description, g.vasospasmRisk, g.recommendation),
				Stage:            g.stage,
				StageDescription: g.description,
				Extra: map[string]any{
					"vasospasm_risk": g.vasospasmRisk,
				},
			}, nil
		},
	}
}
