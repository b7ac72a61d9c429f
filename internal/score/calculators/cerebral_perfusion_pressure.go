package calculators

import (
	"fmt"

	"medcalc/internal/score"
)

func cerebralPerfusionPressure() score.Definition {
	return score.Definition{
		ID:          "cerebral_perfusion_pressure",
		Title:       "Cerebral Perfusion Pressure (CPP)",
		Description: "Net pressure gradient driving cerebral blood flow, calculated as mean arterial pressure minus intracranial pressure.",
		Category:    "neurology",
		Version:     "1",
		Params: []score.ParamSpec{
			num("mean_arterial_pressure", "mmHg", "Mean arterial pressure", 30, 200),
			num("intracranial_pressure", "mmHg", "Intracranial pressure", 0, 100),
		},
		Example: map[string]any{
			"mean_arterial_pressure": 90,
			"intracranial_pressure":  15,
		},
		Compute: func(p score.Params) (*score.Result, error) {
			mapValue := p.Float("mean_arterial_pressure")
			icp := p.Float("intracranial_pressure")
			cpp := round1(mapValue - icp)

			var stage, description, advice string
			switch {
			case cpp < 30:
				stage = "Critical"
				description = "Critically low cerebral perfusion pressure"
				advice = "Incompatible with adequate cerebral perfusion; immediate intervention required."
			case cpp < 50:
				stage = "Severely Low"
				description = "Severely low cerebral perfusion pressure"
				advice = "High risk of cerebral ischemia; urgent measures to raise MAP or lower ICP."
			case cpp < 60:
				stage = "Low"
				description = "Low cerebral perfusion pressure"
				advice = "Below the usual therapeutic target; optimize hemodynamics."
			case cpp < 80:
				stage = "Optimal"
				description = "Optimal cerebral perfusion pressure"
				advice = "Within the commonly targeted range for neurocritical care."
			case cpp < 100:
				stage = "Adequate"
				description = "Adequate cerebral perfusion pressure"
				advice = "Adequate perfusion; avoid excessive MAP augmentation."
			default:
				stage = "High"
				description = "High cerebral perfusion pressure"
				advice = "Elevated CPP; consider risk of hyperperfusion and breakthrough edema."
			}

			return &score.Result{
				Result:           cpp,
				Unit:             "mmHg",
				Interpretation:   fmt.Sprintf("CPP = MAP (%.1f) - ICP (%.1f) = %.1f mmHg. %s", mapValue, icp, cpp, advice),
				Stage:            stage,
				StageDescription: description,
			}, nil
		},
	}
}
