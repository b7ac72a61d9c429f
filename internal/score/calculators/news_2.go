package calculators

import (
	"fmt"
	"sort"

	"medcalc/internal/score"
)

// NEWS2 vital sign bands. Inputs arrive pre-bucketed so the bedside chart and
// the calculator agree on band boundaries.
var (
	news2RespRate = map[string]int{
		"8_or_less": 3, "9_to_11": 1, "12_to_20": 0, "21_to_24": 2, "25_or_more": 3,
	}
	news2Temperature = map[string]int{
		"35_or_less": 3, "35_1_to_36": 1, "36_1_to_38": 0, "38_1_to_39": 1, "39_1_or_more": 2,
	}
	news2SystolicBP = map[string]int{
		"90_or_less": 3, "91_to_100": 2, "101_to_110": 1, "111_to_219": 0, "220_or_more": 3,
	}
	news2HeartRate = map[string]int{
		"40_or_less": 3, "41_to_50": 1, "51_to_90": 0, "91_to_110": 1, "111_to_130": 2, "131_or_more": 3,
	}
	news2Consciousness = map[string]int{"alert": 0, "altered": 3}
)

func news2() score.Definition {
	return score.Definition{
		ID:          "news_2",
		Title:       "National Early Warning Score 2 (NEWS2)",
		Description: "Standardized assessment of acute illness severity from six physiological parameters, with a dedicated oxygen saturation scale for hypercapnic respiratory failure.",
		Category:    "emergency",
		Version:     "2",
		Params: []score.ParamSpec{
			{Name: "respiratory_rate", Kind: score.KindEnum, Allowed: keysOf(news2RespRate), Required: true, Unit: "breaths/min", Description: "Respiratory rate band"},
			yesNo("hypercapnic_respiratory_failure", "Known hypercapnic respiratory failure (use SpO2 scale 2)"),
			{
				Name: "oxygen_saturation",
				Kind: score.KindEnum,
				Allowed: []string{
					"83_or_less", "84_to_85", "86_to_87", "88_to_92", "91_or_less",
					"92_to_93", "93_to_94", "94_to_95", "95_to_96", "96_or_more", "97_or_more",
				},
				Required:    true,
				Unit:        "%",
				Description: "Oxygen saturation band",
			},
			yesNo("supplemental_oxygen", "Receiving supplemental oxygen"),
			{Name: "temperature", Kind: score.KindEnum, Allowed: keysOf(news2Temperature), Required: true, Unit: "degC", Description: "Temperature band"},
			{Name: "systolic_bp", Kind: score.KindEnum, Allowed: keysOf(news2SystolicBP), Required: true, Unit: "mmHg", Description: "Systolic blood pressure band"},
			{Name: "heart_rate", Kind: score.KindEnum, Allowed: keysOf(news2HeartRate), Required: true, Unit: "beats/min", Description: "Heart rate band"},
			{Name: "consciousness", Kind: score.KindEnum, Allowed: []string{"alert", "altered"}, Required: true, Description: "Level of consciousness (ACVPU: altered covers confusion, voice, pain, unresponsive)"},
		},
		Example: map[string]any{
			"respiratory_rate":                "12_to_20",
			"hypercapnic_respiratory_failure": "no",
			"oxygen_saturation":               "96_or_more",
			"supplemental_oxygen":             "no",
			"temperature":                     "36_1_to_38",
			"systolic_bp":                     "111_to_219",
			"heart_rate":                      "51_to_90",
			"consciousness":                   "alert",
		},
		Compute: func(p score.Params) (*score.Result, error) {
			resp := news2RespRate[p.Str("respiratory_rate")]
			temp := news2Temperature[p.Str("temperature")]
			bp := news2SystolicBP[p.Str("systolic_bp")]
			hr := news2HeartRate[p.Str("heart_rate")]
			consciousness := news2Consciousness[p.Str("consciousness")]

			o2Supplement := 0
			if p.Yes("supplemental_oxygen") {
				o2Supplement = 2
			}

			spo2 := news2SpO2(p.Str("oxygen_saturation"),
				p.Yes("hypercapnic_respiratory_failure"),
				p.Yes("supplemental_oxygen"))

			total := resp + spo2 + o2Supplement + temp + bp + hr + consciousness

			// A single parameter at 3 is a red flag prompting escalation even
			// at low aggregate scores.
			redFlag := resp == 3 || spo2 == 3 || temp == 3 || bp == 3 || hr == 3 || consciousness == 3

			var stage, description, response string
			switch {
			case total >= 7:
				stage = "High Risk"
				description = "High clinical risk"
				response = "Emergency assessment by a clinical team with critical care competencies; consider transfer to higher level of care."
			case total >= 5:
				stage = "Medium Risk"
				description = "Medium clinical risk"
				response = "Urgent review by a clinician competent in the assessment of acute illness."
			case redFlag:
				stage = "Low-Medium Risk"
				description = "Low-medium clinical risk with a red score parameter"
				response = "Urgent ward-based review: a single parameter scored 3."
			case total >= 1:
				stage = "Low Risk"
				description = "Low clinical risk"
				response = "Assessment by a competent registered nurse; 4-6 hourly monitoring."
			default:
				stage = "Low Risk"
				description = "Low clinical risk"
				response = "Continue routine monitoring."
			}

			return &score.Result{
				Result:           total,
				Unit:             "points",
				Interpretation:   fmt.Sprintf("NEWS2 score %d: %s. %s", total, description, response),
				Stage:            stage,
				StageDescription: description,
				Extra: map[string]any{
					"red_flag": redFlag,
				},
			}, nil
		},
	}
}

// news2SpO2 scores oxygen saturation on scale 1 or scale 2. Bands from the
// other scale are mapped onto the active one so chart and calculator inputs
// interoperate.
func news2SpO2(band string, hypercapnic, onOxygen bool) int {
	if hypercapnic {
		switch band {
		case "83_or_less":
			return 3
		case "84_to_85":
			return 2
		case "86_to_87":
			return 1
		case "88_to_92", "92_to_93":
			return 0
		case "93_to_94":
			if onOxygen {
				return 1
			}
			return 0
		case "95_to_96", "94_to_95":
			if onOxygen {
				return 2
			}
			return 0
		case "97_or_more", "96_or_more":
			if onOxygen {
				return 3
			}
			return 0
		case "91_or_less":
			return 3
		}
		return 0
	}

	switch band {
	case "91_or_less", "83_or_less", "84_to_85", "86_to_87":
		return 3
	case "92_to_93", "88_to_92":
		return 2
	case "94_to_95", "93_to_94":
		return 1
	default: // >= 96%
		return 0
	}
}

// keysOf returns map keys in registration order for enum specs. Sorted for
// stable catalog output.
func keysOf(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
