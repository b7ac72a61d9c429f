package calculators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func news2Params(overrides map[string]any) map[string]any {
	raw := map[string]any{
		"respiratory_rate":                "12_to_20",
		"hypercapnic_respiratory_failure": "no",
		"oxygen_saturation":               "96_or_more",
		"supplemental_oxygen":             "no",
		"temperature":                     "36_1_to_38",
		"systolic_bp":                     "111_to_219",
		"heart_rate":                      "51_to_90",
		"consciousness":                   "alert",
	}
	for k, v := range overrides {
		raw[k] = v
	}
	return raw
}

func TestNEWS2AllNormal(t *testing.T) {
	res := dispatch(t, "news_2", news2Params(nil))
	assert.Equal(t, 0, res.Result)
	assert.Equal(t, "Low Risk", res.Stage)
	assert.Equal(t, false, res.Extra["red_flag"])
}

func TestNEWS2SingleRedParameter(t *testing.T) {
	res := dispatch(t, "news_2", news2Params(map[string]any{
		"consciousness": "altered",
	}))
	assert.Equal(t, 3, res.Result)
	assert.Equal(t, "Low-Medium Risk", res.Stage)
	assert.Equal(t, true, res.Extra["red_flag"])
}

func TestNEWS2HighRisk(t *testing.T) {
	res := dispatch(t, "news_2", news2Params(map[string]any{
		"respiratory_rate":    "25_or_more",
		"systolic_bp":         "90_or_less",
		"supplemental_oxygen": "yes",
	}))
	assert.Equal(t, 8, res.Result)
	assert.Equal(t, "High Risk", res.Stage)
}

func TestNEWS2HypercapnicScaleTargetRange(t *testing.T) {
	// 88-92% scores zero on scale 2 but would score on scale 1.
	res := dispatch(t, "news_2", news2Params(map[string]any{
		"hypercapnic_respiratory_failure": "yes",
		"oxygen_saturation":               "88_to_92",
	}))
	assert.Equal(t, 0, res.Result)

	// On scale 2, saturations above target score when on supplemental oxygen.
	res = dispatch(t, "news_2", news2Params(map[string]any{
		"hypercapnic_respiratory_failure": "yes",
		"oxygen_saturation":               "97_or_more",
		"supplemental_oxygen":             "yes",
	}))
	assert.Equal(t, 5, res.Result) // 3 for SpO2 band + 2 for supplemental oxygen
	assert.Equal(t, "Medium Risk", res.Stage)
}

func TestROXIndexBands(t *testing.T) {
	cases := []struct {
		name      string
		spo2      float64
		fio2      float64
		rr        float64
		wantStage string
	}{
		{"high risk", 88, 0.8, 32, "High Risk"},
		{"indeterminate", 92, 0.7, 30, "Indeterminate Risk"},
		{"lower risk", 96, 0.4, 22, "Lower Risk"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := dispatch(t, "rox_index", map[string]any{
				"spo2":             tc.spo2,
				"fio2":             tc.fio2,
				"respiratory_rate": tc.rr,
			})
			assert.Equal(t, tc.wantStage, res.Stage)
		})
	}
}

func TestROXIndexValue(t *testing.T) {
	res := dispatch(t, "rox_index", map[string]any{
		"spo2":             95,
		"fio2":             0.5,
		"respiratory_rate": 25,
	})
	assert.Equal(t, 7.6, res.Result)
	assert.Equal(t, "index", res.Unit)
}

func TestWintersExpectedOnly(t *testing.T) {
	res := dispatch(t, "winters_formula_metabolic_acidosis", map[string]any{"bicarbonate": 15})
	assert.Equal(t, 30.5, res.Result)
	assert.Equal(t, "Expected Compensation", res.Stage)

	rng, ok := res.Extra["expected_range"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 28.5, rng["low"])
	assert.Equal(t, 32.5, rng["high"])
}

func TestWintersCompensationAssessment(t *testing.T) {
	cases := []struct {
		name      string
		pco2      float64
		wantStage string
	}{
		{"within range", 30, "Appropriate Compensation"},
		{"below range", 25, "Overcompensation"},
		{"above range", 38, "Undercompensation"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := dispatch(t, "winters_formula_metabolic_acidosis", map[string]any{
				"bicarbonate":   15,
				"measured_pco2": tc.pco2,
			})
			assert.Equal(t, tc.wantStage, res.Stage)
		})
	}
}

func TestCerebralPerfusionPressureBands(t *testing.T) {
	cases := []struct {
		mapV, icp float64
		want      float64
		wantStage string
	}{
		{90, 15, 75, "Optimal"},
		{60, 35, 25, "Critical"},
		{80, 35, 45, "Severely Low"},
		{75, 20, 55, "Low"},
		{105, 15, 90, "Adequate"},
		{130, 10, 120, "High"},
	}
	for _, tc := range cases {
		res := dispatch(t, "cerebral_perfusion_pressure", map[string]any{
			"mean_arterial_pressure": tc.mapV,
			"intracranial_pressure":  tc.icp,
		})
		assert.Equal(t, tc.want, res.Result)
		assert.Equal(t, tc.wantStage, res.Stage, "MAP %v ICP %v", tc.mapV, tc.icp)
	}
}

func TestChildPughGrades(t *testing.T) {
	gradeA := dispatch(t, "child_pugh_score", map[string]any{
		"total_bilirubin": 1.0,
		"serum_albumin":   4.0,
		"inr":             1.1,
		"ascites":         "absent",
		"encephalopathy":  "none",
	})
	assert.Equal(t, 5, gradeA.Result)
	assert.Equal(t, "Child-Pugh A", gradeA.Stage)

	gradeC := dispatch(t, "child_pugh_score", map[string]any{
		"total_bilirubin": 4.0,
		"serum_albumin":   2.5,
		"inr":             2.5,
		"ascites":         "moderate",
		"encephalopathy":  "grade_3_4",
	})
	assert.Equal(t, 15, gradeC.Result)
	assert.Equal(t, "Child-Pugh C", gradeC.Stage)
	assert.Equal(t, "C", gradeC.Extra["grade"])
}
