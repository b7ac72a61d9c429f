package calculators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "medcalc/pkg/domain-errors"
)

func TestFisherGradeIII(t *testing.T) {
	res := dispatch(t, "fisher_grading_scale", map[string]any{
		"ct_findings": "localized_thick",
	})

	assert.Equal(t, 3, res.Result)
	assert.Equal(t, "Grade III", res.Stage)
	assert.Contains(t, res.StageDescription, "Localized clot or layer >1mm thick")
	assert.NotEmpty(t, res.Interpretation)
}

func TestFisherGrades(t *testing.T) {
	for findings, want := range map[string]int{
		"no_hemorrhage":                  1,
		"diffuse_thin":                   2,
		"localized_thick":                3,
		"intracerebral_intraventricular": 4,
	} {
		res := dispatch(t, "fisher_grading_scale", map[string]any{"ct_findings": findings})
		assert.Equal(t, want, res.Result, findings)
	}
}

func TestFisherRejectsUnknownFinding(t *testing.T) {
	svc := newCalculatorService(t)
	_, err := svc.Dispatch(context.Background(), "fisher_grading_scale", map[string]any{
		"ct_findings": "grade_9000",
	})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Contains(t, err.Error(), "ct_findings")
	for _, allowed := range []string{"no_hemorrhage", "diffuse_thin", "localized_thick", "intracerebral_intraventricular"} {
		assert.Contains(t, err.Error(), allowed)
	}
}
