package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root, err := NewRootCmd("test")
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), err
}

func TestListShowsRegisteredScores(t *testing.T) {
	out, err := runCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "fisher_grading_scale")
	assert.Contains(t, out, "wells_criteria_pe")
}

func TestListCategoryFilter(t *testing.T) {
	out, err := runCommand(t, "list", "--category", "cardiology")
	require.NoError(t, err)
	assert.Contains(t, out, "chads2_score")
	assert.NotContains(t, out, "fisher_grading_scale")
}

func TestDescribeEmitsConstraints(t *testing.T) {
	out, err := runCommand(t, "describe", "fisher_grading_scale")
	require.NoError(t, err)

	var md map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &md))
	assert.Equal(t, "fisher_grading_scale", md["id"])
	assert.NotEmpty(t, md["parameters"])
}

func TestCalcWithParams(t *testing.T) {
	out, err := runCommand(t, "calc", "fisher_grading_scale", "-p", "ct_findings=localized_thick")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, float64(3), res["result"])
	assert.Equal(t, "Grade III", res["stage"])
}

func TestCalcWithJSONPayload(t *testing.T) {
	out, err := runCommand(t, "calc", "rox_index",
		"--json", `{"spo2": 95, "fio2": 0.5, "respiratory_rate": 25}`)
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 7.6, res["result"])
}

func TestCalcRejectsMalformedParam(t *testing.T) {
	_, err := runCommand(t, "calc", "fisher_grading_scale", "-p", "ct_findings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name=value")
}

func TestCalcValidationErrorSurfaces(t *testing.T) {
	_, err := runCommand(t, "calc", "fisher_grading_scale", "-p", "ct_findings=bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ct_findings")
}

func TestCalcUnknownScore(t *testing.T) {
	_, err := runCommand(t, "calc", "no_such_score")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}
