package calculators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medcalc/internal/score"
)

func newCalculatorService(t *testing.T) *score.Service {
	t.Helper()
	reg, err := score.NewRegistry(All()...)
	require.NoError(t, err)
	svc, err := score.NewService(reg)
	require.NoError(t, err)
	return svc
}

func dispatch(t *testing.T, id string, raw map[string]any) *score.Result {
	t.Helper()
	res, err := newCalculatorService(t).Dispatch(context.Background(), id, raw)
	require.NoError(t, err)
	return res
}

func TestAllRegistersCleanly(t *testing.T) {
	reg, err := score.NewRegistry(All()...)
	require.NoError(t, err)
	assert.Equal(t, len(All()), reg.Len())
}

// Every calculator's published example must dispatch to a complete envelope.
func TestExamplesProduceCompleteEnvelopes(t *testing.T) {
	svc := newCalculatorService(t)
	for _, def := range svc.Registry().Definitions() {
		def := def
		t.Run(def.ID, func(t *testing.T) {
			require.NotEmpty(t, def.Example, "calculator ships without an example")
			res, err := svc.Dispatch(context.Background(), def.ID, def.Example)
			require.NoError(t, err)
			assert.NotNil(t, res.Result)
			assert.NotEmpty(t, res.Unit)
			assert.NotEmpty(t, res.Interpretation)
			assert.NotEmpty(t, res.Stage)
			assert.NotEmpty(t, res.StageDescription)
		})
	}
}
