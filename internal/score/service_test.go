package score

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "medcalc/pkg/domain-errors"
)

func newTestService(t *testing.T, defs ...Definition) *Service {
	t.Helper()
	reg, err := NewRegistry(defs...)
	require.NoError(t, err)
	svc, err := NewService(reg)
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresRegistry(t *testing.T) {
	_, err := NewService(nil)
	require.Error(t, err)
}

func TestDispatchSuccess(t *testing.T) {
	svc := newTestService(t, defFixture("simple_score"))

	res, err := svc.Dispatch(context.Background(), "simple_score", map[string]any{"value": 7.0})
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Result)
	assert.Equal(t, "points", res.Unit)
	assert.NotEmpty(t, res.Interpretation)
	assert.NotEmpty(t, res.Stage)
	assert.NotEmpty(t, res.StageDescription)
}

func TestDispatchUnknownIDIsNotFound(t *testing.T) {
	svc := newTestService(t, defFixture("simple_score"))

	_, err := svc.Dispatch(context.Background(), "not_a_real_calculator", nil)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestDispatchValidationPrecedesComputation(t *testing.T) {
	invoked := false
	def := defFixture("simple_score")
	inner := def.Compute
	def.Compute = func(p Params) (*Result, error) {
		invoked = true
		return inner(p)
	}
	svc := newTestService(t, def)

	_, err := svc.Dispatch(context.Background(), "simple_score", map[string]any{"value": 99.0})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.False(t, invoked, "compute must never observe out-of-range input")
}

func TestDispatchUnitSignaledBadInputStaysValidation(t *testing.T) {
	def := defFixture("cross_field")
	def.Compute = func(p Params) (*Result, error) {
		return nil, BadParam("value", "cannot equal the reference value")
	}
	svc := newTestService(t, def)

	_, err := svc.Dispatch(context.Background(), "cross_field", map[string]any{"value": 5.0})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Contains(t, err.Error(), "value")
}

func TestDispatchUnexpectedErrorBecomesInternal(t *testing.T) {
	cause := errors.New("table lookup out of bounds")
	def := defFixture("buggy_score")
	def.Compute = func(p Params) (*Result, error) {
		return nil, cause
	}
	svc := newTestService(t, def)

	_, err := svc.Dispatch(context.Background(), "buggy_score", map[string]any{"value": 5.0})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	// the original failure is preserved for diagnostics, never swallowed
	assert.ErrorIs(t, err, cause)
}

func TestDispatchPanicBecomesInternal(t *testing.T) {
	def := defFixture("panicking_score")
	def.Compute = func(p Params) (*Result, error) {
		panic("index out of range")
	}
	svc := newTestService(t, def)

	_, err := svc.Dispatch(context.Background(), "panicking_score", map[string]any{"value": 5.0})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	assert.Contains(t, err.Error(), "index out of range")
}

func TestDispatchIncompleteEnvelopeBecomesInternal(t *testing.T) {
	def := defFixture("partial_score")
	def.Compute = func(p Params) (*Result, error) {
		return &Result{Result: 1.0, Unit: "points"}, nil
	}
	svc := newTestService(t, def)

	_, err := svc.Dispatch(context.Background(), "partial_score", map[string]any{"value": 5.0})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	assert.Contains(t, err.Error(), "contract")
}

func TestDispatchIsDeterministic(t *testing.T) {
	svc := newTestService(t, defFixture("simple_score"))
	in := map[string]any{"value": 3.0}

	first, err := svc.Dispatch(context.Background(), "simple_score", in)
	require.NoError(t, err)
	second, err := svc.Dispatch(context.Background(), "simple_score", in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDispatchConcurrentCallsToSameScore(t *testing.T) {
	svc := newTestService(t, defFixture("simple_score"))

	done := make(chan error, 32)
	for i := 0; i < 32; i++ {
		go func() {
			_, err := svc.Dispatch(context.Background(), "simple_score", map[string]any{"value": 4.0})
			done <- err
		}()
	}
	for i := 0; i < 32; i++ {
		require.NoError(t, <-done)
	}
}
