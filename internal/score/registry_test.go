package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "medcalc/pkg/domain-errors"
)

func defFixture(id string) Definition {
	return Definition{
		ID:       id,
		Title:    "Test Score",
		Category: "general",
		Params: []ParamSpec{
			{Name: "value", Kind: KindNumber, Min: F(0), Max: F(10), Required: true},
		},
		Compute: func(p Params) (*Result, error) {
			return &Result{
				Result:           p.Float("value"),
				Unit:             "points",
				Interpretation:   "test",
				Stage:            "Stage",
				StageDescription: "stage description",
			}, nil
		},
	}
}

func TestNewRegistryRejectsDuplicateID(t *testing.T) {
	_, err := NewRegistry(defFixture("apache_ii"), defFixture("apache_ii"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate score id")
	assert.Contains(t, err.Error(), "apache_ii")
}

func TestNewRegistryRejectsMalformedID(t *testing.T) {
	for _, id := range []string{"", "Apache-II", "apache ii", "APACHE_II", "_apache"} {
		_, err := NewRegistry(defFixture(id))
		assert.Error(t, err, "id %q must be rejected", id)
	}
}

func TestNewRegistryRejectsMissingCompute(t *testing.T) {
	def := defFixture("apache_ii")
	def.Compute = nil
	_, err := NewRegistry(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compute")
}

func TestNewRegistryRejectsBadParamSpec(t *testing.T) {
	def := defFixture("apache_ii")
	def.Params = []ParamSpec{{Name: "choice", Kind: KindEnum, Required: true}}
	_, err := NewRegistry(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allowed values")

	def.Params = []ParamSpec{{Name: "value", Kind: KindNumber, Min: F(10), Max: F(1)}}
	_, err = NewRegistry(def)
	require.Error(t, err)

	def.Params = []ParamSpec{{Name: "value", Kind: KindNumber, Min: F(0), Max: F(5), Default: 9}}
	_, err = NewRegistry(def)
	require.Error(t, err, "default outside its own range must be rejected")
}

func TestLookupUnknownIDIsNotFound(t *testing.T) {
	reg, err := NewRegistry(defFixture("apache_ii"))
	require.NoError(t, err)

	_, err = reg.Lookup("not_a_real_calculator")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	assert.False(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Contains(t, err.Error(), "not_a_real_calculator")
}

func TestRegistryListingIsSorted(t *testing.T) {
	reg, err := NewRegistry(defFixture("zulu"), defFixture("alpha"), defFixture("mike"))
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "mike", "zulu"}, reg.IDs())
	assert.Equal(t, 3, reg.Len())

	defs := reg.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "alpha", defs[0].ID)
}
