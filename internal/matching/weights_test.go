package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, DefaultWeights().Sum(), 0.0001)
}

func TestWeightOverridesApply(t *testing.T) {
	t.Run("nil overrides keep defaults", func(t *testing.T) {
		var overrides *WeightOverrides
		assert.Equal(t, DefaultWeights(), overrides.apply(DefaultWeights()))
	})

	t.Run("partial override touches only named fields", func(t *testing.T) {
		half := 0.5
		merged := (&WeightOverrides{Skills: &half}).apply(DefaultWeights())

		expected := DefaultWeights()
		expected.Skills = 0.5
		assert.Equal(t, expected, merged)
		// Deliberately no re-normalization: the sum now exceeds 1.0.
		assert.InDelta(t, 1.25, merged.Sum(), 0.0001)
	})
}
