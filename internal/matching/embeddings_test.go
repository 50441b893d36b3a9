package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillEmbeddingsShape(t *testing.T) {
	assert.NotEmpty(t, skillEmbeddings)
	for skill, vec := range skillEmbeddings {
		assert.Len(t, vec, EmbeddingDimensions, "skill %q", skill)
	}
}

func TestSkillVectorLookup(t *testing.T) {
	_, ok := skillVector("React")
	assert.True(t, ok, "lookup is case-insensitive")

	_, ok = skillVector("  go  ")
	assert.True(t, ok, "lookup trims whitespace")

	_, ok = skillVector("underwater basket weaving")
	assert.False(t, ok)
}

func TestSameCategorySkillsAreCloser(t *testing.T) {
	tests := []struct {
		name       string
		anchor     string
		sameCat    string
		crossCat   string
	}{
		{"frontend vs backend", "react", "typescript", "go"},
		{"backend vs design", "python", "django", "figma"},
		{"data vs business", "machine learning", "pytorch", "sales"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor, ok := skillVector(tt.anchor)
			require.True(t, ok)
			same, ok := skillVector(tt.sameCat)
			require.True(t, ok)
			cross, ok := skillVector(tt.crossCat)
			require.True(t, ok)

			sameSim := CosineSimilarity(anchor, same)
			crossSim := CosineSimilarity(anchor, cross)
			assert.Greater(t, sameSim, crossSim)
			assert.Greater(t, sameSim, 0.8, "same-category skills stay close")
		})
	}
}

func TestCategoryDimensionsDoNotCollide(t *testing.T) {
	used := make(map[int]string)
	for _, cat := range skillCategories {
		for _, dim := range []int{cat.dim, cat.dim + 1} {
			require.Less(t, dim, EmbeddingDimensions)
			owner, taken := used[dim]
			require.False(t, taken, "dimension %d claimed by both %s and %s", dim, owner, cat.name)
			used[dim] = cat.name
		}
	}
}
