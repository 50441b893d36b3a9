package matching

// EmbeddingDimensions is the size of every skill vector.
const EmbeddingDimensions = 50

// skillCategory groups related skills onto a shared primary dimension. Each
// skill gets 1.0 on the category's primary dimension plus a small value on the
// next dimension encoding its position within the category, so skills in the
// same category are always cosine-closer to each other than to skills in any
// other category.
type skillCategory struct {
	name   string
	dim    int
	skills []string
}

// skillCategories is a fixed, hand-authored taxonomy, not a learned model.
// Category primary dimensions are spaced so no secondary dimension collides
// with another category's primary.
var skillCategories = []skillCategory{
	{name: "frontend", dim: 0, skills: []string{
		"javascript", "typescript", "react", "vue", "angular",
		"html", "css", "sass", "webpack", "frontend",
	}},
	{name: "backend", dim: 5, skills: []string{
		"node.js", "python", "java", "go", "rust",
		"php", "ruby", "c#", "spring", "django", "backend",
	}},
	{name: "database", dim: 10, skills: []string{
		"sql", "postgresql", "mysql", "mongodb", "redis",
		"elasticsearch", "database design",
	}},
	{name: "cloud", dim: 15, skills: []string{
		"aws", "azure", "gcp", "docker", "kubernetes",
		"terraform", "devops", "ci/cd",
	}},
	{name: "mobile", dim: 20, skills: []string{
		"ios", "android", "swift", "kotlin", "react native", "flutter",
	}},
	{name: "data", dim: 25, skills: []string{
		"machine learning", "data science", "data analysis", "pandas",
		"tensorflow", "pytorch", "statistics", "ai",
	}},
	{name: "design", dim: 30, skills: []string{
		"ui design", "ux design", "figma", "sketch",
		"prototyping", "design systems", "graphic design",
	}},
	{name: "management", dim: 35, skills: []string{
		"leadership", "project management", "agile", "scrum",
		"team management", "product management", "mentoring",
	}},
	{name: "business", dim: 40, skills: []string{
		"marketing", "sales", "finance", "strategy",
		"entrepreneurship", "business development", "negotiation",
	}},
}

// skillEmbeddings maps lower-cased skill keywords to their fixed sparse
// vectors. Built once at package init from skillCategories.
var skillEmbeddings = buildSkillEmbeddings()

func buildSkillEmbeddings() map[string][]float64 {
	embeddings := make(map[string][]float64)
	for _, cat := range skillCategories {
		for i, skill := range cat.skills {
			vec := make([]float64, EmbeddingDimensions)
			vec[cat.dim] = 1.0
			// Intra-category ordinal, kept small so the shared primary
			// dimension dominates the cosine.
			vec[cat.dim+1] = 0.05 * float64(i+1)
			embeddings[skill] = vec
		}
	}
	return embeddings
}

// skillVector looks up the embedding for a raw skill string.
func skillVector(skill string) ([]float64, bool) {
	vec, ok := skillEmbeddings[normalizeTerm(skill)]
	return vec, ok
}
