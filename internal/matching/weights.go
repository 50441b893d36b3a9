package matching

// MatchWeights defines the relative importance of each scoring dimension.
// The defaults sum to 1.0, keeping the weighted overall score in [0,1].
type MatchWeights struct {
	Skills        float64
	Interests     float64
	Goals         float64
	Experience    float64
	Availability  float64
	Personality   float64
	Communication float64
	Location      float64
	Budget        float64
	Language      float64
}

// DefaultWeights returns the standard weight distribution.
func DefaultWeights() MatchWeights {
	return MatchWeights{
		Skills:        0.25,
		Interests:     0.15,
		Goals:         0.20,
		Experience:    0.15,
		Availability:  0.10,
		Personality:   0.05,
		Communication: 0.03,
		Location:      0.03,
		Budget:        0.02,
		Language:      0.02,
	}
}

// Sum returns the total of all weights.
func (w MatchWeights) Sum() float64 {
	return w.Skills + w.Interests + w.Goals + w.Experience + w.Availability +
		w.Personality + w.Communication + w.Location + w.Budget + w.Language
}

// WeightOverrides lets a caller replace individual weights. Nil fields keep
// the default.
//
// Overrides are merged onto the defaults as-is: the engine does NOT
// re-normalize the merged set, so an override whose total weight is not 1.0
// shifts the effective scale of the overall score. Callers overriding weights
// are responsible for supplying a coherent set.
type WeightOverrides struct {
	Skills        *float64 `json:"skills,omitempty"`
	Interests     *float64 `json:"interests,omitempty"`
	Goals         *float64 `json:"goals,omitempty"`
	Experience    *float64 `json:"experience,omitempty"`
	Availability  *float64 `json:"availability,omitempty"`
	Personality   *float64 `json:"personality,omitempty"`
	Communication *float64 `json:"communication,omitempty"`
	Location      *float64 `json:"location,omitempty"`
	Budget        *float64 `json:"budget,omitempty"`
	Language      *float64 `json:"language,omitempty"`
}

// apply merges the overrides onto w, field by field.
func (o *WeightOverrides) apply(w MatchWeights) MatchWeights {
	if o == nil {
		return w
	}
	if o.Skills != nil {
		w.Skills = *o.Skills
	}
	if o.Interests != nil {
		w.Interests = *o.Interests
	}
	if o.Goals != nil {
		w.Goals = *o.Goals
	}
	if o.Experience != nil {
		w.Experience = *o.Experience
	}
	if o.Availability != nil {
		w.Availability = *o.Availability
	}
	if o.Personality != nil {
		w.Personality = *o.Personality
	}
	if o.Communication != nil {
		w.Communication = *o.Communication
	}
	if o.Location != nil {
		w.Location = *o.Location
	}
	if o.Budget != nil {
		w.Budget = *o.Budget
	}
	if o.Language != nil {
		w.Language = *o.Language
	}
	return w
}
