package matching

import "sort"

// UpdateUserInteractions replaces (not appends) the stored interaction list
// for a user. The history lives for the process lifetime only; persistence is
// the caller's concern.
func (e *Engine) UpdateUserInteractions(userID string, interactions []Interaction) {
	if userID == "" {
		return
	}

	stored := make([]Interaction, len(interactions))
	copy(stored, interactions)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.interactions[userID] = stored
}

// UserInteractions returns a copy of the stored interaction list for a user.
func (e *Engine) UserInteractions(userID string) []Interaction {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stored := e.interactions[userID]
	out := make([]Interaction, len(stored))
	copy(out, stored)
	return out
}

// similarUsers finds up to maxSimilarUsers users whose interaction targets
// overlap the given user's by more than similarUserThreshold (Jaccard over
// target-ID sets). Ties break on user ID so the result is deterministic
// despite map iteration order.
func (e *Engine) similarUsers(userID string) map[string]bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	own := interactionTargets(e.interactions[userID])
	if len(own) == 0 {
		return nil
	}

	type similarity struct {
		id  string
		sim float64
	}
	var candidates []similarity
	for id, history := range e.interactions {
		if id == userID {
			continue
		}
		sim := JaccardSimilarity(own, interactionTargets(history))
		if sim > similarUserThreshold {
			candidates = append(candidates, similarity{id: id, sim: sim})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].sim != candidates[j].sim {
			return candidates[i].sim > candidates[j].sim
		}
		return candidates[i].id < candidates[j].id
	})
	if len(candidates) > maxSimilarUsers {
		candidates = candidates[:maxSimilarUsers]
	}

	similar := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		similar[c.id] = true
	}
	return similar
}

func interactionTargets(history []Interaction) []string {
	targets := make([]string, 0, len(history))
	for _, record := range history {
		targets = append(targets, record.TargetID)
	}
	return targets
}
