package matching

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserInteractionsReplaces(t *testing.T) {
	engine := NewEngine()
	now := time.Now()

	engine.UpdateUserInteractions("user-1", []Interaction{
		{TargetID: "a", Type: "viewed", Timestamp: now},
		{TargetID: "b", Type: "viewed", Timestamp: now},
	})
	engine.UpdateUserInteractions("user-1", []Interaction{
		{TargetID: "c", Type: "contacted", Timestamp: now},
	})

	history := engine.UserInteractions("user-1")
	require.Len(t, history, 1)
	assert.Equal(t, "c", history[0].TargetID)
}

func TestUpdateUserInteractionsCopiesInput(t *testing.T) {
	engine := NewEngine()

	input := []Interaction{{TargetID: "a", Type: "viewed", Timestamp: time.Now()}}
	engine.UpdateUserInteractions("user-1", input)
	input[0].TargetID = "mutated"

	history := engine.UserInteractions("user-1")
	require.Len(t, history, 1)
	assert.Equal(t, "a", history[0].TargetID)
}

func TestUpdateUserInteractionsIgnoresEmptyUserID(t *testing.T) {
	engine := NewEngine()
	engine.UpdateUserInteractions("", []Interaction{{TargetID: "a"}})
	assert.Empty(t, engine.UserInteractions(""))
}

func TestSimilarUsers(t *testing.T) {
	engine := NewEngine()
	now := time.Now()

	engine.UpdateUserInteractions("me", []Interaction{
		{TargetID: "a", Type: "viewed", Timestamp: now},
		{TargetID: "b", Type: "viewed", Timestamp: now},
		{TargetID: "c", Type: "viewed", Timestamp: now},
	})
	// 3/3 overlap: similar.
	engine.UpdateUserInteractions("twin", []Interaction{
		{TargetID: "a"}, {TargetID: "b"}, {TargetID: "c"},
	})
	// 1/3 overlap (0.333): just above threshold.
	engine.UpdateUserInteractions("acquaintance", []Interaction{
		{TargetID: "a"},
	})
	// 1/5 overlap (0.2): below threshold.
	engine.UpdateUserInteractions("stranger", []Interaction{
		{TargetID: "a"}, {TargetID: "x"}, {TargetID: "y"}, {TargetID: "z"},
	})

	similar := engine.similarUsers("me")
	assert.True(t, similar["twin"])
	assert.True(t, similar["acquaintance"])
	assert.False(t, similar["stranger"])
	assert.False(t, similar["me"], "a user is never similar to themselves")
}

func TestSimilarUsersCapped(t *testing.T) {
	engine := NewEngine()

	engine.UpdateUserInteractions("me", []Interaction{{TargetID: "shared"}})
	for i := 0; i < 25; i++ {
		engine.UpdateUserInteractions(fmt.Sprintf("peer-%02d", i), []Interaction{{TargetID: "shared"}})
	}

	similar := engine.similarUsers("me")
	assert.Len(t, similar, maxSimilarUsers)
	// Equal similarity breaks ties on user ID for a deterministic cap.
	for i := 0; i < maxSimilarUsers; i++ {
		assert.True(t, similar[fmt.Sprintf("peer-%02d", i)])
	}
}

func TestSimilarUsersNoHistory(t *testing.T) {
	engine := NewEngine()
	assert.Empty(t, engine.similarUsers("ghost"))
}

func TestInteractionStoreConcurrentAccess(t *testing.T) {
	engine := NewEngine()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", i%4)
			for j := 0; j < 50; j++ {
				engine.UpdateUserInteractions(userID, []Interaction{
					{TargetID: "t", Type: "viewed", Timestamp: now},
				})
				engine.UserInteractions(userID)
				engine.similarUsers(userID)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, engine.UserInteractions("user-0"), 1)
}
