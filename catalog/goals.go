package catalog

import "github.com/nutribucks/rewards-engine/engine"

// =============================================================================
// HEALTH GOAL DIRECTORY
// =============================================================================

// GoalDefinition describes a selectable health goal.
type GoalDefinition struct {
	ID          engine.HealthGoal
	Name        string
	Description string
}

var goals = []GoalDefinition{
	{ID: engine.GoalWeightLoss, Name: "Weight Loss", Description: "Lower-calorie, high-fiber choices"},
	{ID: engine.GoalHeartHealth, Name: "Heart Health", Description: "Low sodium and whole grains"},
	{ID: engine.GoalDiabetesManagement, Name: "Diabetes Management", Description: "Fiber-rich, low-sugar choices"},
	{ID: engine.GoalGeneralWellness, Name: "General Wellness", Description: "Balanced, organic-leaning basket"},
	{ID: engine.GoalMuscleBuilding, Name: "Muscle Building", Description: "High-protein choices"},
	{ID: engine.GoalGutHealth, Name: "Gut Health", Description: "Fiber and plant-based choices"},
}

// Goals returns every selectable health goal.
func Goals() []GoalDefinition {
	out := make([]GoalDefinition, len(goals))
	copy(out, goals)
	return out
}

// ValidGoal reports whether id names a known health goal.
func ValidGoal(id engine.HealthGoal) bool {
	for _, g := range goals {
		if g.ID == id {
			return true
		}
	}
	return false
}
