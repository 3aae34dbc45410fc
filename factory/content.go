/*
Package factory provides YAML to Go content conversion.

PURPOSE:
  Converts YAML challenge and achievement definitions into engine types.
  This enables content configuration without code changes - program
  operators can define seasonal challenges and achievements in YAML, and
  the factory merges them over the built-in catalogs.

YAML SCHEMA:
  challenges:
    - id: spring_produce
      title: Spring Produce Rush
      description: Buy 5 fruits or vegetables this week
      type: buy_category
      target_category: fruits_vegetables
      target_count: 5
      frequency: weekly
      reward_points: 90

  achievements:
    - id: spring_shopper
      name: Spring Shopper
      description: Scan 10 receipts
      category: shopping
      rarity: uncommon
      condition: "totalReceipts >= 10"

KEY FEATURES:
  - Validates challenge type and frequency (unknown values are errors;
    a typo must not silently produce a challenge that can never progress)
  - Merges by id: an overlay entry with a built-in id replaces it,
    a new id appends
  - Achievement conditions are NOT validated here - the engine treats
    unparseable conditions as never met, so newer overlay files stay
    loadable on older builds

USAGE:
  content, err := factory.LoadContent("content.yaml")
  challenges := factory.MergeChallenges(engine.DefaultChallenges(), content.Challenges)
  achievements := factory.MergeAchievements(engine.DefaultAchievements(), content.Achievements)

SEE ALSO:
  - engine/challenges.go: Challenge catalog and selection
  - engine/achievements.go: Achievement catalog and evaluation
*/
package factory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nutribucks/rewards-engine/engine"
)

// =============================================================================
// YAML SCHEMA TYPES
// =============================================================================

// ContentYAML is the top-level content overlay document.
type ContentYAML struct {
	Challenges   []ChallengeYAML   `yaml:"challenges,omitempty"`
	Achievements []AchievementYAML `yaml:"achievements,omitempty"`
}

// ChallengeYAML is the YAML representation of a challenge definition.
type ChallengeYAML struct {
	ID                   string  `yaml:"id"`
	Title                string  `yaml:"title"`
	Description          string  `yaml:"description,omitempty"`
	Type                 string  `yaml:"type"`
	TargetCount          float64 `yaml:"target_count"`
	TargetCategory       string  `yaml:"target_category,omitempty"`
	HealthScoreThreshold int     `yaml:"health_score_threshold,omitempty"`
	Frequency            string  `yaml:"frequency"`
	RewardPoints         int     `yaml:"reward_points"`
}

// AchievementYAML is the YAML representation of an achievement definition.
type AchievementYAML struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category,omitempty"`
	Rarity      string `yaml:"rarity,omitempty"`
	Condition   string `yaml:"condition"`
}

// Content is the parsed, validated overlay ready to merge.
type Content struct {
	Challenges   []engine.Challenge
	Achievements []engine.Achievement
}

// =============================================================================
// LOADING
// =============================================================================

// LoadContent reads and parses a YAML content overlay file.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return ParseContent(data)
}

// ParseContent parses a YAML content overlay document.
func ParseContent(data []byte) (*Content, error) {
	var cy ContentYAML
	if err := yaml.Unmarshal(data, &cy); err != nil {
		return nil, fmt.Errorf("failed to parse content YAML: %w", err)
	}

	content := &Content{}

	for _, c := range cy.Challenges {
		challenge, err := challengeFromYAML(c)
		if err != nil {
			return nil, err
		}
		content.Challenges = append(content.Challenges, challenge)
	}

	for _, a := range cy.Achievements {
		if a.ID == "" {
			return nil, fmt.Errorf("achievement missing id")
		}
		content.Achievements = append(content.Achievements, engine.Achievement{
			ID:          engine.AchievementID(a.ID),
			Name:        a.Name,
			Description: a.Description,
			Category:    a.Category,
			Rarity:      a.Rarity,
			Condition:   a.Condition,
		})
	}

	return content, nil
}

func challengeFromYAML(c ChallengeYAML) (engine.Challenge, error) {
	if c.ID == "" {
		return engine.Challenge{}, fmt.Errorf("challenge missing id")
	}

	ctype, err := parseChallengeType(c.Type)
	if err != nil {
		return engine.Challenge{}, fmt.Errorf("challenge %q: %w", c.ID, err)
	}
	freq, err := parseChallengeFrequency(c.Frequency)
	if err != nil {
		return engine.Challenge{}, fmt.Errorf("challenge %q: %w", c.ID, err)
	}
	if c.TargetCount <= 0 {
		return engine.Challenge{}, fmt.Errorf("challenge %q: target_count must be positive", c.ID)
	}
	if ctype == engine.ChallengeBuyCategory && c.TargetCategory == "" {
		return engine.Challenge{}, fmt.Errorf("challenge %q: buy_category requires target_category", c.ID)
	}

	return engine.Challenge{
		ID:                   engine.ChallengeID(c.ID),
		Title:                c.Title,
		Description:          c.Description,
		Type:                 ctype,
		TargetCount:          c.TargetCount,
		TargetCategory:       engine.ProductCategory(c.TargetCategory),
		HealthScoreThreshold: c.HealthScoreThreshold,
		Frequency:            freq,
		RewardPoints:         c.RewardPoints,
	}, nil
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

func parseChallengeType(s string) (engine.ChallengeType, error) {
	switch s {
	case "buy_category":
		return engine.ChallengeBuyCategory, nil
	case "buy_healthy":
		return engine.ChallengeBuyHealthy, nil
	case "total_receipts":
		return engine.ChallengeTotalReceipts, nil
	case "unique_products":
		return engine.ChallengeUniqueProducts, nil
	case "spend_amount":
		return engine.ChallengeSpendAmount, nil
	case "earn_points":
		return engine.ChallengeEarnPoints, nil
	default:
		return "", fmt.Errorf("unknown challenge type: %s", s)
	}
}

func parseChallengeFrequency(s string) (engine.ChallengeFrequency, error) {
	switch s {
	case "daily":
		return engine.FrequencyDaily, nil
	case "weekly":
		return engine.FrequencyWeekly, nil
	case "monthly":
		return engine.FrequencyMonthly, nil
	default:
		return "", fmt.Errorf("unknown challenge frequency: %s", s)
	}
}

// =============================================================================
// MERGING
// =============================================================================

// MergeChallenges overlays operator challenges onto the built-in
// catalog. Matching ids replace in place; new ids append in file order.
func MergeChallenges(base, overlay []engine.Challenge) []engine.Challenge {
	merged := make([]engine.Challenge, len(base))
	copy(merged, base)

	index := make(map[engine.ChallengeID]int, len(merged))
	for i, c := range merged {
		index[c.ID] = i
	}

	for _, c := range overlay {
		if i, ok := index[c.ID]; ok {
			merged[i] = c
		} else {
			index[c.ID] = len(merged)
			merged = append(merged, c)
		}
	}
	return merged
}

// MergeAchievements overlays operator achievements onto the built-in
// catalog, same replace-or-append semantics as MergeChallenges.
func MergeAchievements(base, overlay []engine.Achievement) []engine.Achievement {
	merged := make([]engine.Achievement, len(base))
	copy(merged, base)

	index := make(map[engine.AchievementID]int, len(merged))
	for i, a := range merged {
		index[a.ID] = i
	}

	for _, a := range overlay {
		if i, ok := index[a.ID]; ok {
			merged[i] = a
		} else {
			index[a.ID] = len(merged)
			merged = append(merged, a)
		}
	}
	return merged
}
