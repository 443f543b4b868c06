package entities

// Choice is one resolvable option within an encounter. It tests a single
// skill against a difficulty and carries the signed deltas for both
// outcomes.
type Choice struct {
	Label          string        `json:"label"`
	Skill          Skill         `json:"skill"`
	Difficulty     int           `json:"difficulty"`
	SuccessText    string        `json:"success_text"`
	FailureText    string        `json:"failure_text"`
	SuccessReward  ResourceDelta `json:"success_reward"`
	FailurePenalty ResourceDelta `json:"failure_penalty"`
}

// Encounter is an immutable travel event offering two or more choices
type Encounter struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

// ResolutionOutcome is the ephemeral result of resolving a choice. The
// caller applies AppliedDelta through the character and discards this.
type ResolutionOutcome struct {
	Success      bool
	Critical     bool
	Roll         int
	AppliedDelta ResourceDelta
	Text         string
}
