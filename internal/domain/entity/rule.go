package entity

// RuleEffects is the reputation impact of a rule across the four domains.
// Field names match the ABI tuple components so the struct packs directly.
type RuleEffects struct {
	Environmental int8 `json:"environmental"`
	Personal      int8 `json:"personal"`
	Professional  int8 `json:"professional"`
	Social        int8 `json:"social"`
}

// Rule is a jurisdiction law entry. About holds the action GUID.
type Rule struct {
	About    [32]byte    `json:"about"`
	Affected string      `json:"affected"`
	Negation bool        `json:"negation"`
	Uri      string      `json:"uri"`
	Effects  RuleEffects `json:"effects"`
}

// Confirmation describes what a case needs before a rule's verdict applies.
type Confirmation struct {
	Ruling   string `json:"ruling"`
	Evidence bool   `json:"evidence"`
	Witness  uint8  `json:"witness"`
}

// DefaultConfirmation is what a new rule gets when the caller sends none.
func DefaultConfirmation() Confirmation {
	return Confirmation{Ruling: CaseRoleJudge, Evidence: true, Witness: 1}
}
