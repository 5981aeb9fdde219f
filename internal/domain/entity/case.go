package entity

import "fmt"

// CaseStage mirrors the stage enum stored by the case contract.
type CaseStage uint8

const (
	CaseStageDraft CaseStage = iota
	CaseStageOpen
	CaseStageVerdict
	CaseStageClosed
	CaseStageCancelled
)

var caseStageNames = map[CaseStage]string{
	CaseStageDraft:     "draft",
	CaseStageOpen:      "open",
	CaseStageVerdict:   "verdict",
	CaseStageClosed:    "closed",
	CaseStageCancelled: "cancelled",
}

func (s CaseStage) String() string {
	if name, ok := caseStageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// Roles an account can post under in a case.
const (
	CaseRoleAdmin     = "admin"
	CaseRoleSubject   = "subject"
	CaseRolePlaintiff = "plaintiff"
	CaseRoleJudge     = "judge"
	CaseRoleWitness   = "witness"
	CaseRoleAffected  = "affected"
)
