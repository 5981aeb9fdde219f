package entity

import "strings"

// ReputationDomain is one of the areas an avatar's reputation is scored in.
type ReputationDomain string

const (
	ReputationDomainEnvironment  ReputationDomain = "environment"
	ReputationDomainPersonal     ReputationDomain = "personal"
	ReputationDomainProfessional ReputationDomain = "professional"
	ReputationDomainSocial       ReputationDomain = "social"
)

// ParseReputationDomain accepts the domain name case-insensitively.
func ParseReputationDomain(s string) (ReputationDomain, bool) {
	d := ReputationDomain(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case ReputationDomainEnvironment, ReputationDomainPersonal, ReputationDomainProfessional, ReputationDomainSocial:
		return d, true
	}
	return "", false
}

// ReputationRating selects the negative or positive score bucket.
type ReputationRating uint8

const (
	ReputationNegative ReputationRating = 0
	ReputationPositive ReputationRating = 1
)

// Valid reports whether r is a rating the contract accepts.
func (r ReputationRating) Valid() bool {
	return r == ReputationNegative || r == ReputationPositive
}

// DefaultReputationAmount is the score added by a single vote.
const DefaultReputationAmount uint8 = 1
