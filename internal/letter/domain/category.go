// Package domain defines the letter addressing model: categories, recipients,
// document bundles and cover letter templates.
package domain

import (
	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
)

// Category is the addressing role a letter is produced for. It drives both
// recipient resolution and cover letter template choice.
type Category string

const (
	CategoryAppellant                Category = "appellant"
	CategoryRepresentative           Category = "representative"
	CategoryJointParty               Category = "jointParty"
	CategoryOtherParty               Category = "otherParty"
	CategoryOtherPartyRepresentative Category = "otherPartyRepresentative"
	CategoryDepartment               Category = "department"
)

// TriggeredBy maps an evidence document category to the letter category of the
// party that submitted it (the "original sender").
func TriggeredBy(category casedomain.DocumentCategory) Category {
	switch category {
	case casedomain.DocumentCategoryAppellantEvidence:
		return CategoryAppellant
	case casedomain.DocumentCategoryRepresentativeEvidence:
		return CategoryRepresentative
	case casedomain.DocumentCategoryJointPartyEvidence:
		return CategoryJointParty
	case casedomain.DocumentCategoryOtherPartyEvidence:
		return CategoryOtherParty
	case casedomain.DocumentCategoryDepartmentEvidence:
		return CategoryDepartment
	default:
		return ""
	}
}

// Recipient is the resolved addressee of one letter.
type Recipient struct {
	Name    string
	Address casedomain.Address
}

// IsDegraded reports whether the recipient resolved to the empty-address
// sentinel. Sending on an empty address is a known degraded case, not an error.
func (r Recipient) IsDegraded() bool {
	return r.Address.IsEmpty()
}
