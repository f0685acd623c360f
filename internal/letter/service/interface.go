// Package service implements recipient resolution and department address lookup
// for letter addressing.
package service

import (
	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
	letterdomain "github.com/allisson/caseflow/internal/letter/domain"
)

// RecipientResolver computes the mailing name and address for a letter category
// on a given case snapshot.
type RecipientResolver interface {
	// Resolve returns the recipient for the category. otherPartyID selects the
	// other-party entry for the OtherParty and OtherPartyRepresentative
	// categories and is ignored otherwise.
	Resolve(
		snapshot *casedomain.CaseSnapshot,
		category letterdomain.Category,
		otherPartyID string,
	) (letterdomain.Recipient, error)
}

// DepartmentAddressBook resolves the physical address of the government
// department office handling a case. Lookups never fail: an unknown
// combination reports found=false and the caller decides how to proceed.
type DepartmentAddressBook interface {
	// Lookup resolves an address by benefit type and issuing office code.
	// Benefit types are matched case-insensitively.
	Lookup(benefitType, issuingOffice string) (address casedomain.Address, found bool)
}
