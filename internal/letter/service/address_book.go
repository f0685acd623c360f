package service

import (
	"strings"

	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
)

// addressBook is an immutable in-memory DepartmentAddressBook keyed by
// (lowercased benefit type, issuing office code).
type addressBook struct {
	addresses map[addressKey]casedomain.Address
}

type addressKey struct {
	benefitType   string
	issuingOffice string
}

// NewDepartmentAddressBook builds an address book from the given entries.
// The entries map is copied; benefit types are stored lowercased so lookups
// are case-insensitive.
func NewDepartmentAddressBook(entries map[string]map[string]casedomain.Address) DepartmentAddressBook {
	addresses := make(map[addressKey]casedomain.Address)
	for benefitType, offices := range entries {
		for office, address := range offices {
			key := addressKey{
				benefitType:   strings.ToLower(benefitType),
				issuingOffice: office,
			}
			addresses[key] = address
		}
	}
	return &addressBook{addresses: addresses}
}

// Lookup resolves an address by benefit type and issuing office code.
func (b *addressBook) Lookup(benefitType, issuingOffice string) (casedomain.Address, bool) {
	key := addressKey{
		benefitType:   strings.ToLower(strings.TrimSpace(benefitType)),
		issuingOffice: strings.TrimSpace(issuingOffice),
	}
	address, found := b.addresses[key]
	return address, found
}

// DefaultDepartmentAddresses returns the built-in department office addresses.
func DefaultDepartmentAddresses() map[string]map[string]casedomain.Address {
	return map[string]map[string]casedomain.Address{
		"PIP": {
			"1": {Line1: "Mail Handling Site A", Town: "Wolverhampton", Postcode: "WV98 1AA"},
			"2": {Line1: "Mail Handling Site A", Town: "Wolverhampton", Postcode: "WV98 1AB"},
			"3": {Line1: "Mail Handling Site A", Town: "Wolverhampton", Postcode: "WV98 1AD"},
		},
		"ESA": {
			"Balham DRT":   {Line1: "Mail Handling Site A", Town: "Wolverhampton", Postcode: "WV98 1AJ"},
			"Watford DRT":  {Line1: "Mail Handling Site A", Town: "Wolverhampton", Postcode: "WV98 1AK"},
			"Worthing DRT": {Line1: "Mail Handling Site A", Town: "Wolverhampton", Postcode: "WV98 1AL"},
		},
		"UC": {
			"Universal Credit": {Line1: "Pension Service 8", Line2: "Post Handling Site B", Town: "Wolverhampton", Postcode: "WV99 1AN"},
		},
	}
}
