// Package domain defines the case record entities read and mutated by the
// event dispatch and document distribution engine.
package domain

import "strings"

// YesNo is the case record representation of a boolean flag.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// IsYes reports whether the flag is set. Absent and "No" are equivalent.
func (y YesNo) IsYes() bool {
	return strings.EqualFold(string(y), string(Yes))
}

// Name holds the display name parts of a party on the case.
type Name struct {
	Title     string
	FirstName string
	LastName  string
}

// FullName returns "FirstName LastName", skipping empty parts.
func (n Name) FullName() string {
	parts := make([]string, 0, 2)
	if n.FirstName != "" {
		parts = append(parts, n.FirstName)
	}
	if n.LastName != "" {
		parts = append(parts, n.LastName)
	}
	return strings.Join(parts, " ")
}

// Address is a postal address as held on the case record.
type Address struct {
	Line1    string
	Line2    string
	Town     string
	County   string
	Postcode string
}

// IsEmpty reports whether no address line is populated.
func (a Address) IsEmpty() bool {
	return a.Line1 == "" && a.Line2 == "" && a.Town == "" && a.County == "" && a.Postcode == ""
}

// Lines returns the populated address lines in postal order.
func (a Address) Lines() []string {
	lines := make([]string, 0, 5)
	for _, line := range []string{a.Line1, a.Line2, a.Town, a.County, a.Postcode} {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
