package print

import (
	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
)

// AppellantDisplayName returns the appellant's full name, or the appointee's
// when one receives the appellant's post.
func AppellantDisplayName(snapshot *casedomain.CaseSnapshot) string {
	if snapshot.Appellant.HasAppointee() {
		return snapshot.Appellant.Appointee.Name.FullName()
	}
	return snapshot.Appellant.Name.FullName()
}

// BuildRecipientList returns the full list of named parties on the case: the
// appellant, the appellant's appointee, the joint party, the representative,
// and every other party with its appointee and representative.
func BuildRecipientList(snapshot *casedomain.CaseSnapshot) []string {
	var recipients []string

	appendName := func(name casedomain.Name) {
		if full := name.FullName(); full != "" {
			recipients = append(recipients, full)
		}
	}

	appendName(snapshot.Appellant.Name)
	if snapshot.Appellant.HasAppointee() {
		appendName(snapshot.Appellant.Appointee.Name)
	}
	if snapshot.HasJointParty() {
		appendName(snapshot.JointParty.Name)
	}
	if snapshot.HasRepresentative() {
		appendName(snapshot.Representative.Name)
	}

	for _, party := range snapshot.OtherParties {
		appendName(party.Name)
		if party.HasAppointee() {
			appendName(party.Appointee.Name)
		}
		if party.Representative != nil && party.Representative.HasRepresentative.IsYes() {
			appendName(party.Representative.Name)
		}
	}

	return recipients
}
