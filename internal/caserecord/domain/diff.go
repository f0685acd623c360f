package domain

// ChangeSet describes the field transitions between two snapshots of the same
// case. Handlers that react to a transition consume a ChangeSet instead of
// comparing fields ad hoc.
type ChangeSet struct {
	// JointPartyAdded is true when the joint-party flag transitioned from
	// absent or "No" to "Yes".
	JointPartyAdded bool

	// BenefitCodeChanged is true when the benefit code differs between snapshots.
	BenefitCodeChanged bool

	// CreationRouteChanged is true when the creation route differs between snapshots.
	CreationRouteChanged bool
}

// Diff computes the transitions from previous to current. A nil previous
// snapshot means there is no prior state, so nothing transitioned.
func Diff(previous, current *CaseSnapshot) ChangeSet {
	if previous == nil || current == nil {
		return ChangeSet{}
	}

	return ChangeSet{
		JointPartyAdded:      !previous.HasJointParty() && current.HasJointParty(),
		BenefitCodeChanged:   previous.BenefitCode != current.BenefitCode,
		CreationRouteChanged: previous.CreationRoute != current.CreationRoute,
	}
}
