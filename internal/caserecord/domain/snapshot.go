package domain

// Appointee acts on behalf of an appellant or other party. When present and
// flagged, the appointee receives the party's post.
type Appointee struct {
	ID      string
	Name    Name
	Address Address
}

// Appellant is the person bringing the appeal.
type Appellant struct {
	ID          string
	Name        Name
	Address     Address
	IsAppointee YesNo
	Appointee   *Appointee
}

// HasAppointee reports whether the appellant's post should go to an appointee.
func (a Appellant) HasAppointee() bool {
	return a.IsAppointee.IsYes() && a.Appointee != nil
}

// Representative represents a party in proceedings.
type Representative struct {
	ID                string
	HasRepresentative YesNo
	Name              Name
	Address           Address
}

// JointParty is a second party joined to the appeal.
type JointParty struct {
	HasJointParty YesNo
	Name          Name
	Address       Address
}

// OtherParty is an additional party on the case, optionally with its own
// appointee and representative.
type OtherParty struct {
	ID             string
	Name           Name
	Address        Address
	Appointee      *Appointee
	Representative *Representative
}

// HasAppointee reports whether the other party's post should go to its appointee.
func (o OtherParty) HasAppointee() bool {
	return o.Appointee != nil && o.Appointee.ID != ""
}

// ReasonableAdjustments holds the per-category flags marking recipients whose
// letters require special handling instead of automatic printing.
type ReasonableAdjustments struct {
	Appellant      YesNo
	Representative YesNo
	JointParty     YesNo
	OtherParty     YesNo
}

// Subscription holds the appellant's notification preferences.
type Subscription struct {
	Email          string
	SubscribeEmail YesNo
}

// RoutingMetadata carries supplementary routing fields attached to certain
// case record updates.
type RoutingMetadata struct {
	Region     string
	OfficeCode string
}

// CaseSnapshot is a deep, read-mostly view of the case fields at the time of an
// event. Handlers never mutate a snapshot in place once dispatch has started;
// they mutate a Clone and send it back as the new case state.
type CaseSnapshot struct {
	CaseID                  int64
	CaseReference           string
	BenefitCode             string
	IssuingOffice           string
	CreationRoute           string
	Appellant               Appellant
	Representative          *Representative
	JointParty              *JointParty
	OtherParties            []OtherParty
	Documents               []Document
	LanguagePreferenceWelsh bool
	ReasonableAdjustments   ReasonableAdjustments
	ReissueSelection        *ReissueSelection
	Subscription            Subscription
	Routing                 RoutingMetadata
}

// HasRepresentative reports whether a representative is flagged present on the case.
func (s *CaseSnapshot) HasRepresentative() bool {
	return s.Representative != nil && s.Representative.HasRepresentative.IsYes()
}

// HasJointParty reports whether a joint party is flagged present on the case.
func (s *CaseSnapshot) HasJointParty() bool {
	return s.JointParty != nil && s.JointParty.HasJointParty.IsYes()
}

// Clone returns a deep copy of the snapshot. Handlers mutate the copy so the
// snapshot seen by later handlers in the same dispatch cycle stays unchanged.
func (s *CaseSnapshot) Clone() *CaseSnapshot {
	if s == nil {
		return nil
	}

	out := *s

	if s.Appellant.Appointee != nil {
		appointee := *s.Appellant.Appointee
		out.Appellant.Appointee = &appointee
	}
	if s.Representative != nil {
		rep := *s.Representative
		out.Representative = &rep
	}
	if s.JointParty != nil {
		jp := *s.JointParty
		out.JointParty = &jp
	}
	if s.OtherParties != nil {
		out.OtherParties = make([]OtherParty, len(s.OtherParties))
		for i, op := range s.OtherParties {
			cp := op
			if op.Appointee != nil {
				appointee := *op.Appointee
				cp.Appointee = &appointee
			}
			if op.Representative != nil {
				rep := *op.Representative
				cp.Representative = &rep
			}
			out.OtherParties[i] = cp
		}
	}
	if s.Documents != nil {
		out.Documents = make([]Document, len(s.Documents))
		copy(out.Documents, s.Documents)
	}
	if s.ReissueSelection != nil {
		sel := *s.ReissueSelection
		if sel.OtherPartyOptions != nil {
			sel.OtherPartyOptions = make([]OtherPartyReissueOption, len(s.ReissueSelection.OtherPartyOptions))
			copy(sel.OtherPartyOptions, s.ReissueSelection.OtherPartyOptions)
		}
		out.ReissueSelection = &sel
	}

	return &out
}
