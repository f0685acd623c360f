package dto

import (
	"github.com/allisson/caseflow/internal/callback/domain"
	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
)

// ToDomain converts the inbound envelope to a dispatchable case event.
func (r *CaseEventRequest) ToDomain() *domain.CaseEvent {
	event := &domain.CaseEvent{
		EventType: domain.EventType(r.EventType),
		Stage:     domain.CallbackStage(r.Stage),
		Snapshot:  mapSnapshot(r.CaseDetails),
	}
	if r.PreviousCaseDetails != nil {
		event.Previous = mapSnapshot(*r.PreviousCaseDetails)
	}
	return event
}

func mapSnapshot(details CaseDetailsPayload) *casedomain.CaseSnapshot {
	data := details.CaseData

	snapshot := &casedomain.CaseSnapshot{
		CaseID:                  details.CaseID,
		CaseReference:           data.CaseReference,
		BenefitCode:             data.BenefitCode,
		IssuingOffice:           data.IssuingOffice,
		CreationRoute:           data.CreationRoute,
		Appellant:               mapAppellant(data.Appellant),
		Representative:          mapRepresentative(data.Representative),
		JointParty:              mapJointParty(data.JointParty),
		LanguagePreferenceWelsh: data.LanguagePreferenceWelsh,
	}

	for _, party := range data.OtherParties {
		snapshot.OtherParties = append(snapshot.OtherParties, casedomain.OtherParty{
			ID:             party.ID,
			Name:           mapName(party.Name),
			Address:        mapAddress(party.Address),
			Appointee:      mapAppointee(party.Appointee),
			Representative: mapRepresentative(party.Representative),
		})
	}

	for _, doc := range data.Documents {
		snapshot.Documents = append(snapshot.Documents, casedomain.Document{
			ID:             doc.ID,
			Category:       casedomain.DocumentCategory(doc.Category),
			URL:            doc.URL,
			Filename:       doc.Filename,
			EvidenceIssued: casedomain.YesNo(doc.EvidenceIssued),
		})
	}

	if data.ReasonableAdjustments != nil {
		snapshot.ReasonableAdjustments = casedomain.ReasonableAdjustments{
			Appellant:      casedomain.YesNo(data.ReasonableAdjustments.Appellant),
			Representative: casedomain.YesNo(data.ReasonableAdjustments.Representative),
			JointParty:     casedomain.YesNo(data.ReasonableAdjustments.JointParty),
			OtherParty:     casedomain.YesNo(data.ReasonableAdjustments.OtherParty),
		}
	}

	if data.ReissueSelection != nil {
		selection := &casedomain.ReissueSelection{
			DocumentURL:            data.ReissueSelection.DocumentURL,
			ResendToAppellant:      casedomain.YesNo(data.ReissueSelection.ResendToAppellant),
			ResendToRepresentative: casedomain.YesNo(data.ReissueSelection.ResendToRepresentative),
		}
		for _, option := range data.ReissueSelection.OtherPartyOptions {
			selection.OtherPartyOptions = append(selection.OtherPartyOptions, casedomain.OtherPartyReissueOption{
				OtherPartyID:     option.OtherPartyID,
				Resend:           casedomain.YesNo(option.Resend),
				IsRepresentative: option.IsRepresentative,
			})
		}
		snapshot.ReissueSelection = selection
	}

	if data.Subscription != nil {
		snapshot.Subscription = casedomain.Subscription{
			Email:          data.Subscription.Email,
			SubscribeEmail: casedomain.YesNo(data.Subscription.SubscribeEmail),
		}
	}

	if data.Routing != nil {
		snapshot.Routing = casedomain.RoutingMetadata{
			Region:     data.Routing.Region,
			OfficeCode: data.Routing.OfficeCode,
		}
	}

	return snapshot
}

func mapName(name NamePayload) casedomain.Name {
	return casedomain.Name{
		Title:     name.Title,
		FirstName: name.FirstName,
		LastName:  name.LastName,
	}
}

func mapAddress(address AddressPayload) casedomain.Address {
	return casedomain.Address{
		Line1:    address.Line1,
		Line2:    address.Line2,
		Town:     address.Town,
		County:   address.County,
		Postcode: address.Postcode,
	}
}

func mapAppointee(appointee *AppointeePayload) *casedomain.Appointee {
	if appointee == nil {
		return nil
	}
	return &casedomain.Appointee{
		ID:      appointee.ID,
		Name:    mapName(appointee.Name),
		Address: mapAddress(appointee.Address),
	}
}

func mapAppellant(appellant AppellantPayload) casedomain.Appellant {
	return casedomain.Appellant{
		ID:          appellant.ID,
		Name:        mapName(appellant.Name),
		Address:     mapAddress(appellant.Address),
		IsAppointee: casedomain.YesNo(appellant.IsAppointee),
		Appointee:   mapAppointee(appellant.Appointee),
	}
}

func mapRepresentative(rep *RepresentativePayload) *casedomain.Representative {
	if rep == nil {
		return nil
	}
	return &casedomain.Representative{
		ID:                rep.ID,
		HasRepresentative: casedomain.YesNo(rep.HasRepresentative),
		Name:              mapName(rep.Name),
		Address:           mapAddress(rep.Address),
	}
}

func mapJointParty(jointParty *JointPartyPayload) *casedomain.JointParty {
	if jointParty == nil {
		return nil
	}
	return &casedomain.JointParty{
		HasJointParty: casedomain.YesNo(jointParty.HasJointParty),
		Name:          mapName(jointParty.Name),
		Address:       mapAddress(jointParty.Address),
	}
}
