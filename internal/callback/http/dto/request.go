// Package dto provides data transfer objects for inbound case event payloads.
// The same payload shape arrives over HTTP and from the message transport, so
// the worker reuses these types.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/caseflow/internal/callback/domain"
	customValidation "github.com/allisson/caseflow/internal/validation"
)

// NamePayload carries the display name parts of a party.
type NamePayload struct {
	Title     string `json:"title"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AddressPayload carries a postal address.
type AddressPayload struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2"`
	Town     string `json:"town"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
}

// AppointeePayload carries an appointee acting for a party.
type AppointeePayload struct {
	ID      string         `json:"id"`
	Name    NamePayload    `json:"name"`
	Address AddressPayload `json:"address"`
}

// AppellantPayload carries the appellant fields.
type AppellantPayload struct {
	ID          string            `json:"id"`
	Name        NamePayload       `json:"name"`
	Address     AddressPayload    `json:"address"`
	IsAppointee string            `json:"isAppointee"`
	Appointee   *AppointeePayload `json:"appointee,omitempty"`
}

// RepresentativePayload carries a representative, either for the appellant or
// for another party.
type RepresentativePayload struct {
	ID                string         `json:"id"`
	HasRepresentative string         `json:"hasRepresentative"`
	Name              NamePayload    `json:"name"`
	Address           AddressPayload `json:"address"`
}

// JointPartyPayload carries the joint party fields.
type JointPartyPayload struct {
	HasJointParty string         `json:"hasJointParty"`
	Name          NamePayload    `json:"name"`
	Address       AddressPayload `json:"address"`
}

// OtherPartyPayload carries one additional party on the case.
type OtherPartyPayload struct {
	ID             string                 `json:"id"`
	Name           NamePayload            `json:"name"`
	Address        AddressPayload         `json:"address"`
	Appointee      *AppointeePayload      `json:"appointee,omitempty"`
	Representative *RepresentativePayload `json:"representative,omitempty"`
}

// DocumentPayload carries one evidence document attached to the case.
type DocumentPayload struct {
	ID             string `json:"id"`
	Category       string `json:"category"`
	URL            string `json:"url"`
	Filename       string `json:"filename"`
	EvidenceIssued string `json:"evidenceIssued"`
}

// OtherPartyReissueOptionPayload carries one other-party resend selection.
type OtherPartyReissueOptionPayload struct {
	OtherPartyID     string `json:"otherPartyId"`
	Resend           string `json:"resend"`
	IsRepresentative bool   `json:"isRepresentative"`
}

// ReissueSelectionPayload carries the operator's resend selection.
type ReissueSelectionPayload struct {
	DocumentURL            string                           `json:"documentUrl"`
	ResendToAppellant      string                           `json:"resendToAppellant"`
	ResendToRepresentative string                           `json:"resendToRepresentative"`
	OtherPartyOptions      []OtherPartyReissueOptionPayload `json:"otherPartyOptions,omitempty"`
}

// ReasonableAdjustmentsPayload carries the per-category special handling flags.
type ReasonableAdjustmentsPayload struct {
	Appellant      string `json:"appellant"`
	Representative string `json:"representative"`
	JointParty     string `json:"jointParty"`
	OtherParty     string `json:"otherParty"`
}

// SubscriptionPayload carries the appellant's notification preferences.
type SubscriptionPayload struct {
	Email          string `json:"email"`
	SubscribeEmail string `json:"subscribeEmail"`
}

// RoutingPayload carries the supplementary routing fields.
type RoutingPayload struct {
	Region     string `json:"region"`
	OfficeCode string `json:"officeCode"`
}

// CaseDataPayload carries the case fields at the time of the event.
type CaseDataPayload struct {
	CaseReference           string                        `json:"caseReference"`
	BenefitCode             string                        `json:"benefitCode"`
	IssuingOffice           string                        `json:"issuingOffice"`
	CreationRoute           string                        `json:"creationRoute"`
	Appellant               AppellantPayload              `json:"appellant"`
	Representative          *RepresentativePayload        `json:"representative,omitempty"`
	JointParty              *JointPartyPayload            `json:"jointParty,omitempty"`
	OtherParties            []OtherPartyPayload           `json:"otherParties,omitempty"`
	Documents               []DocumentPayload             `json:"documents,omitempty"`
	LanguagePreferenceWelsh bool                          `json:"languagePreferenceWelsh"`
	ReasonableAdjustments   *ReasonableAdjustmentsPayload `json:"reasonableAdjustments,omitempty"`
	ReissueSelection        *ReissueSelectionPayload      `json:"reissueSelection,omitempty"`
	Subscription            *SubscriptionPayload          `json:"subscription,omitempty"`
	Routing                 *RoutingPayload               `json:"routing,omitempty"`
}

// CaseDetailsPayload pairs the case identifier with its fields.
type CaseDetailsPayload struct {
	CaseID   int64           `json:"caseId"`
	CaseData CaseDataPayload `json:"caseData"`
}

// CaseEventRequest is the inbound case event envelope.
type CaseEventRequest struct {
	EventType           string              `json:"event"`
	Stage               string              `json:"callbackStage"`
	CaseDetails         CaseDetailsPayload  `json:"caseDetails"`
	PreviousCaseDetails *CaseDetailsPayload `json:"caseDetailsBefore,omitempty"`
}

// Validate checks if the case event request is valid.
func (r *CaseEventRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.EventType,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Stage,
			validation.Required,
			validation.In(
				string(domain.StagePreSubmit),
				string(domain.StageMidEvent),
				string(domain.StagePostSubmit),
			),
		),
		validation.Field(&r.CaseDetails, validation.By(validateCaseDetails)),
	)
}

// validateCaseDetails validates the case details envelope.
func validateCaseDetails(value interface{}) error {
	details, ok := value.(CaseDetailsPayload)
	if !ok {
		return validation.NewError("validation_case_details_type", "must be case details")
	}

	return validation.ValidateStruct(&details,
		validation.Field(&details.CaseID,
			validation.Required,
			validation.Min(1),
		),
	)
}
