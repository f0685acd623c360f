package service

import (
	"log/slog"

	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
	letterdomain "github.com/allisson/caseflow/internal/letter/domain"
)

// recipientResolver implements RecipientResolver against a case snapshot and a
// department address book.
type recipientResolver struct {
	addressBook DepartmentAddressBook
	logger      *slog.Logger
}

// NewRecipientResolver creates a RecipientResolver backed by the given
// department address book.
func NewRecipientResolver(addressBook DepartmentAddressBook, logger *slog.Logger) RecipientResolver {
	return &recipientResolver{
		addressBook: addressBook,
		logger:      logger,
	}
}

// Resolve computes the mailing name and address for the category.
func (r *recipientResolver) Resolve(
	snapshot *casedomain.CaseSnapshot,
	category letterdomain.Category,
	otherPartyID string,
) (letterdomain.Recipient, error) {
	switch category {
	case letterdomain.CategoryAppellant:
		return r.resolveAppellant(snapshot), nil
	case letterdomain.CategoryRepresentative:
		return r.resolveRepresentative(snapshot), nil
	case letterdomain.CategoryJointParty:
		return r.resolveJointParty(snapshot)
	case letterdomain.CategoryOtherParty, letterdomain.CategoryOtherPartyRepresentative:
		return r.resolveOtherParty(snapshot, otherPartyID)
	case letterdomain.CategoryDepartment:
		return r.resolveDepartment(snapshot)
	default:
		return letterdomain.Recipient{}, letterdomain.ErrUnknownCategory
	}
}

// resolveAppellant applies the appointee-substitution rule: if the appellant
// has an appointee, the appointee receives the appellant's post.
func (r *recipientResolver) resolveAppellant(snapshot *casedomain.CaseSnapshot) letterdomain.Recipient {
	appellant := snapshot.Appellant
	if appellant.HasAppointee() {
		return letterdomain.Recipient{
			Name:    appellant.Appointee.Name.FullName(),
			Address: appellant.Appointee.Address,
		}
	}
	return letterdomain.Recipient{
		Name:    appellant.Name.FullName(),
		Address: appellant.Address,
	}
}

// resolveRepresentative returns the empty-address sentinel when no
// representative is flagged present. Sending on an empty address is a known
// degraded case, not an error.
func (r *recipientResolver) resolveRepresentative(snapshot *casedomain.CaseSnapshot) letterdomain.Recipient {
	if !snapshot.HasRepresentative() {
		r.logger.Warn("representative not present on case, resolving to empty address",
			slog.Int64("case_id", snapshot.CaseID),
		)
		return letterdomain.Recipient{}
	}
	return letterdomain.Recipient{
		Name:    snapshot.Representative.Name.FullName(),
		Address: snapshot.Representative.Address,
	}
}

func (r *recipientResolver) resolveJointParty(snapshot *casedomain.CaseSnapshot) (letterdomain.Recipient, error) {
	if !snapshot.HasJointParty() {
		return letterdomain.Recipient{}, letterdomain.ErrJointPartyAbsent
	}
	return letterdomain.Recipient{
		Name:    snapshot.JointParty.Name.FullName(),
		Address: snapshot.JointParty.Address,
	}, nil
}

// resolveOtherParty locates the other-party entry whose id, representative id
// or appointee id matches the supplied entity id. Matching the representative
// id addresses the representative; a matched party with an appointee is
// substituted by the appointee, as for the appellant rule.
func (r *recipientResolver) resolveOtherParty(
	snapshot *casedomain.CaseSnapshot,
	otherPartyID string,
) (letterdomain.Recipient, error) {
	for _, party := range snapshot.OtherParties {
		if party.Representative != nil && party.Representative.ID == otherPartyID {
			return letterdomain.Recipient{
				Name:    party.Representative.Name.FullName(),
				Address: party.Representative.Address,
			}, nil
		}

		if party.ID == otherPartyID || (party.Appointee != nil && party.Appointee.ID == otherPartyID) {
			if party.HasAppointee() {
				return letterdomain.Recipient{
					Name:    party.Appointee.Name.FullName(),
					Address: party.Appointee.Address,
				}, nil
			}
			return letterdomain.Recipient{
				Name:    party.Name.FullName(),
				Address: party.Address,
			}, nil
		}
	}

	return letterdomain.Recipient{}, casedomain.ErrOtherPartyNotFound
}

// resolveDepartment looks up the department office address by benefit type and
// issuing office. An unknown combination is a data-quality error the caller
// must not retry.
func (r *recipientResolver) resolveDepartment(snapshot *casedomain.CaseSnapshot) (letterdomain.Recipient, error) {
	address, found := r.addressBook.Lookup(snapshot.BenefitCode, snapshot.IssuingOffice)
	if !found {
		r.logger.Warn("no department address found",
			slog.Int64("case_id", snapshot.CaseID),
			slog.String("benefit_type", snapshot.BenefitCode),
			slog.String("issuing_office", snapshot.IssuingOffice),
		)
		return letterdomain.Recipient{}, letterdomain.ErrDepartmentAddressNotFound
	}

	return letterdomain.Recipient{
		Name:    departmentDisplayName,
		Address: address,
	}, nil
}

// departmentDisplayName is printed on department cover letters instead of a
// person's name.
const departmentDisplayName = "The Department"
