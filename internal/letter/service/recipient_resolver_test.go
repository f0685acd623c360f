package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
	apperrors "github.com/allisson/caseflow/internal/errors"
	letterdomain "github.com/allisson/caseflow/internal/letter/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newResolver() RecipientResolver {
	return NewRecipientResolver(NewDepartmentAddressBook(DefaultDepartmentAddresses()), testLogger())
}

func baseSnapshot() *casedomain.CaseSnapshot {
	return &casedomain.CaseSnapshot{
		CaseID:        12345,
		BenefitCode:   "PIP",
		IssuingOffice: "1",
		Appellant: casedomain.Appellant{
			ID:      "appellant-1",
			Name:    casedomain.Name{FirstName: "Sarah", LastName: "Smith"},
			Address: casedomain.Address{Line1: "1 Appellant Way", Town: "Leeds", Postcode: "LS1 1AA"},
		},
	}
}

func TestResolve_Appellant(t *testing.T) {
	resolver := newResolver()

	t.Run("Success_AppellantOwnAddress", func(t *testing.T) {
		recipient, err := resolver.Resolve(baseSnapshot(), letterdomain.CategoryAppellant, "")

		require.NoError(t, err)
		assert.Equal(t, "Sarah Smith", recipient.Name)
		assert.Equal(t, "1 Appellant Way", recipient.Address.Line1)
	})

	t.Run("Success_AppointeeSubstitution", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.Appellant.IsAppointee = casedomain.Yes
		snapshot.Appellant.Appointee = &casedomain.Appointee{
			ID:      "appointee-1",
			Name:    casedomain.Name{FirstName: "Ada", LastName: "Lovelace"},
			Address: casedomain.Address{Line1: "2 Appointee Rd", Postcode: "M1 1AA"},
		}

		recipient, err := resolver.Resolve(snapshot, letterdomain.CategoryAppellant, "")

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", recipient.Name)
		assert.Equal(t, "2 Appointee Rd", recipient.Address.Line1)
	})

	t.Run("Success_AppointeeFlagNoMeansAppellant", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.Appellant.IsAppointee = casedomain.No
		snapshot.Appellant.Appointee = &casedomain.Appointee{
			Name: casedomain.Name{FirstName: "Ada", LastName: "Lovelace"},
		}

		recipient, err := resolver.Resolve(snapshot, letterdomain.CategoryAppellant, "")

		require.NoError(t, err)
		assert.Equal(t, "Sarah Smith", recipient.Name)
	})
}

func TestResolve_Representative(t *testing.T) {
	resolver := newResolver()

	t.Run("Success_RepresentativePresent", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.Representative = &casedomain.Representative{
			ID:                "rep-1",
			HasRepresentative: casedomain.Yes,
			Name:              casedomain.Name{FirstName: "Peter", LastName: "Hyland"},
			Address:           casedomain.Address{Line1: "3 Rep St", Postcode: "B1 1AA"},
		}

		recipient, err := resolver.Resolve(snapshot, letterdomain.CategoryRepresentative, "")

		require.NoError(t, err)
		assert.Equal(t, "Peter Hyland", recipient.Name)
		assert.Equal(t, "3 Rep St", recipient.Address.Line1)
	})

	t.Run("Success_AbsentRepresentativeResolvesToEmptyAddressSentinel", func(t *testing.T) {
		recipient, err := resolver.Resolve(baseSnapshot(), letterdomain.CategoryRepresentative, "")

		require.NoError(t, err)
		assert.True(t, recipient.IsDegraded())
		assert.Empty(t, recipient.Name)
	})
}

func TestResolve_JointParty(t *testing.T) {
	resolver := newResolver()

	t.Run("Success_JointPartyPresent", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.JointParty = &casedomain.JointParty{
			HasJointParty: casedomain.Yes,
			Name:          casedomain.Name{FirstName: "Joan", LastName: "Smith"},
			Address:       casedomain.Address{Line1: "1 Appellant Way"},
		}

		recipient, err := resolver.Resolve(snapshot, letterdomain.CategoryJointParty, "")

		require.NoError(t, err)
		assert.Equal(t, "Joan Smith", recipient.Name)
	})

	t.Run("Error_JointPartyAbsent", func(t *testing.T) {
		_, err := resolver.Resolve(baseSnapshot(), letterdomain.CategoryJointParty, "")
		assert.ErrorIs(t, err, letterdomain.ErrJointPartyAbsent)
	})
}

func TestResolve_OtherParty(t *testing.T) {
	resolver := newResolver()

	snapshot := baseSnapshot()
	snapshot.OtherParties = []casedomain.OtherParty{
		{
			ID:      "op-1",
			Name:    casedomain.Name{FirstName: "Oscar", LastName: "Party"},
			Address: casedomain.Address{Line1: "4 Other St"},
		},
		{
			ID:      "op-2",
			Name:    casedomain.Name{FirstName: "Olive", LastName: "Party"},
			Address: casedomain.Address{Line1: "5 Other St"},
			Appointee: &casedomain.Appointee{
				ID:      "op-2-appointee",
				Name:    casedomain.Name{FirstName: "Alan", LastName: "Acting"},
				Address: casedomain.Address{Line1: "6 Acting Ave"},
			},
			Representative: &casedomain.Representative{
				ID:      "op-2-rep",
				Name:    casedomain.Name{FirstName: "Rita", LastName: "Counsel"},
				Address: casedomain.Address{Line1: "7 Counsel Close"},
			},
		},
	}

	t.Run("Success_MatchByPartyID", func(t *testing.T) {
		recipient, err := resolver.Resolve(snapshot, letterdomain.CategoryOtherParty, "op-1")

		require.NoError(t, err)
		assert.Equal(t, "Oscar Party", recipient.Name)
	})

	t.Run("Success_MatchedPartyWithAppointeeSubstitutes", func(t *testing.T) {
		recipient, err := resolver.Resolve(snapshot, letterdomain.CategoryOtherParty, "op-2")

		require.NoError(t, err)
		assert.Equal(t, "Alan Acting", recipient.Name)
		assert.Equal(t, "6 Acting Ave", recipient.Address.Line1)
	})

	t.Run("Success_MatchByAppointeeID", func(t *testing.T) {
		recipient, err := resolver.Resolve(snapshot, letterdomain.CategoryOtherParty, "op-2-appointee")

		require.NoError(t, err)
		assert.Equal(t, "Alan Acting", recipient.Name)
	})

	t.Run("Success_MatchByRepresentativeIDReturnsRepresentative", func(t *testing.T) {
		recipient, err := resolver.Resolve(snapshot, letterdomain.CategoryOtherPartyRepresentative, "op-2-rep")

		require.NoError(t, err)
		assert.Equal(t, "Rita Counsel", recipient.Name)
		assert.Equal(t, "7 Counsel Close", recipient.Address.Line1)
	})

	t.Run("Error_NoMatch", func(t *testing.T) {
		_, err := resolver.Resolve(snapshot, letterdomain.CategoryOtherParty, "missing")
		assert.ErrorIs(t, err, casedomain.ErrOtherPartyNotFound)
	})
}

func TestResolve_Department(t *testing.T) {
	resolver := newResolver()

	t.Run("Success_KnownOffice", func(t *testing.T) {
		recipient, err := resolver.Resolve(baseSnapshot(), letterdomain.CategoryDepartment, "")

		require.NoError(t, err)
		assert.Equal(t, "The Department", recipient.Name)
		assert.Equal(t, "WV98 1AA", recipient.Address.Postcode)
	})

	t.Run("Error_UnknownOfficeIsDataQualityError", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.IssuingOffice = "999"

		_, err := resolver.Resolve(snapshot, letterdomain.CategoryDepartment, "")

		assert.ErrorIs(t, err, letterdomain.ErrDepartmentAddressNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestResolve_UnknownCategory(t *testing.T) {
	resolver := newResolver()

	_, err := resolver.Resolve(baseSnapshot(), letterdomain.Category("unknown"), "")
	assert.ErrorIs(t, err, letterdomain.ErrUnknownCategory)
}

func TestCoverLetterFields(t *testing.T) {
	snapshot := baseSnapshot()
	recipient := letterdomain.Recipient{
		Name:    "Peter Hyland",
		Address: casedomain.Address{Line1: "3 Rep St", Town: "Birmingham", Postcode: "B1 1AA"},
	}
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

	fields := CoverLetterFields(recipient, snapshot, now)

	assert.Equal(t, "Peter Hyland", fields["name"])
	assert.Equal(t, "Sarah Smith", fields["appellant_name"])
	assert.Equal(t, int64(12345), fields["case_id"])
	assert.Equal(t, "2026-03-14", fields["generated_date"])
	assert.Equal(t, "3 Rep St", fields["address_line_1"])
	assert.Equal(t, "Birmingham", fields["address_line_2"])
	assert.Equal(t, "B1 1AA", fields["address_line_3"])
	assert.Equal(t, "", fields["address_line_4"])
	assert.Equal(t, "", fields["address_line_5"])
}
