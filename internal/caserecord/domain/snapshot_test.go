package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseSnapshot_Clone(t *testing.T) {
	original := &CaseSnapshot{
		CaseID:      12345,
		BenefitCode: "PIP",
		Appellant: Appellant{
			ID:          "appellant-1",
			Name:        Name{FirstName: "Sarah", LastName: "Smith"},
			IsAppointee: Yes,
			Appointee:   &Appointee{ID: "appointee-1", Name: Name{FirstName: "Ada", LastName: "Lovelace"}},
		},
		Representative: &Representative{
			ID:                "rep-1",
			HasRepresentative: Yes,
			Name:              Name{FirstName: "Peter", LastName: "Hyland"},
		},
		OtherParties: []OtherParty{
			{
				ID:             "op-1",
				Name:           Name{FirstName: "Oscar", LastName: "Party"},
				Representative: &Representative{ID: "op-rep-1"},
			},
		},
		Documents: []Document{
			{ID: "doc-1", Category: DocumentCategoryAppellantEvidence, EvidenceIssued: No},
		},
		ReissueSelection: &ReissueSelection{
			DocumentURL:       "http://docs/doc-1",
			ResendToAppellant: Yes,
			OtherPartyOptions: []OtherPartyReissueOption{{OtherPartyID: "op-1", Resend: Yes}},
		},
	}

	clone := original.Clone()
	require.NotNil(t, clone)

	// Mutating the clone must not leak into the original.
	clone.Documents[0].EvidenceIssued = Yes
	clone.Appellant.Appointee.Name.FirstName = "Changed"
	clone.Representative.Name.LastName = "Changed"
	clone.OtherParties[0].Representative.ID = "changed"
	clone.ReissueSelection.OtherPartyOptions[0].Resend = No

	assert.Equal(t, No, original.Documents[0].EvidenceIssued)
	assert.Equal(t, "Ada", original.Appellant.Appointee.Name.FirstName)
	assert.Equal(t, "Hyland", original.Representative.Name.LastName)
	assert.Equal(t, "op-rep-1", original.OtherParties[0].Representative.ID)
	assert.Equal(t, Yes, original.ReissueSelection.OtherPartyOptions[0].Resend)
}

func TestCaseSnapshot_Flags(t *testing.T) {
	t.Run("Success_HasRepresentative", func(t *testing.T) {
		s := &CaseSnapshot{Representative: &Representative{HasRepresentative: Yes}}
		assert.True(t, s.HasRepresentative())
	})

	t.Run("Success_RepresentativeFlaggedAbsent", func(t *testing.T) {
		s := &CaseSnapshot{Representative: &Representative{HasRepresentative: No}}
		assert.False(t, s.HasRepresentative())
	})

	t.Run("Success_NilRepresentative", func(t *testing.T) {
		s := &CaseSnapshot{}
		assert.False(t, s.HasRepresentative())
	})

	t.Run("Success_AppellantAppointeeSubstitution", func(t *testing.T) {
		a := Appellant{IsAppointee: Yes, Appointee: &Appointee{ID: "x"}}
		assert.True(t, a.HasAppointee())

		a = Appellant{IsAppointee: Yes}
		assert.False(t, a.HasAppointee())

		a = Appellant{IsAppointee: No, Appointee: &Appointee{ID: "x"}}
		assert.False(t, a.HasAppointee())
	})
}

func TestName_FullName(t *testing.T) {
	assert.Equal(t, "Sarah Smith", Name{Title: "Mrs", FirstName: "Sarah", LastName: "Smith"}.FullName())
	assert.Equal(t, "Smith", Name{LastName: "Smith"}.FullName())
	assert.Equal(t, "", Name{}.FullName())
}

func TestAddress(t *testing.T) {
	t.Run("Success_Lines", func(t *testing.T) {
		addr := Address{Line1: "1 High St", Town: "Leeds", Postcode: "LS1 1AA"}
		assert.Equal(t, []string{"1 High St", "Leeds", "LS1 1AA"}, addr.Lines())
	})

	t.Run("Success_IsEmpty", func(t *testing.T) {
		assert.True(t, Address{}.IsEmpty())
		assert.False(t, Address{Postcode: "LS1 1AA"}.IsEmpty())
	})
}

func TestFindDocumentByURL(t *testing.T) {
	s := &CaseSnapshot{Documents: []Document{
		{ID: "doc-1", URL: "http://docs/doc-1"},
		{ID: "doc-2", URL: "http://docs/doc-2"},
	}}

	doc, ok := s.FindDocumentByURL("http://docs/doc-2")
	assert.True(t, ok)
	assert.Equal(t, "doc-2", doc.ID)

	_, ok = s.FindDocumentByURL("http://docs/missing")
	assert.False(t, ok)
}
