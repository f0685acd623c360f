package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
)

func TestNewBundle(t *testing.T) {
	cover := Document{Content: []byte("cover"), Filename: "609-97-template (original sender).pdf"}
	evidence1 := Document{Content: []byte("evidence-1"), Filename: "evidence-1.pdf"}
	evidence2 := Document{Content: []byte("evidence-2"), Filename: "evidence-2.pdf"}

	bundle := NewBundle(cover, evidence1, evidence2)

	assert.Equal(t, 3, bundle.Len())
	// Cover letter is always first.
	assert.Equal(t, cover, bundle.Documents()[0])
	assert.Equal(t, evidence1, bundle.Documents()[1])
	assert.Equal(t, evidence2, bundle.Documents()[2])
}

func TestTemplateFor(t *testing.T) {
	tests := []struct {
		name             string
		category         Category
		originalSender   bool
		welsh            bool
		expectedTemplate string
		expectedDocName  string
	}{
		{"original sender", CategoryRepresentative, true, false, TemplateOriginalSender, DocNameOriginalSender},
		{"other parties", CategoryAppellant, false, false, TemplateOtherParties, DocNameOtherParties},
		{"department", CategoryDepartment, false, false, TemplateDepartment, DocNameDepartment},
		{"department ignores sender flag", CategoryDepartment, true, false, TemplateDepartment, DocNameDepartment},
		{"welsh original sender", CategoryAppellant, true, true, TemplateOriginalSenderWelsh, DocNameOriginalSender},
		{"welsh other parties", CategoryJointParty, false, true, TemplateOtherPartiesWelsh, DocNameOtherParties},
		{"welsh department", CategoryDepartment, false, true, TemplateDepartmentWelsh, DocNameDepartment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template, docName := TemplateFor(tt.category, tt.originalSender, tt.welsh)
			assert.Equal(t, tt.expectedTemplate, template)
			assert.Equal(t, tt.expectedDocName, docName)
		})
	}
}

func TestTriggeredBy(t *testing.T) {
	assert.Equal(t, CategoryAppellant, TriggeredBy(casedomain.DocumentCategoryAppellantEvidence))
	assert.Equal(t, CategoryRepresentative, TriggeredBy(casedomain.DocumentCategoryRepresentativeEvidence))
	assert.Equal(t, CategoryJointParty, TriggeredBy(casedomain.DocumentCategoryJointPartyEvidence))
	assert.Equal(t, CategoryOtherParty, TriggeredBy(casedomain.DocumentCategoryOtherPartyEvidence))
	assert.Equal(t, CategoryDepartment, TriggeredBy(casedomain.DocumentCategoryDepartmentEvidence))
	assert.Equal(t, Category(""), TriggeredBy("unknown"))
}

func TestRecipient_IsDegraded(t *testing.T) {
	assert.True(t, Recipient{Name: "Peter Hyland"}.IsDegraded())
	assert.False(t, Recipient{
		Name:    "Peter Hyland",
		Address: casedomain.Address{Line1: "1 High St"},
	}.IsDegraded())
}
