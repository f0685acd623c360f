package domain

// DocumentCategory tags an evidence document with the party that submitted it.
type DocumentCategory string

const (
	DocumentCategoryAppellantEvidence      DocumentCategory = "appellantEvidence"
	DocumentCategoryRepresentativeEvidence DocumentCategory = "representativeEvidence"
	DocumentCategoryDepartmentEvidence     DocumentCategory = "departmentEvidence"
	DocumentCategoryJointPartyEvidence     DocumentCategory = "jointPartyEvidence"
	DocumentCategoryOtherPartyEvidence     DocumentCategory = "otherPartyEvidence"
)

// Document is an evidence document attached to the case record.
type Document struct {
	ID             string
	Category       DocumentCategory
	URL            string
	Filename       string
	EvidenceIssued YesNo
}

// Issued reports whether the document has already been distributed to the parties.
func (d Document) Issued() bool {
	return d.EvidenceIssued.IsYes()
}

// OtherPartyReissueOption is an operator selection for resending a document to
// one other party or its representative.
type OtherPartyReissueOption struct {
	OtherPartyID     string
	Resend           YesNo
	IsRepresentative bool
}

// ReissueSelection is the operator-driven reference identifying the single
// document to resend and the recipients to resend it to.
type ReissueSelection struct {
	DocumentURL            string
	ResendToAppellant      YesNo
	ResendToRepresentative YesNo
	OtherPartyOptions      []OtherPartyReissueOption
}

// FindDocumentByURL returns the document whose URL matches, if present.
func (s *CaseSnapshot) FindDocumentByURL(url string) (Document, bool) {
	for _, doc := range s.Documents {
		if doc.URL == url {
			return doc, true
		}
	}
	return Document{}, false
}
