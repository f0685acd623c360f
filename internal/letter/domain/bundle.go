package domain

// Document is one PDF inside a bundle.
type Document struct {
	Content  []byte
	Filename string
}

// Bundle is the ordered list of PDFs posted to one recipient. A generated
// cover letter, when present, is always first.
type Bundle struct {
	documents []Document
}

// NewBundle builds a bundle with the cover letter first, followed by the
// evidence documents in the order given.
func NewBundle(coverLetter Document, evidence ...Document) Bundle {
	documents := make([]Document, 0, len(evidence)+1)
	documents = append(documents, coverLetter)
	documents = append(documents, evidence...)
	return Bundle{documents: documents}
}

// Documents returns the bundle contents in submission order.
func (b Bundle) Documents() []Document {
	return b.documents
}

// Len returns the number of documents in the bundle.
func (b Bundle) Len() int {
	return len(b.documents)
}
