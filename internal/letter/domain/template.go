package domain

// Cover letter templates. The original-sender template goes to the party whose
// evidence is being distributed, the other-parties template to everyone else,
// and the department template to the government department.
const (
	TemplateOriginalSender      = "609-97.docx"
	TemplateOtherParties        = "609-98.docx"
	TemplateDepartment          = "609-99.docx"
	TemplateOriginalSenderWelsh = "welsh-609-97.docx"
	TemplateOtherPartiesWelsh   = "welsh-609-98.docx"
	TemplateDepartmentWelsh     = "welsh-609-99.docx"
)

// Display names recorded against generated cover letters.
const (
	DocNameOriginalSender = "609-97-template (original sender)"
	DocNameOtherParties   = "609-98-template (other parties)"
	DocNameDepartment     = "609-99-template (department)"
)

// TemplateFor selects the cover letter template for a recipient category.
// originalSender is true when the category equals the triggering party's own
// category; welsh selects the language variant.
func TemplateFor(category Category, originalSender, welsh bool) (templateName, documentName string) {
	switch {
	case category == CategoryDepartment:
		if welsh {
			return TemplateDepartmentWelsh, DocNameDepartment
		}
		return TemplateDepartment, DocNameDepartment
	case originalSender:
		if welsh {
			return TemplateOriginalSenderWelsh, DocNameOriginalSender
		}
		return TemplateOriginalSender, DocNameOriginalSender
	default:
		if welsh {
			return TemplateOtherPartiesWelsh, DocNameOtherParties
		}
		return TemplateOtherParties, DocNameOtherParties
	}
}
