package service

import (
	"time"

	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
	letterdomain "github.com/allisson/caseflow/internal/letter/domain"
)

// CoverLetterFields builds the field map a cover letter template is rendered
// with: recipient identity, address lines and case context.
func CoverLetterFields(
	recipient letterdomain.Recipient,
	snapshot *casedomain.CaseSnapshot,
	now time.Time,
) map[string]any {
	lines := recipient.Address.Lines()

	fields := map[string]any{
		"name":           recipient.Name,
		"appellant_name": snapshot.Appellant.Name.FullName(),
		"case_id":        snapshot.CaseID,
		"case_reference": snapshot.CaseReference,
		"benefit_type":   snapshot.BenefitCode,
		"generated_date": now.UTC().Format("2006-01-02"),
	}

	for i := 0; i < 5; i++ {
		value := ""
		if i < len(lines) {
			value = lines[i]
		}
		fields[addressFieldNames[i]] = value
	}

	return fields
}

var addressFieldNames = [5]string{
	"address_line_1",
	"address_line_2",
	"address_line_3",
	"address_line_4",
	"address_line_5",
}
