// Package handlers contains the event handlers registered with the callback
// dispatcher. Each handler declares a priority band and a narrow trigger.
package handlers

import (
	"github.com/allisson/caseflow/internal/callback/domain"
)

// validateEvent rejects malformed events. A nil event or a missing callback
// stage is a caller error surfaced loudly, never a silent false.
func validateEvent(event *domain.CaseEvent) error {
	if event == nil {
		return domain.ErrNilEvent
	}
	if event.Stage == "" {
		return domain.ErrStageMissing
	}
	return nil
}
