package app

import (
	caserecordClient "github.com/allisson/caseflow/internal/caserecord/client"
)

// IdamTokens returns the service token provider for case record store calls.
func (c *Container) IdamTokens() caserecordClient.TokenProvider {
	c.idamTokensInit.Do(func() {
		c.idamTokens = caserecordClient.NewIdamClient(c.config.IdamURL, c.config.ServiceUserID)
	})
	return c.idamTokens
}

// CaseUpdater returns the case record store update client.
func (c *Container) CaseUpdater() caserecordClient.CaseUpdater {
	c.caseUpdaterInit.Do(func() {
		c.caseUpdater = caserecordClient.NewCaseUpdateClient(
			c.config.CaseRecordURL,
			c.IdamTokens(),
			c.Logger(),
		)
	})
	return c.caseUpdater
}
