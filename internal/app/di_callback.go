package app

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	callbackDomain "github.com/allisson/caseflow/internal/callback/domain"
	callbackHTTP "github.com/allisson/caseflow/internal/callback/http"
	callbackUseCase "github.com/allisson/caseflow/internal/callback/usecase"
	"github.com/allisson/caseflow/internal/callback/usecase/handlers"
	"github.com/allisson/caseflow/internal/notify"
)

// NotifySender returns the email notification sender. When notifications are
// disabled a logging no-op sender is used instead.
func (c *Container) NotifySender() (notify.Sender, error) {
	var err error
	c.notifySenderInit.Do(func() {
		c.notifySender, err = c.initNotifySender()
		if err != nil {
			c.initErrors["notifySender"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["notifySender"]; exists {
		return nil, storedErr
	}
	return c.notifySender, nil
}

// Dispatcher returns the callback dispatcher with all event handlers registered.
func (c *Container) Dispatcher() (*callbackUseCase.CallbackDispatcher, error) {
	var err error
	c.dispatcherInit.Do(func() {
		c.dispatcher, err = c.initDispatcher()
		if err != nil {
			c.initErrors["dispatcher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["dispatcher"]; exists {
		return nil, storedErr
	}
	return c.dispatcher, nil
}

// CallbackHandler returns the HTTP handler for inbound case events.
func (c *Container) CallbackHandler() (*callbackHTTP.CallbackHandler, error) {
	var err error
	c.callbackHandlerInit.Do(func() {
		c.callbackHandler, err = c.initCallbackHandler()
		if err != nil {
			c.initErrors["callbackHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["callbackHandler"]; exists {
		return nil, storedErr
	}
	return c.callbackHandler, nil
}

// initNotifySender creates the notification sender.
func (c *Container) initNotifySender() (notify.Sender, error) {
	if !c.config.NotifyEnabled {
		return notify.NewDisabledSender(c.Logger()), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(c.config.NotifyAWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config for notify sender: %w", err)
	}

	return notify.NewSESSender(awsCfg, c.config.NotifyFromEmail, c.Logger())
}

// initDispatcher creates the dispatcher with every event handler registered.
func (c *Container) initDispatcher() (*callbackUseCase.CallbackDispatcher, error) {
	logger := c.Logger()

	distributionUseCase, err := c.DistributionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution use case for dispatcher: %w", err)
	}

	notifySender, err := c.NotifySender()
	if err != nil {
		return nil, fmt.Errorf("failed to get notify sender for dispatcher: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for dispatcher: %w", err)
	}

	caseUpdater := c.CaseUpdater()

	eventHandlers := []callbackDomain.EventHandler{
		handlers.NewSentToDepartmentHandler(caseUpdater, logger),
		handlers.NewJointPartyAddedHandler(caseUpdater, logger),
		handlers.NewEvidenceReceivedNotifyHandler(notifySender, logger),
		handlers.NewIssueEvidenceHandler(distributionUseCase, caseUpdater, logger),
		handlers.NewReissueEvidenceHandler(distributionUseCase, logger),
	}

	return callbackUseCase.NewCallbackDispatcher(eventHandlers, businessMetrics, logger), nil
}

// initCallbackHandler creates the callback handler with all its dependencies.
func (c *Container) initCallbackHandler() (*callbackHTTP.CallbackHandler, error) {
	dispatcher, err := c.Dispatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to get dispatcher for callback handler: %w", err)
	}

	return callbackHTTP.NewCallbackHandler(dispatcher, c.Logger()), nil
}
