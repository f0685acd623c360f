package app

import (
	"context"
	"encoding/base64"
	"fmt"

	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/localsecrets"

	auditHTTP "github.com/allisson/caseflow/internal/deliveryaudit/http"
	auditRepository "github.com/allisson/caseflow/internal/deliveryaudit/repository"
	auditService "github.com/allisson/caseflow/internal/deliveryaudit/service"
	auditUseCase "github.com/allisson/caseflow/internal/deliveryaudit/usecase"
)

// DeliveryRepository returns the delivery audit repository based on database driver.
func (c *Container) DeliveryRepository() (auditUseCase.DeliveryRepository, error) {
	var err error
	c.deliveryRepositoryInit.Do(func() {
		c.deliveryRepository, err = c.initDeliveryRepository()
		if err != nil {
			c.initErrors["deliveryRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["deliveryRepository"]; exists {
		return nil, storedErr
	}
	return c.deliveryRepository, nil
}

// CorrespondenceCipher returns the cipher protecting stored correspondence bodies.
func (c *Container) CorrespondenceCipher() (auditService.CorrespondenceCipher, error) {
	var err error
	c.correspondenceCipherInit.Do(func() {
		c.correspondenceCipher, err = c.initCorrespondenceCipher()
		if err != nil {
			c.initErrors["correspondenceCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["correspondenceCipher"]; exists {
		return nil, storedErr
	}
	return c.correspondenceCipher, nil
}

// DeliveryAuditUseCase returns the delivery audit use case.
func (c *Container) DeliveryAuditUseCase() (auditUseCase.UseCase, error) {
	var err error
	c.deliveryAuditUseCaseInit.Do(func() {
		c.deliveryAuditUseCase, err = c.initDeliveryAuditUseCase()
		if err != nil {
			c.initErrors["deliveryAuditUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["deliveryAuditUseCase"]; exists {
		return nil, storedErr
	}
	return c.deliveryAuditUseCase, nil
}

// DeliveryHandler returns the HTTP handler for the per-case audit trail.
func (c *Container) DeliveryHandler() (*auditHTTP.DeliveryHandler, error) {
	var err error
	c.deliveryHandlerInit.Do(func() {
		c.deliveryHandler, err = c.initDeliveryHandler()
		if err != nil {
			c.initErrors["deliveryHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["deliveryHandler"]; exists {
		return nil, storedErr
	}
	return c.deliveryHandler, nil
}

// initDeliveryRepository creates the delivery audit repository based on the database driver.
func (c *Container) initDeliveryRepository() (auditUseCase.DeliveryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for delivery repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return auditRepository.NewPostgreSQLDeliveryRepository(db), nil
	case "mysql":
		return auditRepository.NewMySQLDeliveryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCorrespondenceCipher creates the correspondence cipher. A configured
// keeper URL takes precedence over the locally held key.
func (c *Container) initCorrespondenceCipher() (auditService.CorrespondenceCipher, error) {
	if c.config.CorrespondenceKeeperURL != "" {
		return auditService.NewKeeperCipher(context.Background(), c.config.CorrespondenceKeeperURL)
	}

	if c.config.CorrespondenceLocalKey == "" {
		return nil, fmt.Errorf("correspondence encryption requires a keeper url or a local key")
	}

	key, err := base64.StdEncoding.DecodeString(c.config.CorrespondenceLocalKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode correspondence local key: %w", err)
	}

	return auditService.NewLocalCipher(key)
}

// initDeliveryAuditUseCase creates the delivery audit use case with all its dependencies.
func (c *Container) initDeliveryAuditUseCase() (auditUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for delivery audit use case: %w", err)
	}

	deliveryRepository, err := c.DeliveryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery repository for delivery audit use case: %w", err)
	}

	cipher, err := c.CorrespondenceCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get correspondence cipher for delivery audit use case: %w", err)
	}

	return auditUseCase.NewDeliveryAuditUseCase(txManager, deliveryRepository, cipher, c.Logger()), nil
}

// initDeliveryHandler creates the delivery handler with all its dependencies.
func (c *Container) initDeliveryHandler() (*auditHTTP.DeliveryHandler, error) {
	deliveryAuditUseCase, err := c.DeliveryAuditUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery audit use case for delivery handler: %w", err)
	}

	return auditHTTP.NewDeliveryHandler(deliveryAuditUseCase, c.Logger()), nil
}
