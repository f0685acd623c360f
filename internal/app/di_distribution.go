package app

import (
	"context"
	"fmt"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"

	distribution "github.com/allisson/caseflow/internal/distribution/usecase"
	"github.com/allisson/caseflow/internal/docstore"
	letterService "github.com/allisson/caseflow/internal/letter/service"
	"github.com/allisson/caseflow/internal/print"
	"github.com/allisson/caseflow/internal/render"
)

// EvidenceStore returns the evidence document store.
func (c *Container) EvidenceStore() (docstore.EvidenceStore, error) {
	var err error
	c.evidenceStoreInit.Do(func() {
		c.evidenceStore, err = c.initEvidenceStore()
		if err != nil {
			c.initErrors["evidenceStore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["evidenceStore"]; exists {
		return nil, storedErr
	}
	return c.evidenceStore, nil
}

// Renderer returns the cover letter renderer.
func (c *Container) Renderer() render.Renderer {
	c.rendererInit.Do(func() {
		templateClient := render.NewHTTPTemplateClient(c.config.RendererURL)
		c.renderer = render.NewCoverLetterRenderer(templateClient, c.config.RendererMaxAttempts, c.Logger())
	})
	return c.renderer
}

// PrintClient returns the print channel client. When printing is disabled a
// logging stand-in that accepts every submission is used instead.
func (c *Container) PrintClient() print.PrintClient {
	c.printClientInit.Do(func() {
		if !c.config.PrintingEnabled {
			c.printClient = print.NewDisabledPrintClient(c.Logger())
			return
		}
		c.printClient = print.NewPrintClient(c.config.PrintURL, c.IdamTokens(), c.Logger())
	})
	return c.printClient
}

// PrintGateway returns the print gateway with retry and diversion behavior.
func (c *Container) PrintGateway() (print.Gateway, error) {
	var err error
	c.printGatewayInit.Do(func() {
		c.printGateway, err = c.initPrintGateway()
		if err != nil {
			c.initErrors["printGateway"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["printGateway"]; exists {
		return nil, storedErr
	}
	return c.printGateway, nil
}

// RecipientResolver returns the letter recipient resolver.
func (c *Container) RecipientResolver() letterService.RecipientResolver {
	c.recipientResolverInit.Do(func() {
		addressBook := letterService.NewDepartmentAddressBook(letterService.DefaultDepartmentAddresses())
		c.recipientResolver = letterService.NewRecipientResolver(addressBook, c.Logger())
	})
	return c.recipientResolver
}

// DistributionUseCase returns the further evidence distribution engine.
func (c *Container) DistributionUseCase() (distribution.UseCase, error) {
	var err error
	c.distributionUseCaseInit.Do(func() {
		c.distributionUseCase, err = c.initDistributionUseCase()
		if err != nil {
			c.initErrors["distributionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["distributionUseCase"]; exists {
		return nil, storedErr
	}
	return c.distributionUseCase, nil
}

// initEvidenceStore opens the evidence bucket and wraps it as an EvidenceStore.
func (c *Container) initEvidenceStore() (docstore.EvidenceStore, error) {
	bucket, err := blob.OpenBucket(context.Background(), c.config.EvidenceBucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open evidence bucket: %w", err)
	}

	c.evidenceBucket = bucket

	return docstore.NewBlobEvidenceStore(bucket), nil
}

// initPrintGateway creates the print gateway with all its dependencies.
func (c *Container) initPrintGateway() (print.Gateway, error) {
	deliveryAuditUseCase, err := c.DeliveryAuditUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery audit use case for print gateway: %w", err)
	}

	return print.NewGateway(
		c.PrintClient(),
		deliveryAuditUseCase,
		c.config.PrintMaxAttempts,
		c.config.ReasonableAdjustmentEnabled,
		c.Logger(),
	), nil
}

// initDistributionUseCase creates the distribution use case with all its dependencies.
func (c *Container) initDistributionUseCase() (distribution.UseCase, error) {
	evidenceStore, err := c.EvidenceStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get evidence store for distribution use case: %w", err)
	}

	printGateway, err := c.PrintGateway()
	if err != nil {
		return nil, fmt.Errorf("failed to get print gateway for distribution use case: %w", err)
	}

	return distribution.NewDistributionUseCase(
		c.RecipientResolver(),
		c.Renderer(),
		evidenceStore,
		printGateway,
		c.CaseUpdater(),
		c.Logger(),
	), nil
}
