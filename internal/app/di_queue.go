package app

import (
	"fmt"

	"github.com/allisson/caseflow/internal/queue"
)

// Worker returns the case event queue worker.
func (c *Container) Worker() (*queue.Worker, error) {
	var err error
	c.workerInit.Do(func() {
		c.worker, err = c.initWorker()
		if err != nil {
			c.initErrors["worker"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["worker"]; exists {
		return nil, storedErr
	}
	return c.worker, nil
}

// initWorker creates the queue worker with all its dependencies.
func (c *Container) initWorker() (*queue.Worker, error) {
	dispatcher, err := c.Dispatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to get dispatcher for worker: %w", err)
	}

	return queue.NewWorker(
		c.config.KafkaBrokers,
		c.config.KafkaTopic,
		c.config.KafkaGroupID,
		c.config.KafkaDeadLetterTopic,
		dispatcher,
		c.Logger(),
	), nil
}
