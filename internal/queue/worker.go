// Package queue consumes case events from the message transport and feeds
// them to the callback dispatcher, one message at a time.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	kgo "github.com/segmentio/kafka-go"

	callbackDomain "github.com/allisson/caseflow/internal/callback/domain"
	"github.com/allisson/caseflow/internal/callback/http/dto"
	callbackUseCase "github.com/allisson/caseflow/internal/callback/usecase"
	customValidation "github.com/allisson/caseflow/internal/validation"
)

// Fetcher reads messages from the transport. Satisfied by *kafka.Reader.
type Fetcher interface {
	FetchMessage(ctx context.Context) (kgo.Message, error)
	CommitMessages(ctx context.Context, msgs ...kgo.Message) error
	Close() error
}

// Publisher writes messages to the transport. Satisfied by *kafka.Writer.
type Publisher interface {
	WriteMessages(ctx context.Context, msgs ...kgo.Message) error
	Close() error
}

// Worker consumes case event messages and dispatches them synchronously.
// Processing is single-threaded: the next message is only fetched once
// dispatch for the previous one has returned. Messages that cannot be decoded
// or whose dispatch fails are published to the dead letter topic and
// committed so the partition does not stall.
type Worker struct {
	fetcher    Fetcher
	deadLetter Publisher
	dispatcher callbackUseCase.Dispatcher
	logger     *slog.Logger
}

// NewWorker creates a worker reading from the case event topic with manual
// commits.
func NewWorker(
	brokersCSV, topic, groupID, deadLetterTopic string,
	dispatcher callbackUseCase.Dispatcher,
	logger *slog.Logger,
) *Worker {
	brokers := splitCSV(brokersCSV)

	reader := kgo.NewReader(kgo.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // manual commits
	})

	writer := &kgo.Writer{
		Addr:         kgo.TCP(brokers...),
		Topic:        deadLetterTopic,
		Balancer:     &kgo.LeastBytes{},
		RequiredAcks: kgo.RequireOne,
	}

	return &Worker{
		fetcher:    reader,
		deadLetter: writer,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// NewWorkerWithTransport creates a worker over explicit transport endpoints.
func NewWorkerWithTransport(
	fetcher Fetcher,
	deadLetter Publisher,
	dispatcher callbackUseCase.Dispatcher,
	logger *slog.Logger,
) *Worker {
	return &Worker{
		fetcher:    fetcher,
		deadLetter: deadLetter,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Run consumes messages until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("case event worker started")

	for {
		message, err := w.fetcher.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				w.logger.Info("case event worker stopping")
				return nil
			}
			return err
		}

		w.process(ctx, message)
	}
}

// process handles a single message: decode, dispatch, commit. Dispatch runs
// synchronously; the worker does not fetch again until it returns.
func (w *Worker) process(ctx context.Context, message kgo.Message) {
	event, err := decodeCaseEvent(message.Value)
	if err != nil {
		w.logger.Error("discarding undecodable case event",
			slog.String("topic", message.Topic),
			slog.Int64("offset", message.Offset),
			slog.Any("error", err),
		)
		w.sendToDeadLetter(ctx, message)
		w.commit(ctx, message)
		return
	}

	if err := w.dispatcher.Dispatch(ctx, event); err != nil {
		w.logger.Error("case event dispatch failed",
			slog.Int64("case_id", event.CaseID()),
			slog.String("event_type", string(event.EventType)),
			slog.Any("error", err),
		)
		w.sendToDeadLetter(ctx, message)
	}

	w.commit(ctx, message)
}

// Close releases the transport connections.
func (w *Worker) Close() error {
	var errs []error
	if err := w.fetcher.Close(); err != nil {
		errs = append(errs, err)
	}
	if w.deadLetter != nil {
		if err := w.deadLetter.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// sendToDeadLetter republishes the raw message for later inspection. A dead
// letter failure is logged, not propagated; the message is still committed.
func (w *Worker) sendToDeadLetter(ctx context.Context, message kgo.Message) {
	if w.deadLetter == nil {
		return
	}

	publishCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := w.deadLetter.WriteMessages(publishCtx, kgo.Message{
		Key:   message.Key,
		Value: message.Value,
		Time:  time.Now(),
	})
	if err != nil {
		w.logger.Error("failed to publish case event to dead letter topic",
			slog.Int64("offset", message.Offset),
			slog.Any("error", err),
		)
	}
}

func (w *Worker) commit(ctx context.Context, message kgo.Message) {
	commitCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := w.fetcher.CommitMessages(commitCtx, message); err != nil {
		w.logger.Error("failed to commit case event message",
			slog.Int64("offset", message.Offset),
			slog.Any("error", err),
		)
	}
}

// decodeCaseEvent unmarshals and validates an inbound envelope. The payload
// shape is shared with the HTTP callback endpoint.
func decodeCaseEvent(value []byte) (*callbackDomain.CaseEvent, error) {
	var request dto.CaseEventRequest
	if err := json.Unmarshal(value, &request); err != nil {
		return nil, err
	}

	if err := request.Validate(); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	return request.ToDomain(), nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
