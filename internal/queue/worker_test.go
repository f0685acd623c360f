package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	kgo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	callbackDomain "github.com/allisson/caseflow/internal/callback/domain"
)

// TestMain verifies the worker leaves no goroutines behind after Run returns.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MockFetcher is a mock implementation of Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchMessage(ctx context.Context) (kgo.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).(kgo.Message), args.Error(1)
}

func (m *MockFetcher) CommitMessages(ctx context.Context, msgs ...kgo.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockFetcher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockPublisher is a mock implementation of Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) WriteMessages(ctx context.Context, msgs ...kgo.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockDispatcher is a mock implementation of callbackUseCase.Dispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, event *callbackDomain.CaseEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const validEventJSON = `{
	"event": "issueFurtherEvidence",
	"callbackStage": "postSubmit",
	"caseDetails": {
		"caseId": 12345,
		"caseData": {
			"caseReference": "CF-2026-0001",
			"appellant": {
				"name": {"firstName": "Ada", "lastName": "Pemberton"},
				"address": {"line1": "1 Mill Lane", "town": "Leeds", "postcode": "LS1 1AA"}
			}
		}
	}
}`

func TestWorkerProcess(t *testing.T) {
	t.Run("Success_DispatchesAndCommits", func(t *testing.T) {
		fetcher := &MockFetcher{}
		publisher := &MockPublisher{}
		dispatcher := &MockDispatcher{}
		worker := NewWorkerWithTransport(fetcher, publisher, dispatcher, testLogger())

		message := kgo.Message{Topic: "case-events", Offset: 7, Value: []byte(validEventJSON)}

		dispatcher.On("Dispatch", mock.Anything, mock.MatchedBy(func(event *callbackDomain.CaseEvent) bool {
			return event.EventType == callbackDomain.EventIssueFurtherEvidence &&
				event.Stage == callbackDomain.StagePostSubmit &&
				event.CaseID() == 12345
		})).Return(nil).Once()
		fetcher.On("CommitMessages", mock.Anything, []kgo.Message{message}).Return(nil).Once()

		worker.process(context.Background(), message)

		dispatcher.AssertExpectations(t)
		fetcher.AssertExpectations(t)
		publisher.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})

	t.Run("Error_UndecodableMessageGoesToDeadLetter", func(t *testing.T) {
		fetcher := &MockFetcher{}
		publisher := &MockPublisher{}
		dispatcher := &MockDispatcher{}
		worker := NewWorkerWithTransport(fetcher, publisher, dispatcher, testLogger())

		message := kgo.Message{Topic: "case-events", Offset: 8, Value: []byte("not json")}

		publisher.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kgo.Message) bool {
			return len(msgs) == 1 && string(msgs[0].Value) == "not json"
		})).Return(nil).Once()
		fetcher.On("CommitMessages", mock.Anything, []kgo.Message{message}).Return(nil).Once()

		worker.process(context.Background(), message)

		publisher.AssertExpectations(t)
		fetcher.AssertExpectations(t)
		dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidEnvelopeGoesToDeadLetter", func(t *testing.T) {
		fetcher := &MockFetcher{}
		publisher := &MockPublisher{}
		dispatcher := &MockDispatcher{}
		worker := NewWorkerWithTransport(fetcher, publisher, dispatcher, testLogger())

		// Unknown stage fails envelope validation before dispatch.
		message := kgo.Message{
			Offset: 9,
			Value:  []byte(`{"event": "caseUpdated", "callbackStage": "midway", "caseDetails": {"caseId": 1}}`),
		}

		publisher.On("WriteMessages", mock.Anything, mock.Anything).Return(nil).Once()
		fetcher.On("CommitMessages", mock.Anything, []kgo.Message{message}).Return(nil).Once()

		worker.process(context.Background(), message)

		publisher.AssertExpectations(t)
		fetcher.AssertExpectations(t)
		dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("Error_DispatchFailureGoesToDeadLetterAndCommits", func(t *testing.T) {
		fetcher := &MockFetcher{}
		publisher := &MockPublisher{}
		dispatcher := &MockDispatcher{}
		worker := NewWorkerWithTransport(fetcher, publisher, dispatcher, testLogger())

		message := kgo.Message{Offset: 10, Value: []byte(validEventJSON)}

		dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(assert.AnError).Once()
		publisher.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kgo.Message) bool {
			return len(msgs) == 1 && string(msgs[0].Value) == validEventJSON
		})).Return(nil).Once()
		fetcher.On("CommitMessages", mock.Anything, []kgo.Message{message}).Return(nil).Once()

		worker.process(context.Background(), message)

		dispatcher.AssertExpectations(t)
		publisher.AssertExpectations(t)
		fetcher.AssertExpectations(t)
	})

	t.Run("Error_DeadLetterFailureStillCommits", func(t *testing.T) {
		fetcher := &MockFetcher{}
		publisher := &MockPublisher{}
		dispatcher := &MockDispatcher{}
		worker := NewWorkerWithTransport(fetcher, publisher, dispatcher, testLogger())

		message := kgo.Message{Offset: 11, Value: []byte("broken")}

		publisher.On("WriteMessages", mock.Anything, mock.Anything).Return(assert.AnError).Once()
		fetcher.On("CommitMessages", mock.Anything, []kgo.Message{message}).Return(nil).Once()

		worker.process(context.Background(), message)

		fetcher.AssertExpectations(t)
	})
}

func TestWorkerRun(t *testing.T) {
	t.Run("Success_StopsOnContextCancel", func(t *testing.T) {
		fetcher := &MockFetcher{}
		dispatcher := &MockDispatcher{}
		worker := NewWorkerWithTransport(fetcher, nil, dispatcher, testLogger())

		fetcher.On("FetchMessage", mock.Anything).Return(kgo.Message{}, context.Canceled)

		err := worker.Run(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Error_FetchFailureIsReturned", func(t *testing.T) {
		fetcher := &MockFetcher{}
		dispatcher := &MockDispatcher{}
		worker := NewWorkerWithTransport(fetcher, nil, dispatcher, testLogger())

		fetchErr := errors.New("broker unreachable")
		fetcher.On("FetchMessage", mock.Anything).Return(kgo.Message{}, fetchErr)

		err := worker.Run(context.Background())
		assert.ErrorIs(t, err, fetchErr)
	})

	t.Run("Success_ProcessesMessageThenStops", func(t *testing.T) {
		fetcher := &MockFetcher{}
		publisher := &MockPublisher{}
		dispatcher := &MockDispatcher{}
		worker := NewWorkerWithTransport(fetcher, publisher, dispatcher, testLogger())

		message := kgo.Message{Offset: 12, Value: []byte(validEventJSON)}

		fetcher.On("FetchMessage", mock.Anything).Return(message, nil).Once()
		fetcher.On("FetchMessage", mock.Anything).Return(kgo.Message{}, context.Canceled).Once()
		dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil).Once()
		fetcher.On("CommitMessages", mock.Anything, []kgo.Message{message}).Return(nil).Once()

		err := worker.Run(context.Background())
		require.NoError(t, err)

		dispatcher.AssertExpectations(t)
		fetcher.AssertExpectations(t)
	})
}

func TestWorkerClose(t *testing.T) {
	t.Run("Success_ClosesBothEndpoints", func(t *testing.T) {
		fetcher := &MockFetcher{}
		publisher := &MockPublisher{}
		worker := NewWorkerWithTransport(fetcher, publisher, &MockDispatcher{}, testLogger())

		fetcher.On("Close").Return(nil).Once()
		publisher.On("Close").Return(nil).Once()

		assert.NoError(t, worker.Close())
		fetcher.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Error_FetcherCloseFailureIsReturned", func(t *testing.T) {
		fetcher := &MockFetcher{}
		publisher := &MockPublisher{}
		worker := NewWorkerWithTransport(fetcher, publisher, &MockDispatcher{}, testLogger())

		closeErr := errors.New("close failed")
		fetcher.On("Close").Return(closeErr).Once()
		publisher.On("Close").Return(nil).Once()

		assert.ErrorIs(t, worker.Close(), closeErr)
	})
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"localhost:9092"}, splitCSV("localhost:9092"))
	assert.Equal(t, []string{"a:9092", "b:9092"}, splitCSV("a:9092, b:9092"))
	assert.Empty(t, splitCSV(""))
}
