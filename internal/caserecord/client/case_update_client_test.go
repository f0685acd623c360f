package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
)

type staticTokenProvider struct {
	token string
}

func (s *staticTokenProvider) Token(_ context.Context) (string, error) {
	return s.token, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCaseUpdateClient_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_AppendsEvent", func(t *testing.T) {
		var received caseUpdatePayload
		var authHeader, path string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			authHeader = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		updater := NewCaseUpdateClient(server.URL, &staticTokenProvider{token: "service-token"}, testLogger())

		err := updater.Update(ctx, 12345, CaseUpdate{
			EventType:   "departmentNotified",
			Summary:     "Department notified",
			Description: "The department was notified of the appeal",
			Snapshot:    &casedomain.CaseSnapshot{CaseID: 12345},
		})

		require.NoError(t, err)
		assert.Equal(t, "/cases/12345/events", path)
		assert.Equal(t, "Bearer service-token", authHeader)
		assert.Equal(t, "departmentNotified", received.EventType)
		assert.Nil(t, received.SupplementaryData)
	})

	t.Run("Success_RoutingMetadataAttachedUnderServiceIdentifier", func(t *testing.T) {
		var received caseUpdatePayload

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		updater := NewCaseUpdateClient(server.URL, &staticTokenProvider{token: "service-token"}, testLogger())

		err := updater.UpdateWithRouting(ctx, 12345, CaseUpdate{
			EventType: "departmentNotified",
		}, casedomain.RoutingMetadata{Region: "North East", OfficeCode: "3"})

		require.NoError(t, err)
		require.Contains(t, received.SupplementaryData, "caseflow")
		assert.Equal(t, "North East", received.SupplementaryData["caseflow"]["region"])
		assert.Equal(t, "3", received.SupplementaryData["caseflow"]["officeCode"])
	})

	t.Run("Error_CaseNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		updater := NewCaseUpdateClient(server.URL, &staticTokenProvider{token: "t"}, testLogger())

		err := updater.Update(ctx, 99999, CaseUpdate{EventType: "departmentNotified"})
		assert.ErrorIs(t, err, casedomain.ErrCaseNotFound)
	})
}

func TestIdamClient_Token(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_LeasesAndCachesToken", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			var req leaseRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "caseflow-service", req.ServiceUser)
			_ = json.NewEncoder(w).Encode(leaseResponse{Token: "leased-token", ExpiresIn: 3600})
		}))
		defer server.Close()

		provider := NewIdamClient(server.URL, "caseflow-service")

		token, err := provider.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "leased-token", token)

		// Second call served from cache.
		token, err = provider.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "leased-token", token)
		assert.Equal(t, 1, calls)
	})

	t.Run("Error_LeaseFailure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		provider := NewIdamClient(server.URL, "caseflow-service")

		_, err := provider.Token(ctx)
		assert.Error(t, err)
	})
}
