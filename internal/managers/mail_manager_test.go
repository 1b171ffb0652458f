package managers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailManager(url string) *MailManager {
	return &MailManager{
		APIKey:      "test-key",
		APIURL:      url,
		FromEmail:   "noreply@moneymanager.app",
		FromName:    "Money Manager",
		Environment: "production",
		Client:      http.DefaultClient,
	}
}

func TestSendSubmitsBrevoPayload(t *testing.T) {
	var got mailPayload
	var apiKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	mm := newTestMailManager(server.URL)
	err := mm.Send("user@example.com", "Hello", "Hi there")

	require.NoError(t, err)
	assert.Equal(t, "test-key", apiKey)
	assert.Equal(t, "noreply@moneymanager.app", got.Sender.Email)
	assert.Equal(t, "Money Manager", got.Sender.Name)
	require.Len(t, got.To, 1)
	assert.Equal(t, "user@example.com", got.To[0].Email)
	assert.Equal(t, "Hello", got.Subject)
	assert.Equal(t, "<html><body>Hi there</body></html>", got.HTMLContent)
	assert.Empty(t, got.Attachment)
}

func TestSendWithAttachmentEncodesBase64(t *testing.T) {
	var got mailPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	mm := newTestMailManager(server.URL)
	err := mm.SendWithAttachment("user@example.com", "Report", "See attached", []byte("csv,data"), "report.csv")

	require.NoError(t, err)
	require.Len(t, got.Attachment, 1)
	assert.Equal(t, "report.csv", got.Attachment[0].Name)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("csv,data")), got.Attachment[0].Content)
}

func TestSendActivationMailContainsLink(t *testing.T) {
	var got mailPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	mm := newTestMailManager(server.URL)
	err := mm.SendActivationMail("user@example.com", "Test User", "http://localhost:8080/api/activate?token=abc")

	require.NoError(t, err)
	assert.Equal(t, "Activate your Money Manager account", got.Subject)
	assert.Contains(t, got.HTMLContent, "Hi Test User")
	assert.Contains(t, got.HTMLContent, "http://localhost:8080/api/activate?token=abc")
}

func TestSendProviderErrorReturnsDispatchFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	mm := newTestMailManager(server.URL)
	err := mm.Send("user@example.com", "Hello", "Hi there")

	assert.ErrorIs(t, err, ErrDispatchFailed)
}

func TestSendRetriesOnceOnTransportError(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	}))
	server.Close()

	mm := newTestMailManager(server.URL)
	err := mm.Send("user@example.com", "Hello", "Hi there")

	// the server is down, so both the first attempt and the retry fail
	assert.ErrorIs(t, err, ErrDispatchFailed)
	assert.Equal(t, 0, calls)
}

func TestSendSkippedOutsideProduction(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	mm := newTestMailManager(server.URL)
	mm.Environment = "development"

	err := mm.Send("user@example.com", "Hello", "Hi there")

	assert.NoError(t, err)
	assert.Equal(t, 0, calls)
}
