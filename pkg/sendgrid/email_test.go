package sendgrid_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/cosmetics-storefront/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sendgridV3Payload struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
	Categories []string `json:"categories"`
}

const (
	apiKey    = "SG.test-api-key"
	fromEmail = "orders@example.com"
	fromName  = "Cosmetics Storefront"
)

func TestEmailService_Send(t *testing.T) {
	ctx := t.Context()

	tests := []struct {
		name          string
		msg           *sendgrid.Message
		status        int
		expectedError string
		checkPayload  func(t *testing.T, p sendgridV3Payload)
	}{
		{
			name: "Success - text and html",
			msg: &sendgrid.Message{
				To:         "asha@example.com",
				ToName:     "Asha",
				Subject:    "Order 20240501-AB12CD confirmed",
				PlainText:  "Thanks!",
				HTML:       "<p>Thanks!</p>",
				Categories: []string{"order-confirmation"},
			},
			status: http.StatusAccepted,
			checkPayload: func(t *testing.T, p sendgridV3Payload) {
				require.Len(t, p.Personalizations, 1)
				pers := p.Personalizations[0]
				require.Len(t, pers.To, 1)
				assert.Equal(t, "asha@example.com", pers.To[0]["email"])
				assert.Equal(t, "Asha", pers.To[0]["name"])
				assert.Equal(t, "Order 20240501-AB12CD confirmed", pers.Subject)
				assert.Equal(t, fromEmail, p.From["email"])
				assert.Equal(t, fromName, p.From["name"])
				require.Len(t, p.Content, 2)
				assert.Equal(t, "text/plain", p.Content[0].Type)
				assert.Equal(t, "text/html", p.Content[1].Type)
				assert.Equal(t, []string{"order-confirmation"}, p.Categories)
			},
		},
		{
			name: "Success - plain text only",
			msg: &sendgrid.Message{
				To:        "asha@example.com",
				Subject:   "Hello",
				PlainText: "Plain",
			},
			status: http.StatusAccepted,
			checkPayload: func(t *testing.T, p sendgridV3Payload) {
				require.Len(t, p.Content, 1)
				assert.Equal(t, "Plain", p.Content[0].Value)
				assert.Empty(t, p.Categories)
			},
		},
		{
			name:          "Failure - 4xx",
			msg:           &sendgrid.Message{To: "bad@example.com", Subject: "s", PlainText: "c"},
			status:        http.StatusBadRequest,
			expectedError: "failed to send email, status code: 400",
		},
		{
			name:          "Failure - 5xx",
			msg:           &sendgrid.Message{To: "a@example.com", Subject: "s", PlainText: "c"},
			status:        http.StatusInternalServerError,
			expectedError: "failed to send email, status code: 500",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var payload sendgridV3Payload

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer "+apiKey, r.Header.Get("Authorization"))

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.NoError(t, json.Unmarshal(body, &payload))

				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			svc := sendgrid.NewEmailService(apiKey, fromEmail, fromName, sendgrid.WithBaseURL(server.URL))

			err := svc.Send(ctx, tc.msg)

			if tc.expectedError == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			}

			if tc.checkPayload != nil {
				tc.checkPayload(t, payload)
			}
		})
	}

	t.Run("Failure - network error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		svc := sendgrid.NewEmailService(apiKey, fromEmail, fromName, sendgrid.WithBaseURL(url))

		err := svc.Send(ctx, &sendgrid.Message{To: "a@example.com", Subject: "s", PlainText: "c"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to reach sendgrid")
	})
}

func TestLogEmailService(t *testing.T) {
	svc := sendgrid.NewLogEmailService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, svc.Send(t.Context(), &sendgrid.Message{To: "a@example.com"}))
}
