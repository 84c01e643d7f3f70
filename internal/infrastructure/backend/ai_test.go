package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
)

func TestAnalyzeSendsDocumentID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/ai/analyze", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "d1", payload["documentId"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"analysis":{
			"summary":["12 month term"],
			"obligations":["pay rent monthly"],
			"keyClauses":[{"title":"Termination","text":"60 days notice","category":"important"}],
			"risks":["auto-renewal"],
			"deadlines":["2026-06-01 renewal"],
			"documentType":"Lease Agreement",
			"category":"Contract"
		}}`))
	}))

	analysis, err := client.Analyze(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryContract, analysis.Category)
	assert.Equal(t, "Lease Agreement", analysis.DocumentType)
	require.Len(t, analysis.KeyClauses, 1)
	assert.Equal(t, "Termination", analysis.KeyClauses[0].Title)
}

func TestAnalyzeMapsFailureKinds(t *testing.T) {
	cases := []struct {
		name   string
		status int
		kind   error
	}{
		{"missing document", http.StatusNotFound, domain.ErrDocumentNotFound},
		{"expired session", http.StatusUnauthorized, domain.ErrUnauthenticated},
		{"model failure", http.StatusInternalServerError, domain.ErrAnalysis},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tc.name, tc.status)
			}))
			_, err := client.Analyze(context.Background(), "d1")
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, tc.kind))
		})
	}
}

func TestChatSendsHistoryAndContext(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ai/chat", r.URL.Path)

		var payload struct {
			DocumentID      string            `json:"documentId"`
			Message         string            `json:"message"`
			History         []domain.ChatTurn `json:"history"`
			AnalysisContext string            `json:"analysisContext"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "d1", payload.DocumentID)
		assert.Equal(t, "is there an exit clause?", payload.Message)
		require.Len(t, payload.History, 2)
		assert.Equal(t, domain.RoleAssistant, payload.History[0].Role)
		assert.NotEmpty(t, payload.AnalysisContext)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"Yes, with 60 days notice."}`))
	}))

	reply, err := client.Chat(context.Background(), domain.ChatRequest{
		DocumentID: "d1",
		Message:    "is there an exit clause?",
		History: []domain.ChatTurn{
			{Role: domain.RoleAssistant, Text: "Analysis completed."},
			{Role: domain.RoleUser, Text: "summarize it"},
		},
		AnalysisContext: `{"documentType":"Lease Agreement"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "Yes, with 60 days notice.", reply)
}

func TestChatSendsEmptyHistoryArray(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.JSONEq(t, `[]`, string(payload["history"]))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"ok"}`))
	}))

	_, err := client.Chat(context.Background(), domain.ChatRequest{Message: "hello"})
	require.NoError(t, err)
}

func TestChatMapsFailureToChatKind(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model timeout", http.StatusGatewayTimeout)
	}))

	_, err := client.Chat(context.Background(), domain.ChatRequest{Message: "hello", DocumentID: "d1"})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrChat))
}
