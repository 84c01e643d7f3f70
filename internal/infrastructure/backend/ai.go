package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
)

func (c *Client) Analyze(ctx context.Context, documentID string) (analysis domain.Analysis, err error) {
	defer func(start time.Time) { c.finish("ai.analyze", start, err) }(time.Now())

	var envelope struct {
		Analysis domain.Analysis `json:"analysis"`
	}
	err = c.doJSON(ctx, http.MethodPost, "/ai/analyze", map[string]string{
		"documentId": documentID,
	}, &envelope, "analyze")
	if err != nil {
		err = wrapCall("analyze", err, map[int]error{
			http.StatusNotFound:     domain.ErrDocumentNotFound,
			http.StatusUnauthorized: domain.ErrUnauthenticated,
		}, domain.ErrAnalysis)
		return domain.Analysis{}, err
	}
	return envelope.Analysis, nil
}

type chatPayload struct {
	DocumentID      string            `json:"documentId,omitempty"`
	Message         string            `json:"message"`
	History         []domain.ChatTurn `json:"history"`
	AnalysisContext string            `json:"analysisContext,omitempty"`
}

func (c *Client) Chat(ctx context.Context, req domain.ChatRequest) (reply string, err error) {
	defer func(start time.Time) { c.finish("ai.chat", start, err) }(time.Now())

	history := req.History
	if history == nil {
		history = []domain.ChatTurn{}
	}

	var envelope struct {
		Reply string `json:"reply"`
	}
	err = c.doJSON(ctx, http.MethodPost, "/ai/chat", chatPayload{
		DocumentID:      req.DocumentID,
		Message:         req.Message,
		History:         history,
		AnalysisContext: req.AnalysisContext,
	}, &envelope, "chat")
	if err != nil {
		err = wrapCall("chat", err, map[int]error{
			http.StatusUnauthorized: domain.ErrUnauthenticated,
		}, domain.ErrChat)
		return "", err
	}
	return envelope.Reply, nil
}
