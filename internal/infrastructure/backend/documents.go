package backend

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
)

func (c *Client) List(ctx context.Context) (docs []domain.DocumentMeta, err error) {
	defer func(start time.Time) { c.finish("documents.list", start, err) }(time.Now())

	var envelope struct {
		Documents []domain.DocumentMeta `json:"documents"`
	}
	err = c.doJSON(ctx, http.MethodGet, "/documents", nil, &envelope, "list documents")
	if err != nil {
		err = wrapCall("list documents", err, map[int]error{
			http.StatusUnauthorized: domain.ErrUnauthenticated,
		}, domain.ErrServer)
		return nil, err
	}
	if envelope.Documents == nil {
		envelope.Documents = []domain.DocumentMeta{}
	}
	return envelope.Documents, nil
}

func (c *Client) Create(ctx context.Context, filename, mimeType string, body io.Reader) (doc domain.DocumentMeta, err error) {
	defer func(start time.Time) { c.finish("documents.create", start, err) }(time.Now())

	var envelope struct {
		Document domain.DocumentMeta `json:"document"`
	}
	err = c.doMultipart(ctx, "/documents", filename, mimeType, body, &envelope, "create document")
	if err != nil {
		err = wrapCall("create document", err, map[int]error{
			http.StatusUnauthorized: domain.ErrUnauthenticated,
		}, domain.ErrUpload)
		return domain.DocumentMeta{}, err
	}
	return envelope.Document, nil
}

func (c *Client) Get(ctx context.Context, id string) (doc domain.DocumentMeta, err error) {
	defer func(start time.Time) { c.finish("documents.get", start, err) }(time.Now())

	var envelope struct {
		Document domain.DocumentMeta `json:"document"`
	}
	err = c.doJSON(ctx, http.MethodGet, "/documents/"+url.PathEscape(id), nil, &envelope, "get document")
	if err != nil {
		err = wrapCall("get document", err, map[int]error{
			http.StatusNotFound:     domain.ErrDocumentNotFound,
			http.StatusUnauthorized: domain.ErrUnauthenticated,
		}, domain.ErrServer)
		return domain.DocumentMeta{}, err
	}
	return envelope.Document, nil
}

func (c *Client) Delete(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { c.finish("documents.delete", start, err) }(time.Now())

	err = c.doJSON(ctx, http.MethodDelete, "/documents/"+url.PathEscape(id), nil, nil, "delete document")
	if err != nil {
		err = wrapCall("delete document", err, map[int]error{
			http.StatusNotFound:     domain.ErrDocumentNotFound,
			http.StatusUnauthorized: domain.ErrUnauthenticated,
		}, domain.ErrServer)
	}
	return err
}
