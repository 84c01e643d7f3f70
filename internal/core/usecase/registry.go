package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
	"github.com/lexidocs/lexi-cli/internal/core/ports"
)

// Registry produces the merged document listing: backend metadata joined
// with the local annotation by document id. Missing annotations default to
// the empty analysis placeholder and the Summary tab.
type Registry struct {
	documents   ports.DocumentAPI
	annotations ports.AnnotationStore
	log         *slog.Logger
}

func NewRegistry(documents ports.DocumentAPI, annotations ports.AnnotationStore, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		documents:   documents,
		annotations: annotations,
		log:         log,
	}
}

// List returns the user's documents in backend order.
func (r *Registry) List(ctx context.Context, userID string) ([]domain.StoredDocument, error) {
	metas, err := r.documents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]domain.StoredDocument, 0, len(metas))
	for _, meta := range metas {
		doc := domain.StoredDocument{
			ID:         meta.ID,
			UserID:     userID,
			Name:       meta.Filename,
			MimeType:   meta.MimeType,
			UploadDate: meta.CreatedAt,
			Analysis:   domain.EmptyAnalysis(),
			LastTab:    domain.TabSummary,
		}
		annotation, ok, err := r.annotations.Annotation(meta.ID)
		if err != nil {
			r.log.Warn("read_annotation", "document_id", meta.ID, "error", err)
		} else if ok {
			if annotation.Analysis != nil {
				doc.Analysis = *annotation.Analysis
			}
			if annotation.LastTab != "" {
				doc.LastTab = annotation.LastTab
			}
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Filter returns the subsequence matching category, preserving input order.
// FilterAll passes everything through.
func Filter(docs []domain.StoredDocument, category string) []domain.StoredDocument {
	if category == domain.FilterAll {
		out := make([]domain.StoredDocument, len(docs))
		copy(out, docs)
		return out
	}
	out := make([]domain.StoredDocument, 0, len(docs))
	for _, doc := range docs {
		if string(doc.Analysis.Category) == category {
			out = append(out, doc)
		}
	}
	return out
}

// Sort returns a sorted copy; ties keep input order.
func Sort(docs []domain.StoredDocument, key domain.SortKey) []domain.StoredDocument {
	out := make([]domain.StoredDocument, len(docs))
	copy(out, docs)

	switch key {
	case domain.SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UploadDate.Before(out[j].UploadDate)
		})
	case domain.SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case domain.SortType:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Analysis.DocumentType) < strings.ToLower(out[j].Analysis.DocumentType)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UploadDate.After(out[j].UploadDate)
		})
	}
	return out
}
