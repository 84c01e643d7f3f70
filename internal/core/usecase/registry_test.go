package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
)

func day(n int) time.Time {
	return time.Date(2025, 6, n, 0, 0, 0, 0, time.UTC)
}

func TestListDefaultsMissingAnnotations(t *testing.T) {
	docs := &fakeDocs{metas: []domain.DocumentMeta{
		{ID: "d1", Filename: "lease.pdf", MimeType: "application/pdf", CreatedAt: day(1)},
		{ID: "d2", Filename: "nda.pdf", MimeType: "application/pdf", CreatedAt: day(2)},
	}}
	annotations := newMemAnnotations()
	analysis := domain.EmptyAnalysis()
	analysis.Category = domain.CategoryContract
	analysis.DocumentType = "Lease Agreement"
	if err := annotations.SaveAnalysis("d1", analysis); err != nil {
		t.Fatalf("save analysis: %v", err)
	}
	if err := annotations.SaveLastTab("d1", domain.TabRisks); err != nil {
		t.Fatalf("save tab: %v", err)
	}

	registry := NewRegistry(docs, annotations, discardLogger())
	listed, err := registry.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(listed))
	}
	if listed[0].Analysis.Category != domain.CategoryContract || listed[0].LastTab != domain.TabRisks {
		t.Fatalf("expected annotation applied, got %+v", listed[0])
	}
	if listed[1].Analysis.Category != domain.CategoryOther || listed[1].Analysis.DocumentType != "Document" {
		t.Fatalf("expected default annotation fill, got %+v", listed[1].Analysis)
	}
	if listed[1].LastTab != domain.TabSummary {
		t.Fatalf("expected default tab Summary, got %q", listed[1].LastTab)
	}
}

func storedDoc(id, name, docType string, category domain.Category, uploaded time.Time) domain.StoredDocument {
	analysis := domain.EmptyAnalysis()
	analysis.Category = category
	analysis.DocumentType = docType
	return domain.StoredDocument{
		ID:         id,
		Name:       name,
		UploadDate: uploaded,
		Analysis:   analysis,
		LastTab:    domain.TabSummary,
	}
}

func TestFilterByCategory(t *testing.T) {
	docs := []domain.StoredDocument{
		storedDoc("d1", "a.pdf", "Lease", domain.CategoryContract, day(1)),
		storedDoc("d2", "b.pdf", "Handbook", domain.CategoryPolicy, day(2)),
		storedDoc("d3", "c.pdf", "NDA", domain.CategoryContract, day(3)),
	}

	contracts := Filter(docs, string(domain.CategoryContract))
	if len(contracts) != 2 || contracts[0].ID != "d1" || contracts[1].ID != "d3" {
		t.Fatalf("expected [d1 d3], got %+v", contracts)
	}

	all := Filter(docs, domain.FilterAll)
	if len(all) != 3 {
		t.Fatalf("expected full input for All, got %d", len(all))
	}
	for i := range docs {
		if all[i].ID != docs[i].ID {
			t.Fatalf("expected original order preserved at %d, got %q", i, all[i].ID)
		}
	}
}

func TestSortOrders(t *testing.T) {
	docs := []domain.StoredDocument{
		storedDoc("d1", "charter.pdf", "Charter", domain.CategoryOther, day(2)),
		storedDoc("d2", "agreement.pdf", "Lease", domain.CategoryContract, day(3)),
		storedDoc("d3", "bylaws.pdf", "Policy", domain.CategoryPolicy, day(1)),
	}

	newest := Sort(docs, domain.SortNewest)
	for i := 1; i < len(newest); i++ {
		if newest[i].UploadDate.After(newest[i-1].UploadDate) {
			t.Fatalf("expected non-increasing upload dates, got %v then %v",
				newest[i-1].UploadDate, newest[i].UploadDate)
		}
	}

	oldest := Sort(docs, domain.SortOldest)
	if oldest[0].ID != "d3" || oldest[2].ID != "d2" {
		t.Fatalf("expected oldest-first order, got %+v", oldest)
	}

	byName := Sort(docs, domain.SortName)
	for i := 1; i < len(byName); i++ {
		if byName[i].Name < byName[i-1].Name {
			t.Fatalf("expected non-decreasing names, got %q then %q",
				byName[i-1].Name, byName[i].Name)
		}
	}

	if docs[0].ID != "d1" {
		t.Fatalf("expected input untouched, got %q first", docs[0].ID)
	}
}

func TestSortIsStable(t *testing.T) {
	same := day(5)
	docs := []domain.StoredDocument{
		storedDoc("d1", "x.pdf", "Doc", domain.CategoryOther, same),
		storedDoc("d2", "y.pdf", "Doc", domain.CategoryOther, same),
		storedDoc("d3", "z.pdf", "Doc", domain.CategoryOther, same),
	}
	sorted := Sort(docs, domain.SortNewest)
	if sorted[0].ID != "d1" || sorted[1].ID != "d2" || sorted[2].ID != "d3" {
		t.Fatalf("expected ties to keep input order, got %+v", sorted)
	}
}
