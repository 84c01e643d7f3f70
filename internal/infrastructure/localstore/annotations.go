package localstore

import (
	"github.com/lexidocs/lexi-cli/internal/core/domain"
)

func (s *Store) Annotation(docID string) (domain.Annotation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := map[string]domain.Annotation{}
	if _, err := s.readBucket(annotationsBucket, &all); err != nil {
		return domain.Annotation{}, false, err
	}
	entry, ok := all[docID]
	return entry, ok, nil
}

// SaveAnalysis merge-writes the analysis half of an annotation, keeping the
// cached last tab.
func (s *Store) SaveAnalysis(docID string, analysis domain.Analysis) error {
	return s.patchAnnotation(docID, func(entry *domain.Annotation) {
		entry.Analysis = &analysis
	})
}

// SaveLastTab merge-writes the last-viewed tab, keeping the cached analysis.
func (s *Store) SaveLastTab(docID string, tab domain.Tab) error {
	return s.patchAnnotation(docID, func(entry *domain.Annotation) {
		entry.LastTab = tab
	})
}

func (s *Store) Remove(docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := map[string]domain.Annotation{}
	ok, err := s.readBucket(annotationsBucket, &all)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	delete(all, docID)
	return s.writeBucket(annotationsBucket, all)
}

func (s *Store) patchAnnotation(docID string, patch func(*domain.Annotation)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := map[string]domain.Annotation{}
	if _, err := s.readBucket(annotationsBucket, &all); err != nil {
		return err
	}
	entry := all[docID]
	patch(&entry)
	all[docID] = entry
	return s.writeBucket(annotationsBucket, all)
}
