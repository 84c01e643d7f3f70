package localstore

import (
	"github.com/lexidocs/lexi-cli/internal/core/domain"
)

func (s *Store) ReadSession() (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user domain.User
	ok, err := s.readBucket(sessionBucket, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

func (s *Store) WriteSession(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeBucket(sessionBucket, user)
}

func (s *Store) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeBucket(sessionBucket)
}

func (s *Store) Profile(userID string) (domain.ProfileOverlay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := map[string]domain.ProfileOverlay{}
	if _, err := s.readBucket(profilesBucket, &all); err != nil {
		return domain.ProfileOverlay{}, err
	}
	return all[userID], nil
}

// SetProfile replaces the overlay for one user. The full overlay is written
// as given; callers own field-level merge decisions.
func (s *Store) SetProfile(userID string, overlay domain.ProfileOverlay) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := map[string]domain.ProfileOverlay{}
	if _, err := s.readBucket(profilesBucket, &all); err != nil {
		return err
	}
	all[userID] = overlay
	return s.writeBucket(profilesBucket, all)
}
