package contact

import (
	"fmt"
	"log/slog"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/portfolio-visual/internal/validate"
)

const (
	draftObject   = "contact"
	draftProperty = "draft"
)

// DraftStore keeps unsent form input between runs. With a nil manager it
// only remembers the draft in memory.
type DraftStore struct {
	m   *gdata.Manager
	mem validate.Fields
}

// NewDraftStore creates a store backed by m, which may be nil.
func NewDraftStore(m *gdata.Manager) *DraftStore {
	return &DraftStore{m: m}
}

// Load returns the saved draft, or an empty one if there is none.
func (s *DraftStore) Load() (validate.Fields, error) {
	if s.m == nil || !s.m.ObjectPropExists(draftObject, draftProperty) {
		return s.mem, nil
	}
	data, err := s.m.LoadObjectProp(draftObject, draftProperty)
	if err != nil {
		return s.mem, fmt.Errorf("loading draft: %w", err)
	}
	var f validate.Fields
	if err := yaml.Unmarshal(data, &f); err != nil {
		return s.mem, fmt.Errorf("decoding draft: %w", err)
	}
	s.mem = f
	return f, nil
}

// Save stores f as the current draft.
func (s *DraftStore) Save(f validate.Fields) error {
	s.mem = f
	if s.m == nil {
		return nil
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	if err := s.m.SaveObjectProp(draftObject, draftProperty, data); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	slog.Debug("contact_draft_saved")
	return nil
}

// Clear forgets the draft.
func (s *DraftStore) Clear() error {
	return s.Save(validate.Fields{})
}
