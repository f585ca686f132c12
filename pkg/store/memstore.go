package store

import "encoding/json"

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	docs map[string]json.RawMessage
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]json.RawMessage)}
}

// LoadCollection decodes the named collection into out. Absent names load
// as the empty collection.
func (s *MemStore) LoadCollection(name string, out any) error {
	raw, ok := s.docs[name]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// SaveCollection overwrites the named collection.
func (s *MemStore) SaveCollection(name string, in any) error {
	return s.save(name, in)
}

// SaveDocument overwrites the named document.
func (s *MemStore) SaveDocument(name string, in any) error {
	return s.save(name, in)
}

func (s *MemStore) save(name string, in any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	s.docs[name] = raw
	return nil
}

// Raw returns the stored bytes for name, if any.
func (s *MemStore) Raw(name string) (json.RawMessage, bool) {
	raw, ok := s.docs[name]
	return raw, ok
}
