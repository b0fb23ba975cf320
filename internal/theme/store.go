package theme

import (
	"context"
	"encoding/json"

	"github.com/Laisky/errors/v2"

	"github.com/Aftab073/Ai-search-tool/library/db/sql/kv"
)

// DarkModeKey is the kv key holding the JSON encoded preference.
const DarkModeKey = "darkMode"

// KVStore keeps the preference in a kv table.
type KVStore struct {
	kv kv.Interface
}

// NewKVStore wraps a kv store.
func NewKVStore(store kv.Interface) (*KVStore, error) {
	if store == nil {
		return nil, errors.New("kv store cannot be nil")
	}
	return &KVStore{kv: store}, nil
}

// LoadDarkMode reads the flag, a missing key means light mode.
// A value that is not a JSON boolean is reported as an error.
func (s *KVStore) LoadDarkMode(ctx context.Context) (bool, error) {
	item, err := s.kv.Get(ctx, DarkModeKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "get dark mode")
	}

	var dark *bool
	if err := json.Unmarshal([]byte(item.Value), &dark); err != nil {
		return false, errors.Wrapf(err, "decode dark mode %q", item.Value)
	}
	if dark == nil {
		return false, nil
	}

	return *dark, nil
}

// SaveDarkMode writes the flag as a JSON boolean.
func (s *KVStore) SaveDarkMode(ctx context.Context, dark bool) error {
	raw, err := json.Marshal(dark)
	if err != nil {
		return errors.Wrap(err, "encode dark mode")
	}

	if err := s.kv.Set(ctx, DarkModeKey, string(raw)); err != nil {
		return errors.Wrap(err, "set dark mode")
	}
	return nil
}

// ResetDarkMode deletes the stored flag.
func (s *KVStore) ResetDarkMode(ctx context.Context) (bool, error) {
	exists, err := s.kv.Exists(ctx, DarkModeKey)
	if err != nil {
		return false, errors.Wrap(err, "check dark mode")
	}
	if !exists {
		return false, nil
	}

	if err := s.kv.Del(ctx, DarkModeKey); err != nil {
		return false, errors.Wrap(err, "delete dark mode")
	}
	return true, nil
}
