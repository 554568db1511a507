package blockstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// manifestProperty records every key ever written under Namespace, so
// DeleteAll can clear them all: gdata has no native delete-all, only
// per-property save/load/exists, so GdataStore keeps its own index.
const manifestProperty = "__manifest__"

// GdataStore is a Store backed by a *gdata.Manager, a cross-platform
// local save-data library. Every call blocks on gdata's synchronous
// API but is run on its own goroutine, so from the caller's
// perspective it suspends exactly like a real network-backed store.
type GdataStore struct {
	manager *gdata.Manager

	mu       sync.Mutex
	manifest map[string]struct{}
}

// NewGdataStore wraps an already-opened gdata manager. Callers are
// responsible for gdata.Open(gdata.Config{AppName: ...}).
func NewGdataStore(manager *gdata.Manager) (*GdataStore, error) {
	s := &GdataStore{manager: manager, manifest: make(map[string]struct{})}
	if err := s.loadManifest(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GdataStore) loadManifest() error {
	if !s.manager.ObjectPropExists(Namespace, manifestProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(Namespace, manifestProperty)
	if err != nil {
		return fmt.Errorf("gdatastore: load manifest: %w", err)
	}
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("gdatastore: decode manifest: %w", err)
	}
	for _, k := range keys {
		s.manifest[k] = struct{}{}
	}
	return nil
}

func (s *GdataStore) saveManifestLocked() error {
	keys := make([]string, 0, len(s.manifest))
	for k := range s.manifest {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	data, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	return s.manager.SaveObjectProp(Namespace, manifestProperty, data)
}

type gdataResult struct{ err error }

func (s *GdataStore) Put(ctx context.Context, key string, value []byte) error {
	resCh := make(chan gdataResult, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if err := s.manager.SaveObjectProp(Namespace, key, value); err != nil {
			resCh <- gdataResult{err: fmt.Errorf("gdatastore: save %q: %w", key, err)}
			return
		}
		if _, tracked := s.manifest[key]; !tracked {
			s.manifest[key] = struct{}{}
			if err := s.saveManifestLocked(); err != nil {
				resCh <- gdataResult{err: fmt.Errorf("gdatastore: save manifest: %w", err)}
				return
			}
		}
		resCh <- gdataResult{}
	}()

	select {
	case res := <-resCh:
		return res.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *GdataStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	resCh := make(chan getResult, 1)
	errCh := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		// The manifest, not gdata's own existence check, is the
		// source of truth for membership: Reset logically clears
		// every key by emptying the manifest without requiring a
		// delete call gdata does not expose.
		if _, tracked := s.manifest[key]; !tracked {
			resCh <- getResult{}
			return
		}
		if !s.manager.ObjectPropExists(Namespace, key) {
			resCh <- getResult{}
			return
		}
		data, err := s.manager.LoadObjectProp(Namespace, key)
		if err != nil {
			errCh <- fmt.Errorf("gdatastore: load %q: %w", key, err)
			return
		}
		resCh <- getResult{value: data, ok: true}
	}()

	select {
	case res := <-resCh:
		return res.value, res.ok, nil
	case err := <-errCh:
		return nil, false, err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

// DeleteAll logically clears every chunk this store has written by
// emptying its manifest. gdata exposes no delete-by-property call, so
// the stale bytes remain on disk under keys no longer in the
// manifest; Get and the next Put both treat them as absent or
// overwrite them outright.
func (s *GdataStore) DeleteAll(ctx context.Context, namespace string) error {
	resCh := make(chan gdataResult, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.manifest = make(map[string]struct{})
		if err := s.saveManifestLocked(); err != nil {
			resCh <- gdataResult{err: fmt.Errorf("gdatastore: reset manifest: %w", err)}
			return
		}
		resCh <- gdataResult{}
	}()

	select {
	case res := <-resCh:
		return res.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
