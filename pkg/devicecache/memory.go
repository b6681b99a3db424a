package devicecache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
)

type memoryEntry struct {
	key       string
	device    categorizr.Device
	expiresAt time.Time // zero means no expiry
}

// MemoryStore is a bounded, thread-safe LRU store. When full, the least
// recently used entry is evicted.
type MemoryStore struct {
	capacity int
	ttl      time.Duration
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
	now      func() time.Time
}

// NewMemoryStore creates a store holding at most capacity entries. Entries
// expire after ttl; a zero ttl keeps them until evicted.
func NewMemoryStore(capacity int, ttl time.Duration) (*MemoryStore, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &MemoryStore{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*list.Element, capacity),
		eviction: list.New(),
		now:      time.Now,
	}, nil
}

// Get returns the device stored under key and marks it as recently used.
func (s *MemoryStore) Get(_ context.Context, key string) (categorizr.Device, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[key]
	if !ok {
		return categorizr.Device{}, false, nil
	}
	entry := elem.Value.(*memoryEntry)
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		s.removeElement(elem)
		return categorizr.Device{}, false, nil
	}
	s.eviction.MoveToFront(elem)
	return entry.device, true, nil
}

// Set stores device under key, evicting the least recently used entry when
// the store is full.
func (s *MemoryStore) Set(_ context.Context, key string, device categorizr.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	if elem, ok := s.items[key]; ok {
		entry := elem.Value.(*memoryEntry)
		entry.device = device
		entry.expiresAt = expiresAt
		s.eviction.MoveToFront(elem)
		return nil
	}

	s.items[key] = s.eviction.PushFront(&memoryEntry{key: key, device: device, expiresAt: expiresAt})
	if s.eviction.Len() > s.capacity {
		if oldest := s.eviction.Back(); oldest != nil {
			s.removeElement(oldest)
		}
	}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eviction.Len()
}

// Must be called with lock held.
func (s *MemoryStore) removeElement(elem *list.Element) {
	s.eviction.Remove(elem)
	delete(s.items, elem.Value.(*memoryEntry).key)
}
