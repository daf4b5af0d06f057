package questlogix

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// MockNakamaModule implements the subset of runtime.NakamaModule the systems
// in this package touch. Storage is an in-memory map with optimistic
// concurrency versions so version conflict paths can be exercised, and sent
// events are captured for inspection. Calls to anything unimplemented panic
// through the embedded interface, which keeps accidental use visible.
type MockNakamaModule struct {
	runtime.NakamaModule

	mu        sync.Mutex
	storage   map[string]*mockStorageObject
	events    []*api.Event
	failRead  bool
	failWrite bool
	failEvent bool
}

type mockStorageObject struct {
	value   string
	version int
}

// NewMockNakama returns a new instance of MockNakamaModule for use in tests.
func NewMockNakama() *MockNakamaModule {
	return &MockNakamaModule{
		storage: make(map[string]*mockStorageObject),
	}
}

func mockStorageKey(userID, collection, key string) string {
	return userID + ":" + collection + ":" + key
}

func (m *MockNakamaModule) StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failRead {
		return nil, errors.New("mock read error")
	}

	var result []*api.StorageObject
	for _, r := range reads {
		obj, ok := m.storage[mockStorageKey(r.UserID, r.Collection, r.Key)]
		if !ok {
			continue
		}
		result = append(result, &api.StorageObject{
			Collection: r.Collection,
			Key:        r.Key,
			UserId:     r.UserID,
			Value:      obj.value,
			Version:    strconv.Itoa(obj.version),
		})
	}
	return result, nil
}

func (m *MockNakamaModule) StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrite {
		return nil, errors.New("mock write error")
	}

	var acks []*api.StorageObjectAck
	for _, w := range writes {
		key := mockStorageKey(w.UserID, w.Collection, w.Key)
		existing := m.storage[key]

		switch {
		case w.Version == "*":
			if existing != nil {
				return nil, errors.New("mock version conflict")
			}
		case w.Version != "":
			if existing == nil || strconv.Itoa(existing.version) != w.Version {
				return nil, errors.New("mock version conflict")
			}
		}

		next := 1
		if existing != nil {
			next = existing.version + 1
		}
		m.storage[key] = &mockStorageObject{value: w.Value, version: next}
		acks = append(acks, &api.StorageObjectAck{
			Collection: w.Collection,
			Key:        w.Key,
			UserId:     w.UserID,
			Version:    strconv.Itoa(next),
		})
	}
	return acks, nil
}

func (m *MockNakamaModule) Event(ctx context.Context, evt *api.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failEvent {
		return errors.New("mock event error")
	}
	m.events = append(m.events, evt)
	return nil
}

// ReadFile opens the path directly so tests can stage config files in a
// temporary directory.
func (m *MockNakamaModule) ReadFile(path string) (*os.File, error) {
	return os.Open(path)
}

// Events returns a copy of the events captured so far.
func (m *MockNakamaModule) Events() []*api.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*api.Event, len(m.events))
	copy(out, m.events)
	return out
}

// putStorage seeds a storage object without going through StorageWrite.
func (m *MockNakamaModule) putStorage(userID, collection, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := 1
	if existing := m.storage[mockStorageKey(userID, collection, key)]; existing != nil {
		next = existing.version + 1
	}
	m.storage[mockStorageKey(userID, collection, key)] = &mockStorageObject{value: value, version: next}
}

// getStorage returns the raw stored value, if any.
func (m *MockNakamaModule) getStorage(userID, collection, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, ok := m.storage[mockStorageKey(userID, collection, key)]
	if !ok {
		return "", false
	}
	return obj.value, true
}
