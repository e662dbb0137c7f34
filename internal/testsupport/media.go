package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"Vidtube/pkg/media"
)

var ErrInjected = errors.New("injected media failure")

// MediaStore records every call and can be told to fail.
type MediaStore struct {
	mu        sync.Mutex
	seq       int
	objects   map[string]bool
	Uploads   []media.UploadInput
	Destroyed []string

	FailUpload  bool
	FailDestroy bool
	// FailDestroyOf fails Destroy for this public id only.
	FailDestroyOf string
}

var _ media.Store = (*MediaStore)(nil)

func NewMediaStore() *MediaStore {
	return &MediaStore{objects: make(map[string]bool)}
}

func (m *MediaStore) Upload(_ context.Context, in media.UploadInput) (*media.Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailUpload {
		return nil, ErrInjected
	}
	if _, err := os.Stat(in.LocalPath); err != nil {
		return nil, err
	}
	m.seq++
	id := fmt.Sprintf("%s/obj-%d%s", in.Folder, m.seq, in.Ext)
	m.objects[id] = true
	m.Uploads = append(m.Uploads, in)
	return &media.Object{URL: "https://media.test/" + id, PublicID: id}, nil
}

func (m *MediaStore) Destroy(_ context.Context, publicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailDestroy || (m.FailDestroyOf != "" && publicID == m.FailDestroyOf) {
		return ErrInjected
	}
	delete(m.objects, publicID)
	m.Destroyed = append(m.Destroyed, publicID)
	return nil
}

// Live reports whether publicID was uploaded and not destroyed since.
func (m *MediaStore) Live(publicID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects[publicID]
}

func (m *MediaStore) Calls() (uploads, destroys int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Uploads), len(m.Destroyed)
}
