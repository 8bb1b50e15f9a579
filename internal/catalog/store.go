package catalog

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// maxListResults caps every listing operation.
const maxListResults = 100

// ErrNotFound is returned when no document matches the given identifier
// or filter.
var ErrNotFound = errors.New("not found")

// Store persists the five catalog collections. List operations return at
// most maxListResults documents; Get operations return ErrNotFound when
// nothing matches. The Insert and Clear operations exist for the seeder.
type Store interface {
	ListGrades(ctx context.Context) ([]Grade, error)
	GetGrade(ctx context.Context, id string) (*Grade, error)
	ListTopicsByGrade(ctx context.Context, gradeID string) ([]Topic, error)
	GetTopic(ctx context.Context, id string) (*Topic, error)
	ListModulesByTopic(ctx context.Context, topicID string) ([]Module, error)
	GetModule(ctx context.Context, id string) (*Module, error)
	ListContentByModule(ctx context.Context, moduleID string) ([]Content, error)
	GetContentByType(ctx context.Context, moduleID, contentType string) (*Content, error)
	CreateUser(ctx context.Context, u User) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	CountGrades(ctx context.Context) (int64, error)

	ClearCatalog(ctx context.Context) error
	InsertGrades(ctx context.Context, grades []Grade) ([]string, error)
	InsertTopics(ctx context.Context, topics []Topic) ([]string, error)
	InsertModules(ctx context.Context, modules []Module) ([]string, error)
	InsertContent(ctx context.Context, content []Content) ([]string, error)
}

// MemoryStore is an in-memory Store implementation. Collections are kept
// as slices so listings are stable across identical insert sequences.
type MemoryStore struct {
	grades  []Grade
	topics  []Topic
	modules []Module
	content []Content
	users   []User
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory catalog store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ListGrades(ctx context.Context) ([]Grade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Grade{}
	for _, g := range s.grades {
		if g.IsActive {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GradeNumber < out[j].GradeNumber
	})
	return capList(out), nil
}

func (s *MemoryStore) GetGrade(ctx context.Context, id string) (*Grade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.grades {
		if g.ID == id {
			grade := g
			return &grade, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListTopicsByGrade(ctx context.Context, gradeID string) ([]Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Topic{}
	for _, t := range s.topics {
		if t.GradeID == gradeID && t.IsActive {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return capList(out), nil
}

func (s *MemoryStore) GetTopic(ctx context.Context, id string) (*Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.topics {
		if t.ID == id {
			topic := t
			return &topic, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListModulesByTopic(ctx context.Context, topicID string) ([]Module, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Module{}
	for _, m := range s.modules {
		if m.TopicID == topicID && m.IsActive {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return capList(out), nil
}

func (s *MemoryStore) GetModule(ctx context.Context, id string) (*Module, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.modules {
		if m.ID == id {
			mod := m
			return &mod, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListContentByModule(ctx context.Context, moduleID string) ([]Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Content{}
	for _, c := range s.content {
		if c.ModuleID == moduleID {
			out = append(out, c)
		}
	}
	return capList(out), nil
}

func (s *MemoryStore) GetContentByType(ctx context.Context, moduleID, contentType string) (*Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.content {
		if c.ModuleID == moduleID && c.ContentType == contentType {
			content := c
			return &content, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, u User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = NewID()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.Progress == nil {
		u.Progress = map[string]any{}
	}
	s.users = append(s.users, u)
	return &u, nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CountGrades(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.grades)), nil
}

// ClearCatalog removes all documents from the four content collections.
// User records are kept.
func (s *MemoryStore) ClearCatalog(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grades = nil
	s.topics = nil
	s.modules = nil
	s.content = nil
	return nil
}

func (s *MemoryStore) InsertGrades(ctx context.Context, grades []Grade) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(grades))
	for _, g := range grades {
		g.ID = NewID()
		stampGrade(&g)
		s.grades = append(s.grades, g)
		ids = append(ids, g.ID)
	}
	return ids, nil
}

func (s *MemoryStore) InsertTopics(ctx context.Context, topics []Topic) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(topics))
	for _, t := range topics {
		t.ID = NewID()
		stampTopic(&t)
		s.topics = append(s.topics, t)
		ids = append(ids, t.ID)
	}
	return ids, nil
}

func (s *MemoryStore) InsertModules(ctx context.Context, modules []Module) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(modules))
	for _, m := range modules {
		m.ID = NewID()
		stampModule(&m)
		s.modules = append(s.modules, m)
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (s *MemoryStore) InsertContent(ctx context.Context, content []Content) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(content))
	for _, c := range content {
		c.ID = NewID()
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now().UTC()
		}
		s.content = append(s.content, c)
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func stampGrade(g *Grade) {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
}

func stampTopic(t *Topic) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
}

func stampModule(m *Module) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
}

func capList[T any](list []T) []T {
	if len(list) > maxListResults {
		return list[:maxListResults]
	}
	return list
}
