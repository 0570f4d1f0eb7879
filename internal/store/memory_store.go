package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"zen-tracker-go/internal/models"
)

// MemoryStore keeps everything in-process. It backs the handler tests and
// mirrors the gorm store's per-day upsert and rename/delete semantics.
type MemoryStore struct {
	mu          sync.RWMutex
	users       map[string]*models.User
	meditations map[string][]models.MeditationSession
	emotions    map[string]map[string]models.EmotionLog
	paths       map[string]map[string]models.EightfoldPathLog
	gratitude   map[string]map[string]models.GratitudeEntry
	nextID      uint
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[string]*models.User),
		meditations: make(map[string][]models.MeditationSession),
		emotions:    make(map[string]map[string]models.EmotionLog),
		paths:       make(map[string]map[string]models.EightfoldPathLog),
		gratitude:   make(map[string]map[string]models.GratitudeEntry),
	}
}

func memDayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func (m *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[u.Username]; exists {
		return ErrDuplicate
	}
	m.nextID++
	u.ID = m.nextID
	cpy := *u
	m.users[u.Username] = &cpy
	return nil
}

func (m *MemoryStore) GetUser(_ context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	cpy := *u
	return &cpy, nil
}

func (m *MemoryStore) mutateUser(username string, fn func(*models.User)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return ErrNotFound
	}
	fn(u)
	u.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) UpdateTheme(_ context.Context, username, theme string) error {
	return m.mutateUser(username, func(u *models.User) { u.Theme = theme })
}

func (m *MemoryStore) UpdateLanguage(_ context.Context, username, language string) error {
	return m.mutateUser(username, func(u *models.User) { u.Language = language })
}

func (m *MemoryStore) UpdatePassword(_ context.Context, username, passwordHash string) error {
	return m.mutateUser(username, func(u *models.User) { u.PasswordHash = passwordHash })
}

func (m *MemoryStore) UpdateStats(_ context.Context, username string, stats models.Stats) error {
	return m.mutateUser(username, func(u *models.User) { u.Stats = stats })
}

func (m *MemoryStore) SaveRecoveryCodes(_ context.Context, username string, codes models.RecoveryCodeList, generatedAt time.Time) error {
	return m.mutateUser(username, func(u *models.User) {
		u.RecoveryCodes = codes
		u.RecoveryCodesGeneratedAt = &generatedAt
	})
}

func (m *MemoryStore) ResetPassword(_ context.Context, username, passwordHash string, codes models.RecoveryCodeList) error {
	return m.mutateUser(username, func(u *models.User) {
		u.PasswordHash = passwordHash
		u.RecoveryCodes = codes
	})
}

func (m *MemoryStore) RenameUser(_ context.Context, oldUsername, newUsername string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[oldUsername]
	if !ok {
		return ErrNotFound
	}
	if _, taken := m.users[newUsername]; taken {
		return ErrDuplicate
	}
	delete(m.users, oldUsername)
	u.Username = newUsername
	m.users[newUsername] = u

	sessions := m.meditations[oldUsername]
	for i := range sessions {
		sessions[i].Username = newUsername
	}
	m.meditations[newUsername] = sessions
	delete(m.meditations, oldUsername)

	if logs, ok := m.emotions[oldUsername]; ok {
		for k, log := range logs {
			log.Username = newUsername
			logs[k] = log
		}
		m.emotions[newUsername] = logs
		delete(m.emotions, oldUsername)
	}
	if logs, ok := m.paths[oldUsername]; ok {
		for k, log := range logs {
			log.Username = newUsername
			logs[k] = log
		}
		m.paths[newUsername] = logs
		delete(m.paths, oldUsername)
	}
	if entries, ok := m.gratitude[oldUsername]; ok {
		for k, entry := range entries {
			entry.Username = newUsername
			entries[k] = entry
		}
		m.gratitude[newUsername] = entries
		delete(m.gratitude, oldUsername)
	}
	return nil
}

func (m *MemoryStore) DeleteUser(_ context.Context, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[username]; !ok {
		return ErrNotFound
	}
	delete(m.users, username)
	delete(m.meditations, username)
	delete(m.emotions, username)
	delete(m.paths, username)
	delete(m.gratitude, username)
	return nil
}

func (m *MemoryStore) CreateMeditation(_ context.Context, s *models.MeditationSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = m.nextID
	s.CreatedAt = time.Now()
	m.meditations[s.Username] = append(m.meditations[s.Username], *s)
	return nil
}

func (m *MemoryStore) ListMeditations(_ context.Context, username string, r Range) ([]models.MeditationSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.MeditationSession
	for _, s := range m.meditations[username] {
		if inRange(s.Date, r) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return capped(out, r.Limit), nil
}

func (m *MemoryStore) UpsertEmotionLog(_ context.Context, log *models.EmotionLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	logs, ok := m.emotions[log.Username]
	if !ok {
		logs = make(map[string]models.EmotionLog)
		m.emotions[log.Username] = logs
	}
	log.UpdatedAt = time.Now()
	logs[memDayKey(log.Date)] = *log
	return nil
}

func (m *MemoryStore) ListEmotionLogs(_ context.Context, username string, r Range) ([]models.EmotionLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.EmotionLog
	for _, log := range m.emotions[username] {
		if inRange(log.Date, r) {
			out = append(out, log)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return capped(out, r.Limit), nil
}

func (m *MemoryStore) UpsertPathLog(_ context.Context, log *models.EightfoldPathLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	logs, ok := m.paths[log.Username]
	if !ok {
		logs = make(map[string]models.EightfoldPathLog)
		m.paths[log.Username] = logs
	}
	log.UpdatedAt = time.Now()
	logs[memDayKey(log.Date)] = *log
	return nil
}

func (m *MemoryStore) ListPathLogs(_ context.Context, username string, r Range) ([]models.EightfoldPathLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.EightfoldPathLog
	for _, log := range m.paths[username] {
		if inRange(log.Date, r) {
			out = append(out, log)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return capped(out, r.Limit), nil
}

func (m *MemoryStore) UpsertGratitude(_ context.Context, entry *models.GratitudeEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, ok := m.gratitude[entry.Username]
	if !ok {
		entries = make(map[string]models.GratitudeEntry)
		m.gratitude[entry.Username] = entries
	}
	entry.UpdatedAt = time.Now()
	entries[memDayKey(entry.Date)] = *entry
	return nil
}

func (m *MemoryStore) ListGratitude(_ context.Context, username string, r Range) ([]models.GratitudeEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.GratitudeEntry
	for _, entry := range m.gratitude[username] {
		if inRange(entry.Date, r) {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return capped(out, r.Limit), nil
}

func inRange(t time.Time, r Range) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

func capped[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
