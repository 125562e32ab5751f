// Package memory implementa los puertos de persistencia en memoria.
// Lo usan las pruebas de casos de uso y de HTTP; respeta los mismos contratos que postgres.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
)

// Store agrupa los repositorios en memoria.
type Store struct {
	mu         sync.RWMutex
	users      map[string]entity.User
	profiles   map[string]entity.Profile
	businesses map[string]entity.Business
	kv         map[kvKey]entity.KVEntry
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]entity.User),
		profiles:   make(map[string]entity.Profile),
		businesses: make(map[string]entity.Business),
		kv:         make(map[kvKey]entity.KVEntry),
	}
}

// Users repositorio de credenciales.
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

// Profiles repositorio de perfiles.
func (s *Store) Profiles() repository.ProfileRepository { return profileRepo{s} }

// Businesses repositorio de negocios.
func (s *Store) Businesses() repository.BusinessRepository { return businessRepo{s} }

// KV almacén clave-valor.
func (s *Store) KV() repository.KVRepository { return kvRepo{s} }

// RunAccount ejecuta fn sobre una copia y la publica solo si fn no falla.
// Las transacciones se serializan con el lock del almacén.
func (s *Store) RunAccount(_ context.Context, fn func(users repository.UserRepository, profiles repository.ProfileRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &Store{
		users:    make(map[string]entity.User, len(s.users)),
		profiles: make(map[string]entity.Profile, len(s.profiles)),
	}
	for k, v := range s.users {
		tx.users[k] = v
	}
	for k, v := range s.profiles {
		tx.profiles[k] = v
	}
	if err := fn(tx.Users(), tx.Profiles()); err != nil {
		return err
	}
	s.users = tx.users
	s.profiles = tx.profiles
	return nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.UserID]; ok {
		return domain.ErrUserIDTaken
	}
	r.s.users[u.UserID] = *u
	return nil
}

func (r userRepo) GetByUserID(_ context.Context, userID string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r userRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	r.s.users[u.UserID] = *u
	return nil
}

type profileRepo struct{ s *Store }

func (r profileRepo) Upsert(_ context.Context, p *entity.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.profiles[p.UserID] = *p
	return nil
}

func (r profileRepo) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r profileRepo) GetByUserIDs(_ context.Context, userIDs []string) (map[string]*entity.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]*entity.Profile, len(userIDs))
	for _, id := range userIDs {
		if p, ok := r.s.profiles[id]; ok {
			p := p
			out[id] = &p
		}
	}
	return out, nil
}

func (r profileRepo) SetLanguage(_ context.Context, userID, language string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[userID]
	now := time.Now()
	if !ok {
		p = entity.Profile{UserID: userID, CreatedAt: now}
	}
	p.Language = language
	p.UpdatedAt = now
	r.s.profiles[userID] = p
	return nil
}

func (r profileRepo) SetOnboardingCompleted(_ context.Context, userID string, completed bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return domain.ErrNotFound
	}
	p.OnboardingCompleted = completed
	p.UpdatedAt = time.Now()
	r.s.profiles[userID] = p
	return nil
}

type businessRepo struct{ s *Store }

func (r businessRepo) Create(_ context.Context, b *entity.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.businesses[b.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.businesses[b.ID] = *b
	return nil
}

func (r businessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.businesses[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r businessRepo) Update(_ context.Context, b *entity.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.businesses[b.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.businesses[b.ID] = *b
	return nil
}

func (r businessRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.businesses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.businesses, id)
	return nil
}

func (r businessRepo) matching(f entity.BusinessFilter) []*entity.Business {
	var out []*entity.Business
	for _, b := range r.s.businesses {
		if f.OwnerID != "" && b.OwnerID != f.OwnerID {
			continue
		}
		if f.Category != "" && b.Category != f.Category {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.State != "" && b.Location.State != f.State {
			continue
		}
		if f.District != "" && b.Location.District != f.District {
			continue
		}
		b := b
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r businessRepo) List(_ context.Context, f entity.BusinessFilter) ([]*entity.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := r.matching(f)
	if f.Offset > 0 {
		if f.Offset >= len(all) {
			return nil, nil
		}
		all = all[f.Offset:]
	}
	if f.Limit > 0 && len(all) > f.Limit {
		all = all[:f.Limit]
	}
	return all, nil
}

func (r businessRepo) Count(_ context.Context, f entity.BusinessFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.matching(f)), nil
}

func (r businessRepo) CountBy(_ context.Context, f entity.BusinessFilter, dimension string) ([]entity.GroupCount, error) {
	var key func(entity.Business) string
	switch dimension {
	case entity.StatsByCategory:
		key = func(b entity.Business) string { return b.Category }
	case entity.StatsByStatus:
		key = func(b entity.Business) string { return b.Status }
	case entity.StatsByDistrict:
		key = func(b entity.Business) string { return b.Location.District }
	default:
		return nil, fmt.Errorf("dimensión de estadísticas desconocida: %q", dimension)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[string]int)
	for _, b := range r.matching(f) {
		counts[key(*b)]++
	}
	out := make([]entity.GroupCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, entity.GroupCount{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

func (r businessRepo) InvestmentTotals(_ context.Context, f entity.BusinessFilter) (entity.InvestmentTotals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var t entity.InvestmentTotals
	for _, b := range r.matching(f) {
		t.Businesses++
		t.Required = t.Required.Add(b.Investment.Required)
		t.Raised = t.Raised.Add(b.Investment.Raised)
		t.Employees += b.Employees
	}
	return t, nil
}

type kvKey struct{ owner, key string }

type kvRepo struct{ s *Store }

func (r kvRepo) Get(_ context.Context, ownerID, key string) (*entity.KVEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.kv[kvKey{ownerID, key}]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r kvRepo) Set(_ context.Context, ownerID, key string, value json.RawMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v := make(json.RawMessage, len(value))
	copy(v, value)
	r.s.kv[kvKey{ownerID, key}] = entity.KVEntry{OwnerID: ownerID, Key: key, Value: v, UpdatedAt: time.Now()}
	return nil
}

func (r kvRepo) Delete(_ context.Context, ownerID, key string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.kv, kvKey{ownerID, key})
	return nil
}
