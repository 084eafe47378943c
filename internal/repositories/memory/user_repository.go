package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
)

// UserRepository keeps users in memory and writes the whole list through to
// the key-value store under KeyUsers after every change.
type UserRepository struct {
	rows *table[domain.User]
	kv   portsrepo.KeyValueStore
	// persistMu serialises snapshot writes so an older list never overwrites a newer one.
	persistMu sync.Mutex
}

// NewUserRepository loads any previously stored users from kv.
// An unset key yields an empty repository.
func NewUserRepository(ctx context.Context, kv portsrepo.KeyValueStore) (*UserRepository, error) {
	r := &UserRepository{
		rows: newTable(func(u domain.User) string { return u.ID }),
		kv:   kv,
	}
	raw, err := kv.Get(ctx, portsrepo.KeyUsers)
	if errors.Is(err, apperrors.ErrNotFound) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load stored users: %w", err)
	}
	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode stored users: %w", err)
	}
	r.rows.reset(users)
	return r, nil
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	u, ok := r.rows.get(userID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) ListUsers(_ context.Context) ([]domain.User, error) {
	return r.rows.all(), nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if err := r.rows.insert(user); err != nil {
		return err
	}
	return r.persist(ctx)
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if !r.rows.replace(user) {
		return nil
	}
	return r.persist(ctx)
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID string) error {
	if !r.rows.remove(userID) {
		return nil
	}
	return r.persist(ctx)
}

func (r *UserRepository) persist(ctx context.Context) error {
	r.persistMu.Lock()
	defer r.persistMu.Unlock()
	raw, err := json.Marshal(r.rows.all())
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.kv.Put(ctx, portsrepo.KeyUsers, raw); err != nil {
		return fmt.Errorf("failed to store users: %w", err)
	}
	return nil
}
