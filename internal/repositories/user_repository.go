package repositories

import (
	"context"
	"sync"

	"tripgenius/internal/models/db_models"
)

// UserRepository is the store contract for user records. Every method
// is a single atomic step over the collection; there are no
// transactions and concurrent writers are last write wins.
type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) (*db_models.User, error)
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	Update(ctx context.Context, id string, apply func(*db_models.User)) (*db_models.User, error)
	AdjustTripCount(ctx context.Context, id string, delta int) (*db_models.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	All(ctx context.Context) ([]*db_models.User, error)
}

type userRepository struct {
	mu    sync.RWMutex
	users map[string]db_models.User
}

func NewUserRepository() UserRepository {
	return &userRepository{
		users: make(map[string]db_models.User),
	}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) (*db_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Stamp()
	r.users[user.ID] = *user

	out := *user
	return &out, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Exact, case-sensitive match on the secondary key.
	for _, user := range r.users {
		if user.Email == email {
			out := user
			return &out, nil
		}
	}
	return nil, nil
}

// Update runs apply against the stored record under the write lock, so
// a read-modify-write through here cannot lose a concurrent update.
func (r *userRepository) Update(ctx context.Context, id string, apply func(*db_models.User)) (*db_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	apply(&user)
	user.Touch()
	r.users[id] = user

	out := user
	return &out, nil
}

func (r *userRepository) AdjustTripCount(ctx context.Context, id string, delta int) (*db_models.User, error) {
	return r.Update(ctx, id, func(user *db_models.User) {
		user.TripCount += delta
		if user.TripCount < 0 {
			user.TripCount = 0
		}
	})
}

func (r *userRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *userRepository) All(ctx context.Context) ([]*db_models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*db_models.User, 0, len(r.users))
	for _, user := range r.users {
		u := user
		out = append(out, &u)
	}
	return out, nil
}
