package jsonstore

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// storedUser is the on-disk user shape. It exists separately from
// domain.User because the domain type strips the password hash from JSON
// (`json:"-"`), while the file must keep it.
type storedUser struct {
	ID           string              `json:"id"`
	Username     string              `json:"username"`
	Email        string              `json:"email,omitempty"`
	PasswordHash string              `json:"password_hash"`
	Role         string              `json:"role"`
	Permissions  []domain.Permission `json:"permissions,omitempty"`
	IsActive     bool                `json:"is_active"`
	LastLoginAt  *time.Time          `json:"last_login_at,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// AuthRepository stores back-office users in users.json. The file is seeded
// with a single active admin account on first read.
type AuthRepository struct {
	users *Collection[storedUser]
}

// NewAuthRepository creates the user store. adminPassword is hashed into the
// seed admin account written when users.json does not exist yet.
func NewAuthRepository(opts Options, adminPassword string) *AuthRepository {
	seed := func() []storedUser {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			opts.Logger.Error().Err(err).Msg("failed to hash seed admin password")
			return nil
		}
		now := time.Now().UTC()
		return []storedUser{{
			ID:           "USR-0001",
			Username:     "admin",
			Email:        "admin@lamsaclean.example",
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}}
	}
	return &AuthRepository{users: NewCollection(opts, "users", seed)}
}

func (r *AuthRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.find(ctx, func(u storedUser) bool { return u.Username == username })
}

func (r *AuthRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.find(ctx, func(u storedUser) bool { return u.ID == id })
}

func (r *AuthRepository) find(ctx context.Context, match func(storedUser) bool) (*domain.User, error) {
	users, err := r.users.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if match(u) {
			return toDomainUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// RecordLogin stamps last_login_at on the user. This is the only mutation
// the auth path performs on the user file.
func (r *AuthRepository) RecordLogin(ctx context.Context, id string, at time.Time) error {
	found := false
	err := r.users.Mutate(ctx, func(users []storedUser) ([]storedUser, error) {
		for i := range users {
			if users[i].ID == id {
				t := at.UTC()
				users[i].LastLoginAt = &t
				found = true
				break
			}
		}
		if !found {
			return nil, domain.ErrUserNotFound
		}
		return users, nil
	})
	return err
}

func toDomainUser(u storedUser) *domain.User {
	return &domain.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Permissions:  u.Permissions,
		IsActive:     u.IsActive,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
