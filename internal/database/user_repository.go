package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/DonteRavae/livescript-server/internal/auth"
	"github.com/DonteRavae/livescript-server/internal/domain"
)

const uniqueViolation = "23505"

// UserRepo implements domain.AuthService backed by PostgreSQL. It owns
// password hashing and delegates token issuance to the auth.Manager.
type UserRepo struct {
	pool   *pgxpool.Pool
	tokens *auth.Manager
}

// NewUserRepo creates a UserRepo from the shared pool and token manager.
func NewUserRepo(pool *pgxpool.Pool, tokens *auth.Manager) *UserRepo {
	return &UserRepo{pool: pool, tokens: tokens}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and returns a fresh token pair. The refresh token
// is stored so Logout can invalidate it and Refresh can check it.
func (r *UserRepo) Register(ctx context.Context, creds domain.Credentials) (domain.TokenPair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var userID uuid.UUID
	err = r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, normalizeEmail(creds.Email), string(hash)).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.TokenPair{}, domain.ErrEmailTaken
		}
		return domain.TokenPair{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return r.issueTokens(ctx, userID)
}

// Login verifies credentials and returns a fresh token pair.
func (r *UserRepo) Login(ctx context.Context, creds domain.Credentials) (domain.TokenPair, error) {
	var (
		userID uuid.UUID
		hash   string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, password_hash
		FROM users
		WHERE email = $1
	`, normalizeEmail(creds.Email)).Scan(&userID, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.TokenPair{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)) != nil {
		return domain.TokenPair{}, domain.ErrInvalidCredentials
	}

	return r.issueTokens(ctx, userID)
}

// Logout clears the user's stored refresh token, invalidating future refreshes.
func (r *UserRepo) Logout(ctx context.Context, userID string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET refresh_token = NULL, updated_at = NOW()
		WHERE id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Refresh issues a new access token if the user still has a refresh token on
// record. A cleared token means the session was logged out.
func (r *UserRepo) Refresh(ctx context.Context, userID string) (string, error) {
	var stored *string
	err := r.pool.QueryRow(ctx, `
		SELECT refresh_token
		FROM users
		WHERE id = $1
	`, userID).Scan(&stored)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if stored == nil || *stored == "" {
		return "", domain.ErrSessionExpired
	}

	access, err := r.tokens.SignAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return access, nil
}

// GetByID loads a user's account record.
func (r *UserRepo) GetByID(ctx context.Context, userID string) (domain.User, error) {
	var user domain.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, created_at, updated_at
		FROM users
		WHERE id = $1
	`, userID).Scan(&user.ID, &user.Email, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

// issueTokens signs a token pair for userID and stores the refresh token.
func (r *UserRepo) issueTokens(ctx context.Context, userID uuid.UUID) (domain.TokenPair, error) {
	access, err := r.tokens.SignAccessToken(userID.String())
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := r.tokens.SignRefreshToken(userID.String())
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		UPDATE users
		SET refresh_token = $1, updated_at = NOW()
		WHERE id = $2
	`, refresh, userID)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
