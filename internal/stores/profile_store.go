package stores

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"money-manager-server/internal/interfaces"
	"money-manager-server/internal/schemas"
)

// ProfileStore persists profile records. Emails are normalized to
// lowercase before every write and lookup.
type ProfileStore struct {
	pool interfaces.PgxPoolIface
}

func NewProfileStore(pool interfaces.PgxPoolIface) *ProfileStore {
	return &ProfileStore{pool: pool}
}

const profileColumns = "profile_id, full_name, email, password, profile_image_url, activation_token, is_active, created_at, updated_at"

// Save inserts the profile or updates it when the ID already exists.
func (s *ProfileStore) Save(ctx context.Context, profile *schemas.Profile) error {
	profile.Email = NormalizeEmail(profile.Email)

	queryString := `INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (profile_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			password = EXCLUDED.password,
			profile_image_url = EXCLUDED.profile_image_url,
			activation_token = EXCLUDED.activation_token,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at`
	_, err := s.pool.Exec(ctx, queryString,
		profile.ID, profile.FullName, profile.Email, profile.Password, profile.ProfileImageURL,
		profile.ActivationToken, profile.IsActive, profile.CreatedAt, profile.UpdatedAt)
	return err
}

// FindByEmail returns the profile stored under the given email, exact match
// after lowercase normalization.
func (s *ProfileStore) FindByEmail(ctx context.Context, email string) (*schemas.Profile, error) {
	queryString := "SELECT " + profileColumns + " FROM profiles WHERE email = $1"
	return s.scanProfile(s.pool.QueryRow(ctx, queryString, NormalizeEmail(email)))
}

// FindByActivationToken returns the profile holding the given activation
// token. Tokens are looked up by value; they are never cleared after use.
func (s *ProfileStore) FindByActivationToken(ctx context.Context, token string) (*schemas.Profile, error) {
	queryString := "SELECT " + profileColumns + " FROM profiles WHERE activation_token = $1"
	return s.scanProfile(s.pool.QueryRow(ctx, queryString, token))
}

// EmailExists reports whether a profile is already registered under the email.
func (s *ProfileStore) EmailExists(ctx context.Context, email string) (bool, error) {
	queryString := "SELECT EXISTS(SELECT 1 FROM profiles WHERE email = $1)"
	var exists bool
	if err := s.pool.QueryRow(ctx, queryString, NormalizeEmail(email)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// FindAll returns every registered profile, oldest first.
func (s *ProfileStore) FindAll(ctx context.Context) ([]schemas.Profile, error) {
	queryString := "SELECT " + profileColumns + " FROM profiles ORDER BY created_at"
	rows, err := s.pool.Query(ctx, queryString)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]schemas.Profile, 0)
	for rows.Next() {
		var profile schemas.Profile
		if err := rows.Scan(&profile.ID, &profile.FullName, &profile.Email, &profile.Password,
			&profile.ProfileImageURL, &profile.ActivationToken, &profile.IsActive,
			&profile.CreatedAt, &profile.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

func (s *ProfileStore) scanProfile(row pgx.Row) (*schemas.Profile, error) {
	var profile schemas.Profile
	err := row.Scan(&profile.ID, &profile.FullName, &profile.Email, &profile.Password,
		&profile.ProfileImageURL, &profile.ActivationToken, &profile.IsActive,
		&profile.CreatedAt, &profile.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// NormalizeEmail lowercases and trims an email so lookups are consistent.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
