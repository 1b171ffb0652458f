package stores

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"money-manager-server/internal/schemas"
)

func newPoolMock(t *testing.T) pgxmock.PgxPoolIface {
	poolMock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(poolMock.Close)
	return poolMock
}

func testProfileRow(id uuid.UUID, email string, isActive bool) *pgxmock.Rows {
	now := time.Now()
	token := uuid.New().String()
	return pgxmock.NewRows([]string{
		"profile_id", "full_name", "email", "password", "profile_image_url",
		"activation_token", "is_active", "created_at", "updated_at",
	}).AddRow(id, "Test User", email, "hash", "", &token, isActive, &now, &now)
}

func TestProfileStoreSaveNormalizesEmail(t *testing.T) {
	poolMock := newPoolMock(t)
	store := NewProfileStore(poolMock)

	now := time.Now()
	token := uuid.New().String()
	profile := &schemas.Profile{
		ID:              uuid.New(),
		FullName:        "Test User",
		Email:           "  Mixed@Example.COM ",
		Password:        "hash",
		ActivationToken: &token,
		CreatedAt:       &now,
		UpdatedAt:       &now,
	}

	poolMock.ExpectExec("INSERT INTO profiles").
		WithArgs(profile.ID, "Test User", "mixed@example.com", "hash", "",
			&token, false, &now, &now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.Save(context.Background(), profile))
	assert.Equal(t, "mixed@example.com", profile.Email)

	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestProfileStoreFindByEmailNormalizesLookup(t *testing.T) {
	poolMock := newPoolMock(t)
	store := NewProfileStore(poolMock)

	id := uuid.New()
	poolMock.ExpectQuery("FROM profiles WHERE email").
		WithArgs("test@example.com").
		WillReturnRows(testProfileRow(id, "test@example.com", true))

	profile, err := store.FindByEmail(context.Background(), "Test@Example.com")
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	assert.True(t, profile.IsActive)

	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestProfileStoreFindByEmailNotFound(t *testing.T) {
	poolMock := newPoolMock(t)
	store := NewProfileStore(poolMock)

	poolMock.ExpectQuery("FROM profiles WHERE email").
		WithArgs("unknown@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"profile_id"}))

	_, err := store.FindByEmail(context.Background(), "unknown@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileStoreFindByActivationTokenNotFound(t *testing.T) {
	poolMock := newPoolMock(t)
	store := NewProfileStore(poolMock)

	poolMock.ExpectQuery("FROM profiles WHERE activation_token").
		WithArgs("nonsense").
		WillReturnRows(pgxmock.NewRows([]string{"profile_id"}))

	_, err := store.FindByActivationToken(context.Background(), "nonsense")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileStoreEmailExists(t *testing.T) {
	poolMock := newPoolMock(t)
	store := NewProfileStore(poolMock)

	poolMock.ExpectQuery("SELECT EXISTS").
		WithArgs("test@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := store.EmailExists(context.Background(), "TEST@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProfileStoreFindAll(t *testing.T) {
	poolMock := newPoolMock(t)
	store := NewProfileStore(poolMock)

	now := time.Now()
	token := uuid.New().String()
	rows := pgxmock.NewRows([]string{
		"profile_id", "full_name", "email", "password", "profile_image_url",
		"activation_token", "is_active", "created_at", "updated_at",
	}).
		AddRow(uuid.New(), "User A", "a@example.com", "hash", "", &token, true, &now, &now).
		AddRow(uuid.New(), "User B", "b@example.com", "hash", "", &token, false, &now, &now)

	poolMock.ExpectQuery("FROM profiles ORDER BY created_at").WillReturnRows(rows)

	profiles, err := store.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "a@example.com", profiles[0].Email)
	assert.Equal(t, "b@example.com", profiles[1].Email)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "test@example.com", NormalizeEmail("  Test@EXAMPLE.com "))
	assert.Equal(t, "test@example.com", NormalizeEmail("test@example.com"))
}
