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

func TestCategoryStoreExistsByNameAndType(t *testing.T) {
	poolMock := newPoolMock(t)
	store := NewCategoryStore(poolMock)

	profileID := uuid.New()
	poolMock.ExpectQuery("SELECT EXISTS").
		WithArgs(profileID, "Food", "expense").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := store.ExistsByNameAndType(context.Background(), profileID, "Food", "expense")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCategoryStoreUpdateNotOwned(t *testing.T) {
	poolMock := newPoolMock(t)
	store := NewCategoryStore(poolMock)

	now := time.Now()
	category := &schemas.Category{
		ID:        uuid.New(),
		ProfileID: uuid.New(),
		Name:      "Food",
		Type:      "expense",
		UpdatedAt: &now,
	}

	poolMock.ExpectExec("UPDATE categories").
		WithArgs("Food", "expense", "", &now, category.ID, category.ProfileID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, store.Update(context.Background(), category), ErrNotFound)
}

func TestCategoryStoreFindByProfileWithTypeFilter(t *testing.T) {
	poolMock := newPoolMock(t)
	store := NewCategoryStore(poolMock)

	profileID := uuid.New()
	now := time.Now()
	rows := pgxmock.NewRows([]string{
		"category_id", "profile_id", "name", "type", "icon", "created_at", "updated_at",
	}).AddRow(uuid.New(), profileID, "Salary", "income", "", &now, &now)

	poolMock.ExpectQuery("AND type =").
		WithArgs(profileID, "income").
		WillReturnRows(rows)

	categories, err := store.FindByProfile(context.Background(), profileID, "income")
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Salary", categories[0].Name)
}

func TestCategoryStoreFindByIDNotFound(t *testing.T) {
	poolMock := newPoolMock(t)
	store := NewCategoryStore(poolMock)

	poolMock.ExpectQuery("FROM categories WHERE category_id").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"category_id"}))

	_, err := store.FindByID(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
