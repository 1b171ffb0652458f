package stores

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"money-manager-server/internal/interfaces"
	"money-manager-server/internal/schemas"
)

// CategoryStore persists per-profile income and expense categories.
type CategoryStore struct {
	pool interfaces.PgxPoolIface
}

func NewCategoryStore(pool interfaces.PgxPoolIface) *CategoryStore {
	return &CategoryStore{pool: pool}
}

const categoryColumns = "category_id, profile_id, name, type, icon, created_at, updated_at"

func (s *CategoryStore) Create(ctx context.Context, category *schemas.Category) error {
	queryString := "INSERT INTO categories (" + categoryColumns + ") VALUES ($1, $2, $3, $4, $5, $6, $7)"
	_, err := s.pool.Exec(ctx, queryString,
		category.ID, category.ProfileID, category.Name, category.Type, category.Icon,
		category.CreatedAt, category.UpdatedAt)
	return err
}

// Update rewrites name, icon and type of a category owned by the profile.
func (s *CategoryStore) Update(ctx context.Context, category *schemas.Category) error {
	queryString := "UPDATE categories SET name = $1, type = $2, icon = $3, updated_at = $4 WHERE category_id = $5 AND profile_id = $6"
	tag, err := s.pool.Exec(ctx, queryString,
		category.Name, category.Type, category.Icon, category.UpdatedAt,
		category.ID, category.ProfileID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistsByNameAndType reports whether the profile already has a category
// with the given name and type.
func (s *CategoryStore) ExistsByNameAndType(ctx context.Context, profileID uuid.UUID, name, categoryType string) (bool, error) {
	queryString := "SELECT EXISTS(SELECT 1 FROM categories WHERE profile_id = $1 AND name = $2 AND type = $3)"
	var exists bool
	if err := s.pool.QueryRow(ctx, queryString, profileID, name, categoryType).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *CategoryStore) FindByID(ctx context.Context, profileID, categoryID uuid.UUID) (*schemas.Category, error) {
	queryString := "SELECT " + categoryColumns + " FROM categories WHERE category_id = $1 AND profile_id = $2"
	var category schemas.Category
	err := s.pool.QueryRow(ctx, queryString, categoryID, profileID).Scan(
		&category.ID, &category.ProfileID, &category.Name, &category.Type, &category.Icon,
		&category.CreatedAt, &category.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByProfile lists the profile's categories, optionally restricted to a type.
func (s *CategoryStore) FindByProfile(ctx context.Context, profileID uuid.UUID, categoryType string) ([]schemas.Category, error) {
	queryString := "SELECT " + categoryColumns + " FROM categories WHERE profile_id = $1"
	args := []interface{}{profileID}
	if categoryType != "" {
		queryString += " AND type = $2"
		args = append(args, categoryType)
	}
	queryString += " ORDER BY created_at"

	rows, err := s.pool.Query(ctx, queryString, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]schemas.Category, 0)
	for rows.Next() {
		var category schemas.Category
		if err := rows.Scan(&category.ID, &category.ProfileID, &category.Name, &category.Type,
			&category.Icon, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}
