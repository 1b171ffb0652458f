package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"money-manager-server/internal/middleware"
	"money-manager-server/internal/schemas"
	"money-manager-server/internal/stores"
	"money-manager-server/internal/utils"
)

type CategoryHdl interface {
	CreateCategory(c *gin.Context)
	ListCategories(c *gin.Context)
	UpdateCategory(c *gin.Context)
}

type CategoryHandler struct {
	CategoryStore *stores.CategoryStore
	ProfileStore  *stores.ProfileStore
}

func NewCategoryHandler(categoryStore *stores.CategoryStore, profileStore *stores.ProfileStore) CategoryHdl {
	return &CategoryHandler{
		CategoryStore: categoryStore,
		ProfileStore:  profileStore,
	}
}

// CreateCategory adds a category for the caller. Names are unique per
// profile and type.
func (handler *CategoryHandler) CreateCategory(c *gin.Context) {
	categoryRequest, err := middleware.SanitizedPayload[schemas.CategoryRequest](c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	profile, ok := currentProfile(c, handler.ProfileStore)
	if !ok {
		return
	}

	taken, err := handler.CategoryStore.ExistsByNameAndType(c, profile.ID, categoryRequest.Name, categoryRequest.Type)
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}
	if taken {
		utils.WriteAndLogError(c, schemas.CategoryNameTaken, http.StatusConflict, errCategoryTaken)
		return
	}

	now := time.Now()
	category := &schemas.Category{
		ID:        uuid.New(),
		ProfileID: profile.ID,
		Name:      categoryRequest.Name,
		Type:      categoryRequest.Type,
		Icon:      categoryRequest.Icon,
		CreatedAt: &now,
		UpdatedAt: &now,
	}

	if err := handler.CategoryStore.Create(c, category); err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewCategoryDTO(category), http.StatusCreated)
}

// ListCategories returns the caller's categories, optionally narrowed to a
// single type via the type query parameter.
func (handler *CategoryHandler) ListCategories(c *gin.Context) {
	categoryType := c.Query("type")
	if categoryType != "" && categoryType != "income" && categoryType != "expense" {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, errUnknownCategoryType)
		return
	}

	profile, ok := currentProfile(c, handler.ProfileStore)
	if !ok {
		return
	}

	categories, err := handler.CategoryStore.FindByProfile(c, profile.ID, categoryType)
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	response := make([]schemas.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		response = append(response, schemas.NewCategoryDTO(category))
	}
	utils.WriteAndLogResponse(c, response, http.StatusOK)
}

// UpdateCategory rewrites the name, type and icon of one of the caller's
// categories.
func (handler *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	categoryRequest, err := middleware.SanitizedPayload[schemas.CategoryRequest](c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	profile, ok := currentProfile(c, handler.ProfileStore)
	if !ok {
		return
	}

	category, err := handler.CategoryStore.FindByID(c, profile.ID, categoryID)
	if err != nil {
		if err == stores.ErrNotFound {
			utils.WriteAndLogError(c, schemas.NotFound, http.StatusNotFound, err)
			return
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	now := time.Now()
	category.Name = categoryRequest.Name
	category.Type = categoryRequest.Type
	category.Icon = categoryRequest.Icon
	category.UpdatedAt = &now

	if err := handler.CategoryStore.Update(c, category); err != nil {
		if err == stores.ErrNotFound {
			utils.WriteAndLogError(c, schemas.NotFound, http.StatusNotFound, err)
			return
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewCategoryDTO(category), http.StatusOK)
}
