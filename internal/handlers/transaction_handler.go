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

type TransactionHdl interface {
	CreateTransaction(c *gin.Context)
	ListCurrentMonth(c *gin.Context)
	DeleteTransaction(c *gin.Context)
}

// TransactionHandler serves either the expense or the income endpoints,
// depending on the store it was built with.
type TransactionHandler struct {
	Store         *stores.TransactionStore
	CategoryStore *stores.CategoryStore
	ProfileStore  *stores.ProfileStore
}

func NewTransactionHandler(store *stores.TransactionStore, categoryStore *stores.CategoryStore, profileStore *stores.ProfileStore) TransactionHdl {
	return &TransactionHandler{
		Store:         store,
		CategoryStore: categoryStore,
		ProfileStore:  profileStore,
	}
}

// CreateTransaction records an income or expense for the caller. A category
// reference is optional but must point at one of the caller's categories.
func (handler *TransactionHandler) CreateTransaction(c *gin.Context) {
	transactionRequest, err := middleware.SanitizedPayload[schemas.TransactionRequest](c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	profile, ok := currentProfile(c, handler.ProfileStore)
	if !ok {
		return
	}

	date, err := time.Parse(time.DateOnly, transactionRequest.Date)
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	var categoryID *uuid.UUID
	var categoryName string
	if transactionRequest.CategoryID != "" {
		parsed, err := uuid.Parse(transactionRequest.CategoryID)
		if err != nil {
			utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
			return
		}
		category, err := handler.CategoryStore.FindByID(c, profile.ID, parsed)
		if err != nil {
			if err == stores.ErrNotFound {
				utils.WriteAndLogError(c, schemas.NotFound, http.StatusNotFound, err)
				return
			}
			utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
			return
		}
		categoryID = &category.ID
		categoryName = category.Name
	}

	now := time.Now()
	transaction := &schemas.Transaction{
		ID:           uuid.New(),
		ProfileID:    profile.ID,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Name:         transactionRequest.Name,
		Icon:         transactionRequest.Icon,
		Amount:       transactionRequest.Amount,
		Date:         date,
		CreatedAt:    &now,
		UpdatedAt:    &now,
	}

	if err := handler.Store.Create(c, transaction); err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewTransactionDTO(transaction), http.StatusCreated)
}

// ListCurrentMonth returns the caller's transactions of the running
// calendar month, newest first.
func (handler *TransactionHandler) ListCurrentMonth(c *gin.Context) {
	profile, ok := currentProfile(c, handler.ProfileStore)
	if !ok {
		return
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)

	transactions, err := handler.Store.FindByProfileBetween(c, profile.ID, start, end)
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, toTransactionDTOs(transactions), http.StatusOK)
}

// DeleteTransaction removes one of the caller's transactions.
func (handler *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	profile, ok := currentProfile(c, handler.ProfileStore)
	if !ok {
		return
	}

	if err := handler.Store.Delete(c, profile.ID, transactionID); err != nil {
		if err == stores.ErrNotFound {
			utils.WriteAndLogError(c, schemas.NotFound, http.StatusNotFound, err)
			return
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toTransactionDTOs(transactions []schemas.Transaction) []schemas.TransactionDTO {
	response := make([]schemas.TransactionDTO, 0, len(transactions))
	for i := range transactions {
		response = append(response, schemas.NewTransactionDTO(&transactions[i]))
	}
	return response
}
