package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"money-manager-server/internal/middleware"
	"money-manager-server/internal/schemas"
	"money-manager-server/internal/stores"
	"money-manager-server/internal/utils"
)

type FilterHdl interface {
	FilterTransactions(c *gin.Context)
}

type FilterHandler struct {
	ExpenseStore *stores.TransactionStore
	IncomeStore  *stores.TransactionStore
	ProfileStore *stores.ProfileStore
}

func NewFilterHandler(expenseStore, incomeStore *stores.TransactionStore, profileStore *stores.ProfileStore) FilterHdl {
	return &FilterHandler{
		ExpenseStore: expenseStore,
		IncomeStore:  incomeStore,
		ProfileStore: profileStore,
	}
}

// FilterTransactions searches one transaction table by date range and name
// keyword with a caller-chosen sort order. Omitted dates widen the range to
// everything up to today.
func (handler *FilterHandler) FilterTransactions(c *gin.Context) {
	filterRequest, err := middleware.SanitizedPayload[schemas.FilterRequest](c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	profile, ok := currentProfile(c, handler.ProfileStore)
	if !ok {
		return
	}

	start := time.Unix(0, 0).UTC()
	if filterRequest.StartDate != "" {
		start, _ = time.Parse(time.DateOnly, filterRequest.StartDate)
	}
	end := time.Now()
	if filterRequest.EndDate != "" {
		end, _ = time.Parse(time.DateOnly, filterRequest.EndDate)
	}

	sortField := filterRequest.SortField
	if sortField == "" {
		sortField = "date"
	}
	ascending := filterRequest.SortOrder != "desc"

	store := handler.ExpenseStore
	if filterRequest.Type == "income" {
		store = handler.IncomeStore
	}

	transactions, err := store.Filter(c, profile.ID, start, end, filterRequest.Keyword, sortField, ascending)
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, toTransactionDTOs(transactions), http.StatusOK)
}
