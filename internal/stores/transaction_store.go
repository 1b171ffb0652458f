package stores

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"money-manager-server/internal/interfaces"
	"money-manager-server/internal/schemas"
)

// TransactionStore persists income or expense records. The same store
// implementation serves both tables; the table name is fixed at
// construction so no query ever interpolates caller input.
type TransactionStore struct {
	pool  interfaces.PgxPoolIface
	table string
}

func NewExpenseStore(pool interfaces.PgxPoolIface) *TransactionStore {
	return &TransactionStore{pool: pool, table: "expenses"}
}

func NewIncomeStore(pool interfaces.PgxPoolIface) *TransactionStore {
	return &TransactionStore{pool: pool, table: "incomes"}
}

var sortColumns = map[string]string{
	"date":   "t.date",
	"amount": "t.amount",
	"name":   "t.name",
}

func (s *TransactionStore) selectClause() string {
	return "SELECT t.transaction_id, t.profile_id, t.category_id, COALESCE(c.name, ''), t.name, t.icon, t.amount, t.date, t.created_at, t.updated_at " +
		"FROM " + s.table + " t LEFT JOIN categories c ON t.category_id = c.category_id "
}

func (s *TransactionStore) Create(ctx context.Context, tx *schemas.Transaction) error {
	queryString := "INSERT INTO " + s.table +
		" (transaction_id, profile_id, category_id, name, icon, amount, date, created_at, updated_at)" +
		" VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)"
	_, err := s.pool.Exec(ctx, queryString,
		tx.ID, tx.ProfileID, tx.CategoryID, tx.Name, tx.Icon, tx.Amount, tx.Date,
		tx.CreatedAt, tx.UpdatedAt)
	return err
}

// Delete removes a record owned by the profile; unknown or foreign IDs
// yield ErrNotFound.
func (s *TransactionStore) Delete(ctx context.Context, profileID, transactionID uuid.UUID) error {
	queryString := "DELETE FROM " + s.table + " WHERE transaction_id = $1 AND profile_id = $2"
	tag, err := s.pool.Exec(ctx, queryString, transactionID, profileID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByProfileBetween lists the profile's records with dates inside the
// inclusive range, newest first.
func (s *TransactionStore) FindByProfileBetween(ctx context.Context, profileID uuid.UUID, start, end time.Time) ([]schemas.Transaction, error) {
	queryString := s.selectClause() + "WHERE t.profile_id = $1 AND t.date BETWEEN $2 AND $3 ORDER BY t.date DESC"
	rows, err := s.pool.Query(ctx, queryString, profileID, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}
	return scanTransactions(rows)
}

// FindByProfileOnDate lists the profile's records dated exactly on the
// given day. The day is taken from the passed time's location; the digest
// job drives this query.
func (s *TransactionStore) FindByProfileOnDate(ctx context.Context, profileID uuid.UUID, date time.Time) ([]schemas.Transaction, error) {
	queryString := s.selectClause() + "WHERE t.profile_id = $1 AND t.date = $2 ORDER BY t.created_at"
	rows, err := s.pool.Query(ctx, queryString, profileID, date.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}
	return scanTransactions(rows)
}

// Filter lists the profile's records inside the date range whose name
// contains the keyword, ordered by the requested column.
func (s *TransactionStore) Filter(ctx context.Context, profileID uuid.UUID, start, end time.Time, keyword, sortField string, ascending bool) ([]schemas.Transaction, error) {
	column, ok := sortColumns[sortField]
	if !ok {
		column = sortColumns["date"]
	}
	direction := "ASC"
	if !ascending {
		direction = "DESC"
	}

	queryString := s.selectClause() +
		"WHERE t.profile_id = $1 AND t.date BETWEEN $2 AND $3 AND t.name ILIKE '%' || $4 || '%' " +
		"ORDER BY " + column + " " + direction
	rows, err := s.pool.Query(ctx, queryString, profileID, start.Format(time.DateOnly), end.Format(time.DateOnly), keyword)
	if err != nil {
		return nil, err
	}
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]schemas.Transaction, error) {
	defer rows.Close()

	transactions := make([]schemas.Transaction, 0)
	for rows.Next() {
		var tx schemas.Transaction
		if err := rows.Scan(&tx.ID, &tx.ProfileID, &tx.CategoryID, &tx.CategoryName, &tx.Name,
			&tx.Icon, &tx.Amount, &tx.Date, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
