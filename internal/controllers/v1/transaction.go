package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
//
// Transactions are append-only, there are no update or delete routes.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTransactions)
	r.GET("", GetTransactions)

	r.OPTIONS("/expenses", OptionsExpenses)
	r.POST("/expenses", CreateExpense)

	r.OPTIONS("/income", OptionsIncome)
	r.POST("/income", CreateIncome)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/expenses [options]
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/income [options]
func OptionsIncome(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Record expense
// @Description	Appends an expense transaction, debits the balance and updates the category aggregate atomically. Returns 409 when the balance is not sufficient.
// @Tags			Transactions
// @Produce		json
// @Success		201		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		404		{object}	TransactionResponse
// @Failure		409		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/transactions/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	transaction, err := ledger.RecordExpense(models.DB, editable.AccountID, editable.Category, editable.Amount, editable.Description)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		Record income
// @Description	Appends an income transaction and splits the amount between savings and balance atomically.
// @Tags			Transactions
// @Produce		json
// @Success		201		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		404		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/transactions/income [post]
func CreateIncome(c *gin.Context) {
	var editable IncomeEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	transaction, err := ledger.RecordIncome(models.DB, editable.AccountID, editable.Amount, editable.Source, editable.Description)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		List transactions
// @Description	Returns transactions ordered by recency, optionally filtered by account
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	TransactionListResponse
// @Failure		400		{object}	TransactionListResponse
// @Failure		500		{object}	TransactionListResponse
// @Param			account	query		string	false	"Filter by account ID"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	q := models.DB.Order("transactions.date DESC, transactions.created_at DESC, transactions.rowid DESC")

	if account := c.Query("account"); account != "" {
		id, err := uuid.Parse(account)
		if err != nil {
			e := httputil.ErrInvalidUUID.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
			return
		}

		q = q.Where(&models.Transaction{AccountID: id})
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}
