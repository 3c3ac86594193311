package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccounts)
		r.GET("", GetAccounts)
		r.POST("", CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", OptionsAccountDetail)
		r.GET("/:id", GetAccount)
		r.DELETE("/:id", DeleteAccount)
		r.GET("/:id/dashboard", GetDashboard)
		r.OPTIONS("/:id/dashboard", OptionsDashboard)
		r.POST("/:id/reconcile", ReconcileAccount)
		r.OPTIONS("/:id/reconcile", OptionsReconcile)
	}
}

// parseAccountID binds the account ID from the URI. On failure it has already
// written the error response.
func parseAccountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(httputil.ErrInvalidUUID))
		return uuid.Nil, false
	}

	return id, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func OptionsAccounts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	id, ok := parseAccountID(c)
	if !ok {
		return
	}

	err := models.DB.First(&models.Account{}, "id = ?", id).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create account
// @Description	Provisions a new account from its monthly allowance. The savings carve-out seeds the savings, the remainder seeds the balance, and one zero aggregate is created per category.
// @Tags			Accounts
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		409		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func CreateAccount(c *gin.Context) {
	var editable AccountEditable

	// Bind data and return error if not possible
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AccountResponse{Error: &e})
		return
	}

	account, err := ledger.CreateAccount(models.DB, editable.Name, editable.Contact, editable.Note, editable.MonthlyAllowance)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{Data: &account})
}

// @Summary		List accounts
// @Description	Returns a list of all accounts
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Failure		500	{object}	AccountListResponse
// @Router			/v1/accounts [get]
func GetAccounts(c *gin.Context) {
	var accounts []models.Account

	err := models.DB.Order("accounts.name ASC").Find(&accounts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: accounts})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	id, ok := parseAccountID(c)
	if !ok {
		return
	}

	var account models.Account
	err := models.DB.First(&account, "id = ?", id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: &account})
}

// @Summary		Delete account
// @Description	Deletes an account with all its transactions and aggregates
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	id, ok := parseAccountID(c)
	if !ok {
		return
	}

	err := ledger.DeleteAccount(models.DB, id)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Param			id	path	string	true	"ID of the account"
// @Router			/v1/accounts/{id}/reconcile [options]
func OptionsReconcile(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Reconcile aggregates
// @Description	Rebuilds the category aggregates of the account from its transaction log
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/accounts/{id}/reconcile [post]
func ReconcileAccount(c *gin.Context) {
	id, ok := parseAccountID(c)
	if !ok {
		return
	}

	err := ledger.RecomputeAggregates(models.DB, id)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.Status(http.StatusNoContent)
}
