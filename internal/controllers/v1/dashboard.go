package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

type DashboardResponse struct {
	Data  *ledger.Dashboard `json:"data"`                                                          // The dashboard snapshot
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Param			id	path	string	true	"ID of the account"
// @Router			/v1/accounts/{id}/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns a consistent snapshot of the account, its category aggregates with display metadata and the most recent transactions
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		400	{object}	DashboardResponse
// @Failure		404	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/accounts/{id}/dashboard [get]
func GetDashboard(c *gin.Context) {
	id, ok := parseAccountID(c)
	if !ok {
		return
	}

	dashboard, err := ledger.GetDashboard(models.DB, id)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &dashboard})
}
