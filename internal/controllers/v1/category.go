package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for the category catalog with
// the RouterGroup that is passed.
//
// The catalog is read-only, it is seeded at startup.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`                                                                // List of Categories
	Error *string           `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List categories
// @Description	Returns the category catalog ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := models.Categories(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}
