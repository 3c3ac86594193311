package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is overwritten at build time with ldflags.
var version = "0.0.0"

// Router controls the routes for the API.
func Router() (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	if err := registerPrometheusMetrics(); err != nil {
		return nil, err
	}
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.Register(r, "debug/pprof")
	}

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	// API v1 setup
	group := r.Group("/v1")
	{
		group.GET("", GetV1)
		group.OPTIONS("", OptionsV1)
	}

	v1.RegisterAccountRoutes(group.Group("/accounts"))
	v1.RegisterTransactionRoutes(group.Group("/transactions"))
	v1.RegisterCategoryRoutes(group.Group("/categories"))

	log.Info().Str("version", version).Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Version string `json:"version" example:"https://example.com/version"`
	V1      string `json:"v1" example:"https://example.com/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Version: "/version",
			V1:      "/v1",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	c.Header("allow", "GET")
	c.Status(http.StatusNoContent)
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	c.Header("allow", "GET")
	c.Status(http.StatusNoContent)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Accounts     string `json:"accounts" example:"https://example.com/v1/accounts"`
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions"`
	Categories   string `json:"categories" example:"https://example.com/v1/categories"`
}

// @Summary		v1 API root
// @Description	Entrypoint for the v1 API, listing all endpoints
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Accounts:     "/v1/accounts",
			Transactions: "/v1/transactions",
			Categories:   "/v1/categories",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	c.Header("allow", "GET")
	c.Status(http.StatusNoContent)
}
