package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate the schema
	err = models.Connect(filepath.Join(dataDir, "ledger.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The category catalog is reference data, seed it if empty
	err = models.SeedCategories(models.DB)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Router()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
