package utils

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const ENV_FILENAME = ".env"

// InitEnvironmentVariables loads the .env file when present. Hosted
// environments inject configuration directly and ship no .env file.
func InitEnvironmentVariables() error {
	if os.Getenv("GO_ENV") == "production" {
		log.Info("Running in production environment")
		return nil
	}

	if _, err := os.Stat(ENV_FILENAME); os.IsNotExist(err) {
		log.Debugf("no %s file found, using process environment", ENV_FILENAME)
		return nil
	}

	if err := godotenv.Load(ENV_FILENAME); err != nil {
		return err
	}

	return nil
}
