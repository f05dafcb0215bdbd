package main

import (
	"flag"
	"fmt"
	"os"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/models"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
	"github.com/joho/godotenv"
)

// issue-token mints a service token for machine clients, for example
// the nightly statement export job. Lifetime follows TOKEN_HOUR_LIFESPAN.
func main() {
	_ = godotenv.Load()

	username := flag.String("username", "", "username the token acts as")
	flag.Parse()

	logger := config.GetLogger()

	if *username == "" {
		logger.Fatal("username is required")
	}

	config.ConnectDatabaseWithRetry()

	db := config.GetDB()
	var user models.User
	if err := db.Where("username = ?", *username).Take(&user).Error; err != nil {
		logger.Fatal("user not found: " + *username)
	}
	if user.IsActive != nil && !*user.IsActive {
		logger.Fatal("user is disabled: " + *username)
	}

	token, err := utils.JwtGenerate(user.ID, string(user.Role))
	if err != nil {
		logger.Fatal("could not generate token: " + err.Error())
	}

	fmt.Fprintln(os.Stdout, token)
}
