package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/models"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// seed-admin creates the initial admin account so the API is usable
// on a fresh database. Safe to re-run: an existing username is an error,
// not an overwrite.
func main() {
	_ = godotenv.Load()

	username := flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
	name := flag.String("name", os.Getenv("ADMIN_NAME"), "display name")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	logger := config.GetLogger()

	if strings.TrimSpace(*username) == "" || strings.TrimSpace(*password) == "" {
		logger.Fatal("username and password are required (flags or ADMIN_USERNAME / ADMIN_PASSWORD)")
	}
	if *name == "" {
		*name = *username
	}

	config.ConnectDatabaseWithRetry()
	models.MigrateTable()

	isActive := true
	user, err := models.CreateUser(context.Background(), &models.NewUser{
		Username: *username,
		Name:     *name,
		Password: *password,
		IsActive: &isActive,
		Role:     models.UserRoleAdmin,
	})
	if err != nil {
		logger.Fatal("could not create admin user: " + err.Error())
	}

	logger.WithFields(logrus.Fields{
		"username": user.Username,
	}).Info("admin user created")
}
