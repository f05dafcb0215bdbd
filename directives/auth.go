package directives

import (
	"context"
	"os"
	"strconv"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/config"
	"bitbucket.org/carthagesoft/caisse_backend/models"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"gorm.io/gorm"
)

// retrieve user from redis or db
func getUser(username string, ctx context.Context) (*models.User, error) {
	var user models.User
	exists, err := config.GetRedisObject("User:"+username, &user)
	if err != nil {
		return nil, err
	}

	if !exists {

		db := config.GetDB()
		if err := db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Take(&user).Error; err != nil {
			return nil, err
		}

		token_lifespan, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
		if err != nil {
			return nil, err
		}

		if err := config.SetRedisObject("User:"+user.Username, &user, time.Duration(token_lifespan)*time.Hour); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

func Auth(ctx context.Context, obj interface{}, next graphql.Resolver) (interface{}, error) {

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok || username == "" {
		return nil, &gqlerror.Error{
			Message: "Access Denied",
		}
	}

	user, err := getUser(username, ctx)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// destroy current session if user has been deleted
			models.Logout(ctx)
		}
		return nil, &gqlerror.Error{
			Message: err.Error(),
		}
	}
	if !*user.IsActive {
		return nil, &gqlerror.Error{
			Message: "User is disabled",
		}
	}

	gqlpath := graphql.GetPath(ctx).String()

	// admins get the full surface, cashiers the recording subset
	if user.Role == models.UserRoleAdmin {
		if adminAllowed := models.GetAdminPaths()[gqlpath]; !adminAllowed {
			return nil, &gqlerror.Error{
				Message: "Unauthorized",
			}
		}
	} else {
		if cashierAllowed := models.GetCashierPaths()[gqlpath]; !cashierAllowed {
			if defaultAllowed := models.GetDefaultAllowedPaths()[gqlpath]; !defaultAllowed {
				return nil, &gqlerror.Error{
					Message: "Unauthorized",
				}
			}
		}
	}

	ctx = context.WithValue(ctx, utils.ContextKeyUserId, user.ID)
	ctx = context.WithValue(ctx, utils.ContextKeyUserName, user.Name)
	ctx = utils.SetIsAdminInContext(ctx, user.Role == models.UserRoleAdmin)

	return next(ctx)
}
