package router

import (
	"github.com/ISudhan/cleannect-waste-management/internal/application"
	"github.com/ISudhan/cleannect-waste-management/internal/container"
	"github.com/ISudhan/cleannect-waste-management/internal/infrastructure/mongodb"
	handlers "github.com/ISudhan/cleannect-waste-management/internal/interface/http"
	"github.com/ISudhan/cleannect-waste-management/internal/router/modules"
)

// InitModules builds the feature modules from the container singletons
// and registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	db := container.GetMongo()
	logger := container.GetLogger()

	userRepo := mongodb.NewUserRepository(db)
	listingRepo := mongodb.NewListingRepository(db)

	authSvc := application.NewAuthService(userRepo, container.GetTokens(), logger)
	userSvc := application.NewUserService(userRepo, logger)
	listingSvc := application.NewListingService(listingRepo, userRepo, logger)

	r.Add(modules.NewAuth(handlers.NewAuthHandler(authSvc, logger), authSvc))
	r.Add(modules.NewUsers(handlers.NewUserHandler(userSvc, logger), authSvc))
	r.Add(modules.NewListings(handlers.NewListingHandler(listingSvc, logger), authSvc))
}
