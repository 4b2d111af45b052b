package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripdesk/cmd/fx/accountsfx"
	"tripdesk/cmd/fx/dbfx"
	"tripdesk/cmd/fx/inquiriesfx"
	"tripdesk/cmd/fx/itinerariesfx"
	"tripdesk/cmd/fx/matchingfx"
	"tripdesk/cmd/fx/memcachefx"
	"tripdesk/cmd/fx/searchfx"
	"tripdesk/internal/api/controllers"
	"tripdesk/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		dbfx.Module,
		accountsfx.Module,
		itinerariesfx.Module,
		inquiriesfx.Module,
		matchingfx.Module,
		searchfx.Module,
		memcachefx.Module,

		fx.Provide(
			controllers.NewAccountsController,
			controllers.NewItinerariesController,
			controllers.NewInquiriesController,
			controllers.NewMatchingController,
		),

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountsController *controllers.AccountsController,
	itinerariesController *controllers.ItinerariesController,
	inquiriesController *controllers.InquiriesController,
	matchingController *controllers.MatchingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountsController, itinerariesController, inquiriesController, matchingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountsController *controllers.AccountsController,
	itinerariesController *controllers.ItinerariesController,
	inquiriesController *controllers.InquiriesController,
	matchingController *controllers.MatchingController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountsController.Register)
	accountsGroup.POST("/login", accountsController.Login)

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.Use(middleware.JWTAuthMiddleware())
	itinerariesGroup.GET("", itinerariesController.ListItineraries)
	itinerariesGroup.GET("/:id", itinerariesController.GetItineraryById)
	itinerariesGroup.POST("", itinerariesController.CreateItinerary)
	itinerariesGroup.PUT("/:id", itinerariesController.UpdateItinerary)
	itinerariesGroup.DELETE("/:id", middleware.RoleMiddleware("admin"), itinerariesController.DeleteItinerary)
	itinerariesGroup.POST("/semantic-search", itinerariesController.SemanticSearch)

	inquiriesGroup := r.Group("/inquiries")
	inquiriesGroup.Use(middleware.JWTAuthMiddleware())
	inquiriesGroup.POST("", inquiriesController.CreateInquiry)
	inquiriesGroup.GET("", inquiriesController.ListInquiries)
	inquiriesGroup.GET("/:id", inquiriesController.GetInquiryById)
	inquiriesGroup.PUT("/:id", inquiriesController.UpdateInquiry)
	inquiriesGroup.POST("/:id/match", matchingController.MatchInquiry)
	inquiriesGroup.GET("/:id/decision", matchingController.GetDecision)

	matchingGroup := r.Group("/matching")
	matchingGroup.Use(middleware.JWTAuthMiddleware())
	matchingGroup.POST("/preview", matchingController.PreviewMatch)
}
