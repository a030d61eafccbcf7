package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/fx"

	"taskly/cmd/fx/account_fx"
	"taskly/cmd/fx/ai_fx"
	"taskly/cmd/fx/billing_fx"
	"taskly/cmd/fx/board_fx"
	"taskly/cmd/fx/db_fx"
	"taskly/cmd/fx/locale_fx"
	"taskly/internal/api/controllers"
	"taskly/internal/locale"
	"taskly/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		locale_fx.Module,
		ai_fx.Module,
		billing_fx.Module,
		account_fx.Module,
		board_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
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
	bundle *i18n.Bundle,
	languageStore locale.PreferenceStore,
	localeController *controllers.LocaleController,
	aiController *controllers.AIController,
	subscriptionController *controllers.SubscriptionController,
	accountController *controllers.AccountController,
	boardController *controllers.BoardController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.LocaleMiddleware(bundle, languageStore))

	RegisterRoutes(r, localeController, aiController, subscriptionController, accountController, boardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	localeController *controllers.LocaleController,
	aiController *controllers.AIController,
	subscriptionController *controllers.SubscriptionController,
	accountController *controllers.AccountController,
	boardController *controllers.BoardController) {

	api := r.Group("/api")
	api.POST("/create-tasks", aiController.CreateTasksHandler)
	api.POST("/suggest-category", aiController.SuggestCategoryHandler)
	api.GET("/locales", localeController.ListLocalesHandler)
	api.GET("/session/language", localeController.GetLanguageHandler)
	api.POST("/session/language", localeController.ChangeLanguageHandler)
	api.GET("/plans", subscriptionController.ListPlansHandler)

	accounts := r.Group("/api/accounts")
	accounts.POST("/register", accountController.RegisterHandler)
	accounts.POST("/login", accountController.LoginHandler)

	authed := r.Group("/api")
	authed.Use(middleware.AuthMiddleware())
	authed.POST("/create-checkout", subscriptionController.CreateCheckoutHandler)
	authed.POST("/cancel-subscription", subscriptionController.CancelSubscriptionHandler)
	authed.POST("/ensure-user-fields", subscriptionController.EnsureUserFieldsHandler)

	boards := r.Group("/api/boards")
	boards.Use(middleware.AuthMiddleware())
	boards.POST("", boardController.CreateBoardHandler)
	boards.GET("", boardController.ListBoardsHandler)
	boards.GET("/:id", boardController.GetBoardHandler)
	boards.POST("/:id/import-plan", boardController.ImportPlanHandler)

	tasks := r.Group("/api/tasks")
	tasks.Use(middleware.AuthMiddleware())
	tasks.POST("/:taskId/toggle", boardController.ToggleTaskHandler)
}
