package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"coursemap/cmd/fx/account_fx"
	"coursemap/cmd/fx/course_fx"
	"coursemap/cmd/fx/db_fx"
	"coursemap/cmd/fx/wizard_fx"
	"coursemap/internal/api/controllers"
	"coursemap/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		course_fx.Module,
		wizard_fx.Module,

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
					port = "3000"
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
	courseController *controllers.CourseController,
	wizardController *controllers.WizardController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, courseController, wizardController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	courseController *controllers.CourseController,
	wizardController *controllers.WizardController,
	accountController *controllers.AccountController) {

	api := r.Group("/api")

	accounts := api.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/session", middleware.JWTAuthMiddleware(), accountController.Session)

	courses := api.Group("/courses")
	courses.POST("/generate/questions", courseController.GenerateQuestionsHandler)
	courses.POST("/generate/roadmap", courseController.GenerateRoadmapHandler)
	courses.POST("", middleware.JWTAuthMiddleware(), courseController.SaveCourseHandler)
	courses.GET("", middleware.JWTAuthMiddleware(), courseController.ListCoursesHandler)
	courses.GET("/:id", courseController.GetCourseHandler)
	courses.GET("/:id/related", courseController.RelatedCoursesHandler)

	wizard := api.Group("/wizard")
	wizard.POST("/start", wizardController.StartHandler)
	sessions := wizard.Group("/sessions")
	sessions.GET("/:id", wizardController.GetHandler)
	sessions.POST("/:id/answer", wizardController.AnswerHandler)
	sessions.POST("/:id/next", wizardController.NextHandler)
	sessions.POST("/:id/back", wizardController.BackHandler)
	sessions.POST("/:id/finish", wizardController.FinishHandler)
}
