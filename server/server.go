package server

import (
	"workout-server/confs"
	"workout-server/db"
	httpHandler "workout-server/handlers/http"
	"workout-server/repositories"
	"workout-server/services"
	"workout-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	exerciseRepo := repositories.NewExercisePgRepository(s.db)
	workoutRepo := repositories.NewWorkoutPgRepository(s.db)

	// Abandoned-session sweeper: removes empty workouts past the grace period
	sweeper := services.NewSweeper(workoutRepo)
	sweeper.Start()

	SetupRoutes(s.app, userRepo, exerciseRepo, workoutRepo, confs.JWTSecret())

	if err := s.app.Run(confs.ListenAddr()); err != nil {
		panic(err)
	}
}

// SetupRoutes wires middleware, handlers and the route table onto the
// engine. Split out from Start so tests can run against httptest with
// in-memory repositories.
func SetupRoutes(app *gin.Engine, userRepo repositories.UserRepository, exerciseRepo repositories.ExerciseRepository, workoutRepo repositories.WorkoutRepository, secret []byte) {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // Allow all origins for development
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	app.Use(cors.New(config))

	// Setup healthcheck route
	app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo)
	exerciseUseCase := usecases.NewExerciseUseCase(exerciseRepo)
	workoutUseCase := usecases.NewWorkoutUseCase(workoutRepo, exerciseRepo)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	exerciseHandler := httpHandler.NewExerciseHandler(exerciseUseCase)
	workoutHandler := httpHandler.NewWorkoutHandler(workoutUseCase)
	loginHandler := httpHandler.NewLoginHandler(userUseCase, secret)

	// Setup API routes
	api := app.Group("/api")
	{
		// Exercise library routes
		exercises := api.Group("/exercises")
		{
			exercises.GET("", exerciseHandler.GetAllExercises)
			exercises.POST("", exerciseHandler.CreateExercise)
		}

		// User routes
		users := api.Group("/users")
		{
			users.GET("", userHandler.GetAllUsers)
			users.POST("", userHandler.Signup)
		}

		// Auth routes
		api.POST("/login", loginHandler.Login)

		// Template routes, bearer-token gated
		templates := api.Group("/templates")
		templates.Use(httpHandler.AuthRequired(secret))
		{
			templates.GET("", workoutHandler.GetTemplates)
			templates.POST("", workoutHandler.CreateTemplate)
		}

		// Workout routes, bearer-token gated
		workouts := api.Group("/workouts")
		workouts.Use(httpHandler.AuthRequired(secret))
		{
			workouts.GET("", workoutHandler.GetAllWorkouts)
			workouts.GET("/:id", workoutHandler.GetWorkout)
			workouts.POST("", workoutHandler.CreateWorkout)
			workouts.POST("/template/:id", workoutHandler.CreateFromTemplate) // Clone a template's sets
			workouts.PUT("/:id", workoutHandler.UpdateWorkout)                // Whole-list overwrite
			workouts.DELETE("/:id", workoutHandler.DeleteWorkout)
		}
	}
}
