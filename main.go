package main

import (
	"log"
	"net/http"
	"os"

	"github.com/andrewpaige1/srlboard-api/auth"
	"github.com/andrewpaige1/srlboard-api/chatbot"
	"github.com/andrewpaige1/srlboard-api/config"
	"github.com/andrewpaige1/srlboard-api/handlers"
	"github.com/andrewpaige1/srlboard-api/logger"
	"github.com/andrewpaige1/srlboard-api/middleware"
	"github.com/andrewpaige1/srlboard-api/repository"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	env, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(env.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	db, err := config.ConnectDatabase(env)
	if err != nil {
		zlog.Fatal("database", zap.Error(err))
	}

	users := repository.NewUserRepository(db)
	boards := repository.NewBoardRepository(db)
	sessions := repository.NewStudySessionRepository(db)
	strategies := repository.NewStrategyRepository(db)
	chatLogs := repository.NewChatbotLogRepository(db)
	activity := repository.NewActivityLogRepository(db)

	tokens := auth.NewTokens(env.JWTSecretKey, env.JWTIssuer, env.JWTAudience, env.TokenTTL)
	tokenValidator, err := tokens.Validator()
	if err != nil {
		zlog.Fatal("jwt validator", zap.Error(err))
	}

	coach := chatbot.NewService(chatbot.Stores{
		Boards:     boards,
		Sessions:   sessions,
		Strategies: strategies,
		Users:      users,
		Audit:      chatLogs,
		Activity:   activity,
	}, zlog)

	h := handlers.New(handlers.Deps{
		Users:      users,
		Boards:     boards,
		Sessions:   sessions,
		Strategies: strategies,
		Activity:   activity,
		Chatbot:    coach,
		Tokens:     tokens,
		Cookie:     handlers.CookieConfig{Domain: env.CookieDomain},
		Log:        zlog,
	})

	authMiddleware := middleware.EnsureValidToken(tokenValidator, zlog)
	requireUser := middleware.RequireUser(users, zlog)
	secure := func(fn http.HandlerFunc) http.Handler {
		return authMiddleware(requireUser(fn))
	}

	mux := h.Routes(secure)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   env.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	serverAddr := "0.0.0.0:" + env.Port
	zlog.Info("listening", zap.String("addr", serverAddr), zap.String("env", env.AppEnv))

	if err := http.ListenAndServe(serverAddr, middleware.RequestLogger(zlog)(corsHandler)); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
