package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-chat-backend/internal/answers"
	googleauth "resume-chat-backend/internal/auth"
	"resume-chat-backend/internal/chat"
	openai "resume-chat-backend/internal/llm/openai"
	"resume-chat-backend/internal/parsing"
	"resume-chat-backend/internal/queue"
	"resume-chat-backend/internal/resumes"
	"resume-chat-backend/internal/shared/config"
	"resume-chat-backend/internal/shared/server"
	"resume-chat-backend/internal/shared/storage/db"
	"resume-chat-backend/internal/shared/storage/object"
	localstore "resume-chat-backend/internal/shared/storage/object/local"
	s3store "resume-chat-backend/internal/shared/storage/object/s3"
	"resume-chat-backend/internal/users"
	"resume-chat-backend/internal/vision"
)

// App holds shared dependencies for the API server and the workers.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Queue  queue.Client

	ResumesService *resumes.Service
	ChatService    *chat.Service
	UsersService   *users.Service

	ResumesHandler *resumes.Handler
	ChatHandler    *chat.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
	}

	if err := buildServices(ctx, app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		DB:             app.DB,
		ResumesHandler: app.ResumesHandler,
		ChatHandler:    app.ChatHandler,
		UsersHandler:   app.UsersHandler,
		GoogleAuth:     app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context) (queue.Client, error) {
	if strings.TrimSpace(os.Getenv("RC_SQS_QUEUE_URL")) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(ctx context.Context, app *App) error {
	var resumeRepo resumes.ResumesRepo
	var chatRepo chat.ExchangesRepo
	var userRepo users.Repo

	if app.DB != nil {
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		chatRepo = &chat.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
		chatRepo = chat.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	var generator answers.Generator
	if app.Config.LLMProvider == "openai" {
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.LLMModel)
		if err != nil {
			return err
		}
		generator = client
	}

	var visionClient vision.Client
	if strings.TrimSpace(app.Config.GeminiAPIKey) != "" {
		client, err := vision.NewGeminiClient(ctx, app.Config.GeminiAPIKey, app.Config.VisionModel)
		if err != nil {
			return err
		}
		visionClient = client
	}

	resumeSvc := &resumes.Service{
		Store:  app.Store,
		Repo:   resumeRepo,
		Parser: parsing.New(),
		Vision: visionClient,
		Queue:  app.Queue,
	}

	chatSvc := &chat.Service{
		Resumes:   resumeSvc,
		Responder: &answers.Responder{Gen: generator},
		Repo:      chatRepo,
	}

	userSvc := users.NewService(userRepo)

	app.ResumesService = resumeSvc
	app.ChatService = chatSvc
	app.UsersService = userSvc
	app.ResumesHandler = resumes.NewHandler(resumeSvc)
	app.ChatHandler = chat.NewHandler(chatSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	return nil
}
