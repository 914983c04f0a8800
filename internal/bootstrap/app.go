package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resume-rewriter/internal/auth"
	"resume-rewriter/internal/extractor"
	"resume-rewriter/internal/jobs"
	"resume-rewriter/internal/matching"
	"resume-rewriter/internal/resumes"
	"resume-rewriter/internal/services/health"
	"resume-rewriter/internal/shared/config"
	"resume-rewriter/internal/shared/server"
	"resume-rewriter/internal/shared/storage/db"
	"resume-rewriter/internal/shared/storage/object"
	localstore "resume-rewriter/internal/shared/storage/object/local"
	s3store "resume-rewriter/internal/shared/storage/object/s3"
	"resume-rewriter/internal/textextract"
)

// App holds shared dependencies wired for the HTTP server.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.ObjectStore
	ResumesRepo    resumes.ResumesRepo
	JobsRepo       jobs.JobsRepo
	ResumesService *resumes.Service
	JobsService    *jobs.Service
	MatchService   *matching.Service
	ResumesHandler *resumes.Handler
	JobsHandler    *jobs.Handler
	MatchHandler   *matching.Handler
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

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		ResumesHandler: app.ResumesHandler,
		JobsHandler:    app.JobsHandler,
		MatchHandler:   app.MatchHandler,
		GoogleAuth:     app.GoogleAuth,
		Health:         health.NewService(),
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

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
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

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var resumesRepo resumes.ResumesRepo
	var jobsRepo jobs.JobsRepo

	if app.DB != nil {
		resumesRepo = &resumes.PGRepo{DB: app.DB}
		jobsRepo = &jobs.PGRepo{DB: app.DB}
	} else {
		resumesRepo = resumes.NewMemoryRepo()
		jobsRepo = jobs.NewMemoryRepo()
	}

	resumeSvc := &resumes.Service{
		Store: app.Store,
		Repo:  resumesRepo,
		Text:  textextract.New(nil),
	}

	jobSvc := &jobs.Service{
		Repo:    jobsRepo,
		Fetcher: jobs.NewHTTPFetcher(app.Config.JobFetchTimeout),
	}

	var embedder matching.Embedder
	if app.Config.EmbedBaseURL != "" {
		embedder = matching.NewOllamaEmbedder(matching.OllamaConfig{
			BaseURL: app.Config.EmbedBaseURL,
			Model:   app.Config.EmbedModel,
		})
	}
	matchSvc := &matching.Service{
		Resumes: resumeSource{svc: resumeSvc},
		Jobs:    jobSource{svc: jobSvc},
		Matcher: matching.NewMatcher(embedder),
	}

	app.ResumesRepo = resumesRepo
	app.JobsRepo = jobsRepo
	app.ResumesService = resumeSvc
	app.JobsService = jobSvc
	app.MatchService = matchSvc
	app.ResumesHandler = resumes.NewHandler(resumeSvc)
	app.JobsHandler = jobs.NewHandler(jobSvc)
	app.MatchHandler = matching.NewHandler(matchSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
	)

	return nil
}

// resumeSource adapts the resumes service to the matcher, translating its
// sentinel errors so the match handler maps status codes correctly.
type resumeSource struct {
	svc *resumes.Service
}

func (s resumeSource) Document(ctx context.Context, userId, resumeID string) (extractor.ResumeDocument, error) {
	doc, err := s.svc.Document(ctx, userId, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return extractor.ResumeDocument{}, matching.ErrNotFound
		}
		return extractor.ResumeDocument{}, err
	}
	return doc, nil
}

type jobSource struct {
	svc *jobs.Service
}

func (s jobSource) Requirements(ctx context.Context, userId, jobID string) ([]string, error) {
	post, err := s.svc.Get(ctx, userId, jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return nil, matching.ErrNotFound
		}
		return nil, err
	}
	return post.Requirements, nil
}
