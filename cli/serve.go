package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-pathfinder/api/maze"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/cache"
	logger "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/metrics"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout      = 10 * time.Second
	solutionsCollection = "solutions"
)

// server holds the dependencies of the HTTP server while they are wired.
type server struct {
	appLogger      *logger.Logger
	redisClient    *redis.Client
	mongoClient    *mongo.Client
	solutionCache  i.SolutionCache
	solutionRepo   i.SolutionRepo
	solveMetrics   *metrics.Metrics
	jwtTokenizer   i.Tokenizer
	solverService  *service.SolverService
	solverHandlers api_i.Controller
	router         *api.Router
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the maze solver over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runServer(cmd.Context()); err != nil {
				return withStatus(ExitFailure, err)
			}
			return nil
		},
	}
}

func runServer(ctx context.Context) error {
	logger.SetLevel(config.Envs.LogLevel)
	gin.SetMode(config.Envs.GinMode)

	s := &server{}
	var err error
	if s.appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout); err != nil {
		return err
	}

	initCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := s.initRedis(initCtx); err != nil {
		return err
	}
	defer s.redisClient.Close()

	if err := s.initMongo(initCtx); err != nil {
		return err
	}
	defer func() {
		_ = s.mongoClient.Disconnect(context.Background())
	}()

	steps := []func() error{
		s.initJWTTokenizer,
		s.initSolverService,
		s.initSolverController,
		s.initRouter,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	s.appLogger.Info(fmt.Sprintf("Listening on %s:%d", config.Envs.HostIP, config.Envs.RESTPort))
	if err := s.router.Run(ctx); err != nil {
		s.appLogger.Error(fmt.Sprintf("Serving HTTP: %v", err))
		return err
	}
	s.appLogger.Info("Server stopped")
	return nil
}

func (s *server) initRedis(ctx context.Context) error {
	s.redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		return err
	}

	var err error
	s.solutionCache, err = cache.NewRedisSolutionCache(s.redisClient, config.Envs.SolutionTTLSeconds)
	if err != nil {
		s.appLogger.Error(fmt.Sprintf("Creating solution cache: %v", err))
		return err
	}
	s.appLogger.Info("Connected to Redis")
	return nil
}

func (s *server) initMongo(ctx context.Context) error {
	var err error
	s.mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(config.Envs.MongoURI()))
	if err != nil {
		s.appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		return err
	}
	if err = s.mongoClient.Ping(ctx, nil); err != nil {
		s.appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		return err
	}

	s.solutionRepo = repo.NewSolutionRepo(s.mongoClient, config.Envs.DBName, solutionsCollection)
	s.appLogger.Info("Connected to MongoDB")
	return nil
}

func (s *server) initJWTTokenizer() error {
	var err error
	s.jwtTokenizer, err = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	if err != nil {
		s.appLogger.Error(fmt.Sprintf("Creating JWT tokenizer: %v", err))
		return err
	}
	s.appLogger.Info("JWT Tokenizer initialized")
	return nil
}

func (s *server) initSolverService() error {
	solverLogger, err := logger.New("SOLVER", config.ColorCyan, os.Stdout)
	if err != nil {
		return err
	}

	s.solveMetrics = metrics.New()
	s.solverService, err = service.NewSolverService(solverLogger, &service.SolverOptions{
		Cache:    s.solutionCache,
		Repo:     s.solutionRepo,
		Recorder: s.solveMetrics,
	})
	if err != nil {
		s.appLogger.Error(fmt.Sprintf("Creating solver service: %v", err))
		return err
	}
	s.appLogger.Info("Solver service initialized")
	return nil
}

func (s *server) initSolverController() error {
	var err error
	s.solverHandlers, err = mazeapi.NewSolverController(s.solverService)
	if err != nil {
		s.appLogger.Error(fmt.Sprintf("Creating solver controller: %v", err))
		return err
	}
	s.appLogger.Info("Solver controller initialized")
	return nil
}

func (s *server) initRouter() error {
	s.router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%d", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{s.solverHandlers},
		AuthorizationMiddleware: identity.Authoriz(s.jwtTokenizer),
		MetricsHandler:          s.solveMetrics.Handler(),
	})
	s.appLogger.Info("Router initialized")
	return nil
}
