package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/eventara/backend/config"
	"github.com/eventara/backend/internal/domain"
	"github.com/eventara/backend/internal/domain/statistic"
	"github.com/eventara/backend/internal/repository"
	"github.com/eventara/backend/pkg/kafka"
	"github.com/eventara/backend/pkg/logger"
	"github.com/eventara/backend/pkg/pubsub"
	"github.com/eventara/backend/pkg/router"
	"github.com/eventara/backend/pkg/xcontext"
	"github.com/eventara/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger

	db          *gorm.DB
	redisClient xredis.Client
	publisher   pubsub.Publisher

	userRepo         repository.UserRepository
	eventRepo        repository.EventRepository
	categoryRepo     repository.CategoryRepository
	nomineeRepo      repository.NomineeRepository
	ballotRepo       repository.BallotRepository
	collaboratorRepo repository.CollaboratorRepository

	leaderboard statistic.Leaderboard

	userDomain         domain.UserDomain
	eventDomain        domain.EventDomain
	categoryDomain     domain.CategoryDomain
	nomineeDomain      domain.NomineeDomain
	ballotDomain       domain.BallotDomain
	collaboratorDomain domain.CollaboratorDomain

	router *router.Router
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}

	return d
}

func (s *srv) loadConfig() {
	s.configs = &config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "eventara"),
			Password: getEnv("MYSQL_PASSWORD", "eventara"),
			Database: getEnv("MYSQL_DATABASE", "eventara"),
		},
		ApiServer: config.ServerConfigs{
			Host:         getEnv("API_HOST", "localhost"),
			Port:         getEnv("API_PORT", "8080"),
			Cert:         getEnv("API_SERVER_CERT", ""),
			Key:          getEnv("API_SERVER_KEY", ""),
			MaxLimit:     50,
			DefaultLimit: 10,
			AllowCORS:    strings.Split(getEnv("API_ALLOW_CORS", "http://localhost:3000"), ","),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "5m")),
			},
		},
		Session: config.SessionConfigs{
			Secret: getEnv("AUTH_SESSION_SECRET", "session_secret"),
			Name:   "auth_session",
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", "localhost:6379"),
		},
		Kafka: config.KafkaConfigs{
			Addr: getEnv("KAFKA_ADDRESS", "localhost:9092"),
		},
	}

	s.ctx = xcontext.WithConfigs(context.Background(), *s.configs)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadRedis() {
	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = redisClient
}

func (s *srv) loadPublisher() {
	s.publisher = kafka.NewPublisher(
		"eventara-api", strings.Split(s.configs.Kafka.Addr, ","))
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.eventRepo = repository.NewEventRepository()
	s.categoryRepo = repository.NewCategoryRepository()
	s.nomineeRepo = repository.NewNomineeRepository()
	s.ballotRepo = repository.NewBallotRepository()
	s.collaboratorRepo = repository.NewCollaboratorRepository()
}

func (s *srv) loadDomains() {
	s.leaderboard = statistic.New(s.nomineeRepo, s.redisClient)

	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.eventDomain = domain.NewEventDomain(
		s.eventRepo, s.categoryRepo, s.nomineeRepo, s.collaboratorRepo, s.userRepo)
	s.categoryDomain = domain.NewCategoryDomain(
		s.categoryRepo, s.nomineeRepo, s.eventRepo, s.ballotRepo, s.collaboratorRepo, s.userRepo)
	s.nomineeDomain = domain.NewNomineeDomain(
		s.nomineeRepo, s.categoryRepo, s.ballotRepo, s.collaboratorRepo,
		s.userRepo, s.leaderboard)
	s.ballotDomain = domain.NewBallotDomain(
		s.ballotRepo, s.eventRepo, s.categoryRepo, s.nomineeRepo,
		s.collaboratorRepo, s.userRepo, s.leaderboard, s.publisher)
	s.collaboratorDomain = domain.NewCollaboratorDomain(
		s.eventRepo, s.collaboratorRepo, s.userRepo)
}
