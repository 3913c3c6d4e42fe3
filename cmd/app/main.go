package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/raphael0002/graphics-garage-api/internal/config"
	"github.com/raphael0002/graphics-garage-api/internal/handler"
	"github.com/raphael0002/graphics-garage-api/internal/mailer"
	"github.com/raphael0002/graphics-garage-api/internal/rabbitmq"
	"github.com/raphael0002/graphics-garage-api/internal/repository"
	"github.com/raphael0002/graphics-garage-api/internal/repository/postgres"
	"github.com/raphael0002/graphics-garage-api/internal/server"
	"github.com/raphael0002/graphics-garage-api/internal/service"
	"github.com/raphael0002/graphics-garage-api/internal/viewcounter"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()

	if err := loadEnv(); err != nil {
		logger.Sugar().Panicf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	dbConfig := config.DBConfig{
		Username: os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		DBName:   os.Getenv("POSTGRES_DATABASE"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
	db, err := postgres.DB(ctx, dbConfig)
	if err != nil {
		logger.Sugar().Panicf("failed to connect to postgres: %s", err.Error())
	}
	if err := db.Ping(ctx); err != nil {
		logger.Sugar().Panicf("failed to ping postgres: %s", err.Error())
	}
	logger.Info("Successfully connected to PostgreSQL")

	if err := postgres.RunMigrations(dbConfig); err != nil {
		logger.Sugar().Panicf("failed to run migrations: %s", err.Error())
	}
	logger.Info("Migrations applied")

	redisOptions := &redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
	}
	rdb := redis.NewClient(redisOptions)
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
	}
	logger.Sugar().Infof("Successfully connected to Redis: %s", pong)

	// RabbitMQ is optional: without a connection string the service
	// runs with lifecycle events disabled.
	var mq *rabbitmq.MQConn
	if connString := os.Getenv("RABBITMQ_CONN_STRING"); connString != "" {
		mq, err = rabbitmq.New(connString)
		if err != nil {
			logger.Sugar().Panicf("failed to connect to rabbitmq: %s", err.Error())
		}
		logger.Info("Successfully connected to RabbitMQ")
	} else {
		logger.Info("RABBITMQ_CONN_STRING not set, post events disabled")
	}

	mail := mailer.NewFromEnv()
	if !mail.Enabled {
		logger.Info("SMTP not configured, contact mail disabled")
	}

	tally := viewcounter.New()

	repos := repository.New(db, rdb)
	services := service.New(logger, repos, mq, mail, tally)
	handlers := handler.New(services, tally)

	if err := services.Auth.SeedAdmin(ctx); err != nil {
		logger.Sugar().Panicf("failed to seed admin user: %s", err.Error())
	}

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}

	if mq != nil {
		mq.Close()
	}
	db.Close()
	if err := rdb.Close(); err != nil {
		logger.Sugar().Errorf("failed to close redis connection: %s", err.Error())
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
