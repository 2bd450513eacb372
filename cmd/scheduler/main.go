package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"

	"github.com/meetwith/scheduler-backend/internal/api"
	meetings_service "github.com/meetwith/scheduler-backend/internal/business/meetings"
	"github.com/meetwith/scheduler-backend/internal/config"
	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/database/account"
	"github.com/meetwith/scheduler-backend/internal/database/allotment"
	"github.com/meetwith/scheduler-backend/internal/database/meetings"
	"github.com/meetwith/scheduler-backend/internal/database/meetingtype"
	"github.com/meetwith/scheduler-backend/internal/notifications"
	"github.com/meetwith/scheduler-backend/internal/pkg/fcm"
	"github.com/meetwith/scheduler-backend/internal/pkg/gate"
	"github.com/meetwith/scheduler-backend/internal/pkg/jwt"
	"github.com/meetwith/scheduler-backend/internal/pkg/oauth"
	"github.com/meetwith/scheduler-backend/internal/pkg/payment"
	"github.com/meetwith/scheduler-backend/internal/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	conf, err := config.Parse()
	if err != nil {
		log.Fatalf("unable to parse config: %v", err)
	}

	logger, err := initLogger(conf)
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	jwts := jwt.NewManager(conf.Secret, conf.JwtTTL)
	tokenParser := oauth.NewParser(conf)

	redisPool := redis.NewRedisPool(logger, conf.RedisURL)
	refreshTokens := redis.NewRefreshTokenRepository(redisPool, logger, conf.SessionTTL)

	db, err := database.NewPGX(ctx, conf.PostgresURL)
	if err != nil {
		log.Fatalf("unable to initialize db: %v", err)
	}
	accountsRepository := account.NewRepository()
	meetingTypesRepository := meetingtype.NewRepository()
	meetingsRepository := meetings.NewRepository()
	allotmentsRepository := allotment.NewRepository()

	gates := gate.NewCachedValidator(gate.NewHTTPValidator(conf.GateServiceURL), conf.GateCacheTTL)
	payments := payment.NewHTTPVerifier(conf.PaymentServiceURL)

	meetingsService := meetings_service.NewService(
		db,
		meetingsRepository,
		meetingTypesRepository,
		allotmentsRepository,
		gates,
		payments,
		conf.FreePlanSlotLimit,
	)

	fcmService, err := fcm.NewService(ctx)
	if err != nil {
		log.Fatalf("unable to initialize fcm service: %v", err)
	}

	sender := notifications.NewSender(db, logger, accountsRepository, meetingsService, fcmService)
	go sender.Start(ctx)

	api, err := api.NewApi(
		logger,
		rand.Reader,
		conf,
		jwts,
		tokenParser,
		refreshTokens,
		db,
		accountsRepository,
		meetingTypesRepository,
		meetingsService,
	)
	if err != nil {
		logger.Fatalw("error initiating api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + conf.Port,
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", conf.Port)
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger(conf *config.Config) (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if conf.Production {
		logger, err = zap.NewProduction()
	} else {
		zapConf := zap.NewDevelopmentConfig()
		zapConf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = zapConf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
