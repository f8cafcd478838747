package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/ubereats-api/internal/config"
	"github.com/BruksfildServices01/ubereats-api/internal/domain/restaurant"
	"github.com/BruksfildServices01/ubereats-api/internal/domain/user"
	"github.com/BruksfildServices01/ubereats-api/internal/infra/repository"
	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

const defaultDatabase = "ubereats"

type Driver string

const (
	DriverMongo    Driver = "mongodb"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// Store is the process-wide persistence handle. It is built once in main
// (or per test) and handed to whoever needs a repository.
type Store struct {
	Driver      Driver
	Users       user.Repository
	Restaurants restaurant.Repository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}

func DriverFor(uri string) (Driver, error) {
	switch {
	case strings.HasPrefix(uri, "mongodb://"), strings.HasPrefix(uri, "mongodb+srv://"):
		return DriverMongo, nil
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(uri, "sqlite://"), strings.HasPrefix(uri, "file:"):
		return DriverSQLite, nil
	}
	return "", fmt.Errorf("unsupported database url scheme: %q", uri)
}

func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	driver, err := DriverFor(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	switch driver {
	case DriverMongo:
		return openMongo(ctx, cfg)
	case DriverPostgres:
		return openGorm(postgres.Open(cfg.DatabaseURL), driver, cfg)
	default:
		dsn := strings.TrimPrefix(cfg.DatabaseURL, "sqlite://")
		return openGorm(sqlite.Open(dsn), driver, cfg)
	}
}

// --------------------------------------------------
// MongoDB
// --------------------------------------------------

func mongoDatabaseName(cfg *config.Config) string {
	if cfg.DatabaseName != "" {
		return cfg.DatabaseName
	}
	u, err := url.Parse(cfg.DatabaseURL)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDatabase
}

func openMongo(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.DatabaseURL).
		SetServerSelectionTimeout(10 * time.Second))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	database := client.Database(mongoDatabaseName(cfg))

	users := repository.NewUserMongoRepository(database)
	restaurants := repository.NewRestaurantMongoRepository(database)

	if err := errors.Join(users.EnsureIndexes(ctx), restaurants.EnsureIndexes(ctx)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return &Store{
		Driver:      DriverMongo,
		Users:       users,
		Restaurants: restaurants,
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: client.Disconnect,
	}, nil
}

// --------------------------------------------------
// SQL (gorm)
// --------------------------------------------------

func gormLogLevel(cfg *config.Config) logger.LogLevel {
	if cfg.Environment == config.EnvDevelopment {
		return logger.Warn
	}
	return logger.Error
}

func openGorm(dialector gorm.Dialector, driver Driver, cfg *config.Config) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         logger.Default.LogMode(gormLogLevel(cfg)),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if driver == DriverSQLite {
		// sqlite serializes writers; one connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
	); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{
		Driver:      driver,
		Users:       repository.NewUserGormRepository(db),
		Restaurants: repository.NewRestaurantGormRepository(db),
		ping:        sqlDB.PingContext,
		close: func(context.Context) error {
			return sqlDB.Close()
		},
	}, nil
}
