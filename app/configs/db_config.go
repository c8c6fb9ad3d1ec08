package configs

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxRetries = 10
	retryDelay = 5 * time.Second
)

func OpenConnection(env ENV, log *zap.Logger) (*gorm.DB, error) {
	dialector, target, err := dialectorFor(env)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{}
	if env.IsProduction() {
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		log.Info("connecting to database",
			zap.String("driver", env.DBDriver),
			zap.String("target", target),
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries),
		)

		db, err := gorm.Open(dialector, gormConfig)
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					log.Info("database connection successful")
					return db, nil
				}
			}
			lastErr = pingErr
			log.Warn("failed to ping database", zap.Error(pingErr), zap.Duration("retry_in", retryDelay))
		} else {
			lastErr = err
			log.Warn("failed to open gorm connection", zap.Error(err), zap.Duration("retry_in", retryDelay))
		}

		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the database %s after %d retries: %w", target, maxRetries, lastErr)
}

func dialectorFor(env ENV) (gorm.Dialector, string, error) {
	switch env.DBDriver {
	case DriverMySQL:
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			env.DBUser,
			env.DBPassword,
			env.DBHost,
			env.DBPort,
			env.DBName,
		)
		return mysql.Open(dsn), fmt.Sprintf("%s:%s/%s", env.DBHost, env.DBPort, env.DBName), nil
	case DriverSQLite:
		if env.DBName == "" {
			return nil, "", fmt.Errorf("DB_NAME must point to a sqlite file when DB_DRIVER=sqlite")
		}
		return sqlite.Open(env.DBName + "?_journal_mode=WAL&_busy_timeout=5000"), env.DBName, nil
	default:
		return nil, "", fmt.Errorf("unsupported DB_DRIVER %q", env.DBDriver)
	}
}
