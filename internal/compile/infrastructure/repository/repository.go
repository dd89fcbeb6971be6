package repository

import (
	"context"
	"fmt"
	"time"
	
	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"
	
	"github.com/Wenrh2004/playground/internal/compile/infrastructure/repository/model"
	"github.com/Wenrh2004/playground/pkg/log"
	"github.com/Wenrh2004/playground/pkg/transaction"
)

type ctxTxKey struct{}

type Repository struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewRepository(logger *log.Logger, db *gorm.DB) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func NewTransaction(r *Repository) transaction.Transaction {
	return r
}

// DB returns the transaction stored in ctx, if any.
func (r *Repository) DB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(ctxTxKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *Repository) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ctx = context.WithValue(ctx, ctxTxKey{}, tx)
		return fn(ctx)
	})
}

// NewDB opens app.data.db and migrates the schema. The cleanup closes the
// connection pool.
func NewDB(conf *viper.Viper, l *log.Logger) (*gorm.DB, func(), error) {
	var (
		db  *gorm.DB
		err error
	)
	
	logger := zapgorm2.New(l.Logger)
	logger.SetAsDefault()
	cfg := &gorm.Config{Logger: logger}
	driver := conf.GetString("app.data.db.driver")
	dsn := conf.GetString("app.data.db.dsn")
	
	// GORM doc: https://gorm.io/docs/connecting_to_the_database.html
	switch driver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(dsn), cfg)
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), cfg)
	case "sqlite", "":
		if dsn == "" {
			dsn = "playground.db"
		}
		db, err = gorm.Open(sqlite.Open(dsn), cfg)
	default:
		return nil, nil, fmt.Errorf("[repository.NewDB]unknown db driver %q", driver)
	}
	if err != nil {
		return nil, nil, err
	}
	if conf.GetBool("app.data.db.debug") {
		db = db.Debug()
	}
	
	// Connection Pool config
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	
	if err := db.AutoMigrate(&model.TaskInfo{}, &model.UserSettings{}); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	
	return db, func() {
		if err := sqlDB.Close(); err != nil {
			l.Sugar().Errorf("close database: %v", err)
		}
	}, nil
}
