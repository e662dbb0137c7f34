package database

import (
	"Vidtube/config"
	"Vidtube/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), Options(conf.Debug()))
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
		return nil, err
	}
	log.L.Info("connect database success", zap.String("database", conf.MySQL.Database))
	return db, nil
}

// Options is shared by the mysql connection and the sqlite databases used in tests.
// TranslateError makes unique-index violations surface as gorm.ErrDuplicatedKey.
func Options(debug bool) *gorm.Config {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	}
}
