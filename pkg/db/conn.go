package db

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConn(config *Config) (*gorm.DB, error) {
	e := config.Validate()
	if e.HasErrors() {
		return nil, e
	}

	conn, err := gorm.Open(mysql.Open(withParseTime(config.ConnString)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mysql")
	}

	return conn, nil
}

func withParseTime(connStr string) string {
	if strings.Contains(connStr, "parseTime=") {
		return connStr
	}

	if strings.Contains(connStr, "?") {
		return connStr + "&parseTime=true"
	}

	return connStr + "?parseTime=true"
}
