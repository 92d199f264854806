package files

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type recommendation20261019100000 struct {
	gorm.Model
	TrackingID  string `gorm:"size:36;index"`
	Platform    string `gorm:"size:64;index:idx_recommendations_user"`
	UserID      string `gorm:"size:255;index:idx_recommendations_user"`
	Input       string
	Gender      string `gorm:"size:16"`
	Temperature float64
	Rainy       bool
	Weather     string `gorm:"size:16"`
	Perfumes    string
	Error       string
}

func (recommendation20261019100000) TableName() string {
	return "recommendations"
}

var Migration20261019100000 = &gormigrate.Migration{
	ID: "20261019100000",
	Migrate: func(conn *gorm.DB) error {
		err := conn.AutoMigrate(&recommendation20261019100000{})
		if err != nil {
			return errors.Wrap(err, "failed to create recommendations table")
		}

		return nil
	},
	Rollback: func(conn *gorm.DB) error {
		return conn.Migrator().DropTable("recommendations")
	},
}

