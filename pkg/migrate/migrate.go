package migrate

import (
	"perfumeHelper/pkg/migrate/files"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var migrations = []*gormigrate.Migration{
	files.Migration20261019100000,
}

func Execute(conn *gorm.DB) error {
	m := gormigrate.New(conn, gormigrate.DefaultOptions, migrations)

	if err := m.Migrate(); err != nil {
		return errors.Wrap(err, "failed to migrate the history database")
	}

	logrus.Infof("applied %d history migration(s)", len(migrations))

	return nil
}
