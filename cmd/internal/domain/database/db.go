package database

import (
	"errors"
	"reurb/cmd/internal/domain/entity"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultSQLitePath = "reurb.db"
	foreignKeysPragma = "_pragma=foreign_keys(1)"
)

// Models lists every table owned by the service, parents first.
var Models = []any{
	&entity.User{},
	&entity.Registration{},
	&entity.Construction{},
	&entity.ValuePlanEntry{},
	&entity.ConstructionStandardEntry{},
	&entity.StreetValueEntry{},
	&entity.TaxRateEntry{},
}

// Dialector picks the storage backend from the connection string.
//
// postgres:// and postgresql:// URLs go to Postgres, anything else is treated
// as a SQLite path (an optional sqlite:// prefix is stripped).
func Dialector(dsn string) gorm.Dialector {
	dsn = strings.TrimSpace(dsn)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn)
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(withForeignKeys(strings.TrimPrefix(dsn, "sqlite://")))
	case dsn == "":
		return sqlite.Open(withForeignKeys(defaultSQLitePath))
	default:
		return sqlite.Open(withForeignKeys(dsn))
	}
}

// withForeignKeys adds the foreign_keys pragma to a SQLite DSN. The driver
// applies DSN pragmas to every connection it opens.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + foreignKeysPragma
	}
	return dsn + "?" + foreignKeysPragma
}

func Init(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(Dialector(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if db.Dialector.Name() == "sqlite" {
		// SQLite serializes writers anyway, a single connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models...)
}

// SeedAdministrator creates the first Administrator when the account table is
// empty. It does nothing when password is blank.
func SeedAdministrator(db *gorm.DB, login, password string) error {
	if strings.TrimSpace(password) == "" {
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	login = strings.TrimSpace(login)
	if login == "" {
		return errors.New("seed administrator: login cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Name:         "Administrator",
		LoginName:    login,
		PasswordHash: string(hash),
		Role:         entity.RoleAdministrator,
	}
	if err = db.Create(admin).Error; err != nil {
		return err
	}

	log.Infof("seeded administrator account %q", login)
	return nil
}

func Ping(db *gorm.DB) error {
	return db.Exec("SELECT 1").Error
}
