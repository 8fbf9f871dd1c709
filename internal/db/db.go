package db

import (
	"embed"
	"errors"

	"github.com/MyelinBots/heartbeat-go/config"
	"github.com/apex/log"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"golang.org/x/xerrors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// DB wraps the gorm handle shared by repositories.
type DB struct {
	DB *gorm.DB
}

func NewDatabase(cfg config.DBConfig) (*DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, xerrors.Errorf("open database %s@%s: %w", cfg.DataBase, cfg.Host, err)
	}
	return &DB{DB: gdb}, nil
}

func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Up, Down:
		return d, nil
	}
	return "", xerrors.Errorf("unknown migration direction %q", s)
}

// Migrate applies the embedded schema migrations in the given direction.
func Migrate(cfg config.DBConfig, direction Direction) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return xerrors.Errorf("load migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.URL())
	if err != nil {
		return xerrors.Errorf("init migrate: %w", err)
	}
	defer m.Close()

	switch direction {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return xerrors.Errorf("unknown migration direction %q", direction)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Infof("migrations: no change (%s)", direction)
		return nil
	}
	if err != nil {
		return xerrors.Errorf("migrate %s: %w", direction, err)
	}
	log.Infof("migrations: applied (%s)", direction)
	return nil
}
