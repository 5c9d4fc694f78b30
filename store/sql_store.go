// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql" // Load MySQL Driver
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-issuemigrator/store/migrations"
)

const (
	migrationsTable = "schema_migrations"
)

var allTables = []string{"RunRecords", "Runs", mutexTableName}

type SQLStore struct {
	master *sqlx.DB
	run    RunStore
}

func initConnection(driverName, dataSource string) (*SQLStore, error) {
	db, err := sqlx.Open(driverName, dataSource)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open db connection")
	}

	mlog.Info("pinging db")
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "could not ping db")
	}

	return &SQLStore{master: db}, nil
}

func NewSQLStore(driverName, dataSource string) (*SQLStore, error) {
	sqlStore, err := initConnection(driverName, dataSource)
	if err != nil {
		return nil, err
	}

	if err = runMigrations(sqlStore.master); err != nil {
		sqlStore.master.Close()
		return nil, err
	}

	sqlStore.run = NewSQLRunStore(sqlStore)
	return sqlStore, nil
}

func (ss *SQLStore) GetMaster() *sqlx.DB {
	return ss.master
}

func (ss *SQLStore) Close() error {
	mlog.Info("closing db")
	return ss.master.Close()
}

func (ss *SQLStore) Run() RunStore {
	return ss.run
}

func (ss *SQLStore) NewMutex(key string) (Locker, error) {
	return NewMutex(key, ss.master.DB)
}

func (ss *SQLStore) DropAllTables() error {
	for _, table := range allTables {
		if _, err := ss.master.Exec(fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
			return errors.Wrapf(err, "failed to truncate %s", table)
		}
	}
	return nil
}

func runMigrations(db *sqlx.DB) error {
	dbDriver, err := mysql.WithInstance(db.DB, &mysql.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	srcDriver, err := iofs.New(migrations.Assets, ".")
	if err != nil {
		return errors.Wrap(err, "failed to create source instance")
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "mysql", dbDriver)
	if err != nil {
		return errors.Wrap(err, "failed to create db instance")
	}

	// ErrNoChange only means the schema is already current.
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to migrate DB")
	}
	return nil
}
