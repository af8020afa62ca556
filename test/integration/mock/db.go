package mock

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db is a shared in-memory SQLite database migrated with the given models.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	order  []string
}

// NewDb opens the shared database on first use and returns it on every later call.
func NewDb(name string, models ...any) *Db {
	dbOnce.Do(func() {
		db = open(name, models)
	})
	return db
}

func open(name string, models []any) *Db {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	sqlDB, err := conn.DB()
	if err != nil {
		panic(err)
	}
	// one connection keeps the shared memory database alive between scenarios
	sqlDB.SetMaxOpenConns(1)

	if err := conn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	d := &Db{DbConn: conn, models: make(map[string]any, len(models))}
	for _, m := range models {
		stmt := &gorm.Statement{DB: conn}
		if err := stmt.Parse(m); err != nil {
			panic(err)
		}
		d.models[stmt.Schema.Table] = m
		d.order = append(d.order, stmt.Schema.Table)
	}
	return d
}

// ClearDB deletes every row of every migrated table.
func (d *Db) ClearDB() error {
	for _, table := range d.order {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(d.models[table]).Error
		if err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the model migrated for table.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
