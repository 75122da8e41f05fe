package store

import (
	"github.com/mzotov/cliptide/migrations"
)

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
