package main

import (
	"moviecatalog/internal/config"
)

// migrationTarget resolves the database and migrations directory from the
// shared runtime config.
func migrationTarget() (dsn, dir string, err error) {
	cfg, err := config.Load()
	if err != nil {
		return "", "", err
	}
	return cfg.DBDSN, cfg.MigrationsDir, nil
}
