package config

import (
	"database/sql"
	"fmt"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"time"
)

// ConnectDB opens the MySQL catalog database, retrying while it starts up.
func ConnectDB(dsn string, retries int) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < retries; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Info().Msg("Connected to catalog DB")
				return db, nil
			}
			_ = db.Close()
		}
		log.Warn().Err(err).Msgf("Retry %d: failed to connect to catalog DB", i+1)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to catalog DB after %d retries: %w", retries, err)
}
