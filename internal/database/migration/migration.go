package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_team_members",
		SQL: `CREATE TABLE IF NOT EXISTS team_members (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name            TEXT        NOT NULL,
  image_url       TEXT        NOT NULL,
  image_public_id TEXT        NOT NULL,
  role            TEXT        NOT NULL DEFAULT '',
  position        TEXT        NOT NULL DEFAULT '',
  team            TEXT        NOT NULL DEFAULT '',
  information     TEXT        NOT NULL DEFAULT '',
  email           TEXT        NOT NULL DEFAULT '',
  phone           TEXT        NOT NULL DEFAULT '',
  upload_date     TIMESTAMPTZ NOT NULL DEFAULT now(),
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_news",
		SQL: `CREATE TABLE IF NOT EXISTS news (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title           TEXT        NOT NULL,
  news_date       TIMESTAMPTZ NOT NULL,
  content         TEXT        NOT NULL,
  image_url       TEXT,
  image_public_id TEXT,
  upload_date     TIMESTAMPTZ NOT NULL DEFAULT now(),
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  CHECK ((image_url IS NULL) = (image_public_id IS NULL))
);`,
	},
	{
		Name: "create_table_portfolio_companies",
		SQL: `CREATE TABLE IF NOT EXISTS portfolio_companies (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  company_name       TEXT        NOT NULL,
  description        TEXT        NOT NULL,
  industry           TEXT        NOT NULL,
  initial_investment TIMESTAMPTZ NOT NULL,
  headquarters       TEXT        NOT NULL,
  acquisitions       INTEGER     NOT NULL DEFAULT 0,
  status             TEXT        NOT NULL,
  fund               TEXT        NOT NULL,
  logo_url           TEXT,
  logo_public_id     TEXT,
  upload_date        TIMESTAMPTZ NOT NULL DEFAULT now(),
  created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
  CHECK ((logo_url IS NULL) = (logo_public_id IS NULL))
);`,
	},
	{
		Name: "create_index_team_members_upload_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_team_members_upload_date ON team_members (upload_date DESC);`,
	},
	{
		Name: "create_index_news_news_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_news_news_date ON news (news_date DESC);`,
	},
	{
		Name: "create_index_portfolio_initial_investment",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_portfolio_initial_investment ON portfolio_companies (initial_investment DESC);`,
	},
}

// EnsureMigrated checks if the 'team_members' sentinel table exists and runs
// the bootstrap steps if it doesn't. Every step is idempotent, so a partial
// earlier run is safe to repeat.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.team_members') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
