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
		Name: "create_table_alerts",
		SQL: `CREATE TABLE IF NOT EXISTS alerts (
  id           BIGSERIAL   PRIMARY KEY,
  pair         TEXT        NOT NULL,
  condition    TEXT        NOT NULL,
  target_value TEXT        NOT NULL,
  distance     TEXT        NOT NULL DEFAULT '',
  notify       TEXT        NOT NULL DEFAULT '',
  status       TEXT        NOT NULL DEFAULT 'Active',
  color        TEXT        NOT NULL DEFAULT 'var(--text-primary)',
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_alerts_pair",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_alerts_pair ON alerts (pair);`,
	},
	{
		Name: "create_index_alerts_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_alerts_status ON alerts (status);`,
	},
	{
		// Runs only on a fresh schema, so the panel starts populated the
		// same way the in-memory fallback does.
		Name: "seed_sample_alerts",
		SQL: `INSERT INTO alerts (pair, condition, target_value, distance, notify, status, color) VALUES
  ('DOGE/USDT', '涨破 (Price >)', '$0.500', '还需要 7.5%', 'Telegram, Webhook', 'Active', 'var(--text-primary)'),
  ('PEPE/USDT', '资金费率 <', '-0.5%', '已触发 (Reached)', 'SMS, App', 'Triggered', 'var(--loss)'),
  ('BTC/USDT', '跌破 (Price <)', '$58,000', '还需要 10.3%', 'Telegram', 'Active', 'var(--text-primary)'),
  ('ETH/USDT', '24H 交易量 >', '$5B', '还需要 $1B', 'App Notification', 'Active', 'var(--text-primary)'),
  ('SOL/USDT', '1小时涨幅 >', '10%', '已触发 (Reached)', 'Email, SMS', 'Triggered', 'var(--gain)'),
  ('SUI/USDT', '价格异常波动 >', '5% / 1m', '未触发 (-2%)', 'DingTalk', 'Active', 'var(--text-primary)'),
  ('AR/USDT', '深度失衡 (Bid/Ask)', '> 5.0', '还需要 1.5', 'Webhook', 'Active', 'var(--text-primary)');`,
	},
}

// EnsureMigrated checks if the 'alerts' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.alerts') IS NOT NULL"
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
