//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestProvider mirrors a provider row as the profile service would sync it.
func CreateTestProvider(t *testing.T, db DBLike, id int64, name string, priceCents int64, active bool) int64 {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO providers (id, display_name, price_cents, is_active) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET display_name = EXCLUDED.display_name,
		    price_cents = EXCLUDED.price_cents, is_active = EXCLUDED.is_active`,
		id, name, priceCents, active)
	require.NoError(t, err)

	return id
}

// SeedWeekdayTemplate opens Monday to Friday between start and end ("HH:MM")
// and closes the weekend.
func SeedWeekdayTemplate(t *testing.T, db DBLike, providerID int64, start, end string) {
	t.Helper()

	ctx := context.Background()
	for day := 0; day <= 6; day++ {
		active := day >= 1 && day <= 5
		_, err := db.Exec(ctx, `
			INSERT INTO availability_templates (provider_id, day_of_week, is_active, start_time, end_time)
			VALUES ($1, $2, $3, $4::time, $5::time)
			ON CONFLICT (provider_id, day_of_week) DO UPDATE SET is_active = EXCLUDED.is_active,
			    start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time`,
			providerID, day, active, start, end)
		require.NoError(t, err)
	}
}

// CountBookings counts bookings in the given slot regardless of status.
func CountBookings(t *testing.T, db DBLike, providerID int64, date, slot string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `
		SELECT count(*) FROM bookings
		WHERE provider_id = $1 AND booking_date = $2::date AND slot_time = $3::time`,
		providerID, date, slot).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO providers (id, display_name, price_cents, is_active) VALUES
		    (7, 'Dr. Achieng Otieno', 350000, true),
		    (8, 'Dr. Brian Kamau', 300000, false)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
