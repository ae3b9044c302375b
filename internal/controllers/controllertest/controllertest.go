// Package controllertest builds controllers over a migrated sqlite file
// for tests.
package controllertest

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"clubmanager/config"
	"clubmanager/internal/controllers"
	"clubmanager/internal/database"
	"clubmanager/internal/events"

	"github.com/stretchr/testify/require"
)

// Now is the fixed clock controllers see in tests.
var Now = time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC)

// Env is one test database with the services around it.
type Env struct {
	DB       database.DB
	EventBus *events.EventBus
	Services controllers.Services

	mu     sync.Mutex
	events []events.Event
}

func New(t *testing.T) *Env {
	t.Helper()

	cfg := config.Config{
		DatabaseDriver: config.DriverSQLite,
		DatabaseDbPath: filepath.Join(t.TempDir(), "club.db"),
	}

	db, err := database.New(cfg)
	require.NoError(t, err)

	_, err = db.MigrateUp()
	require.NoError(t, err)

	eventBus := events.New(nil, cfg)
	t.Cleanup(func() {
		_ = eventBus.Close()
		_ = db.Close()
	})

	env := &Env{DB: db, EventBus: eventBus}

	env.Services = controllers.NewServices(db, eventBus)
	env.Services.Now = func() time.Time { return Now }

	eventBus.Subscribe(events.ActivityChannel, func(event events.Event) {
		env.mu.Lock()
		defer env.mu.Unlock()
		env.events = append(env.events, event)
	})

	return env
}

// Events returns the activity events published so far.
func (e *Env) Events() []events.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]events.Event(nil), e.events...)
}
