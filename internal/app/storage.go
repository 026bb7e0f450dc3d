package app

import (
	"fmt"

	"github.com/adanyl0v/go-task-manager/internal/config"
	"github.com/adanyl0v/go-task-manager/internal/services"
	"github.com/adanyl0v/go-task-manager/internal/storage/memory"
	"github.com/adanyl0v/go-task-manager/internal/storage/postgres"
)

var (
	globalUserStore services.UserStore
	globalTaskStore services.TaskStore
)

// MustInitStorage opens the store selected by STORAGE_DRIVER.
func MustInitStorage() {
	driver := config.Global().Storage.Driver
	switch driver {
	case config.StorageDriverPostgres:
		MustConnectPostgres()
		globalUserStore = postgres.NewUserStore(globalPostgresPool)
		globalTaskStore = postgres.NewTaskStore(globalPostgresPool)
	case config.StorageDriverMemory:
		store := memory.New()
		globalUserStore = store
		globalTaskStore = store
		globalLogger.Warn().Msg("using in-memory storage, data will not survive a restart")
	default:
		globalLogger.Error().
			Str("driver", driver).
			Msg("unknown storage driver")
		panic(fmt.Errorf("unknown storage driver: %s", driver))
	}
	globalLogger.Info().
		Str("driver", driver).
		Msg("initialized storage")
}

func CloseStorage() {
	if globalPostgresPool != nil {
		DisconnectPostgres()
	}
}
