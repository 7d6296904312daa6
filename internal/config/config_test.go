package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv убирает переменную на время теста и восстанавливает её после
func unsetEnv(t *testing.T, keys ...string) {
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // без .env
	unsetEnv(t, "STORE_BACKEND", "LEDGER_BACKEND", "LOCK_BACKEND", "LEDGER_TIMEOUT",
		"DISPATCH_MAX_ATTEMPTS", "NEAREST_HOSPITAL_LIMIT", "WEBHOOK_URL", "HTTP_PORT")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreFile, cfg.StoreBackend)
	assert.Equal(t, LedgerLevelDB, cfg.LedgerBackend)
	assert.Equal(t, LockMemory, cfg.LockBackend)
	assert.Equal(t, 10*time.Second, cfg.LedgerTimeout)
	assert.Equal(t, 3, cfg.DispatchMaxAttempts)
	assert.Equal(t, 5, cfg.NearestHospitalLimit)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.False(t, cfg.NeedsRedis())
}

func TestLoadConfig_EmptyBackendRejected(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORE_BACKEND", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORE_BACKEND", StoreRedis)
	t.Setenv("LEDGER_BACKEND", LedgerLevelDB)
	t.Setenv("LOCK_BACKEND", LockRedis)
	t.Setenv("LEDGER_TIMEOUT", "3s")
	t.Setenv("DISPATCH_MAX_ATTEMPTS", "5")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreRedis, cfg.StoreBackend)
	assert.Equal(t, 3*time.Second, cfg.LedgerTimeout)
	assert.Equal(t, 5, cfg.DispatchMaxAttempts)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 0, cfg.RedisDB, "некорректное число заменяется значением по умолчанию")
	assert.True(t, cfg.NeedsRedis())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "postgres без DATABASE_URL",
			cfg:     Config{StoreBackend: StorePostgres, LedgerBackend: LedgerLevelDB, LockBackend: LockMemory},
			wantErr: "DATABASE_URL",
		},
		{
			name:    "node без LEDGER_NODE_URL",
			cfg:     Config{StoreBackend: StoreFile, LedgerBackend: LedgerNode, LockBackend: LockMemory},
			wantErr: "LEDGER_NODE_URL",
		},
		{
			name:    "неизвестный бэкенд блокировок",
			cfg:     Config{StoreBackend: StoreFile, LedgerBackend: LedgerLevelDB, LockBackend: "etcd"},
			wantErr: "LOCK_BACKEND",
		},
		{
			name: "корректная конфигурация",
			cfg:  Config{StoreBackend: StoreMemory, LedgerBackend: LedgerLevelDB, LockBackend: LockMemory},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, 1, tc.cfg.DispatchMaxAttempts)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

// chdir меняет рабочую директорию на время теста и восстанавливает её после
// (аналог t.Chdir из Go 1.24 для текущего тулчейна)
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
