package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	return &config.Config{
		StoreBackend:         config.StoreFile,
		DataDir:              filepath.Join(root, "primary"),
		MirrorDir:            filepath.Join(root, "data"),
		LedgerBackend:        config.LedgerLevelDB,
		LedgerPath:           filepath.Join(root, "ledger_db"),
		LedgerTimeout:        time.Second,
		LockBackend:          config.LockMemory,
		LockTTL:              time.Second,
		DispatchMaxAttempts:  3,
		NearestHospitalLimit: 5,
	}
}

func TestBuild_FileBackendReadsMirrorWhenPrimaryIsEmpty(t *testing.T) {
	// Подготовка: пустой каталог основного кеша и заполненное вторичное представление
	cfg := fileConfig(t)
	require.NoError(t, os.MkdirAll(cfg.DataDir, 0o755))
	require.NoError(t, os.MkdirAll(cfg.MirrorDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.MirrorDir, "hospitals.json"),
		[]byte(`[{"id":"h1","name":"City","location":{"latitude":0,"longitude":0}}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.MirrorDir, "ambulances.json"),
		[]byte(`[{"id":"a1","hospital_id":"h1","current_status":"Available"},{"id":"a2","hospital_id":"h1","current_status":"Available"}]`), 0o644))

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	ctx := context.Background()

	a, err := Build(ctx, cfg, logger)
	require.NoError(t, err)
	defer a.Close()

	// Действие
	first, err := a.Service.Dispatch(ctx, &models.EmergencyRequest{
		RequestID:    "r1",
		UserID:       "u1",
		UserLocation: models.Location{Latitude: 0, Longitude: 0.01},
	})
	require.NoError(t, err)

	second, err := a.Service.Dispatch(ctx, &models.EmergencyRequest{
		RequestID:    "r2",
		UserID:       "u2",
		UserLocation: models.Location{Latitude: 0, Longitude: 0.01},
	})
	require.NoError(t, err)

	repeated, err := a.Service.Dispatch(ctx, &models.EmergencyRequest{
		RequestID:    "r1",
		UserID:       "u1",
		UserLocation: models.Location{Latitude: 0, Longitude: 0.01},
	})
	require.NoError(t, err)

	// Проверки
	assert.Equal(t, "h1", first.HospitalID)
	assert.ElementsMatch(t, []string{"a1", "a2"}, []string{first.AmbulanceID, second.AmbulanceID})
	assert.Equal(t, first.AmbulanceID, repeated.AmbulanceID)
	assert.Equal(t, first.BlockchainTxID, repeated.BlockchainTxID)

	_, err = a.Service.Dispatch(ctx, &models.EmergencyRequest{
		RequestID:    "r3",
		UserID:       "u3",
		UserLocation: models.Location{Latitude: 0, Longitude: 0.01},
	})
	assert.ErrorIs(t, err, models.ErrNoAvailableAmbulance)
}

func TestBuild_MemoryBackend(t *testing.T) {
	cfg := fileConfig(t)
	cfg.StoreBackend = config.StoreMemory
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	a, err := Build(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Service.Dispatch(context.Background(), &models.EmergencyRequest{RequestID: "r1"})
	assert.ErrorIs(t, err, models.ErrNoHospitalsFound)
	assert.Nil(t, a.RedisClient)
}
