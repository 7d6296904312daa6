package service

import (
	"context"
	"time"

	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/ledger"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/notify"
	"github.com/sirupsen/logrus"
)

// DispatchRepository определяет контракт для хранения больниц, машин и ответов
type DispatchRepository interface {
	ListHospitals(ctx context.Context) ([]*models.Hospital, error)
	ListAmbulances(ctx context.Context) ([]*models.Ambulance, error)
	GetAmbulance(ctx context.Context, id string) (*models.Ambulance, error)
	SaveHospital(ctx context.Context, hospital *models.Hospital, anchorID string) error
	SaveAmbulance(ctx context.Context, ambulance *models.Ambulance, anchorID string) error
	SaveResponse(ctx context.Context, response *models.EmergencyResponse) error
	MirrorResponse(ctx context.Context, response *models.EmergencyResponse) error
	GetResponse(ctx context.Context, requestID string) (*models.EmergencyResponse, error)
}

// LedgerAnchor - реестр, в котором подтверждаются назначения и регистрации
type LedgerAnchor interface {
	Submit(ctx context.Context, tag string, payload []byte) (string, error)
	Fetch(ctx context.Context, anchorID string) (*ledger.Block, error)
}

// Locker даёт исключительный доступ по ключу; возвращённую функцию нужно вызвать для освобождения
type Locker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

// DispatchService определяет контракт бизнес-логики диспетчеризации
type DispatchService interface {
	Dispatch(ctx context.Context, request *models.EmergencyRequest) (*models.EmergencyResponse, error)
	GetResponse(ctx context.Context, requestID string) (*models.EmergencyResponse, error)
	NearestHospitals(ctx context.Context, point models.Location, limit int) ([]models.HospitalWithDistance, error)
	AvailableAmbulances(ctx context.Context, hospitalID string) ([]*models.Ambulance, error)
	RegisterHospital(ctx context.Context, hospital *models.Hospital) (string, error)
	RegisterAmbulance(ctx context.Context, ambulance *models.Ambulance) (string, error)
	ListHospitals(ctx context.Context) ([]*models.Hospital, error)
	AnchorRecord(ctx context.Context, tag string, payload []byte) (string, error)
	GetLedgerBlock(ctx context.Context, anchorID string) (*ledger.Block, error)
}

const (
	defaultLedgerTimeout = 10 * time.Second
	defaultLockTimeout   = 30 * time.Second
)

type dispatchService struct {
	repo      DispatchRepository
	ledger    LedgerAnchor
	locker    Locker
	publisher notify.Publisher
	logger    *logrus.Logger

	ledgerTimeout time.Duration
	lockTimeout   time.Duration
	maxAttempts   int
	nearestLimit  int
	now           func() time.Time
}

func NewDispatchService(
	repo DispatchRepository,
	anchor LedgerAnchor,
	locker Locker,
	publisher notify.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) DispatchService {
	if publisher == nil {
		publisher = notify.NopPublisher{}
	}
	maxAttempts := cfg.DispatchMaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	nearestLimit := cfg.NearestHospitalLimit
	if nearestLimit < 1 {
		nearestLimit = defaultNearestLimit
	}
	ledgerTimeout := cfg.LedgerTimeout
	if ledgerTimeout <= 0 {
		ledgerTimeout = defaultLedgerTimeout
	}
	lockTimeout := cfg.LockTTL
	if lockTimeout <= 0 {
		lockTimeout = defaultLockTimeout
	}
	return &dispatchService{
		repo:          repo,
		ledger:        anchor,
		locker:        locker,
		publisher:     publisher,
		logger:        logger,
		ledgerTimeout: ledgerTimeout,
		lockTimeout:   lockTimeout,
		maxAttempts:   maxAttempts,
		nearestLimit:  nearestLimit,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// timestamp - текущее время с точностью до секунды, как в записях реестра
func (s *dispatchService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Second)
}
