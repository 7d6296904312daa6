package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

var _ RecordStore = (*FileStore)(nil)

// FileCollection описывает, в каком файле лежит коллекция и по какому полю искать ключ.
// KeyPath - путь через точку, например "ambulance.ambulance_id".
type FileCollection struct {
	File    string
	KeyPath string
}

// PrimaryFileCollections - раскладка основного кеша записей, подтверждённых в реестре
var PrimaryFileCollections = map[string]FileCollection{
	CollectionHospitals:  {File: "blockchain_hospitals.json", KeyPath: "hospital.hospital_id"},
	CollectionAmbulances: {File: "blockchain_ambulances.json", KeyPath: "ambulance.ambulance_id"},
	CollectionResponses:  {File: "blockchain_emergencies.json", KeyPath: "request_id"},
}

// MirrorFileCollections - раскладка вторичного представления, которое читают другие сервисы
var MirrorFileCollections = map[string]FileCollection{
	CollectionHospitals:   {File: "hospitals.json", KeyPath: "id"},
	CollectionAmbulances:  {File: "ambulances.json", KeyPath: "id"},
	CollectionResponses:   {File: "emergency_responses.json", KeyPath: "request_id"},
	CollectionEmergencies: {File: "emergencies.json", KeyPath: "id"},
}

// FileStore хранит каждую коллекцию как JSON-массив в отдельном файле.
// Запись идёт через временный файл и rename, поэтому файл не бывает записан наполовину.
type FileStore struct {
	dir         string
	collections map[string]FileCollection
	logger      *logrus.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileStore(dir string, collections map[string]FileCollection, logger *logrus.Logger) *FileStore {
	return &FileStore{
		dir:         dir,
		collections: collections,
		logger:      logger,
		locks:       make(map[string]*sync.Mutex),
	}
}

func (s *FileStore) layout(collection string) FileCollection {
	if c, ok := s.collections[collection]; ok {
		return c
	}
	return FileCollection{File: collection + ".json", KeyPath: "id"}
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, s.layout(collection).File)
}

func (s *FileStore) lockFor(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// readAll читает файл коллекции. Отсутствующий файл - пустая коллекция,
// нечитаемый JSON - ErrStoreReadCorrupted.
func (s *FileStore) readAll(collection string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read %s: %v: %w", s.path(collection), err, models.ErrStoreReadCorrupted)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []json.RawMessage{}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %v: %w", s.path(collection), err, models.ErrStoreReadCorrupted)
	}
	return records, nil
}

func (s *FileStore) List(_ context.Context, collection string) ([]json.RawMessage, error) {
	return s.readAll(collection)
}

func (s *FileStore) Get(_ context.Context, collection, id string) (json.RawMessage, error) {
	records, err := s.readAll(collection)
	if err != nil {
		return nil, err
	}
	keyPath := s.layout(collection).KeyPath
	for _, raw := range records {
		if key, ok := extractKey(raw, keyPath); ok && key == id {
			return raw, nil
		}
	}
	return nil, fmt.Errorf("%s/%s: %w", collection, id, models.ErrRecordNotFound)
}

// Upsert перезаписывает файл коллекции целиком. Повреждённый файл заменяется новым.
func (s *FileStore) Upsert(_ context.Context, collection, id string, payload json.RawMessage) error {
	if !json.Valid(payload) {
		return fmt.Errorf("%s/%s: invalid json payload: %w", collection, id, models.ErrStoreWriteFailed)
	}

	l := s.lockFor(collection)
	l.Lock()
	defer l.Unlock()

	records, err := s.readAll(collection)
	if err != nil {
		s.logger.WithError(err).WithField("collection", collection).
			Warn("Collection file is corrupted, starting fresh")
		records = []json.RawMessage{}
	}

	keyPath := s.layout(collection).KeyPath
	replaced := false
	for i, raw := range records {
		if key, ok := extractKey(raw, keyPath); ok && key == id {
			records[i] = payload
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, payload)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %v: %w", collection, err, models.ErrStoreWriteFailed)
	}
	if err := writeFileAtomic(s.path(collection), data); err != nil {
		return fmt.Errorf("write %s: %v: %w", collection, err, models.ErrStoreWriteFailed)
	}
	return nil
}

func (s *FileStore) Exists(_ context.Context, collection string) (bool, error) {
	_, err := os.Stat(s.path(collection))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Init создаёт пустые файлы для коллекций, которых ещё нет на диске
func (s *FileStore) Init(collections ...string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	for _, name := range collections {
		ok, err := s.Exists(context.Background(), name)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if err := writeFileAtomic(s.path(name), []byte("[]")); err != nil {
			return fmt.Errorf("init %s: %w", name, err)
		}
		s.logger.WithField("collection", name).Info("Created empty collection file")
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // после успешного rename файла уже нет

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// extractKey достаёт строковое поле по пути через точку
func extractKey(raw json.RawMessage, keyPath string) (string, bool) {
	var node any
	if err := json.Unmarshal(raw, &node); err != nil {
		return "", false
	}
	for _, part := range strings.Split(keyPath, ".") {
		obj, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = obj[part]
		if !ok {
			return "", false
		}
	}
	key, ok := node.(string)
	return key, ok
}
