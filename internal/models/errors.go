package models

import "errors"

var (
	// ErrNoHospitalsFound - в хранилище нет ни одной больницы
	ErrNoHospitalsFound = errors.New("no hospitals found")
	// ErrNoAvailableAmbulance - больницы есть, но свободных машин нет
	ErrNoAvailableAmbulance = errors.New("no available ambulances found")
	// ErrAmbulanceConflict - машину успели назначить на другой вызов
	ErrAmbulanceConflict = errors.New("ambulance is no longer available")
	// ErrStoreReadCorrupted - хранилище не читается или повреждено
	ErrStoreReadCorrupted = errors.New("store is unreadable or corrupted")
	// ErrStoreWriteFailed - не удалось сохранить локальное изменение
	ErrStoreWriteFailed = errors.New("store write failed")
	// ErrRecordNotFound - записи с таким идентификатором нет
	ErrRecordNotFound = errors.New("record not found")
)
