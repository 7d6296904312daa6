package repository

import (
	"testing"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Keys(t *testing.T) {
	s := NewRedisStore(nil, "")
	assert.Equal(t, "records:ambulances", s.hashKey(CollectionAmbulances))
	assert.Equal(t, "records:ambulances:order", s.orderKey(CollectionAmbulances))

	s = NewRedisStore(nil, "mirror")
	assert.Equal(t, "mirror:emergencies", s.hashKey(CollectionEmergencies))
}

func TestDecodeRedisValues(t *testing.T) {
	records, err := decodeRedisValues("things", []any{`{"id":"a"}`, nil, `{"id":"b"}`})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.JSONEq(t, `{"id":"b"}`, string(records[1]))

	_, err = decodeRedisValues("things", []any{`{"id":`})
	assert.ErrorIs(t, err, models.ErrStoreReadCorrupted)

	_, err = decodeRedisValues("things", []any{42})
	assert.ErrorIs(t, err, models.ErrStoreReadCorrupted)
}
