package services

import (
	"context"
	"testing"

	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_Disabled(t *testing.T) {
	_, err := NewHistoryService(nil).List(context.Background(), 10, 0)
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}

func TestHistoryService_LimitsAndPaging(t *testing.T) {
	store := &fakeStore{}
	for i := 0; i < 5; i++ {
		store.saved = append(store.saved, models.PredictionLog{ID: uuid.New()})
	}
	svc := NewHistoryService(store)

	page, err := svc.List(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, store.saved[1].ID, page.Items[0].ID)

	page, err = svc.List(context.Background(), 0, -3)
	require.NoError(t, err)
	assert.Equal(t, DefaultHistoryLimit, page.Limit)
	assert.Equal(t, 0, page.Offset)

	_, err = svc.List(context.Background(), 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, MaxHistoryLimit, store.limit)
}

func TestHistoryService_StoreError(t *testing.T) {
	_, err := NewHistoryService(&fakeStore{listErr: errBoom}).List(context.Background(), 10, 0)
	assert.ErrorIs(t, err, errBoom)
}

func TestHistoryService_EmptyItemsNotNil(t *testing.T) {
	page, err := NewHistoryService(&fakeStore{}).List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
}
