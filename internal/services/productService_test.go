package services

import (
	"context"
	"testing"

	"github.com/arzan03/DrugHouse/internal/events"
	"github.com/arzan03/DrugHouse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddViewsAccumulates(t *testing.T) {
	products := &memProducts{}
	id := products.addProduct(false)
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, events.SubjectProductViewed, mock.Anything).Return(nil).Twice()
	svc := NewProductService(products, pub, nil, nil)

	require.NoError(t, svc.AddViews(context.Background(), id.Hex(), 5))
	p, err := svc.GetByID(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, float64(5), p.Views)

	require.NoError(t, svc.AddViews(context.Background(), id.Hex(), 3))
	p, err = svc.GetByID(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, float64(8), p.Views)
	pub.AssertExpectations(t)
}

func TestAddViewsNegativeDelta(t *testing.T) {
	products := &memProducts{}
	id := products.addProduct(false)
	svc := NewProductService(products, nil, nil, nil)

	require.NoError(t, svc.AddViews(context.Background(), id.Hex(), 4))
	require.NoError(t, svc.AddViews(context.Background(), id.Hex(), -1))

	p, err := svc.GetByID(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, float64(3), p.Views)
}

func TestAddViewsMissingProduct(t *testing.T) {
	svc := NewProductService(&memProducts{}, nil, nil, nil)

	err := svc.AddViews(context.Background(), "64b7f0f0f0f0f0f0f0f0f0f0", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = svc.AddViews(context.Background(), "xyz", 1)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestGetProductIsStable(t *testing.T) {
	products := &memProducts{}
	id := products.addProduct(false)
	svc := NewProductService(products, nil, nil, nil)

	a, err := svc.GetByID(context.Background(), id.Hex())
	require.NoError(t, err)
	b, err := svc.GetByID(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = svc.GetByID(context.Background(), "64b7f0f0f0f0f0f0f0f0f0f0")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListProductsSkipsBannedNewestFirst(t *testing.T) {
	products := &memProducts{}
	for i := 0; i < 40; i++ {
		products.addProduct(i%4 == 0)
	}
	newest := products.addProduct(false)
	svc := NewProductService(products, nil, nil, nil)

	p, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(31), p.Total)
	assert.Equal(t, int64(2), p.TotalPages)
	require.Len(t, p.Items, models.PageSize)
	assert.Equal(t, newest, p.Items[0].ID)
	for _, item := range p.Items {
		assert.False(t, item.IsBanned)
	}

	p, err = svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, p.Items, 1)
}
