package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/catalog"
	"github.com/inventorydb/backend/internal/domain/inventory"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/infrastructure/telemetry"
	"github.com/inventorydb/backend/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

// MockInventoryRepository is a mock implementation of InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Create(ctx context.Context, inv *inventory.Inventory) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, inv *inventory.Inventory) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockInventoryRepository) FindAll(ctx context.Context, filter inventory.Filter) ([]*inventory.Inventory, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *inventory.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepository) FindByInventory(ctx context.Context, inventoryID uuid.UUID) ([]*inventory.Transaction, error) {
	args := m.Called(ctx, inventoryID)
	return args.Get(0).([]*inventory.Transaction), args.Error(1)
}

// MockProductRepository only answers FindByID
type MockProductRepository struct {
	catalog.ProductRepository
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

type fixture struct {
	svc          *InventoryService
	products     *MockProductRepository
	inventories  *MockInventoryRepository
	transactions *MockTransactionRepository
}

func newFixture() *fixture {
	f := &fixture{
		products:     new(MockProductRepository),
		inventories:  new(MockInventoryRepository),
		transactions: new(MockTransactionRepository),
	}
	scope := &testutil.StaticScope{
		ProductRepo:     f.products,
		InventoryRepo:   f.inventories,
		TransactionRepo: f.transactions,
	}
	f.svc = NewInventoryService(scope, zap.NewNop())
	return f
}

func TestInventoryService_Create(t *testing.T) {
	ctx := context.Background()
	product, err := catalog.NewProduct("Saw", "SAW-1", nil, decimal.NewFromInt(5), uuid.New())
	require.NoError(t, err)

	t.Run("creates for existing product", func(t *testing.T) {
		f := newFixture()
		f.products.On("FindByID", mock.Anything, product.ID).Return(product, nil).Once()
		f.inventories.On("Create", mock.Anything, mock.AnythingOfType("*inventory.Inventory")).Return(nil).Once()

		resp, err := f.svc.Create(ctx, CreateInventoryInput{ProductID: product.ID, Country: "de", Quantity: 4})
		require.NoError(t, err)
		assert.Equal(t, "DE", resp.Country)
		assert.Equal(t, 4, resp.Quantity)
		assert.Empty(t, resp.Transactions)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newFixture()
		missing := uuid.New()
		f.products.On("FindByID", mock.Anything, missing).Return(nil, shared.ErrNotFound).Once()

		_, err := f.svc.Create(ctx, CreateInventoryInput{ProductID: missing, Country: "DE"})
		assert.EqualError(t, err, "Product with identifier "+missing.String()+" not found")
		f.inventories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("negative quantity", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Create(ctx, CreateInventoryInput{ProductID: product.ID, Country: "DE", Quantity: -1})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestInventoryService_RecordTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("adjusts quantity", func(t *testing.T) {
		inv, err := inventory.NewInventory(uuid.New(), "US", 10)
		require.NoError(t, err)
		f := newFixture()
		f.inventories.On("FindByIDForUpdate", mock.Anything, inv.ID).Return(inv, nil).Once()
		f.transactions.On("Create", mock.Anything, mock.MatchedBy(func(tx *inventory.Transaction) bool {
			return tx.InventoryID == inv.ID && tx.Quantity == -3
		})).Return(nil).Once()
		f.inventories.On("Update", mock.Anything, inv).Return(nil).Once()

		resp, err := f.svc.RecordTransaction(ctx, RecordTransactionInput{InventoryID: inv.ID, Quantity: -3})
		require.NoError(t, err)
		assert.Equal(t, -3, resp.Quantity)
		require.NotNil(t, resp.Balance)
		assert.Equal(t, 7, *resp.Balance)
		f.inventories.AssertExpectations(t)
		f.transactions.AssertExpectations(t)
	})

	t.Run("insufficient stock persists nothing", func(t *testing.T) {
		inv, err := inventory.NewInventory(uuid.New(), "US", 2)
		require.NoError(t, err)
		f := newFixture()
		f.inventories.On("FindByIDForUpdate", mock.Anything, inv.ID).Return(inv, nil).Once()

		_, err = f.svc.RecordTransaction(ctx, RecordTransactionInput{InventoryID: inv.ID, Quantity: -3})
		assert.ErrorIs(t, err, shared.ErrBadRequest)
		assert.Equal(t, 2, inv.Quantity)
		f.transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.inventories.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("zero quantity", func(t *testing.T) {
		inv, err := inventory.NewInventory(uuid.New(), "US", 2)
		require.NoError(t, err)
		f := newFixture()
		f.inventories.On("FindByIDForUpdate", mock.Anything, inv.ID).Return(inv, nil).Once()

		_, err = f.svc.RecordTransaction(ctx, RecordTransactionInput{InventoryID: inv.ID, Quantity: 0})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("unknown inventory", func(t *testing.T) {
		f := newFixture()
		id := uuid.New()
		f.inventories.On("FindByIDForUpdate", mock.Anything, id).Return(nil, shared.ErrNotFound).Once()

		_, err := f.svc.RecordTransaction(ctx, RecordTransactionInput{InventoryID: id, Quantity: 1})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestInventoryService_ListTransactions(t *testing.T) {
	ctx := context.Background()
	inv, err := inventory.NewInventory(uuid.New(), "US", 0)
	require.NoError(t, err)
	first, err := inv.Record(5)
	require.NoError(t, err)
	second, err := inv.Record(-1)
	require.NoError(t, err)

	f := newFixture()
	f.inventories.On("FindByID", mock.Anything, inv.ID).Return(inv, nil).Once()
	f.transactions.On("FindByInventory", mock.Anything, inv.ID).
		Return([]*inventory.Transaction{first, second}, nil).Once()

	history, err := f.svc.ListTransactions(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 5, history[0].Quantity)
	assert.Nil(t, history[0].Balance)
}

func TestInventoryService_Delete(t *testing.T) {
	ctx := context.Background()
	inv, err := inventory.NewInventory(uuid.New(), "US", 0)
	require.NoError(t, err)

	f := newFixture()
	f.inventories.On("FindByID", mock.Anything, inv.ID).Return(inv, nil).Once()
	f.inventories.On("Delete", mock.Anything, inv.ID).Return(nil).Once()

	require.NoError(t, f.svc.Delete(ctx, inv.ID))
	f.inventories.AssertExpectations(t)
}

func TestInventoryService_RecordTransaction_BusinessMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	bm, err := telemetry.NewBusinessMetrics(provider.Meter("test"), nil, zap.NewNop())
	require.NoError(t, err)

	inv, err := inventory.NewInventory(uuid.New(), "DE", 5)
	require.NoError(t, err)
	f := newFixture()
	f.svc.SetBusinessMetrics(bm)
	f.inventories.On("FindByIDForUpdate", mock.Anything, inv.ID).Return(inv, nil)
	f.transactions.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.inventories.On("Update", mock.Anything, inv).Return(nil)

	_, err = f.svc.RecordTransaction(context.Background(), RecordTransactionInput{InventoryID: inv.ID, Quantity: -2})
	require.NoError(t, err)
	_, err = f.svc.RecordTransaction(context.Background(), RecordTransactionInput{InventoryID: inv.ID, Quantity: -9})
	require.ErrorIs(t, err, shared.ErrBadRequest)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var units int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "inventory_units_moved_total" {
				for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
					units += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(2), units, "rejected transactions are not counted")
}
