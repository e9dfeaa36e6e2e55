package commands_test

import (
	"context"
	"testing"

	"github.com/sTingley/ProcurementOrderManager/internal/core/application/usecases/commands"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/events"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/auditor"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/dispute"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/product"
	"github.com/sTingley/ProcurementOrderManager/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, catalogID uint64, p *product.Product) (uint64, error) {
	args := m.Called(ctx, catalogID, p)
	return args.Get(0).(uint64), args.Error(1)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id uint64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) ExistsInCatalog(ctx context.Context, catalogID, productID uint64) (bool, error) {
	args := m.Called(ctx, catalogID, productID)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (uint64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(uint64), args.Error(1)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDisputeRepository struct{ mock.Mock }

func (m *MockDisputeRepository) Add(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDisputeRepository) Update(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDisputeRepository) Get(ctx context.Context, orderID uint64) (*dispute.Dispute, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

type MockAuditorRepository struct{ mock.Mock }

func (m *MockAuditorRepository) Add(ctx context.Context, a *auditor.Auditor) (uint64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(uint64), args.Error(1)
}
func (m *MockAuditorRepository) Update(ctx context.Context, a *auditor.Auditor) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAuditorRepository) GetByPrincipal(ctx context.Context, p kernel.PrincipalID) (*auditor.Auditor, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auditor.Auditor), args.Error(1)
}
func (m *MockAuditorRepository) GetAll(ctx context.Context) ([]*auditor.Auditor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auditor.Auditor), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	args := m.Called(ctx, evts)
	return args.Error(0)
}

type MockCatalogReference struct{ mock.Mock }

func (m *MockCatalogReference) Active(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}
func (m *MockCatalogReference) Rebind(ctx context.Context, catalogID uint64) error {
	args := m.Called(ctx, catalogID)
	return args.Error(0)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCatalogUoW struct{ mockTx }

func (m *MockCatalogUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockCatalogUoW) CatalogReference() ports.CatalogReference {
	args := m.Called()
	return args.Get(0).(ports.CatalogReference)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockOrderUoW) CatalogReference() ports.CatalogReference {
	args := m.Called()
	return args.Get(0).(ports.CatalogReference)
}
func (m *MockOrderUoW) EventPublisher() ports.EventPublisher {
	args := m.Called()
	return args.Get(0).(ports.EventPublisher)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDisputeUoW struct{ mockTx }

func (m *MockDisputeUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockDisputeUoW) DisputeRepository() ports.DisputeRepository {
	args := m.Called()
	return args.Get(0).(ports.DisputeRepository)
}
func (m *MockDisputeUoW) AuditorRepository() ports.AuditorRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditorRepository)
}
func (m *MockDisputeUoW) EventPublisher() ports.EventPublisher {
	args := m.Called()
	return args.Get(0).(ports.EventPublisher)
}

type MockDisputeUoWFactory struct{ mock.Mock }

func (m *MockDisputeUoWFactory) Create() commands.DisputeUoW {
	args := m.Called()
	return args.Get(0).(commands.DisputeUoW)
}

type MockAuditorUoW struct{ mockTx }

func (m *MockAuditorUoW) AuditorRepository() ports.AuditorRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditorRepository)
}

type MockAuditorUoWFactory struct{ mock.Mock }

func (m *MockAuditorUoWFactory) Create() commands.AuditorUoW {
	args := m.Called()
	return args.Get(0).(commands.AuditorUoW)
}

// fixtures shared across the handler tests

func mustLineItems(t *testing.T, pairs ...[2]uint64) []order.LineItem {
	t.Helper()
	items := make([]order.LineItem, 0, len(pairs))
	for _, p := range pairs {
		item, err := order.NewLineItem(p[0], p[1])
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func restoreTestOrder(t *testing.T, id uint64, buyer, seller kernel.PrincipalID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, buyer, seller, mustLineItems(t, [2]uint64{1, 1}), "standard", status)
	require.NoError(t, err)
	return o
}

func restoreTestAuditor(t *testing.T, p kernel.PrincipalID, seq, assignments uint64) *auditor.Auditor {
	t.Helper()
	a, err := auditor.RestoreAuditor(p, true, seq, assignments)
	require.NoError(t, err)
	return a
}
