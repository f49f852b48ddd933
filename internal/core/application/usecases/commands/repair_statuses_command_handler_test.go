package commands_test

import (
	"context"
	"errors"
	"testing"

	"fabrication/internal/core/application/usecases/commands"
	"fabrication/internal/core/domain/model/item"
	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type RepairOrderRepo struct{ mock.Mock }

func (m *RepairOrderRepo) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *RepairOrderRepo) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *RepairOrderRepo) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *RepairOrderRepo) GetAllUnfinished(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type RepairItemRepo struct{ mock.Mock }

func (m *RepairItemRepo) Add(ctx context.Context, itm *item.OrderItem) error {
	args := m.Called(ctx, itm)
	return args.Error(0)
}

func (m *RepairItemRepo) Update(ctx context.Context, itm *item.OrderItem) error {
	args := m.Called(ctx, itm)
	return args.Error(0)
}

func (m *RepairItemRepo) Get(ctx context.Context, id kernel.UUID) (*item.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.OrderItem), args.Error(1)
}

func (m *RepairItemRepo) GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*item.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.OrderItem), args.Error(1)
}

type RepairUnitOfWork struct{ mock.Mock }

func (m *RepairUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *RepairUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *RepairUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *RepairUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *RepairUnitOfWork) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type RepairUoWFactory struct{ mock.Mock }

func (m *RepairUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// driftedOrder builds an order stored in Created status whose single item
// has already passed the production gate, so the stored status lags the
// item truth.
func driftedOrder(t *testing.T, number string) (*order.Order, *item.OrderItem) {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), number)
	require.NoError(t, err)

	itm, err := item.NewOrderItem(kernel.NewUUID(), o.ID(), 20)
	require.NoError(t, err)
	require.NoError(t, itm.SetGateStatus(item.GateProduction, item.GateStatusApproved))

	return o, itm
}

// consistentOrder builds an order whose stored status already matches its
// item truth.
func consistentOrder(t *testing.T, number string) (*order.Order, *item.OrderItem) {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), number)
	require.NoError(t, err)

	itm, err := item.NewOrderItem(kernel.NewUUID(), o.ID(), 20)
	require.NoError(t, err)

	return o, itm
}

func expectScan(
	ctx context.Context,
	factory *RepairUoWFactory,
	uow *RepairUnitOfWork,
	orderRepo *RepairOrderRepo,
	unfinished []*order.Order,
) []*mock.Call {
	return []*mock.Call{
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllUnfinished", ctx).Return(unfinished, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	}
}

func expectRepairOne(
	ctx context.Context,
	factory *RepairUoWFactory,
	uow *RepairUnitOfWork,
	orderRepo *RepairOrderRepo,
	itemRepo *RepairItemRepo,
	o *order.Order,
	items []*item.OrderItem,
	expectUpdate bool,
) []*mock.Call {
	calls := []*mock.Call{
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetAllByOrderID", ctx, o.ID()).Return(items, nil).Once(),
	}
	if expectUpdate {
		calls = append(calls,
			orderRepo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
		)
	}
	calls = append(calls, uow.On("Rollback", ctx).Return(nil).Once())
	return calls
}

func TestRepairStatusesCommandHandler_Handle_RepairsDriftedOrders(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRepairStatusesCommand()
	require.NoError(t, err)

	orderA, itemA := driftedOrder(t, "MO-2024-0201")
	orderB, itemB := driftedOrder(t, "MO-2024-0202")
	orderC, itemC := consistentOrder(t, "MO-2024-0203")
	unfinished := []*order.Order{orderA, orderB, orderC}

	orderRepo := new(RepairOrderRepo)
	itemRepo := new(RepairItemRepo)
	uow := new(RepairUnitOfWork)
	factory := new(RepairUoWFactory)

	var calls []*mock.Call
	calls = append(calls, expectScan(ctx, factory, uow, orderRepo, unfinished)...)
	calls = append(calls, expectRepairOne(ctx, factory, uow, orderRepo, itemRepo,
		orderA, []*item.OrderItem{itemA}, true)...)
	calls = append(calls, expectRepairOne(ctx, factory, uow, orderRepo, itemRepo,
		orderB, []*item.OrderItem{itemB}, true)...)
	calls = append(calls, expectRepairOne(ctx, factory, uow, orderRepo, itemRepo,
		orderC, []*item.OrderItem{itemC}, false)...)
	mock.InOrder(calls...)

	handler := commands.NewRepairStatusesCommandHandler(factory)
	report, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, 2, report.Repaired)
	assert.Empty(t, report.Errors)
	assert.Equal(t, order.ProductionApproved, orderA.Status())
	assert.Equal(t, order.ProductionApproved, orderB.Status())
	assert.Equal(t, order.Created, orderC.Status())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)

	// A second pass over the repaired orders finds nothing to fix.
	orderRepo2 := new(RepairOrderRepo)
	itemRepo2 := new(RepairItemRepo)
	uow2 := new(RepairUnitOfWork)
	factory2 := new(RepairUoWFactory)

	calls = calls[:0]
	calls = append(calls, expectScan(ctx, factory2, uow2, orderRepo2, unfinished)...)
	calls = append(calls, expectRepairOne(ctx, factory2, uow2, orderRepo2, itemRepo2,
		orderA, []*item.OrderItem{itemA}, false)...)
	calls = append(calls, expectRepairOne(ctx, factory2, uow2, orderRepo2, itemRepo2,
		orderB, []*item.OrderItem{itemB}, false)...)
	calls = append(calls, expectRepairOne(ctx, factory2, uow2, orderRepo2, itemRepo2,
		orderC, []*item.OrderItem{itemC}, false)...)
	mock.InOrder(calls...)

	handler2 := commands.NewRepairStatusesCommandHandler(factory2)
	report, err = handler2.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, 0, report.Repaired)
	assert.Empty(t, report.Errors)
	factory2.AssertExpectations(t)
	uow2.AssertExpectations(t)
	orderRepo2.AssertExpectations(t)
	itemRepo2.AssertExpectations(t)
}

func TestRepairStatusesCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RepairStatusesCommand{} // not constructed properly
	factory := new(RepairUoWFactory)

	handler := commands.NewRepairStatusesCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewRepairStatusesCommand constructor")
}

func TestRepairStatusesCommandHandler_Handle_ListError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRepairStatusesCommand()
	require.NoError(t, err)

	orderRepo := new(RepairOrderRepo)
	uow := new(RepairUnitOfWork)
	factory := new(RepairUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllUnfinished", ctx).Return(nil, errors.New("listing failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRepairStatusesCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing failed")
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestRepairStatusesCommandHandler_Handle_OneFailureDoesNotStopScan(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRepairStatusesCommand()
	require.NoError(t, err)

	orderA, _ := driftedOrder(t, "MO-2024-0301")
	orderB, itemB := driftedOrder(t, "MO-2024-0302")
	unfinished := []*order.Order{orderA, orderB}

	orderRepo := new(RepairOrderRepo)
	itemRepo := new(RepairItemRepo)
	uow := new(RepairUnitOfWork)
	factory := new(RepairUoWFactory)

	var calls []*mock.Call
	calls = append(calls, expectScan(ctx, factory, uow, orderRepo, unfinished)...)
	calls = append(calls,
		// first order fails on re-read and is reported, not fatal
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderA.ID()).Return(nil, errors.New("row lock timeout")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	calls = append(calls, expectRepairOne(ctx, factory, uow, orderRepo, itemRepo,
		orderB, []*item.OrderItem{itemB}, true)...)
	mock.InOrder(calls...)

	handler := commands.NewRepairStatusesCommandHandler(factory)
	report, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 1, report.Repaired)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "MO-2024-0301")
	assert.Contains(t, report.Errors[0], "row lock timeout")
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
}
