package commands

import (
	"context"
	"fmt"

	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/core/domain/services"
	"fabrication/internal/pkg/errs"
)

// RepairReport summarizes one repair scan run. Repaired counts the orders
// whose status was corrected; Errors lists per-order failures that did not
// stop the scan.
type RepairReport struct {
	Scanned  int
	Repaired int
	Errors   []string
}

// RepairStatusesCommandHandler drives the bulk repair scan over all
// unfinished orders. Each order is processed in its own transaction, so a
// failure on one order never blocks the rest of the scan. The scan is
// idempotent: once every aggregate status matches its derived value, a
// second run repairs nothing.
//
// Example:
//
//	handler := NewRepairStatusesCommandHandler(uowFactory)
//	cmd, _ := NewRepairStatusesCommand()
//
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("repair scan failed: %w", err)
//	}
//	log.Info("repair scan done", "repaired", report.Repaired)
type RepairStatusesCommandHandler struct {
	uowFactory UoWFactory
	deriver    services.StatusDeriver
}

// NewRepairStatusesCommandHandler creates a handler for the repair scan.
func NewRepairStatusesCommandHandler(uowFactory UoWFactory) RepairStatusesCommandHandler {
	return RepairStatusesCommandHandler{
		uowFactory: uowFactory,
		deriver:    services.NewStatusDeriver(),
	}
}

// Handle runs one repair scan pass.
// Returns an error only when the scan itself cannot run, such as when the
// unfinished-order listing fails. Per-order failures are collected into
// the report and the scan continues.
func (h *RepairStatusesCommandHandler) Handle(
	ctx context.Context, cmd RepairStatusesCommand,
) (RepairReport, error) {
	if err := cmd.Validate(); err != nil {
		return RepairReport{}, err
	}

	unfinished, err := h.listUnfinished(ctx)
	if err != nil {
		return RepairReport{}, err
	}

	report := RepairReport{Scanned: len(unfinished)}
	for _, aggregate := range unfinished {
		repaired, repairErr := h.repairOne(ctx, aggregate)
		if repairErr != nil {
			report.Errors = append(report.Errors,
				fmt.Sprintf("order %s: %v", aggregate.Number(), repairErr))
			continue
		}
		if repaired {
			report.Repaired++
		}
	}

	return report, nil
}

func (h *RepairStatusesCommandHandler) listUnfinished(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetAllUnfinished(ctx)
}

// repairOne re-derives the status of a single order in its own transaction.
// The order is re-read inside the transaction so the derivation works on
// current state rather than the listing snapshot.
func (h *RepairStatusesCommandHandler) repairOne(
	ctx context.Context, listed *order.Order,
) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, listed.ID())
	if err != nil {
		return false, err
	}

	items, err := uow.ItemRepository().GetAllByOrderID(ctx, aggregate.ID())
	if err != nil {
		return false, err
	}

	derived := h.deriver.Derive(aggregate.Status(), items)
	if derived == aggregate.Status() {
		return false, nil
	}

	if err = aggregate.ChangeStatus(derived); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return false, errs.NewPersistenceError("update order status", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return false, errs.NewPersistenceError("commit status repair", err)
	}

	return true, nil
}
