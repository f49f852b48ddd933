package commands

import (
	"context"
	"time"

	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/core/domain/services"
	"fabrication/internal/pkg/errs"
)

// ValidationResult reports the outcome of one validation event.
// ItemChanged is false when the decision matched state already on record,
// in which case the event was acknowledged without a write.
// ReconcileError carries a failure of the follow-up status reconciliation;
// the item write itself has already committed when it is set.
type ValidationResult struct {
	ItemChanged    bool
	StatusBefore   order.Status
	StatusAfter    order.Status
	ReconcileError error
}

// StatusChanged reports whether reconciliation moved the order's
// aggregate status.
func (r ValidationResult) StatusChanged() bool {
	return r.StatusBefore != r.StatusAfter
}

// ValidateItemCommandHandler handles validation events against order items.
//
// The work runs in two phases with separate transactions. Phase one records
// the decision on the item: gate status, audit trail, produced quantity and
// notes, each only as far as the item's stored shape supports. Phase two
// re-reads the order with its full item set and reconciles the aggregate
// status through the deriver. A phase-two failure never undoes the item
// write: the decision is the source of truth and the bulk repair scan will
// converge the aggregate status later.
type ValidateItemCommandHandler struct {
	uowFactory UoWFactory
	validator  services.ItemValidator
	deriver    services.StatusDeriver
}

// NewValidateItemCommandHandler creates a handler for item validation events.
func NewValidateItemCommandHandler(uowFactory UoWFactory) ValidateItemCommandHandler {
	return ValidateItemCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewItemValidator(),
		deriver:    services.NewStatusDeriver(),
	}
}

// Handle processes one validation event.
//
// Returns errs.ObjectNotFoundError when the order or item does not exist,
// or when the item does not belong to the referenced order. Persistence
// failures of the item write are returned wrapped in errs.PersistenceError
// and nothing is recorded. After the item write commits, reconciliation
// failures are reported through ValidationResult.ReconcileError only.
func (h *ValidateItemCommandHandler) Handle(
	ctx context.Context, cmd ValidateItemCommand,
) (ValidationResult, error) {
	if err := cmd.Validate(); err != nil {
		return ValidationResult{}, err
	}

	decision := services.Decision{
		Gate:             cmd.Gate(),
		Outcome:          cmd.Outcome(),
		Actor:            cmd.Actor(),
		DecidedAt:        time.Now().UTC(),
		QuantityProduced: cmd.QuantityProduced(),
		Notes:            cmd.Notes(),
	}

	changed, err := h.applyDecision(ctx, cmd, decision)
	if err != nil {
		return ValidationResult{}, err
	}

	result := ValidationResult{ItemChanged: changed}
	result.StatusBefore, result.StatusAfter, result.ReconcileError = h.reconcile(ctx, cmd)

	return result, nil
}

// applyDecision records the decision on the item in its own transaction.
func (h *ValidateItemCommandHandler) applyDecision(
	ctx context.Context, cmd ValidateItemCommand, decision services.Decision,
) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	itemRepo := uow.ItemRepository()

	itm, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return false, err
	}
	if !itm.OrderID().IsEqual(aggregate.ID()) {
		return false, errs.NewObjectNotFoundError("itemID", cmd.ItemID())
	}

	changed, err := h.validator.Apply(itm, decision)
	if err != nil {
		return false, err
	}

	if !changed {
		// The decision matched state already on record. Acknowledge
		// without a write; reconciliation still runs.
		return false, nil
	}

	if err = itemRepo.Update(ctx, itm); err != nil {
		return false, errs.NewPersistenceError("update item", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return false, errs.NewPersistenceError("commit item validation", err)
	}

	return true, nil
}

// reconcile re-reads the order with its complete item set and moves the
// aggregate status if the deriver says so. Runs in a fresh transaction.
func (h *ValidateItemCommandHandler) reconcile(
	ctx context.Context, cmd ValidateItemCommand,
) (before order.Status, after order.Status, err error) {
	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return before, after, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return before, after, err
	}

	items, err := uow.ItemRepository().GetAllByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return before, after, err
	}

	before = aggregate.Status()
	after = h.deriver.DeriveAfterGate(before, items, cmd.Gate())
	if after == before {
		return before, after, nil
	}

	if err = aggregate.ChangeStatus(after); err != nil {
		return before, before, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return before, before, errs.NewPersistenceError("update order status", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return before, before, errs.NewPersistenceError("commit status reconcile", err)
	}

	return before, after, nil
}
