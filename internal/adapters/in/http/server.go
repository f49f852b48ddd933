package http

import (
	"errors"
	"net/http"

	"fabrication/internal/core/application/usecases/commands"
	"fabrication/internal/core/application/usecases/queries"
	"fabrication/internal/core/domain/model/item"
	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/generated/servers"
	"fabrication/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	validateItemHandler   commands.ValidateItemCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	repairStatusesHandler commands.RepairStatusesCommandHandler

	// Query handlers
	getUnfinishedOrdersHandler queries.GetUnfinishedOrdersQueryHandler
	getOrderItemsHandler       queries.GetOrderItemsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	validateItemHandler commands.ValidateItemCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	repairStatusesHandler commands.RepairStatusesCommandHandler,
	getUnfinishedOrdersHandler queries.GetUnfinishedOrdersQueryHandler,
	getOrderItemsHandler queries.GetOrderItemsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		validateItemHandler:        validateItemHandler,
		cancelOrderHandler:         cancelOrderHandler,
		repairStatusesHandler:      repairStatusesHandler,
		getUnfinishedOrdersHandler: getUnfinishedOrdersHandler,
		getOrderItemsHandler:       getOrderItemsHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - registers a new manufacturing order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	quantities := make([]int, len(newOrder.Items))
	for i, itm := range newOrder.Items {
		quantities[i] = itm.Quantity
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), newOrder.Number, quantities)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrders handles GET /api/v1/orders/active - retrieves all unfinished orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetUnfinishedOrdersQuery()

	orders, err := s.getUnfinishedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(orders))
	for i, ord := range orders {
		response[i] = servers.Order{
			Id:     ord.ID.Bytes(),
			Number: ord.Number,
			Status: ord.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RepairStatuses handles POST /api/v1/orders/repair-statuses - runs the bulk
// status repair scan over all unfinished orders.
func (s *Server) RepairStatuses(ctx echo.Context) error {
	cmd, err := commands.NewRepairStatusesCommand()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build repair command",
		})
	}

	report, err := s.repairStatusesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to repair statuses",
		})
	}

	response := servers.RepairReport{
		Scanned:  report.Scanned,
		Repaired: report.Repaired,
	}
	if len(report.Errors) > 0 {
		response.Errors = &report.Errors
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancel data: " + err.Error(),
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		if errors.Is(handleErr, errs.ErrValueIsInvalid) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "Order cannot be cancelled: " + handleErr.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to cancel order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderItems handles GET /api/v1/orders/{orderId}/items - retrieves the
// line items of an order with their validation state.
func (s *Server) GetOrderItems(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderItemsQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query data: " + err.Error(),
		})
	}

	items, err := s.getOrderItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order items",
		})
	}

	response := make([]servers.OrderItem, len(items))
	for i, itm := range items {
		response[i] = servers.OrderItem{
			Id:               itm.ID.Bytes(),
			QuantityOrdered:  itm.QuantityOrdered,
			ProductionStatus: itm.ProductionStatus,
			QualityStatus:    itm.QualityStatus,
			QuantityProduced: itm.QuantityProduced,
			Notes:            itm.Notes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ValidateItem handles POST /api/v1/orders/{orderId}/items/{itemId}/validations -
// records one validation decision and reconciles the order's aggregate status.
func (s *Server) ValidateItem(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	var request servers.ValidationRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}
	itemID, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item id",
		})
	}

	gate, err := item.GateFromString(string(request.Gate))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid gate: " + err.Error(),
		})
	}
	outcome, err := item.GateStatusFromString(string(request.Outcome))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid outcome: " + err.Error(),
		})
	}

	notes := ""
	if request.Notes != nil {
		notes = *request.Notes
	}

	cmd, err := commands.NewValidateItemCommand(
		orderID, itemID, gate, outcome, request.Actor, request.QuantityProduced, notes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid validation data: " + err.Error(),
		})
	}

	result, err := s.validateItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order or item not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to record validation",
		})
	}

	response := servers.ValidationResult{
		ItemChanged:   result.ItemChanged,
		StatusBefore:  result.StatusBefore.String(),
		StatusAfter:   result.StatusAfter.String(),
		StatusChanged: result.StatusChanged(),
	}
	if result.ReconcileError != nil {
		message := result.ReconcileError.Error()
		response.ReconcileError = &message
	}

	return ctx.JSON(http.StatusOK, response)
}
