// Package http exposes the ordering use cases over a JSON API.
// Crew and admin status updates run through the same command handler but
// separate routes, each carrying its own status allow-list.
package http

import (
	"errors"
	"net/http"
	"time"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateStatusHandler      commands.UpdateOrderStatusCommandHandler
	updatePreparationHandler commands.UpdatePreparationCommandHandler

	// Query handlers
	listChangedOrdersHandler queries.ListChangedOrdersQueryHandler
	getOrderStatusHandler    queries.GetOrderStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	updatePreparationHandler commands.UpdatePreparationCommandHandler,
	listChangedOrdersHandler queries.ListChangedOrdersQueryHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		updateStatusHandler:      updateStatusHandler,
		updatePreparationHandler: updatePreparationHandler,
		listChangedOrdersHandler: listChangedOrdersHandler,
		getOrderStatusHandler:    getOrderStatusHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/changed", s.ListChangedOrders)
	api.GET("/orders/:id/status", s.GetOrderStatus)
	api.POST("/crew/orders/status", s.UpdateOrderStatusAsCrew)
	api.POST("/crew/orders/preparation", s.UpdatePreparation)
	api.POST("/admin/orders/status", s.UpdateOrderStatusAsAdmin)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders - checkout.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	lines := make([]commands.ItemLine, len(request.Items))
	for i, item := range request.Items {
		lines[i] = commands.ItemLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		customerID,
		request.Contact.Name,
		request.Contact.Phone,
		request.Contact.Address,
		lines,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{
		Success: true,
		OrderID: orderID.String(),
	})
}

// UpdateOrderStatusAsCrew handles POST /api/v1/crew/orders/status.
// The acting crew member is recorded as the order's assigned staff.
func (s *Server) UpdateOrderStatusAsCrew(ctx echo.Context) error {
	return s.updateOrderStatus(ctx, order.CrewSurface)
}

// UpdateOrderStatusAsAdmin handles POST /api/v1/admin/orders/status.
func (s *Server) UpdateOrderStatusAsAdmin(ctx echo.Context) error {
	return s.updateOrderStatus(ctx, order.AdminSurface)
}

func (s *Server) updateOrderStatus(ctx echo.Context, surface order.Surface) error {
	var request UpdateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}
	status, err := order.ParseStatus(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, surface, actorID, request.Note)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UpdateStatusResponse{
		Success:   true,
		OrderID:   updated.ID().String(),
		Status:    updated.Status().String(),
		UpdatedAt: updated.UpdatedAt(),
	})
}

// UpdatePreparation handles POST /api/v1/crew/orders/preparation.
func (s *Server) UpdatePreparation(ctx echo.Context) error {
	var request UpdatePreparationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}
	preparation, err := order.ParsePreparation(request.Preparation)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdatePreparationCommand(
		orderID, preparation, request.EstimatedReady, actorID, request.Note)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updatePreparationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"success": true})
}

// ListChangedOrders handles GET /api/v1/orders/changed - the polling feed.
// Accepts since (RFC 3339), status and timeframe query parameters; all optional.
func (s *Server) ListChangedOrders(ctx echo.Context) error {
	var since time.Time
	if raw := ctx.QueryParam("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "Invalid since parameter, expected RFC 3339 timestamp")
		}
		since = parsed
	}

	statusFilter := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		statusFilter = parsed
	}

	query, err := queries.NewListChangedOrdersQuery(
		since, statusFilter, queries.Timeframe(ctx.QueryParam("timeframe")))
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.listChangedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders := make([]OrderSnapshotResponse, len(result.Orders))
	for i, snapshot := range result.Orders {
		orders[i] = OrderSnapshotResponse{
			ID:              snapshot.ID.String(),
			CustomerID:      snapshot.CustomerID.String(),
			CustomerName:    snapshot.CustomerName,
			CustomerPhone:   snapshot.CustomerPhone,
			CustomerAddress: snapshot.CustomerAddress,
			Items:           snapshot.ItemsDisplay,
			Total:           snapshot.Total.Float(),
			Status:          snapshot.Status.String(),
			Preparation:     snapshot.Preparation.String(),
			EstimatedReady:  snapshot.EstimatedReady,
			CreatedAt:       snapshot.CreatedAt,
			UpdatedAt:       snapshot.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, ListChangedOrdersResponse{
		Success: true,
		Orders:  orders,
		Statistics: StatisticsResponse{
			TotalCount:     result.Statistics.TotalCount,
			PendingCount:   result.Statistics.PendingCount,
			PreparingCount: result.Statistics.PreparingCount,
			ReadyCount:     result.Statistics.ReadyCount,
			CompletedCount: result.Statistics.CompletedCount,
			CancelledCount: result.Statistics.CancelledCount,
			Revenue:        result.Statistics.Revenue.Float(),
		},
		ServerTime: time.Now().UTC(),
	})
}

// GetOrderStatus handles GET /api/v1/orders/:id/status - customer status lookup.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	history := make([]StatusChangeResponse, len(result.History))
	for i, change := range result.History {
		history[i] = StatusChangeResponse{
			Previous:  change.Previous.String(),
			Next:      change.Next.String(),
			Note:      change.Note,
			ChangedAt: change.At,
		}
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		Success:        true,
		OrderID:        result.OrderID.String(),
		Status:         result.Status.String(),
		Preparation:    result.Preparation.String(),
		EstimatedReady: result.EstimatedReady,
		UpdatedAt:      result.UpdatedAt,
		History:        history,
	})
}

// errorResponse translates application errors into the JSON error envelope.
// Missing objects map to 404, validation failures to 400, everything else
// to 500 with the detail kept out of the response body.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "Order not found"})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
