// Package http exposes the order lifecycle as a JSON API over echo.
// Handlers translate between transport contracts and application commands
// and queries; they contain no business logic of their own.
package http

import (
	"errors"
	"net/http"
	"time"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler
	startOrderHandler   commands.StartOrderCommandHandler
	sendOrderHandler    commands.SendOrderCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	listRestaurantOrdersHandler queries.ListRestaurantOrdersQueryHandler
	listUserOrdersHandler       queries.ListUserOrdersQueryHandler
	analyticsHandler            queries.GetRestaurantAnalyticsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	startOrderHandler commands.StartOrderCommandHandler,
	sendOrderHandler commands.SendOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listRestaurantOrdersHandler queries.ListRestaurantOrdersQueryHandler,
	listUserOrdersHandler queries.ListUserOrdersQueryHandler,
	analyticsHandler queries.GetRestaurantAnalyticsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderHandler:          updateOrderHandler,
		deleteOrderHandler:          deleteOrderHandler,
		startOrderHandler:           startOrderHandler,
		sendOrderHandler:            sendOrderHandler,
		deliverOrderHandler:         deliverOrderHandler,
		getOrderHandler:             getOrderHandler,
		listRestaurantOrdersHandler: listRestaurantOrdersHandler,
		listUserOrdersHandler:       listUserOrdersHandler,
		analyticsHandler:            analyticsHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.POST("/orders/:orderId/start", s.StartOrder)
	api.POST("/orders/:orderId/send", s.SendOrder)
	api.POST("/orders/:orderId/deliver", s.DeliverOrder)
	api.GET("/restaurants/:restaurantId/orders", s.GetRestaurantOrders)
	api.GET("/restaurants/:restaurantId/analytics", s.GetRestaurantAnalytics)
	api.GET("/users/:userId/orders", s.GetUserOrders)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.ID != nil {
		id, err := kernel.UUIDFromBytes(body.ID[:])
		if err != nil {
			return badRequest(ctx, "Invalid order id")
		}
		orderID = id
	}

	userID, err := kernel.UUIDFromBytes(body.UserID[:])
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}
	restaurantID, err := kernel.UUIDFromBytes(body.RestaurantID[:])
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	items, err := toLineItems(body.Lines)
	if err != nil {
		return unprocessable(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, userID, restaurantID, items)
	if err != nil {
		return unprocessable(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order with
// its restaurant and customer summaries.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderDetails{
		Order:      orderFromResponse(details.Order),
		Restaurant: restaurantFromSummary(details.Restaurant),
		User:       UserSummary{ID: details.User.ID.Bytes()},
	})
}

// UpdateOrder handles PUT /api/v1/orders/{orderId} - replaces the order's
// line set and reprices it.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body UpdateOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := toLineItems(body.Lines)
	if err != nil {
		return unprocessable(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, items)
	if err != nil {
		return unprocessable(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}. The response body
// reports the number of removed orders: 1 on success, 0 when the order was
// not found.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, DeleteResult{Count: 0})
		}
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeleteResult{Count: 1})
}

// StartOrder handles POST /api/v1/orders/{orderId}/start - moves the order
// into preparation.
func (s *Server) StartOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewStartOrderCommand(orderID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	started, err := s.startOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(started))
}

// SendOrder handles POST /api/v1/orders/{orderId}/send - marks the order as
// dispatched.
func (s *Server) SendOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewSendOrderCommand(orderID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	sent, err := s.sendOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(sent))
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver - marks the
// order as delivered and refreshes the restaurant's average service time.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	delivered, err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(delivered))
}

// GetRestaurantOrders handles GET /api/v1/restaurants/{restaurantId}/orders
// with optional status, from and to query parameters.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	filter, err := parseOrderFilter(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewListRestaurantOrdersQuery(restaurantID, filter)
	if err != nil {
		return unprocessable(ctx, err)
	}

	orders, err := s.listRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUserOrders handles GET /api/v1/users/{userId}/orders - lists a
// customer's orders, newest first.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewListUserOrdersQuery(userID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	orders, err := s.listUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]UserOrder, 0, len(orders))
	for _, o := range orders {
		response = append(response, UserOrder{
			Order:      orderFromResponse(o.Order),
			Restaurant: restaurantFromSummary(o.Restaurant),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurantAnalytics handles GET
// /api/v1/restaurants/{restaurantId}/analytics - returns the dashboard
// metrics.
func (s *Server) GetRestaurantAnalytics(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	query, err := queries.NewGetRestaurantAnalyticsQuery(restaurantID)
	if err != nil {
		return unprocessable(ctx, err)
	}

	metrics, err := s.analyticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RestaurantAnalytics{
		OrdersYesterday:      metrics.YesterdayCount,
		OrdersPending:        metrics.PendingCount,
		OrdersDeliveredToday: metrics.DeliveredTodayCount,
		InvoicedToday:        metrics.InvoicedToday,
	})
}

func toLineItems(lines []NewOrderLine) ([]commands.LineItem, error) {
	items := make([]commands.LineItem, 0, len(lines))
	for _, line := range lines {
		productID, err := kernel.UUIDFromBytes(line.ProductID[:])
		if err != nil {
			return nil, err
		}

		item, err := commands.NewLineItem(productID, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func parseOrderFilter(ctx echo.Context) (queries.OrderFilter, error) {
	var filter queries.OrderFilter

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := queries.ParseStatusFilter(raw)
		if err != nil {
			return queries.OrderFilter{}, err
		}
		filter.Status = &status
	}

	if raw := ctx.QueryParam("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return queries.OrderFilter{}, errs.NewValueIsInvalidErrorWithCause("from", err)
		}
		filter.DateFrom = &from
	}

	if raw := ctx.QueryParam("to"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			return queries.OrderFilter{}, errs.NewValueIsInvalidErrorWithCause("to", err)
		}
		filter.DateTo = &to
	}

	return filter, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unprocessable(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnprocessableEntity, Error{
		Code:    http.StatusUnprocessableEntity,
		Message: err.Error(),
	})
}

// writeError maps application errors to HTTP status codes: missing objects
// to 404, rejected values to 422, everything else to 500.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return unprocessable(ctx, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
