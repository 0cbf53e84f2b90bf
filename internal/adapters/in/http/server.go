// Package http serves the cafe over JSON for operators and assistants.
// It calls the same command and query handlers as the line protocols, so
// writes go through the same store broker.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/core/domain/model/cart"
	"cafe/internal/core/domain/model/menu"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server holds the handlers behind the HTTP routes.
type Server struct {
	addMenuItemHandler    commands.AddMenuItemCommandHandler
	removeMenuItemHandler commands.RemoveMenuItemCommandHandler
	placeOrderHandler     commands.PlaceOrderCommandHandler
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler

	listMenuItemsHandler queries.ListMenuItemsQueryHandler
	getMenuItemHandler   queries.GetMenuItemQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getBacklogHandler    queries.GetBacklogQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	removeMenuItemHandler commands.RemoveMenuItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	listMenuItemsHandler queries.ListMenuItemsQueryHandler,
	getMenuItemHandler queries.GetMenuItemQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getBacklogHandler queries.GetBacklogQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		addMenuItemHandler:    addMenuItemHandler,
		removeMenuItemHandler: removeMenuItemHandler,
		placeOrderHandler:     placeOrderHandler,
		markOrderReadyHandler: markOrderReadyHandler,
		listMenuItemsHandler:  listMenuItemsHandler,
		getMenuItemHandler:    getMenuItemHandler,
		listOrdersHandler:     listOrdersHandler,
		getOrderHandler:       getOrderHandler,
		getBacklogHandler:     getBacklogHandler,
		logger:                logger.With("component", "http"),
	}
}

// RegisterRoutes mounts the health check and the /api/v1 routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/menu", s.GetMenu)
	api.POST("/menu", s.AddMenuItem)
	api.DELETE("/menu/:id", s.RemoveMenuItem)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/backlog", s.GetBacklog)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/ready", s.MarkOrderReady)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetMenu handles GET /api/v1/menu - the menu in id order.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.listMenuItemsHandler.Handle(ctx.Request().Context(), queries.NewListMenuItemsQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve menu", err)
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{ID: item.ID, Name: item.Name}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var request MenuItem
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddMenuItemCommand(request.ID, request.Name)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid menu item: "+err.Error())
	}

	err = s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, menu.ErrDuplicateID):
		return errorResponse(ctx, http.StatusConflict, fmt.Sprintf("Menu item id %d already exists", request.ID))
	case errors.Is(err, menu.ErrDuplicateName), errors.Is(err, errs.ErrObjectAlreadyExists):
		return errorResponse(ctx, http.StatusConflict, fmt.Sprintf("A menu item named '%s' already exists", request.Name))
	case err != nil:
		return s.internalError(ctx, "Failed to add menu item", err)
	}

	item := cmd.Item()
	return ctx.JSON(http.StatusCreated, MenuItem{ID: item.ID(), Name: item.Name()})
}

// RemoveMenuItem handles DELETE /api/v1/menu/:id. Orders that reference
// the item are kept.
func (s *Server) RemoveMenuItem(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return errorResponse(ctx, http.StatusBadRequest, "Menu item id must be a positive integer")
	}

	cmd, err := commands.NewRemoveMenuItemCommand(id)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid menu item id: "+err.Error())
	}

	removed, err := s.removeMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errorResponse(ctx, http.StatusNotFound, fmt.Sprintf("Menu item %d not found", id))
	}
	if err != nil {
		return s.internalError(ctx, "Failed to remove menu item", err)
	}

	return ctx.JSON(http.StatusOK, MenuItem{ID: removed.ID(), Name: removed.Name()})
}

// GetOrders handles GET /api/v1/orders - every order, most recent first.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve orders", err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders. Repeated item ids are merged
// the way a session cart merges them, and every item must be on the menu.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	c := cart.New()
	for _, item := range request.Items {
		query, err := queries.NewGetMenuItemQuery(item.ItemID)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid menu item id: "+err.Error())
		}
		_, err = s.getMenuItemHandler.Handle(ctx.Request().Context(), query)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusBadRequest, fmt.Sprintf("Menu item %d does not exist", item.ItemID))
		}
		if err != nil {
			return s.internalError(ctx, "Failed to place order", err)
		}

		if err = c.Add(item.ItemID, item.Quantity); err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid quantity: "+err.Error())
		}
	}

	cmd, err := commands.NewPlaceOrderCommand(c.Lines())
	if errors.Is(err, order.ErrEmptyCart) {
		return errorResponse(ctx, http.StatusBadRequest, "Cart is empty")
	}
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.internalError(ctx, "Failed to place order", err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, placed.ID())
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return errorResponse(ctx, http.StatusBadRequest, "Order id must be a positive integer")
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// MarkOrderReady handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return errorResponse(ctx, http.StatusBadRequest, "Order id must be a positive integer")
	}

	cmd, err := commands.NewMarkOrderReadyCommand(id)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	_, err = s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errorResponse(ctx, http.StatusNotFound, "No order found with id "+strconv.FormatInt(id, 10))
	}
	if err != nil {
		return s.internalError(ctx, "Failed to mark order ready", err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// GetBacklog handles GET /api/v1/orders/backlog - orders not ready yet.
func (s *Server) GetBacklog(ctx echo.Context) error {
	backlog, err := s.getBacklogHandler.Handle(ctx.Request().Context(), queries.NewGetBacklogQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve backlog", err)
	}

	return ctx.JSON(http.StatusOK, Backlog{
		Pending:          backlog.Pending,
		Received:         backlog.Received,
		Preparing:        backlog.Preparing,
		AlmostReady:      backlog.AlmostReady,
		OldestOrderID:    backlog.OldestID,
		OldestAgeSeconds: backlog.OldestAge.Seconds(),
	})
}

// respondWithOrder writes the current view of order id with the given status.
func (s *Server) respondWithOrder(ctx echo.Context, code int, id int64) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errorResponse(ctx, http.StatusNotFound, "No order found with id "+strconv.FormatInt(id, 10))
	}
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve order", err)
	}

	return ctx.JSON(code, toOrder(found))
}

func pathID(ctx echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func (s *Server) internalError(ctx echo.Context, message string, err error) error {
	s.logger.ErrorContext(ctx.Request().Context(), message,
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"error", err,
	)
	return errorResponse(ctx, http.StatusInternalServerError, message)
}
