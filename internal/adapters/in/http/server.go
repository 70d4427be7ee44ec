package http

import (
	"log/slog"
	"net/http"
	"strings"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements servers.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createHandler  commands.CreateTransitBatchCommandHandler
	advanceHandler commands.AdvanceTransitStatusCommandHandler

	// Query handlers
	listBatchesHandler queries.ListTransitBatchesQueryHandler
	eligibleHandler    queries.ListEligibleOrdersQueryHandler
	itemsHandler       queries.GetTransitItemsQueryHandler
	historyHandler     queries.GetStatusHistoryQueryHandler

	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(
	createHandler commands.CreateTransitBatchCommandHandler,
	advanceHandler commands.AdvanceTransitStatusCommandHandler,
	listBatchesHandler queries.ListTransitBatchesQueryHandler,
	eligibleHandler queries.ListEligibleOrdersQueryHandler,
	itemsHandler queries.GetTransitItemsQueryHandler,
	historyHandler queries.GetStatusHistoryQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createHandler:      createHandler,
		advanceHandler:     advanceHandler,
		listBatchesHandler: listBatchesHandler,
		eligibleHandler:    eligibleHandler,
		itemsHandler:       itemsHandler,
		historyHandler:     historyHandler,
		logger:             logger.With("component", "http"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ListTransitOrders handles GET /api/v1/transit-orders.
func (s *Server) ListTransitOrders(ctx echo.Context, params servers.ListTransitOrdersParams) error {
	identity, tenant, err := s.caller(ctx, params.FranchiseId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListTransitBatchesQuery(identity, tenant, deref(params.Type), deref(params.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	batches, err := s.listBatchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.TransitOrder, 0, len(batches))
	for _, b := range batches {
		response = append(response, presentBatchView(b))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateTransitOrder handles POST /api/v1/transit-orders.
func (s *Server) CreateTransitOrder(ctx echo.Context) error {
	var body servers.CreateTransitOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    CodeValidation,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&body); err != nil {
		return s.fail(ctx, err)
	}

	franchiseID := body.FranchiseId
	if franchiseID == nil {
		franchiseID = queryParam(ctx, "franchiseId")
	}
	identity, tenant, err := s.caller(ctx, franchiseID)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderIDs := make([]kernel.UUID, 0, len(body.OrderIds))
	for _, id := range body.OrderIds {
		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		orderIDs = append(orderIDs, orderID)
	}

	cmd, err := commands.NewCreateTransitBatchCommand(identity, tenant, body.Direction, orderIDs, transit.Metadata{
		VehicleInfo:    metadata(body.VehicleInfo),
		EmployeeInfo:   metadata(body.EmployeeInfo),
		StoreDetails:   metadata(body.StoreDetails),
		FactoryDetails: metadata(body.FactoryDetails),
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.createHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	items := make([]servers.TransitItem, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, presentItem(item))
	}
	return ctx.JSON(http.StatusCreated, servers.CreateTransitOrderResponse{
		TransitOrder: presentBatch(result.Batch),
		Items:        items,
		Warnings:     presentWarnings(result.Warnings),
	})
}

// ListEligibleOrders handles GET /api/v1/transit-orders/eligible.
func (s *Server) ListEligibleOrders(ctx echo.Context, params servers.ListEligibleOrdersParams) error {
	identity, tenant, err := s.caller(ctx, params.FranchiseId)
	if err != nil {
		return s.fail(ctx, err)
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}
	query, err := queries.NewListEligibleOrdersQuery(identity, tenant, deref(params.Type), limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.eligibleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		view, viewErr := presentOrderView(o)
		if viewErr != nil {
			return s.fail(ctx, viewErr)
		}
		response = append(response, view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateTransitOrderStatus handles PUT /api/v1/transit-orders/{id}/status.
func (s *Server) UpdateTransitOrderStatus(
	ctx echo.Context,
	id servers.BatchId,
	params servers.UpdateTransitOrderStatusParams,
) error {
	var body servers.UpdateTransitOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    CodeValidation,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&body); err != nil {
		return s.fail(ctx, err)
	}

	identity, tenant, err := s.caller(ctx, params.FranchiseId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceTransitStatusCommand(identity, tenant, id, body.Status, body.Location)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.advanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.UpdateStatusResponse{
		TransitOrder: presentBatch(result.Batch),
		Warnings:     presentWarnings(result.Warnings),
	})
}

// GetTransitOrderStatusHistory handles GET /api/v1/transit-orders/{id}/status-history.
func (s *Server) GetTransitOrderStatusHistory(
	ctx echo.Context,
	id servers.BatchId,
	params servers.GetTransitOrderStatusHistoryParams,
) error {
	identity, tenant, err := s.caller(ctx, params.FranchiseId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetStatusHistoryQuery(identity, tenant, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.historyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.StatusHistoryEntry, 0, len(entries))
	for _, e := range entries {
		entry, viewErr := presentHistoryView(e)
		if viewErr != nil {
			return s.fail(ctx, viewErr)
		}
		response = append(response, entry)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetTransitOrderItems handles GET /api/v1/transit-orders/{id}/items.
func (s *Server) GetTransitOrderItems(
	ctx echo.Context,
	id servers.BatchId,
	params servers.GetTransitOrderItemsParams,
) error {
	identity, tenant, err := s.caller(ctx, params.FranchiseId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetTransitItemsQuery(identity, tenant, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.itemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.TransitItem, 0, len(items))
	for _, i := range items {
		item, viewErr := presentItemView(i)
		if viewErr != nil {
			return s.fail(ctx, viewErr)
		}
		response = append(response, item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// caller returns the authenticated identity and the optional franchise the
// caller asked to narrow to.
func (s *Server) caller(ctx echo.Context, franchiseID *string) (access.Identity, kernel.TenantID, error) {
	identity, ok := IdentityFrom(ctx)
	if !ok {
		return access.Identity{}, kernel.TenantID{}, echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	requested := strings.TrimSpace(deref(franchiseID))
	if requested == "" {
		return identity, kernel.TenantID{}, nil
	}
	tenant, err := kernel.NewTenantID(requested)
	if err != nil {
		return access.Identity{}, kernel.TenantID{}, err
	}
	return identity, tenant, nil
}

func (s *Server) fail(ctx echo.Context, err error) error {
	return writeError(ctx, s.logger, err)
}

func queryParam(ctx echo.Context, name string) *string {
	if v := ctx.QueryParam(name); v != "" {
		return &v
	}
	return nil
}

func metadata(m *servers.Metadata) map[string]any {
	if m == nil {
		return nil
	}
	return *m
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
