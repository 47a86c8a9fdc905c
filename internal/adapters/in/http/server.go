package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/application/usecases/commands"
	"github.com/NegritaW/Sistema-Comandas/internal/core/application/usecases/queries"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/generated/servers"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const defaultTopProductsLimit = 10

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	openDraftHandler          commands.OpenDraftCommandHandler
	replaceLinesHandler       commands.ReplaceLinesCommandHandler
	submitOrderHandler        commands.SubmitOrderCommandHandler
	markOrderReadyHandler     commands.MarkOrderReadyCommandHandler
	voidOrderHandler          commands.VoidOrderCommandHandler
	registerCustomerHandler   commands.RegisterCustomerCommandHandler
	registerStaffHandler      commands.RegisterStaffCommandHandler
	createCategoryHandler     commands.CreateCategoryCommandHandler
	createProductHandler      commands.CreateProductCommandHandler
	changeProductPriceHandler commands.ChangeProductPriceCommandHandler

	// Query handlers
	authenticateStaffHandler queries.AuthenticateStaffQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getKitchenOrdersHandler  queries.GetKitchenOrdersQueryHandler
	getMenuHandler           queries.GetMenuQueryHandler
	getCustomersHandler      queries.GetCustomersQueryHandler
	getPriceHistoryHandler   queries.GetPriceHistoryQueryHandler
	getSalesReportHandler    queries.GetSalesReportQueryHandler
	getTopProductsHandler    queries.GetTopProductsQueryHandler

	tokens *TokenIssuer
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	openDraftHandler commands.OpenDraftCommandHandler,
	replaceLinesHandler commands.ReplaceLinesCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	voidOrderHandler commands.VoidOrderCommandHandler,
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	registerStaffHandler commands.RegisterStaffCommandHandler,
	createCategoryHandler commands.CreateCategoryCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	changeProductPriceHandler commands.ChangeProductPriceCommandHandler,
	authenticateStaffHandler queries.AuthenticateStaffQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getKitchenOrdersHandler queries.GetKitchenOrdersQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
	getPriceHistoryHandler queries.GetPriceHistoryQueryHandler,
	getSalesReportHandler queries.GetSalesReportQueryHandler,
	getTopProductsHandler queries.GetTopProductsQueryHandler,
	tokens *TokenIssuer,
	logger *slog.Logger,
) *Server {
	return &Server{
		openDraftHandler:          openDraftHandler,
		replaceLinesHandler:       replaceLinesHandler,
		submitOrderHandler:        submitOrderHandler,
		markOrderReadyHandler:     markOrderReadyHandler,
		voidOrderHandler:          voidOrderHandler,
		registerCustomerHandler:   registerCustomerHandler,
		registerStaffHandler:      registerStaffHandler,
		createCategoryHandler:     createCategoryHandler,
		createProductHandler:      createProductHandler,
		changeProductPriceHandler: changeProductPriceHandler,
		authenticateStaffHandler:  authenticateStaffHandler,
		getOrderHandler:           getOrderHandler,
		getKitchenOrdersHandler:   getKitchenOrdersHandler,
		getMenuHandler:            getMenuHandler,
		getCustomersHandler:       getCustomersHandler,
		getPriceHistoryHandler:    getPriceHistoryHandler,
		getSalesReportHandler:     getSalesReportHandler,
		getTopProductsHandler:     getTopProductsHandler,
		tokens:                    tokens,
		logger:                    logger,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /auth/login - verifies credentials and issues a token.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewAuthenticateStaffQuery(body.Username, body.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	identity, err := s.authenticateStaffHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	token, err := s.tokens.Issue(identity.ID, identity.Username, identity.Role, time.Now().UTC())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.LoginResponse{
		Token: token,
		Role:  identity.Role,
	})
}

// Register handles POST /auth/register - creates a deactivated staff account.
func (s *Server) Register(ctx echo.Context) error {
	var body servers.RegisterJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterStaffCommand(kernel.NewUUID(), body.Username, body.DisplayName, body.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.registerStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetMenu handles GET /menu - lists active products grouped by category.
func (s *Server) GetMenu(ctx echo.Context) error {
	query, err := queries.NewGetMenuQuery()
	if err != nil {
		return s.respondError(ctx, err)
	}

	categories, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.MenuCategory, len(categories))
	for i, category := range categories {
		products := make([]servers.MenuProduct, len(category.Products))
		for j, product := range category.Products {
			products[j] = servers.MenuProduct{
				Id:          product.ID.Bytes(),
				Name:        product.Name,
				Description: optString(product.Description),
				Price:       product.Price,
				ImageUrl:    optString(product.ImageURL),
			}
		}

		response[i] = servers.MenuCategory{
			Id:       category.CategoryID.Bytes(),
			Name:     category.CategoryName,
			Products: products,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomers handles GET /customers - lists registered walk-in customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query, err := queries.NewGetCustomersQuery()
	if err != nil {
		return s.respondError(ctx, err)
	}

	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Customer, len(customers))
	for i, customer := range customers {
		response[i] = servers.Customer{
			Id:   customer.ID.Bytes(),
			Name: customer.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /customers - registers a walk-in customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.CreateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()

	cmd, err := commands.NewRegisterCustomerCommand(customerID, body.Name)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Customer{
		Id:   customerID.Bytes(),
		Name: body.Name,
	})
}

// OpenDraft handles POST /orders - opens a draft comanda for a room or
// customer, returning the existing active draft when the origin already
// has one.
func (s *Server) OpenDraft(ctx echo.Context) error {
	var body servers.OpenDraftJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	origin, err := originFromRequest(body)
	if err != nil {
		return s.respondError(ctx, err)
	}

	staffID, err := currentStaffID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewOpenDraftCommand(origin, staffID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.openDraftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	status := http.StatusCreated
	if !result.Created {
		status = http.StatusOK
	}

	return ctx.JSON(status, orderFromAggregate(result.Order))
}

// GetOrder handles GET /orders/{orderId} - retrieves one comanda with its
// lines and total.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	comanda, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(comanda))
}

// ReplaceLines handles PUT /orders/{orderId}/lines - replaces the whole
// line set of a draft comanda.
func (s *Server) ReplaceLines(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ReplaceLinesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	lines, err := lineInputsFromRequest(body.Lines)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewReplaceLinesCommand(orderID, lines, derefString(body.KitchenNotes))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.replaceLinesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.ok(ctx)
}

// SubmitOrder handles POST /orders/{orderId}/submit - moves a draft to
// Sent and pushes it to the kitchen on a best effort basis.
func (s *Server) SubmitOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.ok(ctx)
}

// GetKitchenOrders handles GET /kitchen/orders - lists Sent comandas
// oldest first. The optional state filter only knows one value because
// the queue is the only state the kitchen works from.
func (s *Server) GetKitchenOrders(ctx echo.Context, params servers.GetKitchenOrdersParams) error {
	if params.State != nil && *params.State != servers.Sent {
		return s.respondError(ctx, errs.NewValueIsInvalidError("state"))
	}

	query := queries.NewGetKitchenOrdersQuery()

	orders, err := s.getKitchenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.KitchenOrder, len(orders))
	for i, comanda := range orders {
		lines := make([]servers.KitchenOrderLine, len(comanda.Lines))
		for j, line := range comanda.Lines {
			lines[j] = servers.KitchenOrderLine{
				Name:     line.Name,
				Quantity: line.Quantity,
				Notes:    optString(line.Notes),
			}
		}

		response[i] = servers.KitchenOrder{
			Id:             comanda.ID.Bytes(),
			Room:           comanda.Room,
			CustomerId:     uuidPtr(comanda.CustomerID),
			KitchenNotes:   optString(comanda.KitchenNotes),
			CreatedAt:      comanda.CreatedAt,
			ElapsedSeconds: comanda.ElapsedSeconds,
			Lines:          lines,
		}
	}

	return ctx.JSON(http.StatusOK, servers.KitchenOrderList{Orders: response})
}

// MarkOrderReady handles POST /kitchen/orders/{orderId}/ready.
func (s *Server) MarkOrderReady(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.ok(ctx)
}

// VoidOrder handles POST /kitchen/orders/{orderId}/void.
func (s *Server) VoidOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewVoidOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.voidOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.ok(ctx)
}

// IngestOrder handles POST /kitchen/ingest - accepts the advisory relay
// push of a submitted comanda. The payload is logged for the kitchen
// display; the queue endpoint stays the source of truth.
func (s *Server) IngestOrder(ctx echo.Context) error {
	var body servers.IngestOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	s.logger.InfoContext(ctx.Request().Context(), "comanda pushed by relay",
		"order_id", body.OrderId,
		"origin", body.Origin,
		"items", len(body.Items))

	return s.ok(ctx)
}

// CreateCategory handles POST /management/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var body servers.CreateCategoryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), body.Name, derefString(body.Description))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.createCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateProduct handles POST /management/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	categoryID, err := kernel.UUIDFromBytes(body.CategoryId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), categoryID, body.Name, derefString(body.Description), body.Price, derefString(body.ImageUrl))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ChangeProductPrice handles POST /management/products/{productId}/price.
func (s *Server) ChangeProductPrice(ctx echo.Context, productId openapi_types.UUID) error {
	var body servers.ChangeProductPriceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	staffID, err := currentStaffID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewChangeProductPriceCommand(productID, body.NewPrice, derefString(body.Reason), staffID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.changeProductPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetPriceHistory handles GET /management/prices/history.
func (s *Server) GetPriceHistory(ctx echo.Context, params servers.GetPriceHistoryParams) error {
	productID, err := kernel.UUIDFromBytes(params.ProductId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetPriceHistoryQuery(productID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	changes, err := s.getPriceHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.PriceHistoryEntry, len(changes))
	for i, change := range changes {
		response[i] = servers.PriceHistoryEntry{
			Id:        change.ID.Bytes(),
			OldPrice:  change.OldPrice,
			NewPrice:  change.NewPrice,
			Reason:    optString(change.Reason),
			ChangedBy: uuidPtr(change.ChangedBy),
			ChangedAt: change.ChangedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSalesReport handles GET /management/reports/sales. Grouping defaults
// to daily buckets.
func (s *Server) GetSalesReport(ctx echo.Context, params servers.GetSalesReportParams) error {
	groupBy := queries.GroupByDay
	if params.Group != nil {
		groupBy = string(*params.Group)
	}

	query, err := queries.NewGetSalesReportQuery(params.From, params.To, groupBy)
	if err != nil {
		return s.respondError(ctx, err)
	}

	rows, err := s.getSalesReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.SalesReportRow, len(rows))
	for i, row := range rows {
		response[i] = servers.SalesReportRow{
			PeriodStart: row.PeriodStart,
			OrdersCount: row.OrdersCount,
			Revenue:     row.Revenue,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTopProducts handles GET /management/reports/top-products.
func (s *Server) GetTopProducts(ctx echo.Context, params servers.GetTopProductsParams) error {
	limit := defaultTopProductsLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetTopProductsQuery(params.From, params.To, limit)
	if err != nil {
		return s.respondError(ctx, err)
	}

	rows, err := s.getTopProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.TopProductRow, len(rows))
	for i, row := range rows {
		response[i] = servers.TopProductRow{
			Name:         row.Name,
			QuantitySold: row.QuantitySold,
			Revenue:      row.Revenue,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondError maps application errors onto the HTTP error taxonomy:
// validation failures are 400, missing objects 404, lifecycle conflicts
// 409 and failed logins 401. Anything unrecognized is a 500 with a
// generic message.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, queries.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

// ok is the body every successful mutation returns.
func (s *Server) ok(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func originFromRequest(body servers.NewDraft) (order.Origin, error) {
	switch {
	case body.Room != nil:
		return order.NewRoomOrigin(*body.Room)
	case body.CustomerId != nil:
		customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
		if err != nil {
			return order.Origin{}, errs.NewValueIsInvalidErrorWithCause("customerID", err)
		}
		return order.NewCustomerOrigin(customerID)
	}

	return order.Origin{}, errs.NewValueIsRequiredError("origin")
}

func lineInputsFromRequest(lines []servers.LineInput) ([]commands.LineInput, error) {
	inputs := make([]commands.LineInput, len(lines))
	for i, line := range lines {
		input := commands.LineInput{
			Name:     derefString(line.Name),
			Quantity: line.Quantity,
			Notes:    derefString(line.Notes),
		}
		if line.UnitPrice != nil {
			input.UnitPrice = *line.UnitPrice
		}
		if line.ProductId != nil {
			productID, err := kernel.UUIDFromBytes(line.ProductId[:])
			if err != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause("productID", err)
			}
			input.ProductID = &productID
		}
		inputs[i] = input
	}

	return inputs, nil
}

// orderFromAggregate maps a comanda aggregate onto the wire shape used
// when a draft is opened.
func orderFromAggregate(comanda *order.Order) servers.Order {
	lines := make([]servers.OrderLine, len(comanda.Lines()))
	for i, line := range comanda.Lines() {
		lines[i] = servers.OrderLine{
			ProductId: uuidPtr(line.ProductID()),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().Amount(),
			Quantity:  line.Quantity().Value(),
			Notes:     optString(line.Notes()),
			Subtotal:  line.Subtotal(),
		}
	}

	return servers.Order{
		Id:           comanda.ID().Bytes(),
		Room:         comanda.Origin().Room(),
		CustomerId:   uuidPtr(comanda.Origin().CustomerID()),
		State:        wireState(comanda.Status().String()),
		KitchenNotes: optString(comanda.KitchenNotes()),
		Total:        comanda.Total(),
		CreatedAt:    comanda.CreatedAt(),
		ReadyAt:      comanda.ReadyAt(),
		Lines:        lines,
	}
}

func orderFromReadModel(comanda queries.GetOrderQueryResponse) servers.Order {
	lines := make([]servers.OrderLine, len(comanda.Lines))
	for i, line := range comanda.Lines {
		lines[i] = servers.OrderLine{
			ProductId: uuidPtr(line.ProductID),
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Notes:     optString(line.Notes),
			Subtotal:  line.Subtotal,
		}
	}

	return servers.Order{
		Id:           comanda.ID.Bytes(),
		Room:         comanda.Room,
		CustomerId:   uuidPtr(comanda.CustomerID),
		State:        wireState(comanda.Status),
		KitchenNotes: optString(comanda.KitchenNotes),
		Total:        comanda.Total,
		CreatedAt:    comanda.CreatedAt,
		ReadyAt:      comanda.ReadyAt,
		Lines:        lines,
	}
}

// wireState carries comanda statuses over the wire in lowercase.
func wireState(status string) string {
	return strings.ToLower(status)
}

func uuidPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	value := id.Bytes()
	return &value
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
