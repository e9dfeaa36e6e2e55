package http

import (
	"errors"
	"net/http"

	"github.com/sTingley/ProcurementOrderManager/internal/core/application/usecases/commands"
	"github.com/sTingley/ProcurementOrderManager/internal/core/application/usecases/queries"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/generated/servers"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases. Callers
// arrive pre-authenticated; the acting principal is read from the
// X-Principal-Id header and handed to the command or query as-is.
type Server struct {
	// Command handlers
	createProductHandler          commands.CreateProductCommandHandler
	updateProductHandler          commands.UpdateProductCommandHandler
	updateCatalogReferenceHandler commands.UpdateCatalogReferenceCommandHandler
	addAuditorHandler             commands.AddAuditorCommandHandler
	createOrderHandler            commands.CreateOrderCommandHandler
	updateOrderQuantityHandler    commands.UpdateOrderQuantityCommandHandler
	confirmOrderHandler           commands.ConfirmOrderCommandHandler
	shipOrderHandler              commands.ShipOrderCommandHandler
	completeOrderHandler          commands.CompleteOrderCommandHandler
	disputeOrderHandler           commands.DisputeOrderCommandHandler
	submitArgumentHandler         commands.SubmitArgumentCommandHandler
	resolveDisputeHandler         commands.ResolveDisputeCommandHandler

	// Query handlers
	getProductHandler          queries.GetProductQueryHandler
	getProductQuoteHandler     queries.GetProductQuoteQueryHandler
	countProductsHandler       queries.CountProductsQueryHandler
	countOrdersHandler         queries.CountOrdersQueryHandler
	countActiveAuditorsHandler queries.CountActiveAuditorsQueryHandler
	getOrderStatusHandler      queries.GetOrderStatusQueryHandler
	retrieveArgumentsHandler   queries.RetrieveArgumentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	updateCatalogReferenceHandler commands.UpdateCatalogReferenceCommandHandler,
	addAuditorHandler commands.AddAuditorCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderQuantityHandler commands.UpdateOrderQuantityCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	disputeOrderHandler commands.DisputeOrderCommandHandler,
	submitArgumentHandler commands.SubmitArgumentCommandHandler,
	resolveDisputeHandler commands.ResolveDisputeCommandHandler,
	getProductHandler queries.GetProductQueryHandler,
	getProductQuoteHandler queries.GetProductQuoteQueryHandler,
	countProductsHandler queries.CountProductsQueryHandler,
	countOrdersHandler queries.CountOrdersQueryHandler,
	countActiveAuditorsHandler queries.CountActiveAuditorsQueryHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	retrieveArgumentsHandler queries.RetrieveArgumentsQueryHandler,
) *Server {
	return &Server{
		createProductHandler:          createProductHandler,
		updateProductHandler:          updateProductHandler,
		updateCatalogReferenceHandler: updateCatalogReferenceHandler,
		addAuditorHandler:             addAuditorHandler,
		createOrderHandler:            createOrderHandler,
		updateOrderQuantityHandler:    updateOrderQuantityHandler,
		confirmOrderHandler:           confirmOrderHandler,
		shipOrderHandler:              shipOrderHandler,
		completeOrderHandler:          completeOrderHandler,
		disputeOrderHandler:           disputeOrderHandler,
		submitArgumentHandler:         submitArgumentHandler,
		resolveDisputeHandler:         resolveDisputeHandler,
		getProductHandler:             getProductHandler,
		getProductQuoteHandler:        getProductQuoteHandler,
		countProductsHandler:          countProductsHandler,
		countOrdersHandler:            countOrdersHandler,
		countActiveAuditorsHandler:    countActiveAuditorsHandler,
		getOrderStatusHandler:         getOrderStatusHandler,
		retrieveArgumentsHandler:      retrieveArgumentsHandler,
	}
}

// errorResponse translates the error taxonomy into HTTP status codes.
// Authorization failures map to 403 before anything state-related leaks, not
// found to 404, lifecycle violations and auditor shortage to 409, and all
// input validation to 400.
func errorResponse(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrAuthorizationFailed):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrInsufficientAuditors):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func principal(header string) (kernel.PrincipalID, error) {
	return kernel.PrincipalIDFromString(header)
}

// AddAuditor handles POST /api/v1/auditors - enrolls or reactivates an auditor.
func (s *Server) AddAuditor(ctx echo.Context, params servers.AddAuditorParams) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var newAuditor servers.NewAuditor
	if err := ctx.Bind(&newAuditor); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	auditorPrincipal, err := kernel.PrincipalIDFromBytes(newAuditor.PrincipalId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAddAuditorCommand(caller, auditorPrincipal)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.addAuditorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CountActiveAuditors handles GET /api/v1/auditors/count.
func (s *Server) CountActiveAuditors(ctx echo.Context) error {
	response, err := s.countActiveAuditorsHandler.Handle(
		ctx.Request().Context(), queries.NewCountActiveAuditorsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Count{Count: int64(response.Count)})
}

// UpdateCatalogReference handles PUT /api/v1/catalog-reference - rebinds the
// catalog generation new orders validate against.
func (s *Server) UpdateCatalogReference(ctx echo.Context, params servers.UpdateCatalogReferenceParams) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var reference servers.CatalogReference
	if err := ctx.Bind(&reference); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateCatalogReferenceCommand(caller, uint64(reference.CatalogId))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateCatalogReferenceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - opens a new order between a buyer
// and a seller.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	buyer, err := kernel.PrincipalIDFromBytes(newOrder.Buyer[:])
	if err != nil {
		return errorResponse(ctx, err)
	}
	seller, err := kernel.PrincipalIDFromBytes(newOrder.Seller[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]order.LineItem, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		lineItem, itemErr := order.NewLineItem(uint64(item.ProductId), uint64(item.Quantity))
		if itemErr != nil {
			return errorResponse(ctx, itemErr)
		}
		items = append(items, lineItem)
	}

	cmd, err := commands.NewCreateOrderCommand(
		caller, buyer, seller, items, uint64(newOrder.ItemCount), newOrder.DeliveryTerms)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderId{Id: int64(orderID)})
}

// CountOrders handles GET /api/v1/orders/count.
func (s *Server) CountOrders(ctx echo.Context) error {
	response, err := s.countOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewCountOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Count{Count: int64(response.Count)})
}

// GetOrderStatus handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrderStatus(ctx echo.Context, orderId int64) error {
	query, err := queries.NewGetOrderStatusQuery(uint64(orderId))
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]servers.LineItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = servers.LineItem{
			ProductId: int64(item.ProductID),
			Quantity:  int64(item.Quantity),
		}
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:     int64(response.OrderID),
		Items:  items,
		Status: int(response.Status),
	})
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete - the buyer
// acknowledges receipt and closes the order.
func (s *Server) CompleteOrder(ctx echo.Context, orderId int64, params servers.CompleteOrderParams) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(caller, uint64(orderId))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm - the seller
// accepts the order.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId int64, params servers.ConfirmOrderParams) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(caller, uint64(orderId))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DisputeOrder handles POST /api/v1/orders/{orderId}/dispute - a trade party
// escalates a shipped order into arbitration.
func (s *Server) DisputeOrder(ctx echo.Context, orderId int64, params servers.DisputeOrderParams) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var newDispute servers.NewDispute
	if err := ctx.Bind(&newDispute); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewDisputeOrderCommand(caller, uint64(orderId), newDispute.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.disputeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RetrieveArguments handles GET /api/v1/orders/{orderId}/dispute/arguments -
// assigned auditors and admins read the argument log.
func (s *Server) RetrieveArguments(ctx echo.Context, orderId int64, params servers.RetrieveArgumentsParams) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewRetrieveArgumentsQuery(caller, uint64(orderId))
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.retrieveArgumentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	arguments := make([]servers.Argument, len(response.Arguments))
	for i, argument := range response.Arguments {
		arguments[i] = servers.Argument{
			Author: argument.Author.Bytes(),
			Text:   argument.Text,
		}
	}

	return ctx.JSON(http.StatusOK, servers.ArgumentLog{
		OrderId:   int64(response.OrderID),
		Arguments: arguments,
	})
}

// SubmitArgument handles POST /api/v1/orders/{orderId}/dispute/arguments - a
// trade party appends to the dispute's argument log.
func (s *Server) SubmitArgument(ctx echo.Context, orderId int64, params servers.SubmitArgumentParams) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var newArgument servers.NewArgument
	if err := ctx.Bind(&newArgument); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSubmitArgumentCommand(caller, uint64(orderId), newArgument.Text)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.submitArgumentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ResolveDispute handles POST /api/v1/orders/{orderId}/dispute/resolve - an
// assigned auditor records the binding resolution.
func (s *Server) ResolveDispute(ctx echo.Context, orderId int64, params servers.ResolveDisputeParams) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var resolution servers.Resolution
	if err := ctx.Bind(&resolution); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewResolveDisputeCommand(
		caller, uint64(orderId), resolution.Resolution, resolution.FavorBuyer)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.resolveDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderQuantity handles PATCH /api/v1/orders/{orderId}/items/{productId} -
// the buyer adjusts a line item while the order is still in Created.
func (s *Server) UpdateOrderQuantity(
	ctx echo.Context, orderId int64, productId int64, params servers.UpdateOrderQuantityParams,
) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var change servers.QuantityChange
	if err := ctx.Bind(&change); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderQuantityCommand(
		caller, uint64(orderId), uint64(productId), uint64(change.Quantity))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateOrderQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/{orderId}/ship.
func (s *Server) ShipOrder(ctx echo.Context, orderId int64, params servers.ShipOrderParams) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewShipOrderCommand(caller, uint64(orderId))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products - registers a product in the
// currently referenced catalog.
func (s *Server) CreateProduct(ctx echo.Context, params servers.CreateProductParams) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var newProduct servers.NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateProductCommand(caller, newProduct.Name, uint64(newProduct.Cost))
	if err != nil {
		return errorResponse(ctx, err)
	}

	productID, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Product{
		Id:   int64(productID),
		Name: newProduct.Name,
		Cost: newProduct.Cost,
	})
}

// CountProducts handles GET /api/v1/products/count.
func (s *Server) CountProducts(ctx echo.Context) error {
	response, err := s.countProductsHandler.Handle(
		ctx.Request().Context(), queries.NewCountProductsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Count{Count: int64(response.Count)})
}

// GetProductById handles GET /api/v1/products/{productId}.
func (s *Server) GetProductById(ctx echo.Context, productId int64) error {
	query, err := queries.NewGetProductQuery(uint64(productId))
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Product{
		Id:   int64(response.ID),
		Name: response.Name,
		Cost: int64(response.Cost),
	})
}

// UpdateProduct handles PUT /api/v1/products/{productId}.
func (s *Server) UpdateProduct(ctx echo.Context, productId int64, params servers.UpdateProductParams) error {
	caller, err := principal(params.XPrincipalId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var update servers.NewProduct
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateProductCommand(caller, uint64(productId), update.Name, uint64(update.Cost))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProductQuote handles GET /api/v1/products/{productId}/quote - computes
// cost times quantity with overflow protection.
func (s *Server) GetProductQuote(ctx echo.Context, productId int64, params servers.GetProductQuoteParams) error {
	query, err := queries.NewGetProductQuoteQuery(uint64(productId), uint64(params.Quantity))
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.getProductQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ProductQuote{
		ProductId: int64(response.ProductID),
		Quantity:  int64(response.Quantity),
		Quote:     int64(response.Quote),
	})
}
