package cmd

import (
	"log/slog"
	"strings"

	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/eventlog"
	"github.com/sTingley/ProcurementOrderManager/internal/core/application/usecases/commands"
	"github.com/sTingley/ProcurementOrderManager/internal/core/application/usecases/queries"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/services"
	"github.com/sTingley/ProcurementOrderManager/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
	assigner   services.AuditorAssigner
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	admins, err := parseAdminPrincipals(config.AdminPrincipals)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(admins...),
		assigner:   services.NewAuditorAssigner(),
	}, nil
}

// parseAdminPrincipals reads the comma-separated admin list from config.
// Admins are fixed at startup; everyone else earns standing per order.
func parseAdminPrincipals(raw string) ([]kernel.PrincipalID, error) {
	var admins []kernel.PrincipalID
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		admin, err := kernel.PrincipalIDFromString(entry)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, nil
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateCatalogReferenceCommandHandler() commands.UpdateCatalogReferenceCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCatalogReferenceCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateAddAuditorCommandHandler() commands.AddAuditorCommandHandler {
	var f commands.AuditorUoWFactory = FuncAuditorUoWFactory(func() commands.AuditorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddAuditorCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateOrderQuantityCommandHandler() commands.UpdateOrderQuantityCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderQuantityCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDisputeOrderCommandHandler() commands.DisputeOrderCommandHandler {
	var f commands.DisputeUoWFactory = FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDisputeOrderCommandHandler(f, c.policy, c.assigner)
}

func (c *CompositionRoot) CreateSubmitArgumentCommandHandler() commands.SubmitArgumentCommandHandler {
	var f commands.DisputeUoWFactory = FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitArgumentCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	var f commands.DisputeUoWFactory = FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveDisputeCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQuoteQueryHandler() queries.GetProductQuoteQueryHandler {
	return queries.NewGetProductQuoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountProductsQueryHandler() queries.CountProductsQueryHandler {
	return queries.NewCountProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersQueryHandler() queries.CountOrdersQueryHandler {
	return queries.NewCountOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountActiveAuditorsQueryHandler() queries.CountActiveAuditorsQueryHandler {
	return queries.NewCountActiveAuditorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRetrieveArgumentsQueryHandler() queries.RetrieveArgumentsQueryHandler {
	return queries.NewRetrieveArgumentsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateJobManager(relaySchedule string, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(eventlog.NewGormEventLog(c.gormDB), relaySchedule, logger)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDisputeUoWFactory func() commands.DisputeUoW

func (f FuncDisputeUoWFactory) Create() commands.DisputeUoW {
	return f()
}

type FuncAuditorUoWFactory func() commands.AuditorUoW

func (f FuncAuditorUoWFactory) Create() commands.AuditorUoW {
	return f()
}
