package cmd

import (
	"log/slog"

	"github.com/NegritaW/Sistema-Comandas/internal/adapters/out/kitchenpush"
	"github.com/NegritaW/Sistema-Comandas/internal/adapters/out/postgres"
	"github.com/NegritaW/Sistema-Comandas/internal/core/application/usecases/commands"
	"github.com/NegritaW/Sistema-Comandas/internal/core/application/usecases/queries"
	"github.com/NegritaW/Sistema-Comandas/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.KitchenNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	notifier, err := kitchenpush.NewNotifier(configs.KitchenPushURL, configs.KitchenRelayToken)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateOpenDraftCommandHandler() commands.OpenDraftCommandHandler {
	var f commands.DraftUoWFactory = FuncDraftUoWFactory(func() commands.DraftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenDraftCommandHandler(f)
}

func (c *CompositionRoot) CreateReplaceLinesCommandHandler() commands.ReplaceLinesCommandHandler {
	var f commands.OrderCatalogUoWFactory = FuncOrderCatalogUoWFactory(func() commands.OrderCatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceLinesCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderReadyCommandHandler(f)
}

func (c *CompositionRoot) CreateVoidOrderCommandHandler() commands.VoidOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVoidOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCleanupStaleDraftsCommandHandler() commands.CleanupStaleDraftsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCleanupStaleDraftsCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterStaffCommandHandler() commands.RegisterStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeProductPriceCommandHandler() commands.ChangeProductPriceCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeProductPriceCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateStaffQueryHandler() (queries.AuthenticateStaffQueryHandler, error) {
	// The login check only reads, so the repository runs on the bare
	// connection of a unit of work that never begins a transaction.
	return queries.NewAuthenticateStaffQueryHandler(c.uowFactory.Create().StaffRepository())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenOrdersQueryHandler() queries.GetKitchenOrdersQueryHandler {
	return queries.NewGetKitchenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPriceHistoryQueryHandler() queries.GetPriceHistoryQueryHandler {
	return queries.NewGetPriceHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesReportQueryHandler() queries.GetSalesReportQueryHandler {
	return queries.NewGetSalesReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTopProductsQueryHandler() queries.GetTopProductsQueryHandler {
	return queries.NewGetTopProductsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDraftUoWFactory func() commands.DraftUoW

func (f FuncDraftUoWFactory) Create() commands.DraftUoW {
	return f()
}

type FuncOrderCatalogUoWFactory func() commands.OrderCatalogUoW

func (f FuncOrderCatalogUoWFactory) Create() commands.OrderCatalogUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}
