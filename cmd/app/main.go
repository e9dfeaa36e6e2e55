package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/sTingley/ProcurementOrderManager/cmd"
	inhttp "github.com/sTingley/ProcurementOrderManager/internal/adapters/in/http"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/auditorrepo"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/disputerepo"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/eventlog"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/orderrepo"
	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/productrepo"
	"github.com/sTingley/ProcurementOrderManager/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(configs.EventRelaySchedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		AdminPrincipals:    goDotEnvVariable("ADMIN_PRINCIPALS"),
		EventRelaySchedule: goDotEnvVariable("EVENT_RELAY_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&productrepo.CatalogReferenceDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&disputerepo.DisputeDTO{},
		&disputerepo.ArgumentDTO{},
		&auditorrepo.AuditorDTO{},
		&eventlog.EventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := inhttp.NewServer(
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateUpdateCatalogReferenceCommandHandler(),
		app.CreateAddAuditorCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderQuantityCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateShipOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateDisputeOrderCommandHandler(),
		app.CreateSubmitArgumentCommandHandler(),
		app.CreateResolveDisputeCommandHandler(),
		app.CreateGetProductQueryHandler(),
		app.CreateGetProductQuoteQueryHandler(),
		app.CreateCountProductsQueryHandler(),
		app.CreateCountOrdersQueryHandler(),
		app.CreateCountActiveAuditorsQueryHandler(),
		app.CreateGetOrderStatusQueryHandler(),
		app.CreateRetrieveArgumentsQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
