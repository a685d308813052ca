package routes

import (
	"time"

	"helpdesk-admin-backend/internal/api/handlers"
	"helpdesk-admin-backend/internal/api/middleware"
	"helpdesk-admin-backend/internal/auth"
	"helpdesk-admin-backend/internal/config"
	"helpdesk-admin-backend/internal/database/models"
	"helpdesk-admin-backend/internal/mailer"
	"helpdesk-admin-backend/internal/queue"
	"helpdesk-admin-backend/internal/repository"
	"helpdesk-admin-backend/internal/service"
	"helpdesk-admin-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The returned
// notification service is what the caller subscribes to the email queue.
func SetupRoutes(
	db *gorm.DB,
	cfg *config.Config,
	q queue.Queue,
	sender mailer.Sender,
	store *storage.ExportStore,
	log *logrus.Logger,
) (*gin.Engine, service.NotificationServiceInterface) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	personRepo := repository.NewPersonRepository(db)
	sectorRepo := repository.NewSectorRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	templateRepo := repository.NewEmailTemplateRepository(db)
	settingRepo := repository.NewNotificationSettingRepository(db)
	messageRepo := repository.NewEmailMessageRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	suggestionRepo := repository.NewTriageSuggestionRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)

	// Initialize services
	tenantService := service.NewTenantService(tenantRepo, validator)
	customerService := service.NewCustomerService(customerRepo, validator)
	personService := service.NewPersonService(personRepo, validator)
	sectorService := service.NewSectorService(sectorRepo, validator)
	departmentService := service.NewDepartmentService(departmentRepo, sectorRepo, personRepo, validator)
	templateService := service.NewEmailTemplateService(templateRepo, validator)
	settingService := service.NewNotificationSettingService(settingRepo, personRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, validator)
	notificationService := service.NewNotificationService(
		templateRepo, settingRepo, messageRepo, ticketRepo,
		q, sender, cfg.EmailQueue, log,
	)
	surveyService := service.NewSurveyService(
		surveyRepo, ticketRepo, notificationService, validator,
		cfg.PublicBaseURL, time.Duration(cfg.SurveyTTLHrs)*time.Hour,
	)
	ticketService := service.NewTicketService(
		ticketRepo, customerRepo, personRepo, sectorRepo, departmentRepo,
		notificationService, surveyService, validator, log,
	)
	triageService := service.NewTriageService(suggestionRepo, ticketRepo, sectorRepo, departmentRepo, service.TriageConfig{
		APIURL:       cfg.TriageAPIURL,
		OAuthURL:     cfg.TriageOAuthURL,
		ClientID:     cfg.TriageClientID,
		ClientSecret: cfg.TriageClientSecret,
		Model:        cfg.TriageModel,
	})
	reportService := service.NewReportService(ticketRepo, surveyRepo, store)
	ldapService := service.NewLDAPService(cfg)

	// Initialize auth service and middleware
	authService := auth.NewService(
		personRepo,
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenTTLMin)*time.Minute,
		time.Duration(cfg.RefreshTokenTTLHrs)*time.Hour,
	)
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	personHandler := handlers.NewPersonHandler(personService)
	sectorHandler := handlers.NewSectorHandler(sectorService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	templateHandler := handlers.NewEmailTemplateHandler(templateService)
	settingHandler := handlers.NewNotificationSettingHandler(settingService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	triageHandler := handlers.NewTriageHandler(triageService)
	surveyHandler := handlers.NewSurveyHandler(surveyService)
	reportHandler := handlers.NewReportHandler(reportService)
	ldapHandler := handlers.NewLDAPHandler(ldapService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/ready", healthHandler.Ready)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	// Public survey routes, reached through emailed token links
	surveys := router.Group("/api/satisfaction-surveys")
	{
		surveys.GET("/:token", surveyHandler.GetPublicSurvey)
		surveys.POST("/:token", surveyHandler.SubmitPublicSurvey)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/auth/me", authHandler.Me)

		// Tenant routes, admin only
		tenants := v1.Group("/tenants")
		tenants.Use(authMiddleware.RequireRole(models.PersonRoleAdmin))
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("/:id", tenantHandler.GetTenant)
			tenants.PUT("/:id", tenantHandler.UpdateTenant)
			tenants.DELETE("/:id", tenantHandler.DeleteTenant)
		}

		// Customer routes
		customers := v1.Group("/customers")
		customers.Use(authMiddleware.RequireRole(models.PersonRoleOfficial))
		{
			customers.GET("", customerHandler.ListCustomers)
			customers.POST("", customerHandler.CreateCustomer)
			customers.POST("/import", customerHandler.ImportCustomers)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.PUT("/:id/active", customerHandler.SetCustomerActive)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
		}

		// Personnel routes, managers and up
		people := v1.Group("/people")
		people.Use(authMiddleware.RequireRole(models.PersonRoleManager))
		{
			people.GET("", personHandler.ListPeople)
			people.POST("", personHandler.CreatePerson)
			people.GET("/roles/assignable", personHandler.GetAssignableRoles)
			people.GET("/:id", personHandler.GetPerson)
			people.PUT("/:id", personHandler.UpdatePerson)
			people.PUT("/:id/role", personHandler.UpdatePersonRole)
			people.DELETE("/:id", personHandler.DeletePerson)
		}

		// Sector routes
		sectors := v1.Group("/sectors")
		sectors.Use(authMiddleware.RequireRole(models.PersonRoleManager))
		{
			sectors.GET("", sectorHandler.ListSectors)
			sectors.POST("", sectorHandler.CreateSector)
			sectors.GET("/:id", sectorHandler.GetSector)
			sectors.PUT("/:id", sectorHandler.UpdateSector)
			sectors.DELETE("/:id", sectorHandler.DeleteSector)
		}

		// Department routes
		departments := v1.Group("/departments")
		departments.Use(authMiddleware.RequireRole(models.PersonRoleManager))
		{
			departments.GET("", departmentHandler.ListDepartments)
			departments.POST("", departmentHandler.CreateDepartment)
			departments.GET("/:id", departmentHandler.GetDepartment)
			departments.PUT("/:id", departmentHandler.UpdateDepartment)
			departments.DELETE("/:id", departmentHandler.DeleteDepartment)
			departments.POST("/:id/officials/:personId", departmentHandler.AddOfficial)
			departments.DELETE("/:id/officials/:personId", departmentHandler.RemoveOfficial)
		}

		// Email template routes
		templates := v1.Group("/email-templates")
		templates.Use(authMiddleware.RequireRole(models.PersonRoleManager))
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.POST("", templateHandler.CreateTemplate)
			templates.POST("/preview", templateHandler.PreviewDraftTemplate)
			templates.GET("/:id", templateHandler.GetTemplate)
			templates.PUT("/:id", templateHandler.UpdateTemplate)
			templates.DELETE("/:id", templateHandler.DeleteTemplate)
			templates.POST("/:id/preview", templateHandler.PreviewTemplate)
		}

		// Notification preference routes
		settings := v1.Group("/notification-settings")
		{
			settings.GET("/:personId", settingHandler.GetSettings)
			settings.PUT("/:personId", settingHandler.UpdateSettings)
		}

		// Inventory routes
		inventory := v1.Group("/inventory")
		inventory.Use(authMiddleware.RequireRole(models.PersonRoleOfficial))
		{
			inventory.GET("/products", inventoryHandler.ListProducts)
			inventory.POST("/products", inventoryHandler.CreateProduct)
			inventory.GET("/products/low-stock", inventoryHandler.ListLowStock)
			inventory.GET("/products/:id", inventoryHandler.GetProduct)
			inventory.PUT("/products/:id", inventoryHandler.UpdateProduct)
			inventory.DELETE("/products/:id", inventoryHandler.DeleteProduct)
			inventory.GET("/products/:id/movements", inventoryHandler.ListMovements)
			inventory.POST("/products/:id/movements", inventoryHandler.CreateMovement)
		}

		// Ticket routes
		tickets := v1.Group("/tickets")
		{
			tickets.GET("", ticketHandler.ListTickets)
			tickets.POST("", ticketHandler.CreateTicket)
			tickets.GET("/:id", ticketHandler.GetTicket)
			tickets.PUT("/:id", ticketHandler.UpdateTicket)
			tickets.PUT("/:id/assign", ticketHandler.AssignTicket)
			tickets.PUT("/:id/status", ticketHandler.UpdateTicketStatus)
			tickets.GET("/:id/survey", surveyHandler.GetTicketSurvey)
			tickets.POST("/:id/satisfaction-survey", surveyHandler.SendTicketSurvey)
			tickets.GET("/:id/ai-suggestions", triageHandler.ListSuggestions)
			tickets.POST("/:id/ai-suggestions", triageHandler.RequestSuggestion)
		}

		// AI suggestion review routes
		suggestions := v1.Group("/ai-suggestions")
		suggestions.Use(authMiddleware.RequireRole(models.PersonRoleOfficial))
		{
			suggestions.GET("", triageHandler.ListPendingSuggestions)
			suggestions.PUT("/:id/accept", triageHandler.AcceptSuggestion)
			suggestions.PUT("/:id/reject", triageHandler.RejectSuggestion)
		}

		// Reporting routes, managers and up
		reports := v1.Group("/reports")
		reports.Use(authMiddleware.RequireRole(models.PersonRoleManager))
		{
			reports.GET("/tickets/summary", reportHandler.GetTicketSummary)
			reports.GET("/tickets/export", reportHandler.ExportTickets)
			reports.GET("/satisfaction", reportHandler.GetSatisfactionReport)
		}

		// Directory routes
		directory := v1.Group("/directory")
		directory.Use(authMiddleware.RequireRole(models.PersonRoleManager))
		{
			directory.GET("/users", ldapHandler.SearchUsers)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, notificationService
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/ready", healthHandler.Ready)

	return router
}
