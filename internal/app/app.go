package app

import (
	"clubmanager/config"
	"clubmanager/internal/controllers"
	"clubmanager/internal/database"
	"clubmanager/internal/events"
	"clubmanager/internal/handlers/middleware"
	"clubmanager/internal/logger"
	"clubmanager/internal/metrics"
	"clubmanager/internal/repositories"
	"clubmanager/internal/services"
	"clubmanager/internal/websockets"

	dashboardController "clubmanager/internal/controllers/dashboard"
	emailLogController "clubmanager/internal/controllers/emailLog"
	familyController "clubmanager/internal/controllers/family"
	locationController "clubmanager/internal/controllers/location"
	lookupController "clubmanager/internal/controllers/lookup"
	memberController "clubmanager/internal/controllers/member"
	paymentController "clubmanager/internal/controllers/payment"
	personnelController "clubmanager/internal/controllers/personnel"
	sessionController "clubmanager/internal/controllers/session"
	teamController "clubmanager/internal/controllers/team"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Websocket  *websockets.Manager
	EventBus   *events.EventBus
	Metrics    *metrics.Metrics
	Config     config.Config

	// Services
	Services controllers.Services

	// Controllers
	LocationController  *locationController.LocationController
	LookupController    *lookupController.LookupController
	PersonnelController *personnelController.PersonnelController
	MemberController    *memberController.MemberController
	FamilyController    *familyController.FamilyController
	TeamController      *teamController.TeamController
	SessionController   *sessionController.SessionController
	PaymentController   *paymentController.PaymentController
	EmailLogController  *emailLogController.EmailLogController
	DashboardController *dashboardController.DashboardController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	logger.Setup(config.LogLevel, config.IsProduction())

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	return NewWithDatabase(config, db)
}

// NewWithDatabase wires the application around an already opened database.
func NewWithDatabase(config config.Config, db database.DB) (*App, error) {
	log := logger.New("app").Function("NewWithDatabase")

	eventBus := events.New(db.Cache.Events, config)
	collectors := metrics.New()
	eventBus.Subscribe(events.ActivityChannel, func(event events.Event) {
		collectors.Activity(event.Type, event.Action)
	})

	// Initialize services
	notifier := services.NewNotificationService()
	shared := controllers.NewServices(db, eventBus)

	// Initialize repositories
	locationRepo := repositories.NewLocation(db)
	roleRepo := repositories.NewRole(db)
	hobbyRepo := repositories.NewHobby(db)
	personnelRepo := repositories.NewPersonnel(db)
	memberRepo := repositories.NewMember(db)
	familyRepo := repositories.NewFamily(db)
	secondaryRepo := repositories.NewSecondaryFamily(db)
	teamRepo := repositories.NewTeam(db)
	sessionRepo := repositories.NewSession(db)
	paymentRepo := repositories.NewPayment(db)
	emailLogRepo := repositories.NewEmailLog(db)

	websocket, err := websockets.New(eventBus, config)
	if err != nil {
		return &App{}, log.Err("failed to create websocket manager", err)
	}

	app := &App{
		Database:   db,
		Config:     config,
		Middleware: middleware.New(collectors, config),
		Websocket:  websocket,
		EventBus:   eventBus,
		Metrics:    collectors,
		Services:   shared,

		LocationController:  locationController.New(locationRepo, shared),
		LookupController:    lookupController.New(roleRepo, hobbyRepo, shared),
		PersonnelController: personnelController.New(personnelRepo, shared),
		MemberController:    memberController.New(memberRepo, hobbyRepo, paymentRepo, sessionRepo, shared),
		FamilyController:    familyController.New(familyRepo, secondaryRepo, memberRepo, shared),
		TeamController:      teamController.New(teamRepo, memberRepo, sessionRepo, shared),
		SessionController:   sessionController.New(sessionRepo, teamRepo, emailLogRepo, notifier, shared),
		PaymentController:   paymentController.New(paymentRepo, memberRepo, shared),
		EmailLogController:  emailLogController.New(emailLogRepo),
		DashboardController: dashboardController.New(locationRepo, memberRepo, teamRepo, sessionRepo, shared),
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Websocket,
		a.EventBus,
		a.Metrics,
		a.Services.Transactions,
		a.Services.Invalidation,
		a.Services.Validator,
		a.LocationController,
		a.LookupController,
		a.PersonnelController,
		a.MemberController,
		a.FamilyController,
		a.TeamController,
		a.SessionController,
		a.PaymentController,
		a.EmailLogController,
		a.DashboardController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.EventBus != nil {
		if closeErr := a.EventBus.Close(); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
