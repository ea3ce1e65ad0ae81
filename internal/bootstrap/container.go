package bootstrap

import (
	"context"
	"log"

	"testinesia-be/internal/config"
	"testinesia-be/internal/controller"
	"testinesia-be/internal/pkg/logger"
	"testinesia-be/internal/pkg/mailer"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/pkg/storage"
	"testinesia-be/internal/repository/unitofwork"
	"testinesia-be/internal/service"
	pktNats "testinesia-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController              controller.IAuthController
	UserController              controller.IUserController
	SubscriptionController      controller.ISubscriptionController
	OrderSubscriptionController controller.IOrderSubscriptionController
	ProjectController           controller.IProjectController
	FormController              controller.IFormController
	TestimonialController       controller.ITestimonialController
	ShowcaseController          controller.IShowcaseController
	WidgetController            controller.IWidgetController
	AssetController             controller.IAssetController
	AdminController             controller.IAdminController

	// Background services, started from main.go
	MailConsumer    *service.MailConsumerService
	ReminderService *service.ReminderService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	storageService, err := storage.NewS3Storage(
		cfg.Storage.Host,
		cfg.Storage.Bucket,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object storage: %v", err)
	}

	// In-process mail queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// NATS event bus (optional, warn only)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (optional, showcase cache degrades to DB reads)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Auth middlewares
	userAuth := serverutils.UserAuth(cfg.JWT.Secret, uowFactory)
	adminAuth := serverutils.AdminAuth(cfg.JWT.AdminSecret, uowFactory)
	superadminAuth := serverutils.AdminAuth(cfg.JWT.AdminSecret, uowFactory, "superadmin")

	// Services
	currentSubService := service.NewCurrentSubscriptionService(uowFactory, sysLogger)
	subscriptionService := service.NewSubscriptionService(uowFactory, sysLogger)
	orderService := service.NewOrderSubscriptionService(
		uowFactory,
		currentSubService,
		pubSub,
		natsPub,
		cfg.Midtrans,
		cfg.App.ClientURL,
		sysLogger,
	)

	userService := service.NewUserService(uowFactory, currentSubService, emailService, sysLogger)
	authService := service.NewAuthService(uowFactory, cfg.JWT.Secret, cfg.JWT.AdminSecret, sysLogger)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	projectService := service.NewProjectService(uowFactory, currentSubService, sysLogger)
	formService := service.NewFormService(uowFactory, currentSubService, sysLogger)
	testimonialService := service.NewTestimonialService(uowFactory, currentSubService, sysLogger)
	showcaseService := service.NewShowcaseService(uowFactory, currentSubService, testimonialService, rdb, sysLogger)
	widgetService := service.NewWidgetService(uowFactory, sysLogger)
	assetService := service.NewAssetService(storageService, sysLogger)

	mailConsumer := service.NewMailConsumerService(pubSub, emailService, sysLogger)
	reminderService := service.NewReminderService(uowFactory, currentSubService, pubSub, sysLogger)

	return &Container{
		AuthController:              controller.NewAuthController(authService, userService, userAuth, adminAuth),
		UserController:              controller.NewUserController(userService, userAuth),
		SubscriptionController:      controller.NewSubscriptionController(subscriptionService, currentSubService, userAuth),
		OrderSubscriptionController: controller.NewOrderSubscriptionController(orderService, userAuth),
		ProjectController:           controller.NewProjectController(projectService, userAuth),
		FormController:              controller.NewFormController(formService, testimonialService, userAuth),
		TestimonialController:       controller.NewTestimonialController(testimonialService, userAuth),
		ShowcaseController:          controller.NewShowcaseController(showcaseService, userAuth),
		WidgetController:            controller.NewWidgetController(widgetService, userAuth),
		AssetController:             controller.NewAssetController(assetService, userAuth),
		AdminController:             controller.NewAdminController(adminService, subscriptionService, orderService, adminAuth, superadminAuth),

		MailConsumer:    mailConsumer,
		ReminderService: reminderService,
	}
}
