package main

import (
	"log/slog"

	"github.com/discoverrwanda/discover-rwanda-api/internal/data"
	"github.com/discoverrwanda/discover-rwanda-api/internal/domain/booking"
	"github.com/discoverrwanda/discover-rwanda-api/internal/domain/catalog"
	"github.com/discoverrwanda/discover-rwanda-api/internal/domain/gallery"
	"github.com/discoverrwanda/discover-rwanda-api/internal/domain/review"
	"github.com/discoverrwanda/discover-rwanda-api/pkg/config"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	// Repositories
	CatalogRepo catalog.Repository
	OptionRepo  booking.OptionRepository
	ReviewRepo  review.Repository

	// Services
	CatalogService catalog.Service
	BookingService booking.Service
	ReviewService  review.Service
	GalleryService gallery.Service

	// Handlers
	CatalogHandler *catalog.Handler
	BookingHandler *booking.Handler
	ReviewHandler  *review.Handler
	GalleryHandler *gallery.Handler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	deps.initRepositories()
	deps.initServices()
	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initRepositories initializes the in-memory repositories over the seed catalog
func (d *Dependencies) initRepositories() {
	d.CatalogRepo = catalog.NewMemoryRepository(data.Attractions, data.Dining, data.Events)
	d.OptionRepo = booking.NewMemoryOptionRepository(data.BookingOptions)
	d.ReviewRepo = review.NewMemoryRepository(data.Attractions)
	d.Logger.Info("repositories initialized")
}

// initServices initializes all service layer dependencies
func (d *Dependencies) initServices() {
	gateway := booking.NewSimulatedGateway(
		d.Config.Booking.GatewayDelay,
		d.Config.Booking.GatewayFailureRate,
	)

	d.CatalogService = catalog.NewServiceImpl(d.CatalogRepo, d.Logger)
	d.BookingService = booking.NewServiceImpl(d.CatalogRepo, d.OptionRepo, gateway, d.Logger)
	d.ReviewService = review.NewServiceImpl(d.ReviewRepo, d.Logger)
	d.GalleryService = gallery.NewServiceImpl(data.GalleryImages, data.GalleryCategories, d.Logger)
	d.Logger.Info("services initialized")
}

// initHandlers initializes all handler dependencies
func (d *Dependencies) initHandlers() {
	d.CatalogHandler = catalog.NewHandler(d.CatalogService, d.Logger)
	d.BookingHandler = booking.NewHandler(d.BookingService, d.Logger)
	d.ReviewHandler = review.NewHandler(d.ReviewService, d.Logger)
	d.GalleryHandler = gallery.NewHandler(d.GalleryService, d.Logger)
	d.Logger.Info("handlers initialized")
}

// Cleanup closes all resources
func (d *Dependencies) Cleanup() {
	d.Logger.Info("cleanup completed")
}
