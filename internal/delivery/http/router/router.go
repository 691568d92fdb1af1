// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ketalog/internal/delivery/http/middleware"
	"ketalog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	OrderHandler      *handler.OrderHandler
	DirectoryHandler  *handler.DirectoryHandler
	CatalogHandler    *handler.CatalogHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	session   *handler.SessionHandler
	orders    *handler.OrderHandler
	directory *handler.DirectoryHandler
	catalog   *handler.CatalogHandler
	analytics *handler.AnalyticsHandler
	gate      *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		session:   params.SessionHandler,
		orders:    params.OrderHandler,
		directory: params.DirectoryHandler,
		catalog:   params.CatalogHandler,
		analytics: params.AnalyticsHandler,
		gate:      params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes: login is open, the rest needs a session
	sessionGroup := e.Group("/session")
	{
		sessionGroup.POST("/login", r.session.Login)
		sessionGroup.POST("/logout", r.session.Logout)
		sessionGroup.GET("", r.session.Current)
		sessionGroup.PUT("/theme", r.session.SetTheme, r.gate.RequireSession)
	}

	// Everything under /dashboard requires a live session
	dash := e.Group("/dashboard")
	dash.Use(r.gate.RequireSession)

	// Order board
	orders := dash.Group("/orders")
	{
		orders.GET("", r.orders.List)
		orders.POST("/refresh", r.orders.Refresh)
		orders.GET("/:id", r.orders.Get)
		orders.GET("/:id/timeline", r.orders.Timeline)
		orders.PUT("/:id/assign", r.orders.Assign)
		orders.PUT("/:id/unassign", r.orders.Unassign)
		orders.PUT("/:id/delivered", r.orders.Delivered)
		orders.DELETE("/:id", r.orders.Delete)
		orders.GET("/:id/notify-seller", r.orders.NotifySeller)
		orders.GET("/:id/whatsapp-qr", r.orders.WhatsAppQR)
	}

	// People
	dash.GET("/buyers", r.directory.ListBuyers)
	dash.POST("/buyers", r.directory.CreateBuyer)
	dash.DELETE("/buyers/:id", r.directory.DeleteBuyer)

	dash.GET("/sellers", r.directory.ListSellers)
	dash.GET("/sellers/:id", r.directory.GetSeller)
	dash.POST("/sellers", r.directory.CreateSeller)
	dash.DELETE("/sellers/:id", r.directory.DeleteSeller)

	dash.GET("/partners", r.directory.ListPartners)
	dash.POST("/partners", r.directory.CreatePartner)
	dash.PUT("/partners/:id", r.directory.UpdatePartner)
	dash.DELETE("/partners/:id", r.directory.DeletePartner)

	// Catalog
	dash.GET("/categories", r.catalog.ListCategories)
	dash.POST("/categories", r.catalog.CreateCategory)
	dash.POST("/categories/sub", r.catalog.CreateSubCategory)
	dash.DELETE("/categories/:id", r.catalog.DeleteCategory)
	dash.DELETE("/subcategories/:id", r.catalog.DeleteSubCategory)

	dash.GET("/variants", r.catalog.ListVariants)
	dash.PUT("/variants/:id", r.catalog.UpdateVariant)
	dash.DELETE("/variants/:id", r.catalog.DeleteVariant)

	dash.GET("/offers", r.catalog.ListOffers)
	dash.POST("/offers", r.catalog.CreateOffer)
	dash.PUT("/offers/:id", r.catalog.UpdateOffer)
	dash.DELETE("/offers/:id", r.catalog.DeleteOffer)

	// Analytics
	dash.GET("/ledger", r.analytics.Ledger)
	dash.PUT("/ledger/:id/payment", r.analytics.TogglePayment)
	dash.DELETE("/ledger/:id", r.analytics.DeleteRecord)
	dash.GET("/ledger/export", r.analytics.Export)
	dash.GET("/stats", r.analytics.Stats)

	// Profile
	dash.GET("/profile", r.session.Profile)
	dash.PUT("/profile", r.session.UpdateProfile)
}
