package routes

import (
	"github.com/gofiber/fiber/v2"

	"autoparts-invoicing/controllers"
	"autoparts-invoicing/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/auth/login", controllers.Login)
	api.Post("/auth/logout", controllers.Logout)
	api.Get("/auth/check", controllers.CheckAuth)

	// Protected endpoints (session cookie)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticated())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then per-request transaction (commits/rolls back around the handler)
	protected.Use(middlewares.RequestTx())

	protected.Get("/auth/user", controllers.CurrentUser)

	// Business profile
	protected.Get("/business", controllers.GetBusinessInfo)
	protected.Put("/business", controllers.UpsertBusinessInfo)

	// Customers
	protected.Get("/customers", controllers.GetCustomers)
	protected.Post("/customers", controllers.CreateCustomer)
	protected.Put("/customers/:id", controllers.UpdateCustomer)
	protected.Delete("/customers/:id", controllers.DeleteCustomer)

	// Invoices
	protected.Get("/invoices", controllers.GetInvoices)
	protected.Get("/invoices/:id", controllers.GetInvoice)
	protected.Post("/invoices", controllers.CreateInvoice)
	protected.Put("/invoices/:id", controllers.UpdateInvoice)
	protected.Get("/invoices/:id/pdf", controllers.DownloadInvoicePDF)

	// Dashboard
	protected.Get("/dashboard/stats", controllers.GetDashboardStats)
}
