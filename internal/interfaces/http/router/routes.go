package router

import (
	"github.com/gin-gonic/gin"
	_ "github.com/inventorydb/backend/docs"
	"github.com/inventorydb/backend/internal/interfaces/http/handler"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles the HTTP handlers served by the application
type Handlers struct {
	Admin     *handler.AdminHandler
	Category  *handler.CategoryHandler
	Product   *handler.ProductHandler
	Inventory *handler.InventoryHandler
	System    *handler.SystemHandler
}

// Guards holds per-route middleware of the admin sub-application
type Guards struct {
	// Auth rejects requests without a valid bearer token
	Auth gin.HandlerFunc
	// CredentialLimit throttles /token and /new-admin. Nil disables it.
	CredentialLimit gin.HandlerFunc
}

func (g Guards) limited(h gin.HandlerFunc) []gin.HandlerFunc {
	if g.CredentialLimit == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{g.CredentialLimit, h}
}

// AdminRoutes returns the route groups of the admin sub-application.
// Reads are public; writes and self-service routes require Auth.
func AdminRoutes(h Handlers, g Guards) []*DomainGroup {
	identity := NewDomainGroup("identity", "")
	identity.POST("/new-admin", g.limited(h.Admin.Register)...)
	identity.POST("/token", g.limited(h.Admin.Token)...)
	self := identity.Group("self", "").Use(g.Auth)
	self.GET("/admin-info", h.Admin.GetInfo)
	self.PUT("/update-info", h.Admin.UpdateInfo)
	self.PUT("/change-password", h.Admin.ChangePassword)
	self.DELETE("/delete-admin", h.Admin.Delete)

	catalog := NewDomainGroup("catalog", "")
	catalog.GET("/categories", h.Category.List)
	catalog.GET("/category_by_id/:id", h.Category.GetByID)
	catalog.GET("/category_by_name/:name", h.Category.GetByName)
	catalog.POST("/category", g.Auth, h.Category.Create)
	catalog.PUT("/category/:id", g.Auth, h.Category.Update)
	catalog.DELETE("/category/:id", g.Auth, h.Category.Delete)
	catalog.GET("/products", h.Product.List)
	catalog.GET("/product_by_id/:id", h.Product.GetByID)
	catalog.GET("/product_by_sku/:sku", h.Product.GetBySKU)
	catalog.POST("/product", g.Auth, h.Product.Create)
	catalog.PUT("/product/:id", g.Auth, h.Product.Update)
	catalog.DELETE("/product/:id", g.Auth, h.Product.Delete)

	inventory := NewDomainGroup("inventory", "")
	inventory.GET("/inventories", h.Inventory.List)
	inventory.GET("/inventory_by_id/:id", h.Inventory.GetByID)
	inventory.GET("/inventory_by_id/:id/transactions", h.Inventory.ListTransactions)
	inventory.POST("/inventory", g.Auth, h.Inventory.Create)
	inventory.DELETE("/inventory/:id", g.Auth, h.Inventory.Delete)
	inventory.POST("/inventory_transaction", g.Auth, h.Inventory.RecordTransaction)

	return []*DomainGroup{identity, catalog, inventory}
}

// Mount registers the admin sub-application under the router's base path,
// and the system endpoints and Swagger UI at the engine root.
func Mount(engine *gin.Engine, h Handlers, g Guards, opts ...RouterOption) {
	engine.GET("/health", h.System.Health)
	engine.GET("/system/info", h.System.GetSystemInfo)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r := NewRouter(engine, opts...)
	for _, group := range AdminRoutes(h, g) {
		r.Register(group)
	}
	r.Setup()
}
