package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/yourusername/lokal-market/internal/usecase"
)

// InitRouter mendaftarkan seluruh route etalase dan admin
func InitRouter(server *gin.Engine, handler *Handler, adminUseCase usecase.AdminUseCase) *gin.Engine {
	server.Use(Recovery())
	server.Use(CORS())

	// Etalase pelanggan
	server.GET("/products", handler.ListProducts)
	server.GET("/categories", handler.ListCategories)
	server.POST("/orders/:id", handler.Order)
	server.POST("/assistant", handler.Ask)

	// Dashboard admin
	admin := server.Group("/admin")
	{
		admin.POST("/login", handler.Login)

		gated := admin.Group("")
		gated.Use(AdminOnly(adminUseCase))
		{
			gated.POST("/logout", handler.Logout)
			gated.GET("/products", handler.AdminProducts)
			gated.GET("/stats", handler.Stats)
			gated.POST("/import", handler.ImportCatalog)
			gated.GET("/template", handler.DownloadTemplate)
			gated.GET("/selection", handler.Selection)
			gated.POST("/selection/toggle/:id", handler.ToggleSelect)
			gated.POST("/selection/toggle-all", handler.ToggleSelectAll)
			gated.POST("/selection/clear", handler.ClearSelection)
			gated.POST("/products/status", handler.BulkSetStatus)
			gated.POST("/products/delete", handler.BulkDelete)
			gated.DELETE("/products/:id", handler.DeleteProduct)
		}
	}

	return server
}
