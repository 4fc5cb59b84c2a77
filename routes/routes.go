package routes

import (
	"lab-registry-api/controllers"
	"lab-registry-api/middleware"
	"lab-registry-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Lab Registry API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Auth management
			protected.POST("/logout", controllers.Logout)
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Users (any staff role reads, only evaluators mutate)
			usuarios := protected.Group("/usuarios")
			{
				usuarios.GET("", controllers.GetUsuarios)
				usuarios.GET("/:id", controllers.GetUsuario)
				usuarios.POST("", middleware.RequireRole(models.RolEvaluador), controllers.CreateUsuario)
				usuarios.PUT("/:id", middleware.RequireRole(models.RolEvaluador), controllers.UpdateUsuario)
				usuarios.PUT("/:id/toggle-active", middleware.RequireRole(models.RolEvaluador), controllers.ToggleUsuarioActivo)
				usuarios.DELETE("/:id", middleware.RequireRole(models.RolEvaluador), controllers.DeleteUsuario)
			}

			// Water sample records
			agua := protected.Group("/registros-agua")
			{
				agua.GET("", controllers.GetRegistrosAgua)
				agua.GET("/:id", controllers.GetRegistroAgua)
				agua.GET("/analista/:analistaId", controllers.GetRegistrosAguaPorAnalista)

				agua.POST("", middleware.RequireRole(models.RolRegistro), controllers.CreateRegistroAgua)
				agua.PUT("/:id", middleware.RequireRole(models.RolRegistro, models.RolAnalista), controllers.UpdateRegistroAgua)

				agua.PUT("/:id/asignar", middleware.RequireRole(models.RolEvaluador), controllers.AsignarRegistroAgua)
				agua.PUT("/:id/completar", middleware.RequireRole(models.RolAnalista), controllers.CompletarRegistroAgua)
				agua.PUT("/:id/aprobar", middleware.RequireRole(models.RolEvaluador), controllers.AprobarRegistroAgua)
				agua.PUT("/:id/rechazar", middleware.RequireRole(models.RolEvaluador), controllers.RechazarRegistroAgua)
			}

			// Food and beverage sample records
			aba := protected.Group("/registros-aba")
			{
				aba.GET("", controllers.GetRegistrosAba)
				aba.GET("/:id", controllers.GetRegistroAba)
				aba.GET("/analista/:analistaId", controllers.GetRegistrosAbaPorAnalista)

				aba.POST("", middleware.RequireRole(models.RolRegistro), controllers.CreateRegistroAba)
				aba.PUT("/:id", middleware.RequireRole(models.RolRegistro, models.RolAnalista), controllers.UpdateRegistroAba)

				aba.PUT("/:id/asignar", middleware.RequireRole(models.RolEvaluador), controllers.AsignarRegistroAba)
				aba.PUT("/:id/completar", middleware.RequireRole(models.RolAnalista), controllers.CompletarRegistroAba)
				aba.PUT("/:id/aprobar", middleware.RequireRole(models.RolEvaluador), controllers.AprobarRegistroAba)
				aba.PUT("/:id/rechazar", middleware.RequireRole(models.RolEvaluador), controllers.RechazarRegistroAba)
			}

			// Reports and public token issuance
			pdf := protected.Group("/pdf")
			{
				pdf.GET("/registro/:id/:tipo", controllers.GenerarPdfRegistro)
				pdf.GET("/preview/:id/:tipo", controllers.PreviewPdfRegistro)
				pdf.POST("/registro/:id/:tipo/token", middleware.RequireRole(models.RolEvaluador, models.RolRegistro), controllers.GenerarTokenRegistro)
			}
		}
	}

	// Public token lookup: the only intentionally unauthenticated surface.
	// Any origin may call it; the token itself is the credential.
	publico := router.Group("/api/public")
	publico.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Next()
	})
	{
		publico.GET("/validate-token/:token", controllers.ValidateToken)
		publico.GET("/pdf/:token", controllers.GetPdfByToken)
		publico.GET("/health", controllers.PublicHealth)
	}
}
