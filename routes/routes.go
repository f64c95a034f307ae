package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/aastu-dms/DMSystem/config"
	"github.com/aastu-dms/DMSystem/database"
	"github.com/aastu-dms/DMSystem/handlers"
	"github.com/aastu-dms/DMSystem/middlewares"
	"github.com/aastu-dms/DMSystem/services"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Services =====
	phaseSvc := services.NewPhaseService(database.DB)
	roomSvc := services.NewRoomService(database.DB)
	appSvc := services.NewApplicationService(database.DB, phaseSvc)
	allocSvc := services.NewAllocationService(database.DB, roomSvc, appSvc)

	// ===== Handlers =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	std := handlers.NewStudentHandler(appSvc)
	app := handlers.NewApplicationHandler(appSvc)
	room := handlers.NewRoomHandler(roomSvc)
	phase := handlers.NewPhaseHandler(phaseSvc)
	alloc := handlers.NewAllocationHandler(allocSvc)
	ann := handlers.NewAnnouncementHandler()

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/auth/register", auth.Register)
	e.POST("/auth/login", auth.Login)
	e.GET("/announcements/active", ann.Active)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Student routes =====
	student := e.Group("/student", authMW, middlewares.RequireRole("student"))
	student.GET("/me", std.Me)
	student.PUT("/me", std.UpdateMe)
	student.POST("/applications", app.Submit)
	student.GET("/applications/me", app.My)
	student.GET("/allocations/me", alloc.My)

	// ===== Admin routes =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))

	admin.GET("/students", std.List)

	admin.GET("/applications", app.List)
	admin.PATCH("/applications/:id/verify", app.Verify)

	admin.GET("/rooms", room.List)
	admin.POST("/rooms", room.Create)
	admin.PUT("/rooms/:id", room.Update)
	admin.DELETE("/rooms/:id", room.Delete)

	admin.GET("/phases", phase.List)
	admin.POST("/phases", phase.Create)
	admin.PATCH("/phases/:id/status", phase.SetStatus)
	admin.DELETE("/phases/:id", phase.Delete)

	admin.POST("/allocations/run", alloc.Run)
	admin.GET("/allocations", alloc.List)

	admin.GET("/announcements", ann.List)
	admin.POST("/announcements", ann.Create)
	admin.PATCH("/announcements/:id", ann.Update)
	admin.DELETE("/announcements/:id", ann.Delete)
}
