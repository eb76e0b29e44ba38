package routes

import (
	"github.com/labstack/echo/v4"

	"branches-api/internal/controllers"
)

func runBranchRouter(group *echo.Group, branchCtrl *controllers.BranchController) {
	group.GET("", branchCtrl.GetAllBranches)
	group.GET("/", branchCtrl.GetAllBranches)
	group.POST("", branchCtrl.CreateBranch)
	group.POST("/", branchCtrl.CreateBranch)
	group.GET("/:id", branchCtrl.GetBranchByID)
	group.PATCH("/:id/phone", branchCtrl.UpdatePhoneNumber)
	group.POST("/:id/holiday", branchCtrl.AddHolidays)
	group.GET("/:id/holiday", branchCtrl.GetHolidays)
	group.GET("/:id/holiday/check", branchCtrl.IsHoliday)
	group.GET("/:id/holiday/export", branchCtrl.ExportHolidays)
	group.DELETE("/:id/holiday/:date", branchCtrl.DeleteHoliday)
}

func runHealthRouter(e *echo.Echo, healthCtrl *controllers.HealthController) {
	e.GET("/health", healthCtrl.Health)
}
