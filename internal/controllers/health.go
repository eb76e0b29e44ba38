package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"branches-api/internal/services"
	apperrors "branches-api/pkg/errors"
	"branches-api/pkg/types"
	"branches-api/pkg/utils"
)

type HealthController struct {
	branchService *services.BranchService
	storage       string
	logger        *zap.Logger
}

func NewHealthController(branchService *services.BranchService, storage string, logger *zap.Logger) *HealthController {
	return &HealthController{branchService: branchService, storage: storage, logger: logger}
}

func (c *HealthController) Health(ctx echo.Context) error {
	if err := c.branchService.Ping(ctx.Request().Context()); err != nil {
		httpErr := apperrors.NewHttpError(http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable), err.Error(), err)
		return utils.ErrorResponse(ctx, httpErr, c.logger)
	}
	return ctx.JSON(http.StatusOK, types.HealthBody{Status: "UP", Storage: c.storage})
}
