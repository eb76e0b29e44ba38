package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"branches-api/internal/controllers"
	"branches-api/internal/mappers"
	"branches-api/internal/repositories"
	"branches-api/internal/services"
	"branches-api/pkg/config"
	"branches-api/pkg/customvalidator"
	"branches-api/pkg/middleware"
	"branches-api/pkg/utils"
)

const branchBasePath = "/api/branches_api/v1/branch"

// NewEcho создаёт echo с валидатором, обработчиком ошибок и общими middleware.
func NewEcho(cfg *config.Config, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		return nil, err
	}
	e.Validator = utils.NewValidator(v)
	e.HTTPErrorHandler = utils.HTTPErrorHandler(logger)

	e.Use(middleware.Recover(logger))
	e.Use(middleware.RequestLogger(logger))
	if len(cfg.Server.AllowedOrigins) > 0 {
		e.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	}
	return e, nil
}

func InitRouter(e *echo.Echo, branchRepo repositories.BranchRepositoryInterface, storage string, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	branchMapper := mappers.NewBranchMapper(utils.Now)
	branchService := services.NewBranchService(branchRepo, branchMapper, utils.Now, logger)

	runBranchRouter(e.Group(branchBasePath), controllers.NewBranchController(branchService, logger))
	runHealthRouter(e, controllers.NewHealthController(branchService, storage, logger))

	logger.Info("INIT_ROUTER: Создание маршрутов завершено")
}
