// Файл: internal/controllers/branch.go

package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"branches-api/internal/dto"
	"branches-api/internal/entities"
	"branches-api/internal/services"
	"branches-api/pkg/customvalidator"
	apperrors "branches-api/pkg/errors"
	"branches-api/pkg/types"
	"branches-api/pkg/utils"
)

const (
	holidaySheet = "Holidays"
	xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type BranchController struct {
	branchService *services.BranchService
	logger        *zap.Logger
}

func NewBranchController(branchService *services.BranchService, logger *zap.Logger) *BranchController {
	return &BranchController{
		branchService: branchService,
		logger:        logger,
	}
}

func (c *BranchController) GetAllBranches(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	c.logger.Info("API: GET /branch - получение всех филиалов")

	branches, err := c.branchService.GetAllBranches(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.logger.Info("API: филиалы отданы", zap.Int("count", len(branches)))
	return ctx.JSON(http.StatusOK, branches)
}

func (c *BranchController) CreateBranch(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var request dto.BranchRequest
	if err := bindBody(ctx, &request, objectBodyShape); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&request); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	c.logger.Info("API: POST /branch - создание филиала", zap.String("name", request.Name))

	res, err := c.branchService.CreateBranch(reqCtx, request)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.logger.Info("API: филиал создан", zap.String("branch_id", res.ID))
	return ctx.JSON(http.StatusCreated, res)
}

func (c *BranchController) GetBranchByID(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")
	c.logger.Info("API: GET /branch/:id - получение филиала", zap.String("branch_id", id))

	res, err := c.branchService.GetBranchByID(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *BranchController) UpdatePhoneNumber(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	var request dto.PhoneUpdateRequest
	if err := bindBody(ctx, &request, objectBodyShape); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&request); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	c.logger.Info("API: PATCH /branch/:id/phone - обновление телефона", zap.String("branch_id", id))

	res, err := c.branchService.UpdatePhoneNumber(reqCtx, id, request.PhoneNumber)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *BranchController) AddHolidays(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	var holidays []dto.BranchHolidayRequest
	if err := bindBody(ctx, &holidays, holidayBodyShape); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	// Пустое тело и null не равны явному [].
	if holidays == nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("body: holiday list is required"), c.logger)
	}

	// Каждый элемент списка проверяется отдельно, ошибки собираются в одно сообщение.
	var problems []string
	for i := range holidays {
		if err := ctx.Validate(&holidays[i]); err != nil {
			problems = append(problems, customvalidator.Describe(err, fmt.Sprintf("holidays[%d].", i))...)
		}
	}
	if len(problems) > 0 {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("%s", strings.Join(problems, ", ")), c.logger)
	}
	c.logger.Info("API: POST /branch/:id/holiday - добавление праздников",
		zap.String("branch_id", id), zap.Int("count", len(holidays)))

	res, err := c.branchService.AddHolidays(reqCtx, id, holidays)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (c *BranchController) DeleteHoliday(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	date, err := parseDate("date", ctx.Param("date"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	c.logger.Info("API: DELETE /branch/:id/holiday/:date - удаление праздника",
		zap.String("branch_id", id), zap.Stringer("date", date))

	res, err := c.branchService.DeleteHoliday(reqCtx, id, date)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *BranchController) GetHolidays(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")
	c.logger.Info("API: GET /branch/:id/holiday - получение праздников", zap.String("branch_id", id))

	holidays, err := c.branchService.GetHolidays(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, holidays)
}

func (c *BranchController) IsHoliday(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	date, err := parseDate("date", ctx.QueryParam("date"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.branchService.IsHoliday(reqCtx, id, date)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.logger.Info("API: проверка праздника",
		zap.String("branch_id", id), zap.Stringer("date", date), zap.Bool("is_holiday", res.IsHoliday))
	return ctx.JSON(http.StatusOK, res)
}

// ExportHolidays отдаёт календарь праздников филиала в XLSX.
func (c *BranchController) ExportHolidays(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	holidays, err := c.branchService.GetHolidays(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	f, err := buildHolidayWorkbook(holidays)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer f.Close()

	fileName := fmt.Sprintf("holidays_%s.xlsx", id)
	ctx.Response().Header().Set(echo.HeaderContentType, xlsxMimeType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func buildHolidayWorkbook(holidays []entities.BranchHoliday) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", holidaySheet); err != nil {
		return nil, err
	}

	headers := []interface{}{"Date", "Name"}
	if err := f.SetSheetRow(holidaySheet, "A1", &headers); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(holidaySheet, "A1", "B1", style); err != nil {
		return nil, err
	}

	for i, h := range holidays {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{h.Date.String(), h.Name}
		if err := f.SetSheetRow(holidaySheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(holidaySheet, "A", "A", 14); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(holidaySheet, "B", "B", 40); err != nil {
		return nil, err
	}
	return f, nil
}

const (
	objectBodyShape  = "must be a JSON object"
	holidayBodyShape = "must be a JSON array of {date, name}"
)

// bindBody читает только тело запроса; ошибка разбора JSON считается ошибкой валидации.
// shape подставляется в сообщение, когда тело не того JSON-типа.
// Неподдерживаемый Content-Type отдаётся как есть (415).
func bindBody(ctx echo.Context, target interface{}, shape string) error {
	err := new(echo.DefaultBinder).BindBody(ctx, target)
	if err == nil {
		return nil
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusUnsupportedMediaType {
		return he
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return apperrors.NewValidationError("body: %s", shape)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.NewValidationError("body: malformed JSON")
	}

	msg := "malformed request body"
	if he != nil {
		msg = fmt.Sprint(he.Message)
	}
	return apperrors.NewValidationError("body: %s", msg)
}

func parseDate(field, raw string) (types.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return types.Date{}, apperrors.NewValidationError("%s: Date is required", field)
	}
	date, err := types.ParseDate(raw)
	if err != nil {
		return types.Date{}, apperrors.NewValidationError("%s: %s", field, err.Error())
	}
	return date, nil
}
