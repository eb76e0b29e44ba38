package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"branches-api/pkg/customvalidator"
	apperrors "branches-api/pkg/errors"
	"branches-api/pkg/types"
)

const (
	TitleBranchNotFound  = "Branch Not Found"
	TitleHolidayNotFound = "Holiday Not Found"
	TitleValidation      = "Validation Error"
	TitleInternal        = "Internal Server Error"
)

// ToHttpError - единственное место, где ошибки переводятся в HTTP-статусы.
func ToHttpError(err error) *apperrors.HttpError {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msg := strings.Join(customvalidator.Describe(validationErrors, ""), ", ")
		return apperrors.NewHttpError(http.StatusBadRequest, TitleValidation, msg, err)
	}

	switch {
	case errors.Is(err, apperrors.ErrBranchNotFound):
		return apperrors.NewHttpError(http.StatusNotFound, TitleBranchNotFound, err.Error(), err)
	case errors.Is(err, apperrors.ErrHolidayNotFound):
		return apperrors.NewHttpError(http.StatusNotFound, TitleHolidayNotFound, err.Error(), err)
	case errors.Is(err, apperrors.ErrValidation):
		return apperrors.NewHttpError(http.StatusBadRequest, TitleValidation, err.Error(), err)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return apperrors.NewHttpError(echoErr.Code, http.StatusText(echoErr.Code), fmt.Sprint(echoErr.Message), err)
	}

	return apperrors.NewHttpError(http.StatusInternalServerError, TitleInternal, err.Error(), err)
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	httpErr := ToHttpError(err)

	fields := []zap.Field{
		zap.Int("code", httpErr.Code),
		zap.String("method", c.Request().Method),
		zap.String("path", c.Request().URL.Path),
		zap.String("message", httpErr.Message),
	}
	if httpErr.Code >= http.StatusInternalServerError {
		logger.Error(httpErr.Title, append(fields, zap.Error(httpErr.Err))...)
	} else {
		logger.Warn(httpErr.Title, fields...)
	}

	return c.JSON(httpErr.Code, types.ErrorBody{
		Status:  httpErr.Code,
		Error:   httpErr.Title,
		Message: httpErr.Message,
		Path:    c.Request().URL.Path,
	})
}

// HTTPErrorHandler - замена стандартного обработчика echo (404 маршрута, 405, паники).
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(ToHttpError(err).Code)
			return
		}
		if respErr := ErrorResponse(c, err, logger); respErr != nil {
			logger.Error("Не удалось отправить ответ с ошибкой", zap.Error(respErr))
		}
	}
}
