package handlers

import (
	"errors"
	"strconv"

	"clubmanager/internal/apperrors"
	. "clubmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders errors that escape a handler, including fiber's own
// routing errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).
			JSON(fiber.Map{"message": "error", "error": fiberErr.Message})
	}

	appErr := apperrors.From(err)
	return c.Status(appErr.HTTPStatus()).JSON(errorBody(appErr))
}

func errorBody(appErr *apperrors.Error) fiber.Map {
	body := fiber.Map{"message": appErr.Message, "error": appErr.Code}
	if len(appErr.Fields) > 0 {
		body["errors"] = appErr.Fields
	}
	return body
}

// fail writes err using the status of its kind.
func (h Handler) fail(c *fiber.Ctx, err error) error {
	appErr := apperrors.From(err)

	switch appErr.Kind {
	case apperrors.KindBusinessRule:
		if h.middleware.Metrics != nil {
			h.middleware.Metrics.RuleViolation(string(appErr.Code))
		}
	case apperrors.KindUnexpected:
		h.log.Function("fail").Er("request failed", err, "method", c.Method(), "path", c.Path())
	}

	return c.Status(appErr.HTTPStatus()).JSON(errorBody(appErr))
}

func (h Handler) parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		h.log.Function("parseBody").Debug("failed to parse request body", "error", err)
		return apperrors.Validation("failed to parse request body", nil)
	}
	return nil
}

func paramID(c *fiber.Ctx, name string) (int, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation("invalid id", map[string]string{name: "must be a positive integer"})
	}
	return id, nil
}

// queryYear reads ?year=, returning 0 when absent.
func queryYear(c *fiber.Ctx) (int, error) {
	raw := c.Query("year")
	if raw == "" {
		return 0, nil
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 1900 || year > 2200 {
		return 0, apperrors.Validation("invalid year", map[string]string{"year": "must be a four digit year"})
	}
	return year, nil
}

func queryDate(c *fiber.Ctx, name string) (Date, error) {
	raw := c.Query(name)
	if raw == "" {
		return Date{}, nil
	}

	date, err := ParseDate(raw)
	if err != nil {
		return Date{}, apperrors.Validation("invalid date", map[string]string{name: "must be YYYY-MM-DD"})
	}
	return date, nil
}

func queryClockTime(c *fiber.Ctx, name string) (ClockTime, error) {
	raw := c.Query(name)
	if raw == "" {
		return ClockTime{}, nil
	}

	clock, err := ParseClockTime(raw)
	if err != nil {
		return ClockTime{}, apperrors.Validation("invalid time", map[string]string{name: "must be HH:MM"})
	}
	return clock, nil
}
