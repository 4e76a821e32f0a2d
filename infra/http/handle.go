package http

import (
	"catalog/pkg/httperror"
	"context"
	"errors"
	"reflect"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Request any
type Response any

type HandlerInterface[R Request, Res Response] interface {
	Handle(ctx context.Context, req *R) (*Res, error)
}

// statusCoder lets a response pick a status other than 200.
type statusCoder interface {
	StatusCode() int
}

// declaresTag reports whether any field of the request struct carries tag.
// Fiber's decoders match untagged fields by name, so a parser only runs for
// the sources a request opts into.
func declaresTag(t reflect.Type, tag string) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		if _, ok := t.Field(i).Tag.Lookup(tag); ok {
			return true
		}
	}
	return false
}

func handle[R Request, Res Response](handler HandlerInterface[R, Res]) fiber.Handler {
	reqType := reflect.TypeOf((*R)(nil)).Elem()
	parseParams := declaresTag(reqType, "params")
	parseQuery := declaresTag(reqType, "query")
	parseHeaders := declaresTag(reqType, "reqHeader")

	return func(c *fiber.Ctx) error {
		var req R

		if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return writeError(c, httperror.BadRequest(
				"request.invalid_body",
				"Invalid request body",
				err.Error(),
			))
		}

		if parseParams {
			if err := c.ParamsParser(&req); err != nil {
				return writeError(c, httperror.BadRequest(
					"request.invalid_path_params",
					"Invalid path params",
					err.Error(),
				))
			}
		}

		if parseQuery {
			if err := c.QueryParser(&req); err != nil {
				return writeError(c, httperror.BadRequest(
					"request.invalid_query_params",
					"Invalid query params",
					err.Error(),
				))
			}
		}

		if parseHeaders {
			if err := c.ReqHeaderParser(&req); err != nil {
				return writeError(c, httperror.BadRequest(
					"request.invalid_headers",
					"Invalid headers",
					err.Error(),
				))
			}
		}

		ctx := c.UserContext()

		res, err := handler.Handle(ctx, &req)
		if err != nil {
			return writeError(c, err)
		}

		status := fiber.StatusOK
		if sc, ok := any(res).(statusCoder); ok {
			status = sc.StatusCode()
		}

		if status == fiber.StatusNoContent {
			return c.SendStatus(status)
		}

		return c.Status(status).JSON(res)
	}
}

// writeError renders every failure as {"error": message}. Details stay in
// the log.
func writeError(c *fiber.Ctx, err error) error {
	var httpErr *httperror.Error
	if errors.As(err, &httpErr) {
		if httpErr.Status >= fiber.StatusInternalServerError {
			zap.L().Error("Handler returned server error", zap.String("code", httpErr.Code), zap.Error(httpErr))
		} else {
			zap.L().Warn("Handler returned client error", zap.String("code", httpErr.Code), zap.Error(httpErr))
		}

		message := httpErr.Message
		if httpErr.Status == fiber.StatusInternalServerError {
			message = internalErrorMessage
		}

		return c.Status(httpErr.Status).JSON(fiber.Map{
			"error": message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code >= fiber.StatusInternalServerError {
			zap.L().Error("Fiber returned server error", zap.String("message", fiberErr.Message), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": internalErrorMessage,
			})
		}
		zap.L().Warn("Fiber returned client error", zap.String("message", fiberErr.Message), zap.Error(err))
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	zap.L().Error("Unhandled error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": internalErrorMessage,
	})
}

const internalErrorMessage = "Internal server error"
