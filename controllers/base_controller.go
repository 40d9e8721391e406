package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	apimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("error interpretando la petición")
		return errors.New("no se pudieron obtener los datos de la petición")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("se requiere el identificador del registro")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError traduce la taxonomía de errores del dominio al código http; todo lo
// no clasificado es un 500 con mensaje genérico
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	switch {
	case errors.Is(err, workflow.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workflow.ErrInvalidTransition), errors.Is(err, workflow.ErrConflict):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workflow.ErrUnauthorized):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workflow.ErrValidation):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}
