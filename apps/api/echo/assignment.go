package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/schoolos/schoolos/core/assignment"
)

const ctxObjectKey = "object"

type assignmentApi struct {
	service  *assignment.Service
	validate *validator.Validate
}

func registerAssignmentAPI(g *echo.Group, svc *assignment.Service, validate *validator.Validate) {
	api := assignmentApi{service: svc, validate: validate}

	ag := g.Group("/assignments")
	ag.GET("", api.assignmentQuery)
	ag.POST("", api.assignmentCreate)

	// detail endpoints
	dg := ag.Group("/:id", ctxAssignmentMiddleware(api.service))
	dg.GET("", api.assignmentRetrieve)
	dg.PUT("", api.assignmentUpdate)
	dg.PATCH("", api.assignmentPartialUpdate)
	dg.DELETE("", api.assignmentDestroy)
}

// Handlers

func (api *assignmentApi) assignmentQuery(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.service.QueryAll())
}

func (api *assignmentApi) assignmentCreate(ctx echo.Context) error {
	data := new(assignment.Payload)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.service.Create(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *assignmentApi) assignmentRetrieve(ctx echo.Context) error {
	a, ok := ctx.Get(ctxObjectKey).(assignment.Assignment)
	if !ok {
		return errObjNotFoundInCtx
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *assignmentApi) assignmentUpdate(ctx echo.Context) error {
	a, ok := ctx.Get(ctxObjectKey).(assignment.Assignment)
	if !ok {
		return errObjNotFoundInCtx
	}

	data := new(assignment.Payload)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	updated, err := api.service.Update(a.ID, *data)
	if err != nil {
		if errors.Cause(err) == assignment.ErrNotFound {
			return errAssignmentNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *assignmentApi) assignmentPartialUpdate(ctx echo.Context) error {
	a, ok := ctx.Get(ctxObjectKey).(assignment.Assignment)
	if !ok {
		return errObjNotFoundInCtx
	}

	data := new(assignment.Payload)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.ValidatePartial(api.validate); err != nil {
		return err
	}

	updated, err := api.service.PartialUpdate(a, *data)
	if err != nil {
		if errors.Cause(err) == assignment.ErrNotFound {
			return errAssignmentNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *assignmentApi) assignmentDestroy(ctx echo.Context) error {
	a, ok := ctx.Get(ctxObjectKey).(assignment.Assignment)
	if !ok {
		return errObjNotFoundInCtx
	}
	if !api.service.Delete(a.ID) {
		return errAssignmentNotFound
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Middlewares

// ctxAssignmentMiddleware resolves the `:id` path param and stores the assignment in the context.
// Ids that are not integers can never match a record, so they are reported as not found.
func ctxAssignmentMiddleware(svc *assignment.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := strconv.Atoi(ctx.Param("id"))
			if err != nil {
				return errAssignmentNotFound
			}
			a, err := svc.GetByID(id)
			if err != nil {
				if errors.Cause(err) == assignment.ErrNotFound {
					return errAssignmentNotFound
				}
				return errors.Wrap(err, "getting assignment")
			}
			ctx.Set(ctxObjectKey, a)
			return next(ctx)
		}
	}
}
