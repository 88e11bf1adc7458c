package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/schoolos/schoolos/core/school"
)

type schoolApi struct {
	service *school.Service
}

func registerSchoolAPI(g *echo.Group, svc *school.Service) {
	api := schoolApi{service: svc}

	g.GET("/me", api.me)
	g.GET("/dashboard/stats", api.dashboardStats)
	g.GET("/courses", api.courseQuery)

	sg := g.Group("/sections/:section_id")
	sg.GET("/roster", api.sectionRoster)
	sg.GET("/gradebook", api.sectionGradebook)
}

func (api *schoolApi) me(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.service.Me())
}

func (api *schoolApi) dashboardStats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.service.DashboardStats())
}

func (api *schoolApi) courseQuery(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.service.Courses())
}

func (api *schoolApi) sectionRoster(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("section_id"))
	if err != nil {
		return errSectionNotFound
	}
	roster, err := api.service.SectionRoster(id)
	if err != nil {
		return sectionError(err)
	}
	return ctx.JSON(http.StatusOK, roster)
}

func (api *schoolApi) sectionGradebook(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("section_id"))
	if err != nil {
		return errSectionNotFound
	}
	gradebook, err := api.service.SectionGradebook(id)
	if err != nil {
		return sectionError(err)
	}
	return ctx.JSON(http.StatusOK, gradebook)
}

func sectionError(err error) error {
	if errors.Cause(err) == school.ErrSectionNotFound {
		return errSectionNotFound
	}
	return err
}
