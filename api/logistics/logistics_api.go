package logistics

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"mft.GO/api"
	"mft.GO/core/dberr"
	entity "mft.GO/model/entity"
	breakpointRepo "mft.GO/model/repository/breakpoint"
	packagingRepo "mft.GO/model/repository/packaging"
	partRepo "mft.GO/model/repository/part"
	supplierRepo "mft.GO/model/repository/supplier"
)

func init() {
	api.RegisterModule(RegisterLogisticsRoutes)
}

// RegisterLogisticsRoutes exposes the supplier/part chain and packaging
// write contracts over HTTP (auth required via /api middleware).
func RegisterLogisticsRoutes(apiGroup *echo.Group, db *gorm.DB) {
	suppliers := supplierRepo.NewSupplierRepository(db)
	parts := partRepo.NewPartRepository(db)
	packaging := packagingRepo.NewPackagingRepository(db)
	breakpoints := breakpointRepo.NewBreakpointRepository(db)

	apiGroup.POST("/suppliers", func(c echo.Context) error {
		var s entity.Supplier
		if err := c.Bind(&s); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := suppliers.Create(&s); err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusCreated, s)
	})

	apiGroup.GET("/suppliers/:id", func(c echo.Context) error {
		s, err := suppliers.FindByID(c.Param("id"))
		if err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusOK, s)
	})

	apiGroup.DELETE("/suppliers/:id", func(c echo.Context) error {
		if err := suppliers.Delete(c.Param("id")); err != nil {
			return writeErr(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})

	apiGroup.POST("/parts", func(c echo.Context) error {
		var p entity.Part
		if err := c.Bind(&p); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := parts.Create(&p); err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusCreated, p)
	})

	apiGroup.GET("/parts/:id", func(c echo.Context) error {
		p, err := parts.FindByID(c.Param("id"))
		if err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusOK, p)
	})

	apiGroup.DELETE("/parts/:id", func(c echo.Context) error {
		if err := parts.Delete(c.Param("id")); err != nil {
			return writeErr(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})

	apiGroup.POST("/boxes", func(c echo.Context) error {
		var b entity.Box
		if err := c.Bind(&b); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := packaging.CreateBox(&b); err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusCreated, b)
	})

	apiGroup.GET("/boxes/:id", func(c echo.Context) error {
		b, err := packaging.FindBoxByID(c.Param("id"))
		if err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusOK, b)
	})

	apiGroup.POST("/pallets", func(c echo.Context) error {
		var p entity.Pallet
		if err := c.Bind(&p); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := packaging.CreatePallet(&p); err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusCreated, p)
	})

	// Attach a part to a box with the packing quantity.
	apiGroup.POST("/parts/:id/boxes", func(c echo.Context) error {
		var rel entity.PartToBox
		if err := c.Bind(&rel); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		rel.PartID = c.Param("id")
		if err := parts.AttachBox(&rel); err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusCreated, rel)
	})

	apiGroup.POST("/breakpoints", func(c echo.Context) error {
		var b entity.Breakpoint
		if err := c.Bind(&b); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := breakpoints.Create(&b); err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusCreated, b)
	})

	// Record a pre-change snapshot of a part against a breakpoint.
	apiGroup.POST("/parts/:id/breakpoints", func(c echo.Context) error {
		var rel entity.PartToBreakpoint
		if err := c.Bind(&rel); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		rel.PartID = c.Param("id")
		if err := parts.AttachBreakpoint(&rel); err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusCreated, rel)
	})

	apiGroup.GET("/parts/:id/breakpoints", func(c echo.Context) error {
		out, err := parts.BreakpointsFor(c.Param("id"))
		if err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusOK, out)
	})
}

// writeErr maps the violation kinds to HTTP statuses: uniqueness and
// referential-integrity conflicts are 409, domain violations 422,
// missing rows 404.
func writeErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dberr.ErrUniqueness), errors.Is(err, dberr.ErrReferentialIntegrity):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, dberr.ErrDomain):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
