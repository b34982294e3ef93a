package http

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func bindUUIDParam(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	if err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, c.Param(name), &id); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}

// bindPaging reads page and size from the query string, defaulting to the
// first page of DefaultPageSize.
func bindPaging(c echo.Context, defaultSize int) (int, int, error) {
	var page, size *int
	if err := runtime.BindQueryParameter("form", true, false, "page", c.QueryParams(), &page); err != nil {
		return 0, 0, errs.NewValueIsInvalidErrorWithCause("page", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "size", c.QueryParams(), &size); err != nil {
		return 0, 0, errs.NewValueIsInvalidErrorWithCause("size", err)
	}

	p, s := 1, defaultSize
	if page != nil {
		p = *page
	}
	if size != nil {
		s = *size
	}
	return p, s, nil
}

func bindBody(c echo.Context, body any) error {
	if err := c.Bind(body); err != nil {
		return err
	}
	return c.Validate(body)
}
