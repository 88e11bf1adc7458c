package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/schoolos/schoolos/core"
)

var (
	errMockDataDisabled   = echo.NewHTTPError(http.StatusNotImplemented, "Mock data feature flag disabled.")
	errAssignmentNotFound = echo.NewHTTPError(http.StatusNotFound, "Assignment not found.")
	errSectionNotFound    = echo.NewHTTPError(http.StatusNotFound, "Section not found.")
	errInvalidHost        = echo.NewHTTPError(http.StatusBadRequest, "Invalid host header.")
	errObjNotFoundInCtx   = errors.New("object not found in echo.Context")
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			message = translateFieldErrors(origErr, translator)
		case *core.ValidationError:
			fldErrs := make(map[string]string, len(origErr.Fields))
			if vErrs, ok := origErr.Err.(validator.ValidationErrors); ok {
				fldErrs = translateFieldErrors(vErrs, translator)
			}
			for _, fErr := range origErr.Fields {
				fldErrs[fErr.Field] = fErr.Error
			}
			if len(fldErrs) > 0 {
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		default: // any other error is a server error
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg
			if ctx.Echo().Debug {
				message = err.Error()
			}

			logger.Error(msg, errors.Wrap(err, msg), ctx.Request())
		}

		if m, ok := message.(string); ok {
			message = echo.Map{"detail": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

func translateFieldErrors(vErrs validator.ValidationErrors, translator ut.Translator) map[string]string {
	fldErrs := make(map[string]string, len(vErrs))
	for _, vErr := range vErrs {
		fldErrs[vErr.Field()] = vErr.Translate(translator)
	}
	return fldErrs
}
