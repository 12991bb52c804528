package httperr

import (
	"net/http"

	"physio-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps the error taxonomy onto HTTP status codes; anything
// unmarked is a 500.
func StatusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrSlotConflict), errs.Is(err, errs.ErrState):
		return http.StatusConflict
	case errs.Is(err, errs.ErrExternalDependency):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ResponseFor builds the taxonomy response for err. Client errors expose the
// innermost sentinel message; server errors use fallback.
func ResponseFor(err error, fallback string) Response {
	resp := Response{Status: StatusFor(err)}
	resp.Error.Message = fallback
	if resp.Status < http.StatusInternalServerError || resp.Status == http.StatusBadGateway {
		resp.Error.Message = publicMessage(err, fallback)
	}
	return resp
}

func AbortWithDomainError(c *gin.Context, err error, fallback string) {
	resp := ResponseFor(err, fallback)
	AbortWithError(c, resp.Status, err, resp.Error.Message, nil)
}
