package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront/pkg/errs"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Code: CodeSuccess, Message: "Success", Data: data})
}

// OKMessage sends 200 JSON with a message only.
func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Resp{Code: CodeSuccess, Message: message})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{Code: CodeUnauthorized, Message: "Unauthorized"})
}

// Error maps an error from the taxonomy to a status and envelope.
func Error(c *gin.Context, err error) {
	status, resp := parseError(err)
	c.JSON(status, resp)
}

func parseError(err error) (int, Resp) {
	if errors.Is(err, errs.ErrUnauthorized) || errors.Is(err, errs.ErrInvalidCredentialFormat) {
		return http.StatusUnauthorized, Resp{Code: CodeUnauthorized, Message: err.Error()}
	}

	var validation *errs.ValidationErrors
	if errors.As(err, &validation) {
		return http.StatusBadRequest, Resp{
			Code:    CodeValidationError,
			Message: "validation failed",
			Errors:  validation.Errors(),
		}
	}

	var gateway *errs.GatewayError
	if errors.As(err, &gateway) {
		return http.StatusBadGateway, Resp{Code: CodeGatewayError, Message: gateway.Error()}
	}

	var transport *errs.TransportError
	if errors.As(err, &transport) {
		return http.StatusBadGateway, Resp{Code: CodeTransportError, Message: transport.Error()}
	}

	var remote *errs.RemoteError
	if errors.As(err, &remote) {
		return http.StatusBadRequest, Resp{Code: CodeError, Message: remote.Error()}
	}

	return http.StatusInternalServerError, Resp{Code: CodeError, Message: err.Error()}
}
