package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/interfaces/http/dto"
)

// WWWAuthenticateBearer is sent with every 401 response
const WWWAuthenticateBearer = "Bearer"

// AbortWithDetail aborts the request with {"detail": detail}
func AbortWithDetail(c *gin.Context, status int, detail string) {
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", WWWAuthenticateBearer)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// AbortWithError aborts the request with the status and message of a domain
// error. Anything else becomes a generic 500. Validation errors get the same
// body as binding failures, with the domain message as detail.
func AbortWithError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		domainErr = shared.ErrInternal
	}
	if domainErr.Code == shared.CodeValidation {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity,
			dto.NewValidationErrorResponse(domainErr.Message, []dto.FieldError{{
				Loc:  []string{LocBody},
				Msg:  domainErr.Message,
				Type: "value_error",
			}}))
		return
	}
	AbortWithDetail(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Message)
}
