package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seiyak/gourmet-hunter-backend/internal/apierr"
	"github.com/seiyak/gourmet-hunter-backend/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps domain errors onto the envelope. Validation
// failures never reached the store and are the caller's to fix;
// everything else surfaces as a backend fault with the underlying
// message intact.
func RespondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}
	var slotErr *services.InvalidSlotError
	if errors.As(err, &slotErr) {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidSlot, err)
		return
	}
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		RespondError(c, apiErr.Status, apiErr.Code, err)
		return
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		RespondError(c, http.StatusConflict, apierr.CodeConflict, err)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		RespondError(c, http.StatusNotFound, apierr.CodeNotFound, err)
		return
	}
	RespondError(c, http.StatusBadGateway, apierr.CodeTransport, err)
}
