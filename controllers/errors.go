package controllers

import (
	"errors"

	"github.com/fragisir/foodWebsite/pkg/apperr"
	"github.com/fragisir/foodWebsite/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fail maps service errors onto HTTP statuses.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrEmptyCart),
		errors.Is(err, apperr.ErrInvalidStatus):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, apperr.ErrCartConflict), errors.Is(err, apperr.ErrStaleCartItem):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
