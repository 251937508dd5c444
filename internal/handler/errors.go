package handler

import (
	"errors"
	"log"
	"net/http"

	"sipanuri-backend/internal/apperrors"
	"sipanuri-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP surface: validation and
// business-rule failures become 400, missing records 404, and everything
// else is treated as a storage error, logged with full detail and surfaced
// as a generic 500 message.
func respondError(c *gin.Context, err error, fallback string) {
	var validation *apperrors.ValidationError
	if errors.As(err, &validation) {
		utils.ErrorResponse(c, http.StatusBadRequest, validation.Error())
		return
	}

	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		utils.ErrorResponse(c, http.StatusNotFound, notFound.Error())
		return
	}

	var rule *apperrors.BusinessRuleError
	if errors.As(err, &rule) {
		utils.ErrorResponse(c, http.StatusBadRequest, rule.Error())
		return
	}

	log.Printf("Storage error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
}

// respondReadError is respondError for GET endpoints, which use the bare
// error shape instead of the mutation envelope.
func respondReadError(c *gin.Context, err error, fallback string) {
	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		utils.ReadErrorResponse(c, http.StatusNotFound, notFound.Error())
		return
	}

	var validation *apperrors.ValidationError
	if errors.As(err, &validation) {
		utils.ReadErrorResponse(c, http.StatusBadRequest, validation.Error())
		return
	}

	log.Printf("Storage error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.ReadErrorResponse(c, http.StatusInternalServerError, fallback)
}
