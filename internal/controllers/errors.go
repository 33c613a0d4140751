package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
}

// SetLogger replaces the logger used to report unexpected failures
func SetLogger(l *logrus.Logger) {
	log = l
}

// respondWithError translates service errors into API error responses.
// notFoundCode and invalidCode are the resource specific codes.
func respondWithError(ctx *gin.Context, err error, notFoundCode, invalidCode string) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		details := map[string]interface{}{}
		if validationErr.Field != "" {
			details["field"] = validationErr.Field
		}
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(invalidCode, validationErr.Error(), details))
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(notFoundCode, notFoundErr.Error(), map[string]interface{}{
			"id": notFoundErr.ID,
		}))
	default:
		_ = ctx.Error(err)
		log.WithError(err).WithField("path", ctx.FullPath()).Error("Unexpected failure handling request")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}

func respondWithBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, message))
}
