package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-inventory/services"
	"hotel-inventory/utils"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps the service error kinds onto HTTP statuses:
// validation 400, conflicts 409, missing resources 404, anything else
// 500. Store-failure details stay out of the response in release mode.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrRoomNumberTaken),
		errors.Is(err, services.ErrRoomNotAvailable),
		errors.Is(err, services.ErrRoomInUse):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("❌ store error: %v", err)
		if gin.Mode() == gin.ReleaseMode {
			utils.JSONError(c, http.StatusInternalServerError, "internal server error")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}
