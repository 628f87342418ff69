package handlers

import (
	"strconv"

	"trickhub/apperror"
	"trickhub/helper"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gopkg.in/go-playground/validator.v9"
)

// bindRequest decodes the body into req and validates it. On failure the 400
// response has already been written and false is returned.
func bindRequest(c *gin.Context, h *helper.HTTPHelper, req interface{}) bool {
	var err error
	switch c.ContentType() {
	case binding.MIMEMultipartPOSTForm, binding.MIMEPOSTForm:
		err = c.ShouldBind(req)
	default:
		err = c.ShouldBindJSON(req)
	}
	if err != nil {
		h.SendAppError(c, apperror.ValidationFailed("", "Malformed request body: "+err.Error()))
		return false
	}

	if err := h.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.SendValidationError(c, validationErrors)
			return false
		}
		h.SendAppError(c, err)
		return false
	}
	return true
}

// pathID parses the :id segment. Anything but a positive integer matches no
// article, so it is answered with 404.
func pathID(c *gin.Context, h *helper.HTTPHelper) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.SendNotFoundError(c, "Not found.", h.EmptyJsonMap())
		return 0, false
	}
	return uint(id), true
}
