package handlers_fiber

import (
	"errors"
	"net/http"

	"mergington-activities/internal/api"
	"mergington-activities/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrActivityNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "Activity not found"
	case errors.Is(err, entities.ErrParticipantNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "Student is not signed up for this activity"
	case errors.Is(err, entities.ErrAlreadyEnrolled):
		status = http.StatusBadRequest
		code = api.ALREADYSIGNEDUP
		msg = "Student is already signed up for this activity"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Detail: msg, Code: code}
}
