package handlers_fiber

import (
	"fmt"
	"net/http"
	"strings"

	"mergington-activities/internal/api"
	"mergington-activities/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetActivities returns every activity keyed by name.
func (h *Handler) GetActivities(c *fiber.Ctx) error {
	activities, err := h.uc.ListActivities(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to list activities", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIActivities(activities))
}

// PostActivitySignup signs a participant up for an activity.
func (h *Handler) PostActivitySignup(c *fiber.Ctx, activityName string, params api.SignupParams) error {
	a, err := h.uc.SignUp(c.UserContext(), activityName, params.Email)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.SignupResponse{
		Message:  fmt.Sprintf("Signed up %s for %s", strings.TrimSpace(params.Email), a.Name),
		Activity: mapper.ToAPIActivity(*a),
	})
}

// DeleteActivitySignup removes a participant from an activity.
func (h *Handler) DeleteActivitySignup(c *fiber.Ctx, activityName string, params api.SignupParams) error {
	a, err := h.uc.Unregister(c.UserContext(), activityName, params.Email)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.SignupResponse{
		Message:  fmt.Sprintf("Unregistered %s from %s", strings.TrimSpace(params.Email), a.Name),
		Activity: mapper.ToAPIActivity(*a),
	})
}
