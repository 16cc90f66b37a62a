// Package api defines the HTTP contract: JSON shapes and route registration.
package api

import "github.com/gofiber/fiber/v2"

// ErrorCode classifies an ErrorResponse.
type ErrorCode string

// Defines values for ErrorCode.
const (
	NOTFOUND        ErrorCode = "NOT_FOUND"
	ALREADYSIGNEDUP ErrorCode = "ALREADY_SIGNED_UP"
	INVALIDARGUMENT ErrorCode = "INVALID_ARGUMENT"
	INTERNAL        ErrorCode = "INTERNAL"
)

// Activity is the wire form of an activity; the name is carried by the enclosing map key.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Activities maps activity name to activity.
type Activities map[string]Activity

// SignupResponse is returned by both roster mutations.
type SignupResponse struct {
	Message  string   `json:"message"`
	Activity Activity `json:"activity"`
}

// ErrorResponse carries a human readable detail and a machine readable code.
type ErrorResponse struct {
	Detail string    `json:"detail"`
	Code   ErrorCode `json:"code"`
}

// SignupParams defines parameters for signup and unregister.
type SignupParams struct {
	Email string `query:"email"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /activities)
	GetActivities(c *fiber.Ctx) error
	// (POST /activities/{activityName}/signup)
	PostActivitySignup(c *fiber.Ctx, activityName string, params SignupParams) error
	// (DELETE /activities/{activityName}/signup)
	DeleteActivitySignup(c *fiber.Ctx, activityName string, params SignupParams) error
}
