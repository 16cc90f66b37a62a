package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// RegisterHandlers binds si to the activity routes of router.
// Path and query values are copied out of the request buffer, which fasthttp reuses.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	router.Get("/activities", si.GetActivities)
	router.Post("/activities/:activityName/signup", func(c *fiber.Ctx) error {
		return si.PostActivitySignup(c, activityName(c), signupParams(c))
	})
	router.Delete("/activities/:activityName/signup", func(c *fiber.Ctx) error {
		return si.DeleteActivitySignup(c, activityName(c), signupParams(c))
	})
}

func activityName(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("activityName"))
}

func signupParams(c *fiber.Ctx) SignupParams {
	return SignupParams{Email: utils.CopyString(c.Query("email"))}
}
