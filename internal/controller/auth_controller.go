package controller

import (
	"anichat-be/internal/pkg/serverutils"
	"anichat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	GetUser(ctx *fiber.Ctx) error
}

type authController struct {
	userService service.IUserService
}

func NewAuthController(userService service.IUserService) IAuthController {
	return &authController{userService: userService}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Get("/user", c.GetUser)
}

// GetUser returns the fixed deployment identity. There is no login flow; the
// user is created on first access.
func (c *authController) GetUser(ctx *fiber.Ctx) error {
	res, err := c.userService.GetDefaultUser(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get user", res))
}
