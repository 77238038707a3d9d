package middleware

import (
	"github.com/gofiber/fiber/v2"

	"kursdunyasi/database"
	"kursdunyasi/models"
)

// AdminOnly guards the back-office routes. It resolves the user from the
// store on every request so a role change takes effect immediately, and
// fails closed on any lookup problem.
func AdminOnly(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	if user.Role != "ADMIN" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Admin access required!", nil)
	}

	return c.Next()
}
