package auth

import (
	"github.com/gofiber/fiber/v2"

	"melodia_backend/internals/constants"
)

// RoleMiddlewareWithCustomError valida role + mensagem de erro customizada.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		// owner da plataforma passa em qualquer guard de role
		if isOwner, ok := c.Locals("is_owner").(bool); ok && isOwner {
			return c.Next()
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: você não tem acesso a este recurso"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// Atalhos para deixar as rotas limpas.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

func OnlyAdmin() fiber.Handler {
	return OnlyRoles("Apenas administradores da escola", constants.RoleAdmin)
}

func OnlyEquipe() fiber.Handler {
	return OnlyRoles("Apenas administradores ou professores", constants.RoleAdmin, constants.RoleProfessor)
}

// OnlyOwner restringe aos owners da plataforma (provisionamento de escolas).
func OnlyOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isOwner, ok := c.Locals("is_owner").(bool); ok && isOwner {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Apenas o owner da plataforma pode executar esta operação",
		})
	}
}
