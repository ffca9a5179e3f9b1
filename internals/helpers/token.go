package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// --- util pequeno para não duplicar parsing de locals ---
func firstUUIDFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" não encontrado no token")
	}

	switch t := v.(type) {
	case []string:
		if len(t) == 0 || strings.TrimSpace(t[0]) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" vazio no token")
		}
		return uuid.Parse(strings.TrimSpace(t[0]))
	case []interface{}:
		if len(t) == 0 {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" vazio no token")
		}
		if s, ok := t[0].(string); ok {
			return uuid.Parse(strings.TrimSpace(s))
		}
	case string:
		if strings.TrimSpace(t) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" vazio no token")
		}
		return uuid.Parse(strings.TrimSpace(t))
	}
	return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Formato de "+key+" inválido no token")
}

// === ADMIN ===
func GetEscolaIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, "escola_admin_ids")
}

// === PROFESSOR ===
func GetProfessorEscolaIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, "escola_professor_ids")
}

// GetEscolaIDFromTokenPreferAdmin resolve a escola ativa: admin primeiro,
// senão professor, senão a união de memberships.
func GetEscolaIDFromTokenPreferAdmin(c *fiber.Ctx) (uuid.UUID, error) {
	if id, err := firstUUIDFromLocals(c, "escola_admin_ids"); err == nil {
		return id, nil
	}
	if id, err := firstUUIDFromLocals(c, "escola_professor_ids"); err == nil {
		return id, nil
	}
	return firstUUIDFromLocals(c, "escola_ids")
}

// GetAnyEscolaIDFromToken aceita qualquer membership (admin, professor ou aluno).
func GetAnyEscolaIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, "escola_ids")
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, "user_id")
}

// IsAdminOfEscola informa se o token carrega papel admin na escola dada.
func IsAdminOfEscola(c *fiber.Ctx, escolaID uuid.UUID) bool {
	id, err := firstUUIDFromLocals(c, "escola_admin_ids")
	return err == nil && id == escolaID
}

func IsProfessorOfEscola(c *fiber.Ctx, escolaID uuid.UUID) bool {
	id, err := firstUUIDFromLocals(c, "escola_professor_ids")
	return err == nil && id == escolaID
}
