package middlewares

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	helper "melodia_backend/internals/helpers"
)

// GuardMiddleware aplica o validador de padrões suspeitos na query string e
// nos campos string do body JSON de requisições mutantes. Lint de melhor
// esforço: a fronteira real são as queries parametrizadas.
func GuardMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if av := helper.AvaliarSeguranca(string(c.Request().URI().QueryString())); av.Bloquear {
			log.Printf("[WARN] guard bloqueou query de %s (score=%d padrões=%v)", c.IP(), av.Score, av.Padroes)
			return helper.JsonError(c, fiber.StatusBadRequest, "Conteúdo da requisição rejeitado")
		}

		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
			if body := c.Body(); len(body) > 0 && c.Is("json") {
				var payload any
				if err := sonic.Unmarshal(body, &payload); err == nil {
					if av := avaliarValores(payload); av.Bloquear {
						log.Printf("[WARN] guard bloqueou body de %s %s (score=%d padrões=%v)",
							c.IP(), c.Path(), av.Score, av.Padroes)
						return helper.JsonError(c, fiber.StatusBadRequest, "Conteúdo da requisição rejeitado")
					}
				}
			}
		}
		return c.Next()
	}
}

// avaliarValores percorre o JSON e avalia cada string folha; devolve a pior avaliação.
func avaliarValores(v any) helper.AvaliacaoSeguranca {
	var pior helper.AvaliacaoSeguranca
	switch t := v.(type) {
	case string:
		return helper.AvaliarSeguranca(t)
	case map[string]any:
		for _, sub := range t {
			if av := avaliarValores(sub); av.Score > pior.Score {
				pior = av
			}
		}
	case []any:
		for _, sub := range t {
			if av := avaliarValores(sub); av.Score > pior.Score {
				pior = av
			}
		}
	}
	return pior
}
