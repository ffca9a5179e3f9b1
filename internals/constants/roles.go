package constants

// Papéis de um profile dentro de uma escola.
const (
	RoleAdmin     = "admin"
	RoleProfessor = "professor"
	RoleAluno     = "aluno"
)

// Papel global de owner da plataforma (provisiona escolas).
const RoleOwner = "owner"

var RolesValidos = map[string]struct{}{
	RoleAdmin:     {},
	RoleProfessor: {},
	RoleAluno:     {},
}
