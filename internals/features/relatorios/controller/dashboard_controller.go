package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "melodia_backend/internals/databases"
	alunoModel "melodia_backend/internals/features/academico/alunos/model"
	professorModel "melodia_backend/internals/features/academico/professores/model"
	turmaModel "melodia_backend/internals/features/academico/turmas/model"
	lancModel "melodia_backend/internals/features/financeiro/lancamentos/model"
	helper "melodia_backend/internals/helpers"
)

type RelatorioController struct{ DB *gorm.DB }

func NewRelatorioController(db *gorm.DB) *RelatorioController {
	return &RelatorioController{DB: db}
}

// Dashboard agrega contadores, receita e frequência do mês corrente.
// O resultado fica 60s no Redis; sem Redis, busca direta no banco.
type Dashboard struct {
	AlunosAtivos          int64   `json:"alunos_ativos"`
	ProfessoresAtivos     int64   `json:"professores_ativos"`
	TurmasAtivas          int64   `json:"turmas_ativas"`
	ReceitaMesCentavos    int64   `json:"receita_mes_centavos"`
	InadimplenciaCentavos int64   `json:"inadimplencia_centavos"`
	FrequenciaMediaPct    float64 `json:"frequencia_media_pct"`
}

// GET /api/relatorios/dashboard
func (h *RelatorioController) GetDashboard(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	key := fmt.Sprintf("relatorios:dashboard:%s", escolaID)
	var dash Dashboard
	err = helper.Lembrar(c.UserContext(), database.Redis, key, helper.DefaultCacheOptions,
		func(ctx context.Context) (any, error) {
			return h.montarDashboard(ctx, escolaID)
		}, &dash)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao montar dashboard")
	}
	return helper.JsonOK(c, "OK", dash)
}

func (h *RelatorioController) montarDashboard(ctx context.Context, escolaID uuid.UUID) (*Dashboard, error) {
	db := h.DB.WithContext(ctx)
	agora := time.Now()
	de, ate := helper.InicioDoMes(agora), helper.FimDoMes(agora)

	var dash Dashboard
	if err := db.Model(&alunoModel.AlunoModel{}).
		Where("aluno_escola_id = ? AND aluno_ativo", escolaID).
		Count(&dash.AlunosAtivos).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&professorModel.ProfessorModel{}).
		Where("professor_escola_id = ? AND professor_ativo", escolaID).
		Count(&dash.ProfessoresAtivos).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&turmaModel.TurmaModel{}).
		Where("turma_escola_id = ? AND turma_ativa", escolaID).
		Count(&dash.TurmasAtivas).Error; err != nil {
		return nil, err
	}

	type somas struct {
		Receita       int64
		Inadimplencia int64
	}
	var s somas
	if err := db.Model(&lancModel.LancamentoModel{}).
		Select(`
			COALESCE(SUM(lancamento_valor_centavos) FILTER (WHERE lancamento_tipo = 'receita' AND lancamento_status = 'pago'), 0) AS receita,
			COALESCE(SUM(lancamento_valor_centavos) FILTER (WHERE lancamento_status = 'atrasado'), 0) AS inadimplencia`).
		Where("lancamento_escola_id = ? AND lancamento_vencimento >= ? AND lancamento_vencimento < ?", escolaID, de, ate).
		Scan(&s).Error; err != nil {
		return nil, err
	}
	dash.ReceitaMesCentavos = s.Receita
	dash.InadimplenciaCentavos = s.Inadimplencia

	type freq struct {
		Chamadas  int64
		Presencas int64
	}
	var f freq
	if err := db.Table("presencas").
		Select(`COUNT(*) AS chamadas,
			COUNT(*) FILTER (WHERE presencas.presenca_presente) AS presencas`).
		Joins("JOIN chamadas ON chamadas.chamada_id = presencas.presenca_chamada_id AND chamadas.chamada_deleted_at IS NULL").
		Where(`chamadas.chamada_escola_id = ? AND chamadas.chamada_data >= ? AND chamadas.chamada_data < ?
			AND presencas.presenca_deleted_at IS NULL`, escolaID, de, ate).
		Scan(&f).Error; err != nil {
		return nil, err
	}
	if f.Chamadas > 0 {
		dash.FrequenciaMediaPct = float64(f.Presencas) * 100 / float64(f.Chamadas)
	}
	return &dash, nil
}

// ===================== SÉRIES =====================
// GET /api/relatorios/frequencia-por-turma?mes=&ano=
func (h *RelatorioController) FrequenciaPorTurma(c *fiber.Ctx) error {
	escolaID, err := helper.GetEscolaIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	agora := time.Now()
	mes, ano := int(agora.Month()), agora.Year()
	if m := c.QueryInt("mes"); m >= 1 && m <= 12 {
		mes = m
	}
	if a := c.QueryInt("ano"); a >= 2020 {
		ano = a
	}
	ref := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.Local)
	de, ate := helper.InicioDoMes(ref), helper.FimDoMes(ref)

	type linha struct {
		TurmaID    uuid.UUID `json:"turma_id"`
		TurmaNome  string    `json:"turma_nome"`
		Chamadas   int64     `json:"chamadas"`
		Presencas  int64     `json:"presencas"`
		Percentual float64   `json:"percentual"`
	}
	var linhas []linha
	if err := h.DB.Table("presencas").
		Select(`turmas.turma_id, turmas.turma_nome,
			COUNT(*) AS chamadas,
			COUNT(*) FILTER (WHERE presencas.presenca_presente) AS presencas`).
		Joins("JOIN chamadas ON chamadas.chamada_id = presencas.presenca_chamada_id AND chamadas.chamada_deleted_at IS NULL").
		Joins("JOIN turmas ON turmas.turma_id = chamadas.chamada_turma_id AND turmas.turma_deleted_at IS NULL").
		Where(`chamadas.chamada_escola_id = ? AND chamadas.chamada_data >= ? AND chamadas.chamada_data < ?
			AND presencas.presenca_deleted_at IS NULL`, escolaID, de, ate).
		Group("turmas.turma_id, turmas.turma_nome").
		Order("turmas.turma_nome asc").
		Scan(&linhas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao montar frequência por turma")
	}
	for i := range linhas {
		if linhas[i].Chamadas > 0 {
			linhas[i].Percentual = float64(linhas[i].Presencas) * 100 / float64(linhas[i].Chamadas)
		}
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"competencia": helper.Competencia(mes, ano),
		"turmas":      linhas,
	})
}
