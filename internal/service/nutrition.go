package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Rrens/fitcoach/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const nutritionSystemPrompt = `Você é um nutricionista esportivo especializado em musculação e academia.
Responda sempre em português do Brasil, de forma direta, prática e profissional.
Foque em:
- ajustes na dieta para ganho de massa, perda de peso ou manutenção
- exemplos de refeições e distribuição de macros
- recomendações gerais baseadas em evidências
Adapte as respostas ao contexto abaixo quando fizer sentido.

CONTEXTO DO USUÁRIO (treino e preferências):
%s`

const (
	noTrainingContext = "Sem dados de treino cadastrados."

	nutritionUnavailable = "Tive um problema técnico para responder agora. Tente novamente em alguns segundos ou reformule sua pergunta."
	nutritionEmpty       = "Não consegui gerar uma resposta útil dessa vez. Pode reformular a pergunta ou dar mais detalhes?"
)

// ChatReply is the nutrition assistant's answer. Success is false when the
// oracle failed and Message holds a fallback text.
type ChatReply struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	HTML      string    `json:"html,omitempty"`
	Model     string    `json:"model,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NutritionService answers diet questions with the user's plan preferences as context
type NutritionService struct {
	oracle    *RouterOracle
	trainings repository.TrainingRepository
	markdown  goldmark.Markdown
	now       func() time.Time
}

// NewNutritionService creates a new nutrition service
func NewNutritionService(oracle *RouterOracle, trainings repository.TrainingRepository) *NutritionService {
	return &NutritionService{
		oracle:    oracle,
		trainings: trainings,
		markdown:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
		now:       time.Now,
	}
}

// Chat answers one message. Oracle failures never surface as errors.
func (s *NutritionService) Chat(ctx context.Context, userID uuid.UUID, message string) *ChatReply {
	system := fmt.Sprintf(nutritionSystemPrompt, s.userContext(ctx, userID))

	reply := &ChatReply{Timestamp: s.now().UTC()}

	resp, err := s.oracle.complete(ctx, system, strings.TrimSpace(message))
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("nutrition oracle failed")
		reply.Message = nutritionUnavailable
		return reply
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		reply.Message = nutritionEmpty
		return reply
	}

	reply.Success = true
	reply.Message = text
	reply.Model = resp.Model

	var html bytes.Buffer
	if err := s.markdown.Convert([]byte(text), &html); err != nil {
		log.Warn().Err(err).Msg("failed to render nutrition reply")
	} else {
		reply.HTML = html.String()
	}
	return reply
}

func (s *NutritionService) userContext(ctx context.Context, userID uuid.UUID) string {
	rec, err := s.trainings.GetByUserID(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("nutrition chat continuing without training context")
		return noTrainingContext
	}
	if rec == nil {
		return noTrainingContext
	}

	prefs, err := json.MarshalIndent(rec.Preferences, "", "  ")
	if err != nil {
		return noTrainingContext
	}
	return string(prefs)
}
