// Файл: internal/services/ai.go
//
// Генератор решений: один вызов completion API на запрос, без ретраев.
// Любой сбой (сеть, кривой JSON, отсутствие поля solutions) превращается
// в детерминированное fallback-решение - наружу ошибка не выходит никогда.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"helpdesk-system/internal/dto"
	"helpdesk-system/internal/entities"
	"helpdesk-system/internal/repositories"
	apperrors "helpdesk-system/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultProblemTitle = "Problème technique"

const solutionStatsCacheKey = "ai:solution_stats"
const solutionStatsCacheTTL = time.Minute

const systemPrompt = "Tu es un expert en support technique. Réponds uniquement en JSON valide."

const promptTemplate = `
Tu es un expert en support technique informatique.
Analyse ce problème technique et propose 3 solutions concrètes et pratiques.

PROBLÈME:
Titre: %s
Description: %s

Pour chaque solution, fournis:
1. Un titre court et clair
2. Un niveau de confiance (0-100%%)
3. Le temps estimé de résolution
4. Des étapes détaillées

Réponds UNIQUEMENT en JSON valide dans ce format:
{
  "solutions": [
    {
      "solution": "Titre de la solution",
      "confidence": 85,
      "estimatedTime": "15-30 minutes",
      "steps": [
        "Étape 1 détaillée",
        "Étape 2 détaillée",
        "Étape 3 détaillée"
      ]
    }
  ]
}

Assure-toi que les solutions sont:
- Pratiques et réalisables
- Ordonnées par probabilité de succès
- Adaptées au niveau technique moyen
- Avec des étapes claires et précises
`

// CompletionClient - граница с внешним completion API (pkg/aiclient в бою,
// заглушка в тестах).
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type rawSolution struct {
	Solution      string   `json:"solution"`
	Confidence    float64  `json:"confidence"`
	EstimatedTime string   `json:"estimatedTime"`
	Steps         []string `json:"steps"`
}

type rawSolutionsPayload struct {
	Solutions []rawSolution `json:"solutions"`
}

type AIServiceInterface interface {
	GenerateSolutions(ctx context.Context, description, title string) []entities.Solution
	GenerateForTicket(ctx context.Context, ticketID uint64) (*dto.GeneratedSolutionsDTO, error)
	GetSolutionStats(ctx context.Context) (*dto.SolutionStatsDTO, error)
}

type AIService struct {
	client     CompletionClient
	ticketRepo repositories.TicketRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	logger     *zap.Logger
}

func NewAIService(
	client CompletionClient,
	ticketRepo repositories.TicketRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) AIServiceInterface {
	return &AIService{
		client:     client,
		ticketRepo: ticketRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
	}
}

func clampConfidence(value float64) int {
	return int(math.Min(math.Max(value, 0), 100))
}

// extractJSONObject находит первый сбалансированный {...} в сыром тексте
// модели. Модели любят оборачивать JSON в пояснения и markdown-заборы.
func extractJSONObject(raw string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(raw); i++ {
		ch := raw[i]

		if start == -1 {
			if ch == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if escaped {
			escaped = false
			continue
		}

		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return raw[start : i+1], true
				}
			}
		}
	}

	return "", false
}

func fallbackSolutions() []entities.Solution {
	return []entities.Solution{
		{
			ID:            uuid.NewString(),
			Title:         "Vérification des connexions et redémarrage",
			Confidence:    70,
			EstimatedTime: "10-15 minutes",
			Steps: []string{
				"Vérifier tous les câbles et connexions",
				"Redémarrer l'équipement concerné",
				"Tester le fonctionnement",
				"Documenter les résultats",
			},
		},
	}
}

// GenerateSolutions никогда не возвращает ошибку: деградация до fallback -
// часть контракта.
func (s *AIService) GenerateSolutions(ctx context.Context, description, title string) []entities.Solution {
	if title == "" {
		title = defaultProblemTitle
	}

	userPrompt := fmt.Sprintf(promptTemplate, title, description)

	responseText, err := s.client.CreateChatCompletion(ctx, systemPrompt, userPrompt)
	if err != nil {
		s.logger.Error("Генерация решений: вызов completion API не удался", zap.Error(err))
		return fallbackSolutions()
	}

	solutions, err := parseSolutions(responseText)
	if err != nil {
		s.logger.Error("Генерация решений: не удалось разобрать ответ модели",
			zap.Error(err),
			zap.Int("response_len", len(responseText)),
		)
		return fallbackSolutions()
	}

	return solutions
}

func parseSolutions(responseText string) ([]entities.Solution, error) {
	jsonText, ok := extractJSONObject(responseText)
	if !ok {
		return nil, fmt.Errorf("ответ модели не содержит JSON-объекта")
	}

	var payload rawSolutionsPayload
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, fmt.Errorf("невалидный JSON в ответе модели: %w", err)
	}

	if len(payload.Solutions) == 0 {
		return nil, fmt.Errorf("в ответе модели отсутствует массив solutions")
	}

	solutions := make([]entities.Solution, 0, len(payload.Solutions))
	for _, raw := range payload.Solutions {
		steps := raw.Steps
		if steps == nil {
			steps = []string{}
		}
		solutions = append(solutions, entities.Solution{
			ID:            uuid.NewString(),
			Title:         raw.Solution,
			Confidence:    clampConfidence(raw.Confidence),
			EstimatedTime: raw.EstimatedTime,
			Steps:         steps,
		})
	}

	return solutions, nil
}

// GenerateForTicket генерирует решения и целиком заменяет список на тикете.
func (s *AIService) GenerateForTicket(ctx context.Context, ticketID uint64) (*dto.GeneratedSolutionsDTO, error) {
	ticket, err := s.ticketRepo.FindTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if ticket.Type != entities.TicketTypePanne {
		return nil, apperrors.NewHttpError(
			http.StatusBadRequest,
			"Les solutions IA ne sont disponibles que pour les tickets de panne",
			nil,
			map[string]interface{}{"ticket_id": ticketID, "type": ticket.Type},
		)
	}

	solutions := s.GenerateSolutions(ctx, ticket.Description, ticket.Title)

	if err := s.ticketRepo.ReplaceSolutions(ctx, ticketID, solutions); err != nil {
		return nil, err
	}

	// Статистика устарела - сбрасываем кеш, ошибку игнорируем.
	_ = s.cacheRepo.Del(ctx, solutionStatsCacheKey)

	s.logger.Info("Решения сгенерированы и сохранены",
		zap.Uint64("ticket_id", ticketID),
		zap.Int("count", len(solutions)),
	)

	return &dto.GeneratedSolutionsDTO{TicketID: ticketID, Solutions: solutions}, nil
}

// GetSolutionStats считает сводку по решениям тикетов-поломок.
// Результат кешируется на минуту.
func (s *AIService) GetSolutionStats(ctx context.Context) (*dto.SolutionStatsDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, solutionStatsCacheKey); err == nil && cached != "" {
		var stats dto.SolutionStatsDTO
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	confidences, err := s.ticketRepo.ListPanneSolutionConfidences(ctx)
	if err != nil {
		return nil, err
	}

	stats := computeSolutionStats(confidences)

	if raw, err := json.Marshal(stats); err == nil {
		_ = s.cacheRepo.Set(ctx, solutionStatsCacheKey, string(raw), solutionStatsCacheTTL)
	}

	return stats, nil
}

func computeSolutionStats(confidences []repositories.SolutionConfidence) *dto.SolutionStatsDTO {
	stats := &dto.SolutionStatsDTO{}

	ticketsSeen := make(map[uint64]struct{})
	total := 0
	for _, sc := range confidences {
		ticketsSeen[sc.TicketID] = struct{}{}
		total += sc.Confidence

		switch {
		case sc.Confidence > 80:
			stats.SolutionsByConfidence.High++
		case sc.Confidence >= 60:
			stats.SolutionsByConfidence.Medium++
		default:
			stats.SolutionsByConfidence.Low++
		}
	}

	stats.TotalTicketsWithSolutions = len(ticketsSeen)
	if len(confidences) > 0 {
		stats.AverageConfidence = int(math.Round(float64(total) / float64(len(confidences))))
	}

	return stats
}
