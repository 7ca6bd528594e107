package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/application/ports"
	"github.com/specialwash/gestion-api/internal/domain"
)

// ChatUseCase orquesta el asistente de mantenimiento.
// Aplica un timeout de 20 segundos en cada llamada al LLM para evitar
// que las latencias externas bloqueen los goroutines del servidor.
type ChatUseCase struct {
	llm ports.LLMService
}

// NewChatUseCase construye el caso de uso inyectando el puerto LLMService.
func NewChatUseCase(llm ports.LLMService) *ChatUseCase {
	return &ChatUseCase{llm: llm}
}

// Preguntar valida la consulta y delega al servicio de LLM.
func (uc *ChatUseCase) Preguntar(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	mensaje := strings.TrimSpace(req.Message)
	if mensaje == "" {
		return nil, domain.ErrInvalidInput
	}

	// Las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	reply, err := uc.llm.Chat(ctx, mensaje)
	if err != nil {
		return nil, err
	}
	return &dto.ChatResponse{Reply: reply}, nil
}
