package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/domain"
)

type llmFake struct {
	reply    string
	err      error
	recibido string
}

func (f *llmFake) Chat(ctx context.Context, message string) (string, error) {
	f.recibido = message
	return f.reply, f.err
}

func TestChatPreguntar_DelegaAlLLM(t *testing.T) {
	llm := &llmFake{reply: "Revisa el filtro de la hidrolimpiadora."}
	uc := NewChatUseCase(llm)

	out, err := uc.Preguntar(context.Background(), dto.ChatRequest{Message: "  la hidrolimpiadora pierde presión  "})
	require.NoError(t, err)

	assert.Equal(t, "Revisa el filtro de la hidrolimpiadora.", out.Reply)
	assert.Equal(t, "la hidrolimpiadora pierde presión", llm.recibido, "el mensaje llega sin espacios sobrantes")
}

func TestChatPreguntar_MensajeVacio(t *testing.T) {
	llm := &llmFake{}
	uc := NewChatUseCase(llm)

	_, err := uc.Preguntar(context.Background(), dto.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, llm.recibido, "no debe llamarse al LLM con mensaje vacío")
}

func TestChatPreguntar_PropagaErrorDelLLM(t *testing.T) {
	fallo := errors.New("AI: Anthropic HTTP 529")
	uc := NewChatUseCase(&llmFake{err: fallo})

	_, err := uc.Preguntar(context.Background(), dto.ChatRequest{Message: "hola"})
	assert.ErrorIs(t, err, fallo)
}
