package ports

import "context"

// LLMService define el puerto de salida para el asistente de mantenimiento.
// Cualquier adaptador (Anthropic, OpenAI, Ollama, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la capa de aplicación
// solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// Chat envía una consulta del personal al asistente y devuelve la respuesta
	// en texto plano. El contexto debe llevar un timeout para evitar bloqueos
	// en llamadas externas.
	Chat(ctx context.Context, message string) (string, error)
}
