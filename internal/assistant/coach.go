package assistant

import (
	"context"
	"fmt"
	"strings"
)

// Fixed prompt framings and fallback copy, carried over from the original
// product verbatim so the tone stays consistent.
const (
	coachPromptTemplate = "Como coach de negócios para mulheres empreendedoras, analise este cenário e dê 3 dicas práticas e motivadoras: %s"
	ideasPromptTemplate = "Gere 5 ideias de conteúdo criativo para uma empreendedora no nicho de %s. Retorne em formato de lista com bullet points."

	coachFallback = "Desculpe, tive um problema ao me conectar com minha sabedoria digital. Tente novamente em breve!"
	ideasFallback = "Não consegui gerar ideias agora. Que tal olhar suas referências salvas?"
)

// Coach wraps the generation client with the two planner call sites.
// Failures never propagate: each method degrades to a fixed friendly
// message in place of the generated text.
type Coach struct {
	client Client
}

// NewCoach creates a Coach backed by the given generation client.
func NewCoach(client Client) *Coach {
	return &Coach{client: client}
}

// BusinessAdvice returns three practical coaching tips for the user's
// free-text scenario, or the fallback message on any failure.
func (c *Coach) BusinessAdvice(ctx context.Context, scenario string) string {
	resp, err := c.client.Generate(ctx, GenerateRequest{
		Task:   TaskCoach,
		Prompt: fmt.Sprintf(coachPromptTemplate, scenario),
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		return coachFallback
	}
	return resp.Text
}

// ContentIdeas returns five content ideas for the given niche, or the
// fallback message on any failure.
func (c *Coach) ContentIdeas(ctx context.Context, niche string) string {
	resp, err := c.client.Generate(ctx, GenerateRequest{
		Task:   TaskIdeas,
		Prompt: fmt.Sprintf(ideasPromptTemplate, niche),
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		return ideasFallback
	}
	return resp.Text
}
