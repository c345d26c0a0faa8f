package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"
)

// Gateway turns the five domain intents (chat, analyze-clauses,
// simplify, check-standard-clauses, generate-document) into provider
// requests. One blocking round trip per call with an explicit timeout;
// no retries, no partial application of malformed responses.
type Gateway struct {
	chatModel model.ToolCallingChatModel
	timeout   time.Duration
}

func NewGateway(chatModel model.ToolCallingChatModel, timeout time.Duration) *Gateway {
	return &Gateway{chatModel: chatModel, timeout: timeout}
}

func (g *Gateway) generate(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	})
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	return resp.Content, nil
}

func renderDocumentPrompt(tmpl, document string) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, map[string]string{"Document": document}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Chat answers a free-form assistant message, optionally with prior
// conversational context prepended.
func (g *Gateway) Chat(ctx context.Context, message, chatContext string) (string, error) {
	user := message
	if chatContext != "" {
		user = chatContext + "\n\nUser question: " + message
	}
	return g.generate(ctx, systemChat, user)
}

// AnalyzeClauses runs the clause-by-clause breakdown and returns a
// fully validated result or an error.
func (g *Gateway) AnalyzeClauses(ctx context.Context, documentText string) (*ClauseAnalysis, error) {
	prompt, err := renderDocumentPrompt(promptAnalyze, documentText)
	if err != nil {
		return nil, err
	}
	raw, err := g.generate(ctx, systemAnalyze, prompt)
	if err != nil {
		return nil, err
	}
	result, err := ParseClauseAnalysis(raw)
	if err != nil {
		log.Warn().Err(err).Msg("clause analysis response rejected")
		return nil, err
	}
	return result, nil
}

// Simplify rewrites a document in plain language, returned as text.
func (g *Gateway) Simplify(ctx context.Context, documentText string) (string, error) {
	prompt, err := renderDocumentPrompt(promptSimplify, documentText)
	if err != nil {
		return "", err
	}
	return g.generate(ctx, systemSimplify, prompt)
}

// CheckStandardClauses runs the standard-clause checklist against a
// document and returns a fully validated result or an error.
func (g *Gateway) CheckStandardClauses(ctx context.Context, documentText string) (*ClauseCheck, error) {
	prompt, err := renderDocumentPrompt(promptClauseCheck, documentText)
	if err != nil {
		return nil, err
	}
	raw, err := g.generate(ctx, systemClauseCheck, prompt)
	if err != nil {
		return nil, err
	}
	result, err := ParseClauseCheck(raw)
	if err != nil {
		log.Warn().Err(err).Msg("clause check response rejected")
		return nil, err
	}
	return result, nil
}

// GenerateDocument drafts a document of the given type from a free-form
// parameter map. Known types use curated templates; anything else goes
// through the generic fallback.
func (g *Gateway) GenerateDocument(ctx context.Context, docType string, params map[string]string) (string, error) {
	prompt, err := renderGeneratePrompt(docType, params)
	if err != nil {
		return "", err
	}
	return g.generate(ctx, systemGenerate, prompt)
}

func renderGeneratePrompt(docType string, params map[string]string) (string, error) {
	tmplText, ok := generateTemplates[docType]
	if !ok {
		raw, _ := json.Marshal(params)
		t, err := template.New("generate").Parse(promptGenerateFallback)
		if err != nil {
			return "", err
		}
		var buf bytes.Buffer
		if err := t.Execute(&buf, map[string]string{"Type": docType, "Params": string(raw)}); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	t, err := template.New("generate").Funcs(template.FuncMap{
		"param": func(key, fallback string) string {
			if v, ok := params[key]; ok && v != "" {
				return v
			}
			return fallback
		},
	}).Parse(tmplText)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, nil); err != nil {
		return "", err
	}
	return buf.String(), nil
}
