package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/andreevorobei/compass-app/internal/config"
	"github.com/andreevorobei/compass-app/internal/domain"
)

// OpenRouterService implements Generator against the OpenRouter
// chat-completions API.
type OpenRouterService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenRouterService(apiKey string) *OpenRouterService {
	return &OpenRouterService{
		apiKey:     apiKey,
		baseURL:    "https://openrouter.ai/api/v1",
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type toolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

type toolDef struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Tools          []toolDef       `json:"tools,omitempty"`
	ResponseFormat json.RawMessage `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				ID       string `json:"id"`
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

const systemPrompt = `You are Compass, an AI career coach. You help users ` +
	`plan careers, assess skills, and set goals. When the conversation ` +
	`reveals profile facts, skills, or goals, record them with the provided ` +
	`functions.`

func (s *OpenRouterService) Generate(ctx context.Context, genReq GenerationRequest) (*GenerationResponse, error) {
	chatReq := chatRequest{
		Model: genReq.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: genReq.Prompt},
		},
		Tools:          coachingTools(),
		ResponseFormat: genReq.Schema,
	}

	payload, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limited by OpenRouter (429)")
	}
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("OpenRouter unavailable (%d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenRouter returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("empty choices in response")
	}

	msg := chatResp.Choices[0].Message
	out := &GenerationResponse{
		Content:    msg.Content,
		TokensUsed: chatResp.Usage.TotalTokens,
	}
	for _, tc := range msg.ToolCalls {
		out.FunctionCalls = append(out.FunctionCalls, domain.FunctionCall{
			Name:      tc.Function.Name,
			Arguments: json.RawMessage(tc.Function.Arguments),
		})
	}
	return out, nil
}

// coachingTools declares the function-calling surface the executor can apply.
func coachingTools() []toolDef {
	return []toolDef{
		{
			Type: "function",
			Function: toolFunction{
				Name:        domain.FuncUpdateUserProfile,
				Description: "Record skills, years of experience, or interests mentioned by the user",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"skills": {"type": "array", "items": {"type": "string"}},
						"experience": {"type": "integer"},
						"interests": {"type": "array", "items": {"type": "string"}}
					}
				}`),
			},
		},
		{
			Type: "function",
			Function: toolFunction{
				Name:        domain.FuncSetCareerGoals,
				Description: "Create short-term and long-term career goals for the user",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"shortTerm": {"type": "array", "items": {"type": "string"}},
						"longTerm": {"type": "array", "items": {"type": "string"}},
						"priority": {"type": "string", "enum": ["low", "medium", "high"]}
					}
				}`),
			},
		},
		{
			Type: "function",
			Function: toolFunction{
				Name:        domain.FuncTrackProgress,
				Description: "Update progress on a named skill, 0-100 percent",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"skillName": {"type": "string"},
						"progressPercentage": {"type": "number"},
						"notes": {"type": "string"}
					},
					"required": ["skillName", "progressPercentage"]
				}`),
			},
		},
	}
}
