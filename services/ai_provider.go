package services

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"google.golang.org/genai"
)

// TextGenerator is the contract with the AI collaborators: a prompt in,
// raw model text out. jsonMode asks the provider for structured output;
// the reply is still treated as untrusted text by the parser.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, jsonMode bool) (string, error)
}

var ErrNoProviders = errors.New("no AI providers succeeded or no keys provided")

const providerTimeout = 15 * time.Second

// GroqProvider talks to Groq's OpenAI-compatible endpoint through the
// langchaingo openai client.
type GroqProvider struct {
	llm *openai.LLM
}

func NewGroqProvider(apiKey string) (*GroqProvider, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL("https://api.groq.com/openai/v1"),
		openai.WithModel("llama-3.3-70b-versatile"),
	)
	if err != nil {
		return nil, err
	}
	return &GroqProvider{llm: llm}, nil
}

func (p *GroqProvider) Generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	var opts []llms.CallOption
	if jsonMode {
		opts = append(opts, llms.WithJSONMode())
	}
	return llms.GenerateFromSinglePrompt(ctx, p.llm, prompt, opts...)
}

// GeminiProvider talks to the Gemini API via the official genai client.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiProvider{client: client, model: "gemini-1.5-flash"}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if jsonMode {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("empty gemini response")
	}
	return text, nil
}

// ProviderChain tries each configured provider in order and returns the
// first success. Groq goes first (better free tier, usually faster),
// Gemini is the fallback.
type ProviderChain struct {
	providers []namedProvider
}

type namedProvider struct {
	name string
	gen  TextGenerator
}

func NewProviderChainFromEnv() *ProviderChain {
	chain := &ProviderChain{}

	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		if p, err := NewGroqProvider(key); err == nil {
			chain.providers = append(chain.providers, namedProvider{"Groq", p})
		} else {
			log.Printf("[AI] Groq init error: %v", err)
		}
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		if p, err := NewGeminiProvider(key); err == nil {
			chain.providers = append(chain.providers, namedProvider{"Gemini", p})
		} else {
			log.Printf("[AI] Gemini init error: %v", err)
		}
	}

	return chain
}

func (c *ProviderChain) Generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	for _, p := range c.providers {
		attemptCtx, cancel := context.WithTimeout(ctx, providerTimeout)
		out, err := p.gen.Generate(attemptCtx, prompt, jsonMode)
		cancel()
		if err != nil {
			log.Printf("[AI] %s error: %v", p.name, err)
			continue
		}
		return out, nil
	}
	return "", ErrNoProviders
}
