package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Agent    AgentConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	EmbeddingProvider   string // "gemini" or "ollama"
	EmbeddingDimensions int
	GeminiApiKey        string
	OllamaBaseURL       string
	OllamaEmbedModel    string
	LLMProvider         string // "ollama" or "huggingface"
	LLMModel            string
	HuggingFaceToken    string
}

const (
	DecisionModeKeyword = "keyword"
	DecisionModeLLM     = "llm"

	AnswerModeTemplate = "template"
	AnswerModeLLM      = "llm"
)

type AgentConfig struct {
	RagTopK         int
	RagDisplayLimit int
	MemoryLimit     int
	DecisionMode    string // "keyword" (default) or "llm"
	AnswerMode      string // "template" (default) or "llm"
	WebhookTopic    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider:   getEnv("EMBEDDING_PROVIDER", "gemini"),
			EmbeddingDimensions: getEnvAsInt("EMBEDDING_DIMENSIONS", 768),
			GeminiApiKey:        getEnv("GOOGLE_GEMINI_API_KEY", ""),
			OllamaBaseURL:       getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbedModel:    getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:         getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:            getEnv("LLM_MODEL", "llama3.2"),
			HuggingFaceToken:    getEnv("HF_API_TOKEN", ""),
		},
		Agent: AgentConfig{
			RagTopK:         getEnvAsInt("RAG_TOP_K", 4),
			RagDisplayLimit: getEnvAsInt("RAG_DISPLAY_LIMIT", 2),
			MemoryLimit:     getEnvAsInt("MEMORY_LIMIT", 6),
			DecisionMode:    getEnv("DECISION_MODE", "keyword"),
			AnswerMode:      getEnv("ANSWER_MODE", "template"),
			WebhookTopic:    getEnv("AUTOMATION_WEBHOOK_TOPIC", "AUTOMATION_EVENTS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
