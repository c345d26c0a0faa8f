package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the full runtime configuration, populated once from the
// environment at process start (CLARIO_ prefix) and passed by reference
// into every component that needs it. There is no ambient lookup.
type Config struct {
	HTTPPort int    `envconfig:"HTTP_PORT" default:"5000"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogJSON  bool   `envconfig:"LOG_JSON" default:"false"`

	// Postgres
	PostgresDSN string `envconfig:"POSTGRES_DSN" required:"true"`

	// Auth
	JWTSecret        string `envconfig:"JWT_SECRET" required:"true"`
	TokenExpireHours int    `envconfig:"TOKEN_EXPIRE_HOURS" default:"24"`

	// Uploads
	UploadDir     string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	MaxUploadSize int64  `envconfig:"MAX_UPLOAD_SIZE" default:"10485760"`

	// AI provider: "openai" or "ollama".
	AIProvider    string        `envconfig:"AI_PROVIDER" default:"openai"`
	OpenAIAPIKey  string        `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIModel   string        `envconfig:"OPENAI_MODEL" default:"gpt-4"`
	OllamaBaseURL string        `envconfig:"OLLAMA_BASE_URL" default:"http://localhost:11434"`
	OllamaModel   string        `envconfig:"OLLAMA_MODEL" default:"qwen2.5:7b"`
	AITimeout     time.Duration `envconfig:"AI_TIMEOUT" default:"60s"`

	// When true, editing a document's original content clears the stored
	// analysis, its kind, the risk score and the last-analyzed timestamp.
	// Off by default: the observed product behavior keeps stale analysis
	// attached. Simplified text is kept either way.
	ClearAnalysisOnEdit bool `envconfig:"CLEAR_ANALYSIS_ON_EDIT" default:"false"`

	// Glossary full-text search (optional). Empty address disables ES
	// and the glossary falls back to SQL substring matching.
	ESAddr    string `envconfig:"ES_ADDR" default:""`
	TermIndex string `envconfig:"TERM_INDEX" default:"legal_terms_v1"`

	// Related-term relevance via embeddings (optional, seeding only).
	MilvusAddr      string `envconfig:"MILVUS_ADDR" default:""`
	MilvusUser      string `envconfig:"MILVUS_USER" default:""`
	MilvusPassword  string `envconfig:"MILVUS_PASSWORD" default:""`
	TermCollection  string `envconfig:"TERM_COLLECTION" default:"legal_terms_v1"`
	EmbedModel      string `envconfig:"EMBED_MODEL" default:"nomic-embed-text"`
	RelatedTermSize int    `envconfig:"RELATED_TERM_SIZE" default:"3"`

	// Rate limiting (requests per window per client IP).
	RateLimit       int           `envconfig:"RATE_LIMIT" default:"120"`
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// Static users accepted by the login route, "user:pass" pairs.
	Users []string `envconfig:"USERS" default:""`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads configuration without server validation. Auxiliary
// commands use it so they do not demand AI credentials they never use.
func Parse() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("clario", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// Validate rejects configurations the process cannot start with.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTPPort)
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("max upload size must be positive, got %d", c.MaxUploadSize)
	}
	switch c.AIProvider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("CLARIO_OPENAI_API_KEY is required when the provider is openai")
		}
	case "ollama":
	default:
		return fmt.Errorf("unknown AI provider %q", c.AIProvider)
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI timeout must be positive")
	}
	return nil
}

// ESEnabled reports whether glossary search should use Elasticsearch.
func (c *Config) ESEnabled() bool { return c.ESAddr != "" }

// MilvusEnabled reports whether related-term linking uses embeddings.
func (c *Config) MilvusEnabled() bool { return c.MilvusAddr != "" }
