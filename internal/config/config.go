package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                 string
	MongoURI             string
	MongoDatabase        string
	SubmissionCollection string
	FeedbackCollection   string
	Timeout              time.Duration
	ServerLog            *log.Logger
	GenAIAPIKey          string
	GenAIBaseURL         string
	GenAIModel           string
	GenAITimeout         time.Duration
	ResendAPIKey         string
	WebhookSecret        string
	PublicBaseURL        string
	TemplateDir          string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("MONGO_CONNECT_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	genaiTimeout := 60 * time.Second
	if v := strings.TrimSpace(os.Getenv("GENAI_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			genaiTimeout = parsed
		}
	}

	genaiKey := strings.TrimSpace(os.Getenv("GENAI_API_KEY"))
	if genaiKey == "" {
		genaiKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}

	publicBaseURL := strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL"))
	if publicBaseURL == "" {
		publicBaseURL = envOrDefault("YOUR_DOMAIN", "http://localhost:5000")
	}

	cfg := Config{
		Addr:                 envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:             envOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:        envOrDefault("MONGO_DB", "typeform_automation"),
		SubmissionCollection: envOrDefault("SUBMISSION_COLLECTION", "submissions"),
		FeedbackCollection:   envOrDefault("FEEDBACK_COLLECTION", "feedback"),
		Timeout:              timeout,
		ServerLog:            log.New(os.Stdout, "[typeform-responses] ", log.LstdFlags|log.Lshortfile),
		GenAIAPIKey:          genaiKey,
		GenAIBaseURL:         envOrDefault("GENAI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		GenAIModel:           envOrDefault("GENAI_MODEL", "gemini-2.0-flash"),
		GenAITimeout:         genaiTimeout,
		ResendAPIKey:         strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
		WebhookSecret:        strings.TrimSpace(os.Getenv("TYPEFORM_SECRET")),
		PublicBaseURL:        strings.TrimRight(publicBaseURL, "/"),
		TemplateDir:          envOrDefault("TEMPLATE_DIR", "templates/prompts"),
	}

	if cfg.GenAIAPIKey == "" {
		cfg.ServerLog.Print("GENAI_API_KEY is not set; content generation will fall back to templated replies")
	}
	if cfg.ResendAPIKey == "" {
		cfg.ServerLog.Print("RESEND_API_KEY is not set; email delivery will fail and submissions will keep emailSent=false")
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
