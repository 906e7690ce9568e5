package webhook

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lebgdecasa/full-typeform-responses/internal/forms"
	"github.com/lebgdecasa/full-typeform-responses/internal/interfaces/http/common"
	"github.com/lebgdecasa/full-typeform-responses/internal/webhook/application"
	"github.com/lebgdecasa/full-typeform-responses/internal/webhook/domain"
)

const maxBodyBytes = 1 << 20

// Handler wires the ingestion, feedback and diagnostic endpoints to the
// application services.
type Handler struct {
	logger   *log.Logger
	pipeline *application.Pipeline
	feedback *application.FeedbackService
	policies *forms.Registry
	secret   string
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger        *log.Logger
	Pipeline      *application.Pipeline
	Feedback      *application.FeedbackService
	Policies      *forms.Registry
	WebhookSecret string
}

// NewHandler constructs the HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:   cfg.Logger,
		pipeline: cfg.Pipeline,
		feedback: cfg.Feedback,
		policies: cfg.Policies,
		secret:   cfg.WebhookSecret,
	}
}

// Register mounts all routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/webhook", h.webhookHandler())
	r.Get("/feedback", h.feedbackHandler())
	r.Get("/health", h.healthHandler())
	r.Get("/forms", h.formListHandler())
}

type webhookResponse struct {
	Status       string `json:"status"`
	SubmissionID string `json:"submission_id"`
	FormID       string `json:"form_id"`
	FormName     string `json:"form_name"`
}

// webhookHandler はフォームプロバイダーからの受信イベントを処理するエンドポイント。
// No timeout is applied here; each collaborator client enforces its own.
func (h *Handler) webhookHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			h.logger.Printf("failed to read webhook body: %v", err)
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Request body unreadable"})
			return
		}

		if !VerifySignature(h.secret, r.Header.Get(SignatureHeader), body) {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "Invalid signature"})
			return
		}

		var event domain.Event
		if err := json.Unmarshal(body, &event); err != nil {
			h.logger.Printf("failed to parse webhook JSON: %v", err)
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "Malformed webhook payload"})
			return
		}

		result := h.pipeline.Process(r.Context(), &event)
		if result.Rejected() {
			status := http.StatusBadRequest
			if result.Reject == application.RejectPersistFailed {
				status = http.StatusInternalServerError
			}
			common.WriteJSON(h.logger, w, status, map[string]string{"error": result.RejectDetail})
			return
		}

		if result.Degraded {
			h.logger.Printf("submission %s completed degraded", result.SubmissionID)
		}
		common.WriteJSON(h.logger, w, http.StatusOK, webhookResponse{
			Status:       "success",
			SubmissionID: result.SubmissionID,
			FormID:       result.FormID,
			FormName:     result.FormName,
		})
	}
}

// feedbackHandler はメール内のフィードバックリンクから叩かれるエンドポイント。
// Always accepts once both parameters are present, even for unknown ids.
func (h *Handler) feedbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		ratingRaw := strings.TrimSpace(query.Get("rating"))
		submissionID := strings.TrimSpace(query.Get("id"))

		if ratingRaw == "" || submissionID == "" {
			http.Error(w, "Invalid feedback request", http.StatusBadRequest)
			return
		}

		rating, err := domain.ParseRating(ratingRaw)
		if err != nil {
			http.Error(w, "Invalid feedback request", http.StatusBadRequest)
			return
		}

		if err := h.feedback.Record(r.Context(), submissionID, rating); err != nil {
			h.logger.Printf("failed to record feedback for submission %s: %v", submissionID, err)
			http.Error(w, "Failed to record feedback", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, feedbackPage, rating.Emoji())
	}
}

const feedbackPage = `<html>
<body style="font-family: Arial; text-align: center; padding: 50px;">
    <h1>Thank you for your feedback!</h1>
    <p>Your %s feedback has been recorded.</p>
</body>
</html>`

// healthHandler always reports healthy; the response shape is a monitoring
// compatibility surface.
func (h *Handler) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

type formListResponse struct {
	SupportedForms []string `json:"supported_forms"`
	TotalForms     int      `json:"total_forms"`
}

func (h *Handler) formListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ids := h.policies.SupportedIDs()
		common.WriteJSON(h.logger, w, http.StatusOK, formListResponse{
			SupportedForms: ids,
			TotalForms:     len(ids),
		})
	}
}
