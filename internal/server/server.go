package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lebgdecasa/full-typeform-responses/internal/config"
	"github.com/lebgdecasa/full-typeform-responses/internal/forms"
	"github.com/lebgdecasa/full-typeform-responses/internal/infrastructure/genai"
	"github.com/lebgdecasa/full-typeform-responses/internal/infrastructure/mail"
	mongodoc "github.com/lebgdecasa/full-typeform-responses/internal/infrastructure/mongo"
	"github.com/lebgdecasa/full-typeform-responses/internal/infrastructure/templates"
	webhookhttp "github.com/lebgdecasa/full-typeform-responses/internal/interfaces/http/webhook"
	"github.com/lebgdecasa/full-typeform-responses/internal/webhook/application"
)

// Server は HTTP サーバーのライフサイクルを管理し、各ハンドラへ依存注入するコンポジションルート。
// External collaborators are constructed once here and passed by reference;
// no package keeps ambient client state.
type Server struct {
	logger  *log.Logger
	client  *mongo.Client
	handler *webhookhttp.Handler
	addr    string
}

// Run はHTTPサーバーを起動し、ルーティングやミドルウェアを組み立てる。
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s.handler.Register(router)

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP サーバー起動: http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// shutdown は MongoDB クライアントをタイムアウト付きで切断し、プロセス終了時のリソースリークを防ぐ。
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("MongoDB 切断時にエラー: %v", err)
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("サーバーが異常終了: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("シグナル %s を受信。サーバー停止処理を開始します。", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("サーバー停止時にエラー: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// New は Config と Mongo クライアントを受け取り、パイプラインとハンドラを組み立てた Server を返す。
func New(cfg config.Config, client *mongo.Client) *Server {
	database := client.Database(cfg.MongoDatabase)

	submissionRepo := mongodoc.NewSubmissionRepository(database, cfg.SubmissionCollection)
	feedbackRepo := mongodoc.NewFeedbackRepository(database, cfg.FeedbackCollection)

	backend := genai.New(genai.Config{
		APIKey:  cfg.GenAIAPIKey,
		BaseURL: cfg.GenAIBaseURL,
		Model:   cfg.GenAIModel,
		Timeout: cfg.GenAITimeout,
	})
	templateSource := templates.NewDirSource(cfg.TemplateDir)
	content := application.NewContentService(templateSource, backend, cfg.ServerLog)
	mailer := mail.NewDispatcher(cfg.ResendAPIKey, cfg.PublicBaseURL, cfg.ServerLog)

	policies := forms.Default()
	pipeline := application.NewPipeline(application.PipelineConfig{
		Policies:    policies,
		Submissions: submissionRepo,
		Content:     content,
		Mailer:      mailer,
		Logger:      cfg.ServerLog,
	})

	handler := webhookhttp.NewHandler(webhookhttp.Config{
		Logger:        cfg.ServerLog,
		Pipeline:      pipeline,
		Feedback:      application.NewFeedbackService(feedbackRepo),
		Policies:      policies,
		WebhookSecret: cfg.WebhookSecret,
	})

	return &Server{
		logger:  cfg.ServerLog,
		client:  client,
		handler: handler,
		addr:    cfg.Addr,
	}
}
