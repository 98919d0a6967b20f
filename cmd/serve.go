package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-crm/internal/campaign"
	"github.com/sells-group/leadgen-crm/internal/model"
	"github.com/sells-group/leadgen-crm/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(env.store, env.workflow),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// newRouter builds the API router. Separated from serveCmd so tests can
// exercise it with httptest.
func newRouter(s store.Store, wf *campaign.Workflow) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.GetStats(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})

	r.Get("/api/leads", func(w http.ResponseWriter, r *http.Request) {
		leads, err := s.GetLeads(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to fetch leads")
			return
		}
		if leads == nil {
			leads = []model.Lead{}
		}
		writeJSON(w, http.StatusOK, leads)
	})

	r.Post("/api/campaigns", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ICP        string `json:"icp"`
			HardFilter string `json:"hard_filter"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ICP == "" {
			writeError(w, http.StatusBadRequest, "icp is required")
			return
		}

		c, leads, err := wf.Run(r.Context(), req.ICP, req.HardFilter)
		if err != nil {
			zap.L().Error("campaign creation failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to create campaign")
			return
		}
		if leads == nil {
			leads = []model.Lead{}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"campaign": c,
			"leads":    leads,
		})
	})

	r.Patch("/api/leads/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid lead id")
			return
		}

		var update store.LeadUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		lead, err := s.UpdateLead(r.Context(), id, update)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to update lead")
			return
		}
		writeJSON(w, http.StatusOK, lead)
	})

	r.Post("/api/leads/{id}/send", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid lead id")
			return
		}

		if err := s.UpdateLeadStatus(r.Context(), id, model.LeadStatusSent); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to send email")
			return
		}
		if err := s.IncrementMessagesSent(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to send email")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Email sent successfully"})
	})

	r.Post("/api/leads/send-selected", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LeadIDs []int64 `json:"lead_ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.LeadIDs) == 0 {
			writeError(w, http.StatusBadRequest, "Invalid lead IDs")
			return
		}

		sent := 0
		for _, id := range req.LeadIDs {
			if err := s.UpdateLeadStatus(r.Context(), id, model.LeadStatusSent); err != nil {
				zap.L().Warn("failed to send email for lead",
					zap.Int64("lead_id", id),
					zap.Error(err),
				)
				continue
			}
			if err := s.IncrementMessagesSent(r.Context()); err != nil {
				zap.L().Warn("failed to count sent message",
					zap.Int64("lead_id", id),
					zap.Error(err),
				)
			}
			sent++
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Emails sent successfully",
			"sent":    sent,
		})
	})

	return r
}

// requestLogger tags each request with an id and logs it on completion.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()
		w.Header().Set("X-Request-Id", reqID)

		start := time.Now()
		next.ServeHTTP(w, r)

		zap.L().Debug("http request",
			zap.String("request_id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encoding response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
