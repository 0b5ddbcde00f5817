// Package api - Thin HTTP layer over the quotation engine
package api

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"usage-billing/core/billing"
	"usage-billing/core/pricing"
	"usage-billing/core/types"
	"usage-billing/internal/errors"
	"usage-billing/internal/logging"
)

// Server is the API server
type Server struct {
	mux             *http.ServeMux
	version         string
	defaultCurrency types.Currency
}

// NewServer creates a new API server
func NewServer(version string, defaultCurrency types.Currency) *Server {
	s := &Server{
		mux:             http.NewServeMux(),
		version:         version,
		defaultCurrency: defaultCurrency,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /quote", s.handleQuote)
	s.mux.HandleFunc("GET /models", s.handleModels)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()
	log := logging.With(zap.String("request_id", requestID))

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, errors.Input("invalid JSON body"), http.StatusBadRequest)
		return
	}

	if req.SystemParameters.Currency == "" {
		req.SystemParameters.Currency = s.defaultCurrency
	}

	result, err := billing.Quote(req.Model, req.UserParameters, billing.Terms{
		TaxPercent: req.SystemParameters.TaxPercent,
		Fees:       req.SystemParameters.Fees,
		Currency:   req.SystemParameters.Currency,
	})
	if err != nil {
		log.Warn("quotation rejected",
			zap.String("model", string(req.Model.Type)),
			zap.Error(err))
		s.writeError(w, requestID, err, http.StatusBadRequest)
		return
	}

	for _, warning := range result.Warnings {
		log.Warn("usage integrity warning",
			zap.String("model", string(req.Model.Type)),
			zap.String("code", warning.Code),
			zap.String("detail", warning.Message))
	}

	log.Info("quotation computed",
		zap.String("model", string(req.Model.Type)),
		zap.String("status", string(result.Status)),
		zap.Duration("duration", time.Since(start)))

	s.writeJSON(w, QuoteResponse{
		Status: result.Status,
		EffectivePricingModel: &EffectivePricingModel{
			Model:            req.Model,
			Quotation:        result.Quotation,
			SystemParameters: req.SystemParameters,
			UserParameters:   req.UserParameters,
		},
		Warnings:  result.Warnings,
		RequestID: requestID,
	}, http.StatusOK)
}

// handleModels handles GET /models
func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	infos := make([]ModelInfo, 0, len(pricing.AllTypes()))
	for _, t := range pricing.AllTypes() {
		spec, _ := pricing.Spec(t)
		infos = append(infos, ModelInfo{
			Type:                 t,
			Dimension:            spec.Dimension,
			SupportsDiscountRate: spec.AllowsDiscountRates,
			SupportsPrepaidTiers: spec.AllowsPrepaidTiers,
			RequiresSelector:     spec.RequiresSelector,
		})
	}

	s.writeJSON(w, map[string]interface{}{
		"models": infos,
		"count":  len(infos),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "usage-billing",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, requestID string, err error, status int) {
	code := string(errors.TypeInternal)
	if e, ok := err.(*errors.Error); ok {
		code = string(e.Type)
	}
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": err.Error(),
		},
		"requestId": requestID,
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
