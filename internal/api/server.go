// Package api exposes the stored record sets over a minimal read-only HTTP
// surface: one GET route per transaction category returning the full stored
// set as a JSON array. No filtering, no pagination, no authentication; this
// is a reporting passthrough over the store, nothing more.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/noel-odero/momo-analysis/internal/category"
	"github.com/noel-odero/momo-analysis/internal/store"
)

// routes maps URL paths to categories.
var routes = map[string]category.Category{
	"/airtime-payments":            category.Airtime,
	"/incoming-money":              category.IncomingMoney,
	"/transfers-to-mobile-numbers": category.TransfersToMobileNumbers,
	"/payment-to-code-holders":     category.PaymentToCodeHolders,
	"/bank-transfers":              category.BankTransfers,
	"/internet-voice-bundles":      category.InternetVoiceBundle,
	"/cash-power-bill-payments":    category.CashPowerBillPayments,
	"/txns-from-third-parties":     category.ThirdPartyTransactions,
	"/withdrawals-from-agents":     category.WithdrawalsFromAgents,
}

// Server serves the per-category read routes.
type Server struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewServer creates a Server over an open store.
func NewServer(s *store.Store, logger zerolog.Logger) *Server {
	return &Server{
		store:  s,
		logger: logger.With().Str("component", "api").Logger(),
	}
}

// Handler returns the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	for path, c := range routes {
		mux.HandleFunc(path, s.handleCategory(c))
	}
	return mux
}

// handleCategory returns the full stored record set for one category.
func (s *Server) handleCategory(c category.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		records, err := s.store.ReadAll(r.Context(), c)
		if err != nil {
			s.logger.Error().Err(err).Str("category", c.String()).Msg("read failed")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if records == nil {
			records = []map[string]any{}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			s.logger.Error().Err(err).Str("category", c.String()).Msg("encode failed")
			return
		}

		s.logger.Info().
			Str("path", r.URL.Path).
			Str("category", c.String()).
			Int("records", len(records)).
			Msg("served category")
	}
}
