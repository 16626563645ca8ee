// Package webhook receives pushed gateway notifications, answers each
// with its acknowledgment document, and exposes the parsed variants to
// an optional consumer callback.
package webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/merchantkit/gcheckout/logger"
	"github.com/merchantkit/gcheckout/metrics"
	"github.com/merchantkit/gcheckout/notifications"
	"github.com/merchantkit/gcheckout/types"
)

const contentType = "application/xml; charset=UTF-8"

// Config assembles a Server. Merchant is required: the gateway
// authenticates its pushes with the merchant credential over basic
// auth.
type Config struct {
	Merchant types.Merchant
	Logger   logger.Logger
	Metrics  metrics.Recorder

	// OnNotification, when set, is invoked for every successfully
	// parsed notification after the acknowledgment is queued.
	OnNotification func(notifications.Notification)
}

type Server struct {
	merchant types.Merchant
	logger   logger.Logger
	metrics  metrics.Recorder
	notify   func(notifications.Notification)
	router   *httprouter.Router
}

func NewServer(cfg Config) (*Server, error) {
	if err := cfg.Merchant.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NoopLogger{}
	}
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	s := &Server{
		merchant: cfg.Merchant,
		logger:   log,
		metrics:  recorder,
		notify:   cfg.OnNotification,
	}

	router := httprouter.New()
	router.POST("/checkout/notifications", s.handleNotification)
	router.POST("/checkout/merchant-calculation", s.handleMerchantCalculation)
	router.GET("/healthz", s.handleHealth)
	s.router = router

	return s, nil
}

// Handler returns the HTTP handler for mounting.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) authorized(r *http.Request) bool {
	user, pass, ok := r.BasicAuth()
	return ok && user == s.merchant.ID && pass == s.merchant.Key
}

func (s *Server) handleNotification(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.authorized(r) {
		w.Header().Set("WWW-Authenticate", `Basic realm="checkout"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}

	n, err := notifications.Parse(body)
	if err != nil {
		var unknown *notifications.UnknownNotificationError
		if errors.As(err, &unknown) {
			s.logger.Warn("unknown notification root", map[string]any{"root": unknown.Root})
		} else {
			s.logger.Warn("unparseable notification", map[string]any{"error": err.Error()})
		}
		http.Error(w, "bad notification", http.StatusBadRequest)
		return
	}

	s.metrics.IncCounter("notification", map[string]string{"kind": string(n.Kind())})
	s.logger.Info("notification received", map[string]any{
		"kind":   string(n.Kind()),
		"serial": n.SerialNumber(),
	})

	ack, err := n.AcknowledgmentXML()
	if err != nil {
		http.Error(w, "acknowledgment", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(ack); err != nil {
		s.logger.Warn("write acknowledgment", map[string]any{"error": err.Error()})
	}

	if s.notify != nil {
		s.notify(n)
	}
}

func (s *Server) handleMerchantCalculation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.authorized(r) {
		w.Header().Set("WWW-Authenticate", `Basic realm="checkout"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}

	calc, err := notifications.ParseMerchantCalculation(body)
	if err != nil {
		s.logger.Warn("unparseable merchant calculation", map[string]any{"error": err.Error()})
		http.Error(w, "bad merchant calculation", http.StatusBadRequest)
		return
	}

	addressID, err := calc.AddressID()
	if err != nil {
		addressID = ""
	}
	s.metrics.IncCounter("merchant_calculation", map[string]string{"kind": "callback"})
	s.logger.Info("merchant calculation received", map[string]any{"address_id": addressID})

	// Pricing is the embedder's business; without a callback the
	// gateway falls back to the cart's flat values.
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
