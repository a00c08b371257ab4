package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/go-github/v72/github"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gitbot/pkg/domain/interfaces"
	"github.com/m-mizutani/gitbot/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// maxPayloadSize is the limit GitHub documents for webhook payloads
const maxPayloadSize = 25 << 20

// WebhookHandler handles GitHub webhooks
type WebhookHandler struct {
	secret    string
	webhookUC interfaces.WebhookUseCase
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(secret string, webhookUC interfaces.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		secret:    secret,
		webhookUC: webhookUC,
	}
}

// Handle processes webhook requests
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadSize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			logger.Warn("Webhook payload too large", "limit", maxErr.Limit)
			writeError(w, goerr.Wrap(err, "payload too large"), http.StatusRequestEntityTooLarge)
			return
		}
		logger.Error("Failed to read request body", "error", err)
		writeError(w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.verifySignature(r, body); err != nil {
		logger.Warn("Invalid webhook signature", "error", err)
		writeError(w, goerr.New("invalid signature"), http.StatusUnauthorized)
		return
	}

	deliveryID := r.Header.Get(github.DeliveryIDHeader)
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	}

	event := &model.WebhookEvent{
		ID:         deliveryID,
		Type:       model.WebhookEventType(github.WebHookType(r)),
		ReceivedAt: time.Now(),
		RawPayload: body,
	}

	resp, err := h.webhookUC.ProcessEvent(ctx, event)
	if err != nil {
		logger.Error("Failed to process webhook event", "error", err, "delivery_id", deliveryID)
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	if err := json.NewEncoder(w).Encode(resp.Body); err != nil {
		logger.Error("Failed to encode webhook response", "error", err)
	}
}

// verifySignature checks X-Hub-Signature-256, falling back to the legacy
// sha1 X-Hub-Signature header
func (h *WebhookHandler) verifySignature(r *http.Request, body []byte) error {
	signature := r.Header.Get(github.SHA256SignatureHeader)
	if signature == "" {
		signature = r.Header.Get(github.SHA1SignatureHeader)
	}
	if signature == "" {
		return goerr.New("missing signature header")
	}

	return github.ValidateSignature(signature, body, []byte(h.secret))
}
