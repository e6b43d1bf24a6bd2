package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cortexhq/cortex/pkg/models"
)

// webhookProcessTimeout bounds the async processing of one delivery.
const webhookProcessTimeout = 60 * time.Second

// handleWebhook accepts gateway webhooks. Sync notifications are answered
// 202 before any work happens; failures after that are logged, never
// surfaced back to the provider, so provider retries cannot amplify into
// duplicate events (dedup is the protection, not the response code).
func (s *Server) handleWebhook(c *gin.Context) {
	var payload models.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch payload.Type {
	case "sync":
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), webhookProcessTimeout)
			defer cancel()
			res, err := s.shaper.HandleWebhook(ctx, &payload)
			if err != nil {
				slog.Error("Webhook processing failed",
					"connection_id", payload.ConnectionID, "model", payload.Model, "error", err)
				return
			}
			slog.Debug("Webhook processed",
				"connection_id", payload.ConnectionID, "model", payload.Model,
				"processed", res.Processed)
		}()
		c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})

	case "auth":
		s.handleAuthWebhook(c, &payload)

	default:
		slog.Debug("Ignoring webhook type", "type", payload.Type)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	}
}

// handleAuthWebhook auto-registers a freshly authorized connection when its
// owner is already known from the owner cache. Unknown owners are dropped;
// the user completes registration through POST /api/connections.
func (s *Server) handleAuthWebhook(c *gin.Context, payload *models.WebhookPayload) {
	if payload.ConnectionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "connectionId is required"})
		return
	}

	userID, err := s.store.ResolveConnectionOwner(c.Request.Context(), payload.ConnectionID)
	if err != nil {
		respondError(c, err)
		return
	}
	if userID == "" {
		slog.Info("Auth webhook for unknown connection dropped",
			"connection_id", payload.ConnectionID, "provider", payload.ProviderConfigKey)
		c.JSON(http.StatusOK, gin.H{"status": "dropped"})
		return
	}

	if _, err := s.store.UpsertConnection(c.Request.Context(), userID, payload.ProviderConfigKey, payload.ConnectionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "registered"})
}
