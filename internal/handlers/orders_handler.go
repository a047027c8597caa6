package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mejo-sal/new-glam/internal/ledger"
	"github.com/mejo-sal/new-glam/internal/validation"
)

// Config groups dependencies for the order routes. Ledger may be nil when
// initialization failed; routes then answer 503 and the process keeps
// serving callers that do not need the ledger.
type Config struct {
	Ledger *ledger.Ledger
	Log    *logrus.Logger
}

// RegisterOrderRoutes registers the order-creation and conversational
// status-update workflows.
func RegisterOrderRoutes(r *gin.Engine, cfg Config) {
	v := validation.New()
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	g := r.Group("/orders")
	g.Use(func(c *gin.Context) {
		if cfg.Ledger == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "ledger_unavailable"})
		}
	})

	g.POST("", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.CreateOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		corrID := c.GetHeader("X-Request-Id")
		if corrID == "" {
			corrID = uuid.NewString()
		}

		items := make([]ledger.LineItem, 0, len(req.Items))
		for _, it := range req.Items {
			opts := make([]ledger.ItemOption, 0, len(it.Options))
			for _, o := range it.Options {
				opts = append(opts, ledger.ItemOption{Name: o.Name, Value: o.Value})
			}
			items = append(items, ledger.LineItem{Title: it.Title, Quantity: it.Quantity, Options: opts})
		}

		rec, err := cfg.Ledger.Append(ctx, ledger.NewOrder{
			OrderID:     req.OrderID,
			OrderNumber: req.OrderNumber,
			Customer:    req.CustomerName,
			Phone:       req.Phone,
			TotalAmount: req.TotalAmount,
			Items:       items,
		})
		if err != nil {
			log.WithFields(logrus.Fields{"op": "append", "order_id": req.OrderID, "correlation_id": corrID}).
				WithError(err).Error("ledger append failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "ledger_write_failed"})
			return
		}

		c.Header("Location", fmt.Sprintf("/orders/%s", rec.OrderID))
		c.JSON(http.StatusCreated, gin.H{"order_id": rec.OrderID, "status": rec.Status})
	})

	g.PATCH("/:id/status", func(c *gin.Context) {
		ctx := c.Request.Context()
		orderID := c.Param("id")

		var req validation.UpdateStatusRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		var override *ledger.StatusOverride
		if req.ConfirmedAt != "" {
			override = &ledger.StatusOverride{ConfirmedAt: req.ConfirmedAt}
		}

		rec, err := cfg.Ledger.UpdateStatus(ctx, orderID, req.Status, override)
		if errors.Is(err, ledger.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found"})
			return
		}
		if err != nil {
			log.WithFields(logrus.Fields{"op": "update_status", "order_id": orderID}).
				WithError(err).Error("ledger status update failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "ledger_write_failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order_id":     rec.OrderID,
			"status":       rec.Status,
			"confirmed_at": rec.ConfirmedAt,
		})
	})

	g.PUT("/:id/message", func(c *gin.Context) {
		ctx := c.Request.Context()
		orderID := c.Param("id")

		var req validation.UpdateMessageRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		err := cfg.Ledger.UpdateLastMessage(ctx, orderID, req.Message)
		if errors.Is(err, ledger.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found"})
			return
		}
		if err != nil {
			log.WithFields(logrus.Fields{"op": "update_message", "order_id": orderID}).
				WithError(err).Error("ledger message update failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "ledger_write_failed"})
			return
		}

		c.Status(http.StatusNoContent)
	})

	g.GET("/pending", func(c *gin.Context) {
		ctx := c.Request.Context()

		phone := c.Query("phone")
		if phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing_phone"})
			return
		}

		rec, err := cfg.Ledger.FindPendingByPhone(ctx, phone)
		if err != nil {
			log.WithField("op", "pending_lookup").WithError(err).Error("ledger lookup failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "ledger_read_failed"})
			return
		}
		if rec == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no_pending_order"})
			return
		}

		c.JSON(http.StatusOK, rec)
	})
}
