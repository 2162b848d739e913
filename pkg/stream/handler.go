package stream

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const heartbeatInterval = 30 * time.Second

func NewHandler(logger *slog.Logger, broker broker) Handler {
	return Handler{
		logger:    logger,
		broker:    broker,
		heartbeat: heartbeatInterval,
	}
}

type Handler struct {
	logger    *slog.Logger
	broker    broker
	heartbeat time.Duration
}

type broker interface {
	Subscribe() (uuid.UUID, <-chan Message)
	Unsubscribe(id uuid.UUID)
}

// Subscribe streams calendar changes
func (h Handler) Subscribe(c *gin.Context) {
	// swagger:route GET /subscribe streamSSE
	//
	// Stream changes
	//
	// Stream created, updated and deleted events and notes as Server-Sent Events.
	//
	// responses:
	//   200: Stream
	id, messages := h.broker.Subscribe()
	ctx := c.Request.Context()
	h.logger.InfoContext(ctx, "Subscriber connected", "subscriber", id)
	defer func() {
		h.broker.Unsubscribe(id)
		h.logger.InfoContext(ctx, "Subscriber disconnected", "subscriber", id)
	}()

	c.Writer.Header().Set("Content-Type", sse.ContentType)
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	var sequence uint64
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			c.Render(-1, sse.Event{Event: "ping", Data: time.Now().UTC().Format(time.RFC3339)})
			return true
		case message, ok := <-messages:
			if !ok {
				return false
			}
			sequence++
			c.Render(-1, sse.Event{
				Id:    id.String() + "-" + strconv.FormatUint(sequence, 10),
				Event: message.Type,
				Data:  message.Data,
			})
			return true
		}
	})
}
