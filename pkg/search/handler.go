package search

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/internal/handler"
	"github.com/gin-gonic/gin"
)

func NewHandler(logger *slog.Logger, searcher searcher, answerer answerer) Handler {
	return Handler{
		logger:   logger,
		searcher: searcher,
		answerer: answerer,
	}
}

type Handler struct {
	logger   *slog.Logger
	searcher searcher
	answerer answerer
}

type searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

type answerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

type Request struct {
	Query string `json:"query"`
}

// SearchResponse holds the web results of a search.
// swagger:model
type SearchResponse struct {
	Results []Result `json:"results"`
}

// AnswerResponse holds the generated answer to a question.
// swagger:model
type AnswerResponse struct {
	Answer string `json:"answer"`
}

// Search the web
func (h Handler) Search(c *gin.Context) {
	// swagger:route POST /search webSearch
	//
	// Search
	//
	// Search the web for medical literature.
	//
	// responses:
	//   200: SearchResponse
	//   400: Error
	//   429: Error
	//   502: Error
	//   503: Error
	query, ok := h.query(c)
	if !ok {
		return
	}

	results, err := h.searcher.Search(c.Request.Context(), query)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "Web search failed", "error", err)
		_ = c.Error(upstreamError(err, "Search failed. Please try again later."))
		return
	}

	c.JSON(http.StatusOK, SearchResponse{Results: results})
}

// Answer a medical question
func (h Handler) Answer(c *gin.Context) {
	// swagger:route POST /ai/search aiSearch
	//
	// AI search
	//
	// Answer a medical question. The answer is formatted as HTML.
	//
	// responses:
	//   200: AnswerResponse
	//   400: Error
	//   429: Error
	//   502: Error
	//   503: Error
	query, ok := h.query(c)
	if !ok {
		return
	}

	answer, err := h.answerer.Answer(c.Request.Context(), query)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "AI search failed", "error", err)
		_ = c.Error(upstreamError(err, "Failed to get AI response. Please try again later."))
		return
	}

	c.JSON(http.StatusOK, AnswerResponse{Answer: answer})
}

func (h Handler) query(c *gin.Context) (string, bool) {
	var request Request
	if err := handler.DataBinder(c, &request); err != nil && !errdef.IsBadRequest(err) {
		_ = c.Error(err)
		return "", false
	}

	query := strings.TrimSpace(request.Query)
	if query == "" {
		_ = c.Error(errdef.NewValidation([]errdef.FieldError{{Field: "query", Message: "is required"}}, "Query is required"))
		return "", false
	}
	return query, true
}

// upstreamError hides upstream details from clients. They are logged instead.
func upstreamError(err error, message string) error {
	if errdef.IsBadGateway(err) {
		return errdef.NewBadGateway("%s", message)
	}
	return err
}
