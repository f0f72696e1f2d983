package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wgomg/rudefinder/internal/config"
	"github.com/wgomg/rudefinder/internal/finder"
	"github.com/wgomg/rudefinder/internal/utils"
	"github.com/wgomg/rudefinder/internal/utils/httputils"
	"github.com/wgomg/rudefinder/internal/vocabulary"
)

type Handler struct {
	logger  *utils.Logger
	finder  *finder.Finder
	store   *vocabulary.Store
	cache   *utils.MatchCache
	metrics *Metrics
	cfg     *config.Config
}

func NewHandler(
	logger *utils.Logger,
	finder *finder.Finder,
	store *vocabulary.Store,
	cache *utils.MatchCache,
	metrics *Metrics,
	cfg *config.Config,
) *Handler {
	metrics.SetVocabularySize(store.Len())

	return &Handler{
		logger:  logger,
		finder:  finder,
		store:   store,
		cache:   cache,
		metrics: metrics,
		cfg:     cfg,
	}
}

// VocabularyReloaded drops cached matches computed against the old list.
func (h *Handler) VocabularyReloaded(words []string) {
	h.cache.Reset()
	h.metrics.SetVocabularySize(len(words))
}

func (h *Handler) HandleFind(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := httputils.RequestID(ctx)

	if _, err := httputils.LogRequestBody(r, h.logger, reqID); err != nil {
		h.logger.Error(&reqID, "Failed to read request body: %v", err)
		h.metrics.requests.WithLabelValues("error").Inc()
		httputils.HandleError(w, err)
		return
	}

	var payload FindRequest
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		h.metrics.requests.WithLabelValues("invalid").Inc()
		httputils.HandleError(w, err)
		return
	}

	tokens := utils.NormalizeTokens(payload.Words)
	if err := h.validateTokens(tokens); err != nil {
		h.logger.Error(&reqID, "Rejected input: %v", err)
		h.metrics.requests.WithLabelValues("invalid").Inc()
		httputils.HandleError(w, err)
		return
	}

	h.logger.Info(&reqID, "Received find request: %d tokens (%s)",
		len(tokens), utils.Truncate(strings.Join(tokens, " "), 120))

	matches, generation, ok := h.cache.Get(tokens)
	if ok {
		h.logger.Debug(&reqID, "Cache hit for %v", tokens)
		h.metrics.cacheHits.Inc()
		h.respond(w, reqID, tokens, matches, true)
		return
	}

	start := time.Now()
	matches, err := h.finder.FindTokens(ctx, tokens, &reqID)
	h.metrics.findDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.logger.Error(&reqID, "Search aborted: %v", err)
		h.metrics.requests.WithLabelValues("error").Inc()
		httputils.HandleError(w, err)
		return
	}

	h.cache.Add(tokens, matches, generation)
	h.respond(w, reqID, tokens, matches, false)
}

func (h *Handler) respond(w http.ResponseWriter, reqID string, tokens, matches []string, cached bool) {
	h.metrics.requests.WithLabelValues("ok").Inc()
	h.metrics.matches.Observe(float64(len(matches)))

	h.logger.Info(&reqID, "Matched %d flagged words", len(matches))

	response := FindResponse{
		Input:   tokens,
		Matches: matches,
		Cached:  cached,
	}
	if err := httputils.SuccessResponse(w, "Search completed", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) validateTokens(tokens []string) error {
	if len(tokens) == 0 {
		return httputils.BadRequest("words must contain at least one non-blank entry")
	}
	if limit := h.cfg.Finder.MaxInputTokens; len(tokens) > limit {
		return httputils.BadRequest(fmt.Sprintf("too many words: %d, limit is %d", len(tokens), limit))
	}
	return nil
}

func (h *Handler) HandleVocabulary(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	response := VocabularyResponse{
		Size:         h.store.Len(),
		Source:       h.store.Source(),
		LoadedAt:     h.store.LoadedAt(),
		Separator:    h.finder.Separator(),
		CacheSize:    h.cache.Size(),
		CacheHitRate: h.cache.HitRate(),
	}

	if err := httputils.SuccessResponse(w, "Vocabulary loaded", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}
