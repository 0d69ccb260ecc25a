// Package api wires the HTTP surface a validate/solve-as-a-service
// deployment exposes: puzzle validation, grid/swap solving, a live
// diagnostics stream, and the two admin endpoints that mutate server
// state. Everything here is stateless apart from the optional run
// telemetry and caches it consults; no handler persists puzzle
// content or player progress.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crossplay/waffle/internal/auth"
	"github.com/crossplay/waffle/internal/cache"
	"github.com/crossplay/waffle/internal/models"
	"github.com/crossplay/waffle/internal/realtime"
	"github.com/crossplay/waffle/internal/store"
	"github.com/crossplay/waffle/internal/validator"
	"github.com/crossplay/waffle/pkg/dictionary"
	"github.com/crossplay/waffle/pkg/gridsolver"
	"github.com/crossplay/waffle/pkg/swapsolver"
	"github.com/crossplay/waffle/pkg/wordgrid"
)

// DictionaryStore is the subset of dictionary lifecycle management the
// handlers need: the currently loaded dictionary plus the ability to
// reload it from disk, so the admin reload endpoint can swap in a
// freshly built packed dictionary without restarting the process.
type DictionaryStore interface {
	Current() *dictionary.Dictionary
	Checksum() string
	Reload() error
}

// Handlers holds every dependency the route handlers need. Store,
// validationCache, patternCache and hub are all nil-safe: a deployment
// with no Postgres, Redis or diagnostics stream configured still
// serves every route, just without telemetry, memoised solve results
// or live updates.
type Handlers struct {
	dict            DictionaryStore
	store           *store.Store
	validationCache *cache.ValidationCache
	patternCache    *cache.PatternCache
	hub             *realtime.Hub
	authService     *auth.AuthService
	admin           *models.AdminUser
}

// NewHandlers builds a Handlers. st, validationCache, patternCache and
// hub may all be nil; dict, authService and admin must not be.
func NewHandlers(dict DictionaryStore, st *store.Store, validationCache *cache.ValidationCache, patternCache *cache.PatternCache, hub *realtime.Hub, authService *auth.AuthService, admin *models.AdminUser) *Handlers {
	return &Handlers{
		dict:            dict,
		store:           st,
		validationCache: validationCache,
		patternCache:    patternCache,
		hub:             hub,
		authService:     authService,
		admin:           admin,
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func contentHash(puzzles []string) string {
	sum := sha256.Sum256([]byte(strings.Join(puzzles, "\n")))
	return hex.EncodeToString(sum[:])
}

// Healthz reports service liveness plus a few figures useful to an
// operator watching the fleet: whether a dictionary is loaded and how
// many clients are attached to the diagnostics stream.
func (h *Handlers) Healthz(c *gin.Context) {
	resp := gin.H{
		"status":        "ok",
		"dictionarySet": h.dict.Current() != nil,
	}
	if h.hub != nil {
		resp["streamSubscribers"] = h.hub.SubscriberCount()
	}
	c.JSON(http.StatusOK, resp)
}

// Validate checks every puzzle line in the request body and reports
// the diagnostics raised, recording run telemetry and consulting (then
// populating) the incremental validation cache when configured.
func (h *Handlers) Validate(c *gin.Context) {
	var req models.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Puzzles) == 0 {
		respondError(c, http.StatusBadRequest, "puzzles must not be empty")
		return
	}

	dict := h.dict.Current()
	if dict == nil {
		respondError(c, http.StatusServiceUnavailable, "no dictionary loaded")
		return
	}

	runID := uuid.New().String()
	start := time.Now()

	hash := contentHash(req.Puzzles)
	if cached, ok := h.validationCache.Get(hash); ok {
		c.JSON(http.StatusOK, models.ValidateResponse{
			RunID:       runID,
			PuzzleCount: len(req.Puzzles),
			Diagnostics: cached,
		})
		return
	}

	if h.hub != nil {
		h.hub.RunStarted(runID, len(req.Puzzles))
	}

	var diagnostics []models.DiagnosticDTO
	report := func(m validator.Message) {
		dto := models.DiagnosticDTO{
			PuzzleNumber: m.PuzzleNum,
			Kind:         m.Kind.Name(),
			Detail:       m.Kind.String(),
		}
		diagnostics = append(diagnostics, dto)
		if h.hub != nil {
			h.hub.Diagnostic(runID, dto.PuzzleNumber, dto.Kind, dto.Detail)
		}
	}

	if h.hub != nil {
		validator.RunStreaming(dict, req.Puzzles, report)
		sort.SliceStable(diagnostics, func(i, j int) bool {
			return diagnostics[i].PuzzleNumber < diagnostics[j].PuzzleNumber
		})
	} else {
		for _, m := range validator.Run(dict, req.Puzzles) {
			report(m)
		}
	}

	duration := time.Since(start)

	h.validationCache.Put(hash, diagnostics)

	if h.hub != nil {
		h.hub.RunFinished(runID, len(diagnostics), duration)
	}

	h.store.RecordRun(&models.Run{
		ID:              runID,
		Kind:            "validate",
		PuzzleCount:     len(req.Puzzles),
		DiagnosticCount: len(diagnostics),
		DurationMs:      duration.Milliseconds(),
		CreatedAt:       start,
	})

	c.JSON(http.StatusOK, models.ValidateResponse{
		RunID:       runID,
		PuzzleCount: len(req.Puzzles),
		Diagnostics: diagnostics,
		DurationMs:  duration.Milliseconds(),
	})
}

// Solve enumerates every word placement that satisfies a grid's
// crossing constraints, capped at req.Limit (defaulting to 50 to keep
// the response bounded for an underconstrained grid).
func (h *Handlers) Solve(c *gin.Context) {
	var req models.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	dict := h.dict.Current()
	if dict == nil {
		respondError(c, http.StatusServiceUnavailable, "no dictionary loaded")
		return
	}

	lg, err := wordgrid.Parse(req.Grid)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}

	runID := uuid.New().String()
	start := time.Now()

	ctx := c.Request.Context()
	checksum := h.dict.Checksum()
	// The cache key folds in limit since it's part of what the grid
	// pattern resolves to, not just the grid letters themselves.
	patternKey := fmt.Sprintf("%s#%d", req.Grid, limit)

	var rendered []string
	truncated := false
	if cached, ok := h.patternCache.Get(ctx, checksum, patternKey); ok {
		rendered = cached
	} else {
		solver := gridsolver.New(lg, dict)
		for len(rendered) < limit {
			solution, ok := solver.Next()
			if !ok {
				break
			}
			rendered = append(rendered, solution.String())
		}
		if _, ok := solver.Next(); ok {
			truncated = true
		}
		h.patternCache.Set(ctx, checksum, patternKey, rendered)
	}

	h.store.RecordRun(&models.Run{
		ID:          runID,
		Kind:        "solve",
		PuzzleCount: 1,
		DurationMs:  time.Since(start).Milliseconds(),
		CreatedAt:   start,
	})

	c.JSON(http.StatusOK, models.SolveResponse{
		RunID:     runID,
		Solutions: rendered,
		Truncated: truncated,
	})
}

// Swaps finds the shortest sequence of letter swaps that turns req.From
// into req.To, when one exists.
func (h *Handlers) Swaps(c *gin.Context) {
	var req models.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	from := []rune(req.From)
	to := []rune(req.To)
	if len(from) != len(to) {
		respondError(c, http.StatusBadRequest, "from and to must be the same length")
		return
	}

	runID := uuid.New().String()
	start := time.Now()
	solution, ok := swapsolver.Solve(from, to, nil)

	resp := models.SwapResponse{RunID: runID, Unsolvable: !ok}
	if ok {
		resp.Swaps = make([]models.SwapPairDTO, len(solution))
		for i, pair := range solution {
			resp.Swaps[i] = models.SwapPairDTO{A: pair.A, B: pair.B}
		}
	}

	h.store.RecordRun(&models.Run{
		ID:         runID,
		Kind:       "swaps",
		DurationMs: time.Since(start).Milliseconds(),
		CreatedAt:  start,
	})

	c.JSON(http.StatusOK, resp)
}

// ValidateStream upgrades the connection to a WebSocket and subscribes
// it to live diagnostics. A runId query parameter scopes the
// subscription to one run; omitting it subscribes to every run.
func (h *Handlers) ValidateStream(c *gin.Context) {
	if h.hub == nil {
		respondError(c, http.StatusServiceUnavailable, "diagnostics stream is not enabled")
		return
	}
	runID := c.Query("runId")
	realtime.ServeWs(h.hub, c.Writer, c.Request, runID)
}

// ReloadDictionary reloads the packed dictionary from disk, admin-only
// because a bad dictionary file breaks every subsequent validate/solve
// call until corrected.
func (h *Handlers) ReloadDictionary(c *gin.Context) {
	if err := h.dict.Reload(); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "reloaded",
		"checksum": h.dict.Checksum(),
	})
}

// ClearCache drops every entry from both the validation cache and the
// pattern cache, admin-only since it is a blunt way to force every
// subsequent request onto the uncached path.
func (h *Handlers) ClearCache(c *gin.Context) {
	if err := h.validationCache.Clear(); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.patternCache.Clear(c.Request.Context()); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// Login exchanges operator credentials for an admin JWT. There is
// exactly one admin account per deployment, configured at startup, so
// this never consults a users table.
func (h *Handlers) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if h.admin == nil || req.Username != h.admin.Username || !h.authService.CheckPassword(req.Password, h.admin.PasswordHash) {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken(h.admin.ID, h.admin.Username)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
