// Package api exposes the engine over HTTP. Two entry points: run a
// reconciliation over the stored snapshot of a (client, period), or run
// one over records the caller posts directly.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cemsak/lyntos-updated-sub006/internal/config"
	"github.com/cemsak/lyntos-updated-sub006/internal/engine"
	interfaces "github.com/cemsak/lyntos-updated-sub006/internal/interfaces"
	"github.com/cemsak/lyntos-updated-sub006/internal/models"
	events "github.com/cemsak/lyntos-updated-sub006/internal/models/events"
)

// Server wires the engine, the source store and the optional event
// publisher behind the HTTP routes.
type Server struct {
	engine    *engine.Engine
	store     interfaces.SourceStore
	publisher interfaces.EventPublisher
	logger    *logrus.Logger
}

func NewServer(eng *engine.Engine, store interfaces.SourceStore, publisher interfaces.EventPublisher, logger *logrus.Logger) *Server {
	return &Server{engine: eng, store: store, publisher: publisher, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.POST("/clients/:clientId/periods/:periodId/reconciliation", s.runStored)
	v1.POST("/reconciliation/preview", s.runPreview)
	return r
}

// runStored loads the period's snapshot from the store and runs the engine.
func (s *Server) runStored(c *gin.Context) {
	clientID := c.Param("clientId")
	periodID := c.Param("periodId")
	ctx := c.Request.Context()

	snap := models.Snapshot{ClientID: clientID, PeriodID: periodID}
	var err error
	if snap.Journal, err = s.store.JournalLines(ctx, clientID, periodID); err != nil {
		s.storeError(c, "JournalLines", err)
		return
	}
	if snap.Ledger, err = s.store.LedgerLines(ctx, clientID, periodID); err != nil {
		s.storeError(c, "LedgerLines", err)
		return
	}
	if snap.TrialBalance, err = s.store.TrialBalanceRows(ctx, clientID, periodID); err != nil {
		s.storeError(c, "TrialBalanceRows", err)
		return
	}
	if snap.Opening, err = s.store.OpeningBalanceLines(ctx, clientID, periodID); err != nil {
		s.storeError(c, "OpeningBalanceLines", err)
		return
	}

	s.run(c, snap)
}

// runPreview runs the engine over records posted in the request body,
// for callers that hold the parsed data themselves.
func (s *Server) runPreview(c *gin.Context) {
	var snap models.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	s.run(c, snap)
}

func (s *Server) run(c *gin.Context, snap models.Snapshot) {
	report, err := s.engine.Run(c.Request.Context(), snap)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidSnapshot) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		config.LogError(s.logger, "api", "run", "running reconciliation", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reconciliation failed"})
		return
	}

	if s.publisher != nil {
		event := events.ReconciliationCompleted{
			ReportID:         report.ID,
			ClientID:         report.ClientID,
			PeriodID:         report.PeriodID,
			OverallStatus:    string(report.Summary.OverallStatus),
			CriticalFindings: len(report.CriticalFindings),
			FailedChecks:     report.Summary.TotalChecks - report.Summary.Passed,
			GeneratedAt:      report.GeneratedAt,
		}
		// Best effort: a broker outage must not fail the HTTP response.
		if err := s.publisher.Publish("reconciliation_completed", event); err != nil {
			config.LogError(s.logger, "api", "run", "publishing completion event", err)
		}
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) storeError(c *gin.Context, funcName string, err error) {
	config.LogError(s.logger, "api", funcName, "loading source snapshot", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load source data"})
}
