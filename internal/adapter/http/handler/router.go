package handler

import (
	"dispute-resolution-engine/config"
	"dispute-resolution-engine/internal/adapter/http/middleware"
	"dispute-resolution-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// RouterDeps bundles everything SetupRouter needs.
type RouterDeps struct {
	Cfg            *config.Config
	DisputeSvc     ports.DisputeService
	WorkflowSvc    ports.WorkflowService
	AuditSvc       ports.AuditService
	Drafts         ports.DraftManager
	SearchSvc      ports.SearchService
	Directory      ports.TransactionDirectory
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter wires middleware and routes. Everything under /api/v1
// requires a valid bearer token; /health is public.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.MaxBodySize(maxBodyBytes),
	)

	router.GET("/health", HealthCheck(deps.HealthCheckers...))

	pageSize := deps.Cfg.Engine.PageSize
	disputeHandler := NewDisputeHandler(deps.DisputeSvc, deps.WorkflowSvc, pageSize)
	draftHandler := NewDraftHandler(deps.Drafts)
	auditHandler := NewAuditHandler(deps.AuditSvc, pageSize)
	txHandler := NewTransactionHandler(deps.SearchSvc, deps.Directory, pageSize)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Identity(deps.Cfg.JWT, deps.Logger))
	{
		disputes := v1.Group("/disputes")
		{
			disputes.POST("", disputeHandler.Create)
			disputes.GET("", disputeHandler.List)
			disputes.GET("/stats", disputeHandler.Stats)
			disputes.GET("/:id", disputeHandler.Get)
			disputes.PATCH("/:id", disputeHandler.Update)
			disputes.DELETE("/:id", disputeHandler.Delete)
			disputes.POST("/:id/status", disputeHandler.ChangeStatus)
			disputes.GET("/:id/transitions", disputeHandler.Transitions)
			disputes.POST("/:id/assign", disputeHandler.Assign)
			disputes.POST("/:id/evidence", disputeHandler.AddEvidence)
			disputes.POST("/:id/rebase", disputeHandler.Rebase)
			disputes.POST("/:id/conflict", disputeHandler.CheckConflict)
			disputes.GET("/:id/audit", auditHandler.ByDispute)
		}

		drafts := v1.Group("/drafts")
		{
			drafts.POST("", draftHandler.Save)
			drafts.GET("", draftHandler.List)
			drafts.POST("/flush", draftHandler.Flush)
			drafts.GET("/state", draftHandler.State)
			drafts.GET("/:id", draftHandler.Get)
			drafts.DELETE("/:id", draftHandler.Delete)
			drafts.POST("/:id/submit", draftHandler.Submit)
		}

		audit := v1.Group("/audit")
		{
			audit.GET("", auditHandler.List)
			audit.GET("/stats", auditHandler.Stats)
			audit.GET("/export", auditHandler.Export)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", txHandler.Search)
			transactions.GET("/:id", txHandler.Get)
		}
	}

	return router
}
