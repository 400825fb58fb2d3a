// Copyright (C) 2026 Parker Labs (dev@parkerlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package dashboard

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes attaches all dashboard routes to the router.
func RegisterRoutes(router *gin.Engine, h *Handlers, enableMetrics bool) {
	router.GET("/health", h.HealthCheck)
	if enableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// API version 1 group
	v1 := router.Group("/v1")
	{
		generators := v1.Group("/generators")
		{
			generators.POST("/run", h.HandleGenerate)
			generators.POST("/batch", h.HandleBatch)
		}

		montecarlo := v1.Group("/montecarlo")
		{
			montecarlo.POST("/pi", h.HandlePi)
			montecarlo.POST("/integrate", h.HandleIntegrate)
		}

		runs := v1.Group("/runs")
		{
			runs.GET("", h.ListRuns)
			runs.DELETE("", h.ClearRuns)
			runs.GET("/:runId", h.GetRun)
			runs.DELETE("/:runId", h.DeleteRun)
			runs.GET("/:runId/export", h.HandleExport)
			runs.POST("/:runId/quality", h.HandleQuality)
		}

		v1.GET("/docs/algorithms", h.HandleDocs)
	}
}
