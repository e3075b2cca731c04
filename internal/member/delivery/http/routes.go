package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the JSON API under r (mounted at /api/v1).
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	views := r.Group("/views")
	{
		views.POST("", h.Mount)
		views.GET("/:id", h.Detail)
		views.DELETE("/:id", h.Unmount)

		views.PUT("/:id/search", h.Search)
		views.PUT("/:id/page", h.GoToPage)
		views.DELETE("/:id/page", h.DeletePage)

		views.POST("/:id/selection/page", h.TogglePageSelection)
		views.POST("/:id/selection/:member_id", h.ToggleSelect)
		views.DELETE("/:id/selection", h.ClearSelection)

		views.POST("/:id/edit/save", h.SaveEdit)
		views.POST("/:id/edit/:member_id", h.StartEdit)
		views.PATCH("/:id/members/:member_id", h.UpdateField)
		views.DELETE("/:id/members/:member_id", h.Delete)
		views.DELETE("/:id/members", h.DeleteSelected)
	}
}

// RegisterPages registers the server-rendered table. Every form posts back and redirects to the view.
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/", h.pageMount)
	r.GET("/views/:id", h.pageView)
	r.POST("/views/:id/search", h.pageSearch)
	r.POST("/views/:id/page", h.pageGoTo)
	r.POST("/views/:id/select", h.pageToggleSelect)
	r.POST("/views/:id/select-page", h.pageTogglePageSelection)
	r.POST("/views/:id/edit", h.pageStartEdit)
	r.POST("/views/:id/save", h.pageSaveEdit)
	r.POST("/views/:id/delete", h.pageDelete)
	r.POST("/views/:id/delete-selected", h.pageDeleteSelected)
	r.POST("/views/:id/delete-page", h.pageDeletePage)
}
