package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	service "github.com/aaravmahajanofficial/cosmetics-storefront/internal/services"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/utils"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/utils/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications godoc
//
//	@Summary		List sent notifications
//	@Description	Lists the order confirmation log with delivery status, newest first. Requires the admin role.
//	@Tags			Notifications
//	@Produce		json
//	@Param			page		query		int														false	"Page number (default: 1)"							minimum(1)
//	@Param			pageSize	query		int														false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Notification}	"Notifications"
//	@Failure		401			{object}	response.ErrorResponse									"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse									"Admin role required"
//	@Failure		500			{object}	response.ErrorResponse									"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/notifications [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.ParsePagination(r)

		notifications, total, err := h.notificationService.ListNotifications(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list notifications", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     notifications,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
