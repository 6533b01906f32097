package handlers

import (
	"errors"
	"net/http"

	"salao/services/review"
	"salao/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes review and rating endpoints.
type ReviewHandler struct {
	ReviewService review.ReviewService
}

// NewReviewHandler builds a ReviewHandler.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{ReviewService: svc}
}

// CreateReviewHandler handles POST /api/reviews.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req review.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rev, err := h.ReviewService.CreateReview(c.GetString("userID"), req)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrNotCompleted),
			errors.Is(err, review.ErrAlreadyReviewed),
			errors.Is(err, review.ErrBadRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Review creation failed",
				zap.String("appointment", req.AppointmentID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// GetReviewsHandler handles GET /api/reviews with optional service/employee filters.
func (h *ReviewHandler) GetReviewsHandler(c *gin.Context) {
	reviews, err := h.ReviewService.ListReviews(c.Query("service"), c.Query("employee"))
	if err != nil {
		utils.GetLogger().Error("Failed to list reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetReviewByIDHandler handles GET /api/reviews/:id.
func (h *ReviewHandler) GetReviewByIDHandler(c *gin.Context) {
	rev, err := h.ReviewService.GetReview(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	c.JSON(http.StatusOK, rev)
}

// UpdateReviewHandler handles PUT /api/reviews/:id.
func (h *ReviewHandler) UpdateReviewHandler(c *gin.Context) {
	id := c.Param("id")

	var req review.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rev, err := h.ReviewService.UpdateReview(c.GetString("userID"), id, req)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrBadRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Review update failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, rev)
}

// DeleteReviewHandler handles DELETE /api/reviews/:id.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	id := c.Param("id")
	err := h.ReviewService.DeleteReview(c.GetString("userID"), c.GetString("userRole"), id)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Review delete failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// GetServiceRatingHandler handles GET /api/reviews/rating/service/:id.
func (h *ReviewHandler) GetServiceRatingHandler(c *gin.Context) {
	summary, err := h.ReviewService.ServiceRating(c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("Rating aggregation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetEmployeeRatingHandler handles GET /api/reviews/rating/employee/:id.
func (h *ReviewHandler) GetEmployeeRatingHandler(c *gin.Context) {
	summary, err := h.ReviewService.EmployeeRating(c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("Rating aggregation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
