package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/foodreview-backend/internal/app/serializer"
	"github.com/ikkim/foodreview-backend/internal/app/service"
	"github.com/ikkim/foodreview-backend/internal/middleware"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// ListReviews 리뷰 목록 조회
// GET /api/v1/reviews?restaurant_id=
func (ctrl *ReviewController) ListReviews(c *gin.Context) {
	restaurantID, ok := parseOptionalID(c, "restaurant_id")
	if !ok {
		return
	}

	reviews, err := ctrl.reviewService.List(c.Request.Context(), restaurantID)
	if err != nil {
		respondServiceError(c, err, "list reviews")
		return
	}
	c.JSON(http.StatusOK, serializer.ToReviewFulls(reviews))
}

// GetReview 리뷰 상세 조회
// GET /api/v1/reviews/:id
func (ctrl *ReviewController) GetReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	review, err := ctrl.reviewService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get review")
		return
	}
	c.JSON(http.StatusOK, serializer.ToReviewFull(review))
}

// CreateReview 리뷰 작성
// POST /api/v1/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req service.CreateReviewInput
	if !bindJSON(c, &req) {
		return
	}

	review, err := ctrl.reviewService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "create review")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Review created", map[string]interface{}{
		"review_id":     review.ID,
		"restaurant_id": review.RestaurantID,
	})
	c.JSON(http.StatusCreated, serializer.ToReviewFull(review))
}

// UpdateReview 리뷰 수정
// PATCH /api/v1/reviews/:id
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateReviewInput
	if !bindJSON(c, &req) {
		return
	}

	review, err := ctrl.reviewService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		respondServiceError(c, err, "update review")
		return
	}
	c.JSON(http.StatusOK, serializer.ToReviewFull(review))
}

// DeleteReview 리뷰 삭제
// DELETE /api/v1/reviews/:id
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.reviewService.Delete(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err, "delete review")
		return
	}
	c.Status(http.StatusNoContent)
}
