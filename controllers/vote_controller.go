package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/services"

	"github.com/gin-gonic/gin"
)

type VoteReq struct {
	// -1, 0 or +1; 0 retracts the vote
	Value *int `json:"value" binding:"required"`
}

// CastReviewVote handles POST /api/reviews/:id/vote.
func CastReviewVote(c *gin.Context) {
	voterID := c.GetUint("user_id")
	if voterID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || reviewID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}
	var req VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vote value"})
		return
	}

	vote, upvotes, err := services.CastVote(global.DB, voterID, uint(reviewID), *req.Value)
	switch {
	case errors.Is(err, services.ErrInvalidVoteValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSelfVote):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	default:
		resp := gin.H{"success": true, "upvotes": upvotes}
		if vote != nil {
			resp["vote"] = vote
		} else {
			resp["vote"] = nil
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetReviewVote handles GET /api/reviews/:id/vote. Anonymous callers get
// {"vote": null}, never an error.
func GetReviewVote(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || reviewID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}
	voterID := c.GetUint("user_id")

	vote, err := services.GetVote(global.DB, voterID, uint(reviewID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if vote == nil {
		c.JSON(http.StatusOK, gin.H{"vote": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vote": vote})
}
