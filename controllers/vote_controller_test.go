package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteEndpointFlow(t *testing.T) {
	r := setupServer(t)
	author := registerUser(t, r, "author")
	voter := registerUser(t, r, "voter")
	gameID := importGame(t, r, author, "doom-eternal")
	reviewID := createReview(t, r, author, gameID, 9)

	votePath := fmt.Sprintf("/api/reviews/%d/vote", reviewID)

	// anonymous mutation is rejected
	w := doJSON(t, r, http.MethodPost, votePath, "", map[string]int{"value": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// upvote
	w = doJSON(t, r, http.MethodPost, votePath, voter, map[string]int{"value": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Upvotes int `json:"upvotes"`
		Vote    *struct {
			Value int `json:"value"`
		} `json:"vote"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Upvotes)
	require.NotNil(t, resp.Vote)
	assert.Equal(t, 1, resp.Vote.Value)

	// switch to downvote moves the counter by two
	w = doJSON(t, r, http.MethodPost, votePath, voter, map[string]int{"value": -1})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, -1, resp.Upvotes)

	// retract
	w = doJSON(t, r, http.MethodPost, votePath, voter, map[string]int{"value": 0})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Upvotes)
	assert.Nil(t, resp.Vote)
}

func TestVoteEndpointSelfVoteForbidden(t *testing.T) {
	r := setupServer(t)
	author := registerUser(t, r, "author")
	gameID := importGame(t, r, author, "quake")
	reviewID := createReview(t, r, author, gameID, 8)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/reviews/%d/vote", reviewID), author, map[string]int{"value": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVoteEndpointReviewMissing(t *testing.T) {
	r := setupServer(t)
	voter := registerUser(t, r, "voter")

	w := doJSON(t, r, http.MethodPost, "/api/reviews/4242/vote", voter, map[string]int{"value": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVoteEndpointInvalidValue(t *testing.T) {
	r := setupServer(t)
	author := registerUser(t, r, "author")
	voter := registerUser(t, r, "voter")
	gameID := importGame(t, r, author, "myst")
	reviewID := createReview(t, r, author, gameID, 5)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/reviews/%d/vote", reviewID), voter, map[string]int{"value": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetVoteAnonymousReturnsNull(t *testing.T) {
	r := setupServer(t)
	author := registerUser(t, r, "author")
	gameID := importGame(t, r, author, "riven")
	reviewID := createReview(t, r, author, gameID, 7)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/reviews/%d/vote", reviewID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "null", string(resp["vote"]))
}

func TestGetVoteReturnsCallersVote(t *testing.T) {
	r := setupServer(t)
	author := registerUser(t, r, "author")
	voter := registerUser(t, r, "voter")
	gameID := importGame(t, r, author, "outer-wilds")
	reviewID := createReview(t, r, author, gameID, 10)
	path := fmt.Sprintf("/api/reviews/%d/vote", reviewID)

	w := doJSON(t, r, http.MethodPost, path, voter, map[string]int{"value": -1})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, path, voter, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Vote *struct {
			Value int `json:"value"`
		} `json:"vote"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Vote)
	assert.Equal(t, -1, resp.Vote.Value)
}
