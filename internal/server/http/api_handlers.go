package httpserver

import "net/http"

// endpointDoc describes one route in the catalogue served at GET /api.
type endpointDoc struct {
	Description     string   `json:"description"`
	Queries         []string `json:"queries"`
	ExampleRequest  any      `json:"exampleRequest,omitempty"`
	ExampleResponse any      `json:"exampleResponse,omitempty"`
}

type endpointsEnvelope struct {
	Endpoints map[string]endpointDoc `json:"endpoints"`
}

// endpointCatalogue lists every public route keyed by "<METHOD> <path>".
var endpointCatalogue = map[string]endpointDoc{
	"GET /api": {
		Description: "serves a description of all the available endpoints of the api",
		Queries:     []string{},
	},
	"GET /api/health": {
		Description:     "reports that the server is up",
		Queries:         []string{},
		ExampleResponse: messageResponse{Msg: msgServerUp},
	},
	"GET /api/categories": {
		Description: "serves an array of all categories",
		Queries:     []string{},
		ExampleResponse: categoriesEnvelope{Categories: []categoryResponse{
			{Slug: "euro game", Description: "Abstact games that involve little luck"},
		}},
	},
	"POST /api/categories": {
		Description:    "adds a category and serves it",
		Queries:        []string{},
		ExampleRequest: map[string]string{"slug": "deck-building", "description": "Build a deck as you play"},
	},
	"GET /api/reviews": {
		Description: "serves a page of reviews with their comment counts and the total number of matching reviews",
		Queries:     []string{"category", "sort_by", "order", "limit", "p"},
	},
	"POST /api/reviews": {
		Description: "adds a review and serves it with a comment_count of 0",
		Queries:     []string{},
		ExampleRequest: map[string]string{
			"owner":       "mallionaire",
			"title":       "Agricola",
			"review_body": "Farmyard fun!",
			"designer":    "Uwe Rosenberg",
			"category":    "euro game",
		},
	},
	"GET /api/reviews/:review_id": {
		Description: "serves a single review with its comment count",
		Queries:     []string{},
	},
	"PATCH /api/reviews/:review_id": {
		Description:    "adds inc_votes to the review's votes and serves the updated review",
		Queries:        []string{},
		ExampleRequest: map[string]int{"inc_votes": 1},
	},
	"GET /api/reviews/:review_id/comments": {
		Description: "serves the review's comments, newest first",
		Queries:     []string{"limit", "p"},
	},
	"POST /api/reviews/:review_id/comments": {
		Description:    "adds a comment to the review and serves it",
		Queries:        []string{},
		ExampleRequest: map[string]string{"username": "bainesface", "body": "I loved this game too!"},
	},
	"PATCH /api/comments/:comment_id": {
		Description:    "adds inc_votes to the comment's votes and serves the updated comment",
		Queries:        []string{},
		ExampleRequest: map[string]int{"inc_votes": -1},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes the comment and serves no content",
		Queries:     []string{},
	},
	"GET /api/users": {
		Description: "serves an array of all users",
		Queries:     []string{},
	},
	"GET /api/users/:username": {
		Description: "serves a single user",
		Queries:     []string{},
	},
}

const msgServerUp = "server up and running"

// getEndpoints handles GET /api.
func (s *Server) getEndpoints(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, endpointsEnvelope{Endpoints: endpointCatalogue})
}

// getHealthMessage handles GET /api/health.
func (s *Server) getHealthMessage(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Msg: msgServerUp})
}
