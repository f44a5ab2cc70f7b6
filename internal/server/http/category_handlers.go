package httpserver

import (
	"net/http"

	"github.com/boardgamereviews/reviews-service/internal/domain"
	"github.com/boardgamereviews/reviews-service/internal/events"
)

// listCategories handles GET /api/categories.
func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.List(r.Context())
	if err != nil {
		s.writeDomainError(w, r, "list_categories", err)
		return
	}

	writeJSON(w, http.StatusOK, categoriesEnvelope{Categories: categoriesToResponse(categories)})
}

// createCategory handles POST /api/categories.
func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req domain.NewCategory
	if err := decodeBody(r, &req); err != nil {
		s.writeDomainError(w, r, "create_category", err)
		return
	}

	category, err := s.categories.Create(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, r, "create_category", err)
		return
	}

	resp := categoryToResponse(category)
	if s.metrics != nil {
		s.metrics.RecordCategoryCreated()
	}
	s.publish(r, events.Params{
		Type:          events.TypeCategoryCreated,
		AggregateType: events.AggregateCategory,
		AggregateID:   category.Slug,
		Payload:       resp,
	})

	writeJSON(w, http.StatusCreated, categoryEnvelope{Category: resp})
}
