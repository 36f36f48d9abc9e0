package handler

import (
	"net/http"

	"advocate-directory/internal/delivery/http/middleware"
	"advocate-directory/internal/domain/entity"
	"advocate-directory/internal/usecase"
	"advocate-directory/pkg/response"

	"github.com/sirupsen/logrus"
)

type AdvocateHandler struct {
	log             *logrus.Logger
	advocateUsecase usecase.AdvocateUsecase
}

func NewAdvocateHandler(log *logrus.Logger, advocateUsecase usecase.AdvocateUsecase) *AdvocateHandler {
	return &AdvocateHandler{
		log:             log,
		advocateUsecase: advocateUsecase,
	}
}

// Search handles the directory query
// @Summary Search advocates
// @Description Filter, sort and paginate the advocate directory. Malformed numbers fall back to defaults.
// @Tags Advocates
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Param search query string false "Case-insensitive substring matched against every field"
// @Param sortBy query string false "Field to sort by"
// @Param sortOrder query string false "asc or desc" default(asc)
// @Success 200 {object} dto.AdvocatePageResponse
// @Failure 500 {object} response.Response
// @Router /advocates [get]
func (h *AdvocateHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := entity.NewAdvocateQuery(entity.RawAdvocateQuery{
		Page:       q.Get("page"),
		PageSize:   q.Get("pageSize"),
		SearchTerm: q.Get("search"),
		SortField:  q.Get("sortBy"),
		SortOrder:  q.Get("sortOrder"),
	})

	page, err := h.advocateUsecase.Search(r.Context(), params)
	if err != nil {
		requestID, _ := middleware.GetRequestIDFromContext(r.Context())
		h.log.WithField("request_id", requestID).Errorf("Failed to search advocates: %v", err)
		response.InternalServerError(w, "Failed to get advocates")
		return
	}

	response.JSON(w, http.StatusOK, page)
}
