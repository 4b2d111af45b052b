package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type ItinerariesController struct {
	itineraryService services.ItineraryServiceInterface
	searchService    services.SearchServiceInterface
}

func NewItinerariesController(
	itineraryService services.ItineraryServiceInterface,
	searchService services.SearchServiceInterface,
) *ItinerariesController {
	return &ItinerariesController{
		itineraryService: itineraryService,
		searchService:    searchService,
	}
}

func (ctrl *ItinerariesController) CreateItinerary(c *gin.Context) {
	agencyID, ok := agencyFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Agency scope missing")
		return
	}

	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctrl.itineraryService.CreateItinerary(c.Request.Context(), agencyID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Itinerary created successfully")
}

func (ctrl *ItinerariesController) UpdateItinerary(c *gin.Context) {
	agencyID, ok := agencyFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Agency scope missing")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	req.ID = id

	if err := ctrl.itineraryService.UpdateItinerary(c.Request.Context(), agencyID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary updated successfully")
}

func (ctrl *ItinerariesController) DeleteItinerary(c *gin.Context) {
	agencyID, ok := agencyFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Agency scope missing")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	if err := ctrl.itineraryService.DeleteItinerary(c.Request.Context(), agencyID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

func (ctrl *ItinerariesController) GetItineraryById(c *gin.Context) {
	agencyID, ok := agencyFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Agency scope missing")
		return
	}

	itineraryID := c.Param("id")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := ctrl.itineraryService.GetItineraryById(c.Request.Context(), agencyID, itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

func (ctrl *ItinerariesController) ListItineraries(c *gin.Context) {
	agencyID, ok := agencyFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Agency scope missing")
		return
	}

	page, pageSize, ok := pagination(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	itineraries, err := ctrl.itineraryService.ListItineraries(c.Request.Context(), agencyID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

func (ctrl *ItinerariesController) SemanticSearch(c *gin.Context) {
	agencyID, ok := agencyFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Agency scope missing")
		return
	}

	var req request_models.SemanticSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	hits, err := ctrl.searchService.SemanticSearch(c.Request.Context(), agencyID, req.Query, req.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hits, "Search completed successfully")
}
