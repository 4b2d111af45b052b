package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/memcache"
	"tripdesk/pkg/utils"
)

// decisionTTL bounds how long a cached workflow decision is served before
// the pipeline runs again.
const decisionTTL = 10 * time.Minute

// decisionCacheKey scopes cached decisions per tenant.
func decisionCacheKey(agencyID, inquiryID string) string {
	return agencyID + "/" + inquiryID
}

type MatchingController struct {
	matchingService services.MatchingServiceInterface
	inquiryService  services.InquiryServiceInterface
	decisionCache   memcache.DecisionCache
}

func NewMatchingController(
	matchingService services.MatchingServiceInterface,
	inquiryService services.InquiryServiceInterface,
	decisionCache memcache.DecisionCache,
) *MatchingController {
	return &MatchingController{
		matchingService: matchingService,
		inquiryService:  inquiryService,
		decisionCache:   decisionCache,
	}
}

// MatchInquiry runs the matching pipeline against a stored inquiry and
// records the resulting workflow action on it.
func (ctrl *MatchingController) MatchInquiry(c *gin.Context) {
	agencyID, ok := agencyFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Agency scope missing")
		return
	}

	inquiryID := c.Param("id")
	if inquiryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Inquiry ID is required")
		return
	}

	inquiry, err := ctrl.inquiryService.GetStructuredInquiry(c.Request.Context(), agencyID, inquiryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	outcome, err := ctrl.matchingService.MatchInquiry(c.Request.Context(), agencyID, *inquiry)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := ctrl.inquiryService.RecordDecision(c.Request.Context(), agencyID, inquiryID, outcome.Decision.Action); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	ctrl.decisionCache.Set(decisionCacheKey(agencyID.String(), inquiryID), outcome.Decision, decisionTTL)

	utils.RespondSuccess(c, outcome, "Matching completed successfully")
}

// GetDecision returns the cached decision for an inquiry without re-running
// the pipeline within the cache TTL.
func (ctrl *MatchingController) GetDecision(c *gin.Context) {
	agencyID, ok := agencyFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Agency scope missing")
		return
	}

	inquiryID := c.Param("id")
	if inquiryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Inquiry ID is required")
		return
	}

	decision, ok := ctrl.decisionCache.Get(decisionCacheKey(agencyID.String(), inquiryID))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "No recent decision for this inquiry, run matching first")
		return
	}

	utils.RespondSuccess(c, decision, "Decision fetched successfully")
}

// PreviewMatch runs the pipeline on an inline inquiry without storing
// anything, for the agent UI.
func (ctrl *MatchingController) PreviewMatch(c *gin.Context) {
	agencyID, ok := agencyFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Agency scope missing")
		return
	}

	var req request_models.Inquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	outcome, err := ctrl.matchingService.MatchInquiry(c.Request.Context(), agencyID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, outcome, "Matching completed successfully")
}
