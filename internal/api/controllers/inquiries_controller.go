package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/memcache"
	"tripdesk/pkg/utils"
)

type InquiriesController struct {
	inquiryService services.InquiryServiceInterface
	decisionCache  memcache.DecisionCache
}

func NewInquiriesController(
	inquiryService services.InquiryServiceInterface,
	decisionCache memcache.DecisionCache,
) *InquiriesController {
	return &InquiriesController{
		inquiryService: inquiryService,
		decisionCache:  decisionCache,
	}
}

func (ctrl *InquiriesController) CreateInquiry(c *gin.Context) {
	agencyID, ok := agencyFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Agency scope missing")
		return
	}

	var req request_models.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctrl.inquiryService.CreateInquiry(c.Request.Context(), agencyID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Inquiry created successfully")
}

func (ctrl *InquiriesController) UpdateInquiry(c *gin.Context) {
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

	var req request_models.UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.inquiryService.UpdateInquiryPayload(c.Request.Context(), agencyID, inquiryID, *req.Inquiry); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// The stored inquiry changed, any cached decision is stale now.
	ctrl.decisionCache.Invalidate(decisionCacheKey(agencyID.String(), inquiryID))

	utils.RespondSuccess(c, nil, "Inquiry updated successfully")
}

func (ctrl *InquiriesController) GetInquiryById(c *gin.Context) {
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

	inquiry, err := ctrl.inquiryService.GetInquiryById(c.Request.Context(), agencyID, inquiryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, inquiry, "Inquiry fetched successfully")
}

func (ctrl *InquiriesController) ListInquiries(c *gin.Context) {
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

	inquiries, err := ctrl.inquiryService.ListInquiries(c.Request.Context(), agencyID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, inquiries, "Inquiries fetched successfully")
}
