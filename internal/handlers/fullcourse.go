package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/seiyak/gourmet-hunter-backend/internal/apierr"
	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/services"
)

type FullCourseHandler struct {
	log               *logger.Logger
	fullCourseService services.FullCourseService
}

func NewFullCourseHandler(log *logger.Logger, fullCourseService services.FullCourseService) *FullCourseHandler {
	return &FullCourseHandler{
		log:               log.With("handler", "FullCourseHandler"),
		fullCourseService: fullCourseService,
	}
}

func (h *FullCourseHandler) GetFullCourse(c *gin.Context) {
	assignments, err := h.fullCourseService.GetAssignments(c.Request.Context())
	if err != nil {
		h.log.Error("GetFullCourse failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"full_course": assignments})
}

type setSlotRequest struct {
	ItemID *uuid.UUID `json:"item_id"`
}

func (h *FullCourseHandler) SetSlot(c *gin.Context) {
	slotKey := c.Param("slot_key")
	var req setSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}
	if err := h.fullCourseService.SetSlot(c.Request.Context(), slotKey, req.ItemID); err != nil {
		h.log.Error("SetSlot failed", "slot_key", slotKey, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"saved": true})
}

type setAllSlotsRequest struct {
	FullCourse map[string]*uuid.UUID `json:"full_course"`
}

func (h *FullCourseHandler) SetAllSlots(c *gin.Context) {
	var req setAllSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}
	if err := h.fullCourseService.SetAll(c.Request.Context(), req.FullCourse); err != nil {
		h.log.Error("SetAllSlots failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"saved": true})
}
