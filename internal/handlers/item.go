package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/seiyak/gourmet-hunter-backend/internal/apierr"
	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/services"
	"github.com/seiyak/gourmet-hunter-backend/internal/types"
)

type ItemHandler struct {
	log         *logger.Logger
	itemService services.ItemService
}

func NewItemHandler(log *logger.Logger, itemService services.ItemService) *ItemHandler {
	return &ItemHandler{
		log:         log.With("handler", "ItemHandler"),
		itemService: itemService,
	}
}

type saveItemRequest struct {
	ID                 *uuid.UUID `json:"id"`
	CategoryID         uuid.UUID  `json:"category_id"`
	Name               string     `json:"name"`
	Score              float64    `json:"score"`
	Comment            string     `json:"comment"`
	ImageURL           *string    `json:"image_url"`
	EatenAt            string     `json:"eaten_at"`
	PreviousCategoryID *uuid.UUID `json:"previous_category_id"`
}

// SaveItem creates or edits one ranking item. A missing id means a new
// item and gets one assigned here; previous_category_id is sent when
// an edit moved the item between categories. A response with
// rankings_stale=true means the item was saved but some rank/image
// refresh did not apply — the client should still re-fetch.
func (h *ItemHandler) SaveItem(c *gin.Context) {
	var req saveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}

	eatenAt, err := time.Parse("2006-01-02", req.EatenAt)
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}

	itemID := uuid.New()
	if req.ID != nil {
		itemID = *req.ID
	}

	item := &types.RankingItem{
		ID:         itemID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Score:      req.Score,
		Comment:    req.Comment,
		ImageURL:   req.ImageURL,
		EatenAt:    datatypes.Date(eatenAt),
	}

	saveErr := h.itemService.SaveItem(c.Request.Context(), item, req.PreviousCategoryID)

	var partial *services.PartialRecalcError
	if errors.As(saveErr, &partial) {
		h.log.Warn("Item saved with stale rankings", "item_id", item.ID, "error", saveErr)
		RespondOK(c, gin.H{"saved": true, "id": item.ID, "rankings_stale": true})
		return
	}
	if saveErr != nil {
		h.log.Error("SaveItem failed", "item_id", item.ID, "error", saveErr)
		RespondServiceError(c, saveErr)
		return
	}
	RespondOK(c, gin.H{"saved": true, "id": item.ID})
}
