package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/seiyak/gourmet-hunter-backend/internal/apierr"
	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/services"
)

type CategoryHandler struct {
	log             *logger.Logger
	categoryService services.CategoryService
}

func NewCategoryHandler(log *logger.Logger, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		log:             log.With("handler", "CategoryHandler"),
		categoryService: categoryService,
	}
}

type categoryNameRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req categoryNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}
	category, err := h.categoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.log.Error("CreateCategory failed", "name", req.Name, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"category": category})
}

func (h *CategoryHandler) RenameCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}
	var req categoryNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}
	if err := h.categoryService.Rename(c.Request.Context(), categoryID, req.Name); err != nil {
		h.log.Error("RenameCategory failed", "category_id", categoryID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"renamed": true})
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("ListCategories failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"categories": categories})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}
	if err := h.categoryService.Delete(c.Request.Context(), categoryID); err != nil {
		h.log.Error("DeleteCategory failed", "category_id", categoryID, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
