package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"luckycat.backend/internal/domain/entities"
	"luckycat.backend/internal/interfaces/http/response"
)

// MenuService is the part of the menu usecase the handler needs
type MenuService interface {
	GetMenuByLanguage(ctx context.Context, language entities.Language) ([]*entities.MenuCategory, error)
}

// MenuHandler serves the public menu listing
type MenuHandler struct {
	menuService MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenu returns the menu for the requested language. The language query
// parameter is case-insensitive and defaults to EN.
// GET /menu?language=UA
func (h *MenuHandler) GetMenu(c *gin.Context) {
	language := entities.Language(strings.ToUpper(c.Query("language")))

	menu, err := h.menuService.GetMenuByLanguage(c.Request.Context(), language)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"menu": menu})
}
