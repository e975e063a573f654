package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webproshub/marketplace-gateway/internal/core/domain"
	"github.com/webproshub/marketplace-gateway/internal/core/ports"
)

// AdminUsersHandler serves the admin dashboard's user-management data.
type AdminUsersHandler struct {
	repo ports.AccountRepository
}

func NewAdminUsersHandler(repo ports.AccountRepository) *AdminUsersHandler {
	return &AdminUsersHandler{repo: repo}
}

type adminUsersResponse struct {
	Users []domain.Account `json:"users"`
}

// List returns all marketplace user accounts.
//
// @Summary      List user accounts
// @Tags         admin
// @Produce      json
// @Success      200  {object}  adminUsersResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *AdminUsersHandler) List(c echo.Context) error {
	accounts, err := h.repo.List(c.Request().Context(), domain.KindUser)
	if err != nil {
		return err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return c.JSON(http.StatusOK, adminUsersResponse{Users: accounts})
}
