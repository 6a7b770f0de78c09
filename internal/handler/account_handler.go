package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jwilson717/Expenser-AccountsService/internal/apperr"
	"github.com/jwilson717/Expenser-AccountsService/internal/models"
)

// TokenHeader carries the opaque caller token on every account request.
const TokenHeader = "tokenId"

// AccountManager defines the business operations used by AccountHandler.
// Identity is always passed in explicitly; the manager never sees tokens.
type AccountManager interface {
	FindByUserID(userID int) ([]models.Account, error)
	FindByID(id int, user *models.Identity) (*models.Account, error)
	Save(account models.Account, user *models.Identity) (*models.Account, error)
	Update(accountData models.Account, user *models.Identity) (*models.Account, error)
	Delete(id int, user *models.Identity) error
}

// IdentityResolver exchanges a caller token for a user identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*models.Identity, error)
}

// AccountHandler handles HTTP requests for the /account surface. Every
// operation resolves the caller identity first and only then touches the
// store, so an invalid token never reveals whether a record exists.
type AccountHandler struct {
	accounts AccountManager
	resolver IdentityResolver
}

func NewAccountHandler(accounts AccountManager, resolver IdentityResolver) *AccountHandler {
	return &AccountHandler{accounts: accounts, resolver: resolver}
}

// Register attaches the account routes to router.
func (h *AccountHandler) Register(router gin.IRouter) {
	group := router.Group("/account")
	{
		group.GET("", h.FindMine)
		group.GET("/id/:id", h.FindByID)
		group.POST("", h.Save)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func (h *AccountHandler) FindMine(c *gin.Context) {
	user, err := h.resolver.Resolve(c.Request.Context(), c.GetHeader(TokenHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	accounts, err := h.accounts.FindByUserID(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *AccountHandler) FindByID(c *gin.Context) {
	user, err := h.resolver.Resolve(c.Request.Context(), c.GetHeader(TokenHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	account, err := h.accounts.FindByID(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) Save(c *gin.Context) {
	user, err := h.resolver.Resolve(c.Request.Context(), c.GetHeader(TokenHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	var account models.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		respondError(c, apperr.BadValue("Invalid request body"))
		return
	}
	saved, err := h.accounts.Save(account, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *AccountHandler) Update(c *gin.Context) {
	user, err := h.resolver.Resolve(c.Request.Context(), c.GetHeader(TokenHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var accountData models.Account
	if err := c.ShouldBindJSON(&accountData); err != nil {
		respondError(c, apperr.BadValue("Invalid request body"))
		return
	}
	accountData.ID = id
	updated, err := h.accounts.Update(accountData, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AccountHandler) Delete(c *gin.Context) {
	user, err := h.resolver.Resolve(c.Request.Context(), c.GetHeader(TokenHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.accounts.Delete(id, user); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
