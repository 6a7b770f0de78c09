package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jwilson717/Expenser-AccountsService/internal/apperr"
	"github.com/jwilson717/Expenser-AccountsService/internal/middleware"
	"github.com/jwilson717/Expenser-AccountsService/internal/models"
)

// AccountTypeManager defines the business operations used by
// AccountTypeHandler.
type AccountTypeManager interface {
	FindAll() ([]models.AccountType, error)
	FindByID(id int) (*models.AccountType, error)
	Save(t models.AccountType) (*models.AccountType, error)
	Update(typeData models.AccountType) (*models.AccountType, error)
	Delete(id int) error
}

// AccountTypeHandler handles HTTP requests for the /account/type surface.
type AccountTypeHandler struct {
	types AccountTypeManager
}

type CreateAccountTypeRequest struct {
	Type string `json:"type" validate:"required"`
}

type UpdateAccountTypeRequest struct {
	Type string `json:"type"`
}

func NewAccountTypeHandler(types AccountTypeManager) *AccountTypeHandler {
	return &AccountTypeHandler{types: types}
}

// Register attaches the account-type routes to router.
func (h *AccountTypeHandler) Register(router gin.IRouter) {
	group := router.Group("/account/type")
	{
		group.GET("", h.FindAll)
		group.GET("/id/:id", h.FindByID)
		group.POST("", h.Save)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func (h *AccountTypeHandler) FindAll(c *gin.Context) {
	types, err := h.types.FindAll()
	if err != nil {
		respondError(c, err)
		return
	}
	if types == nil {
		types = []models.AccountType{}
	}
	c.JSON(http.StatusOK, types)
}

func (h *AccountTypeHandler) FindByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	t, err := h.types.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *AccountTypeHandler) Save(c *gin.Context) {
	var req CreateAccountTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.BadValue("Invalid request body"))
		return
	}
	if msg := middleware.ValidateRequest(req); msg != "" {
		respondError(c, apperr.BadValue(msg))
		return
	}
	saved, err := h.types.Save(models.AccountType{Type: req.Type})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *AccountTypeHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req UpdateAccountTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.BadValue("Invalid request body"))
		return
	}
	updated, err := h.types.Update(models.AccountType{ID: id, Type: req.Type})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AccountTypeHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.types.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperr.BadValue("Invalid id value")
	}
	return id, nil
}
