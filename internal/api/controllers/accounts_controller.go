package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderwise/internal/models/request_models"
	"wanderwise/internal/services"
	"wanderwise/pkg/utils"
)

type AccountsController struct {
	accountService services.AccountServiceInterface
}

func NewAccountsController(accountService services.AccountServiceInterface) *AccountsController {
	return &AccountsController{
		accountService: accountService,
	}
}

func (a *AccountsController) Register(c *gin.Context) {
	var request request_models.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid registration payload")
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account registered successfully")
}

func (a *AccountsController) Login(c *gin.Context) {
	var request request_models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid login payload")
		return
	}

	result, err := a.accountService.Login(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Logged in successfully")
}
