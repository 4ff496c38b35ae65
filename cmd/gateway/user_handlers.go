package main

import (
	"net/http"

	userv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/user/v1"
	"github.com/gin-gonic/gin"
)

type userHandler struct {
	client userv1.UserServiceClient
}

func newUserHandler(client userv1.UserServiceClient) *userHandler {
	return &userHandler{client: client}
}

type registerRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

func (h *userHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	ctx, cancel := upstream(c)
	defer cancel()

	res, err := h.client.RegisterUser(ctx, &userv1.RegisterUserRequest{Email: req.Email, Name: req.Name})
	if err != nil {
		respondGRPCError(c, err)
		return
	}
	respondProto(c, http.StatusCreated, res.GetUser())
}

func (h *userHandler) me(c *gin.Context) {
	ctx, cancel := upstream(c)
	defer cancel()

	res, err := h.client.GetUser(ctx, &userv1.GetUserRequest{Id: userID(c)})
	if err != nil {
		respondGRPCError(c, err)
		return
	}
	respondProto(c, http.StatusOK, res.GetUser())
}
