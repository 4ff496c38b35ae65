package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	cartv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/cart/v1"
	"github.com/gin-gonic/gin"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const upstreamTimeout = 5 * time.Second

// responseJSON keeps proto field names and emits zero values.
var responseJSON = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

type cartHandler struct {
	client cartv1.CartServiceClient
}

func newCartHandler(client cartv1.CartServiceClient) *cartHandler {
	return &cartHandler{client: client}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int32  `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

func (h *cartHandler) getCart(c *gin.Context) {
	ctx, cancel := upstream(c)
	defer cancel()

	cart, err := h.client.GetCart(ctx, &cartv1.UserId{Id: userID(c)})
	if err != nil {
		respondGRPCError(c, err)
		return
	}
	respondProto(c, http.StatusOK, cart)
}

func (h *cartHandler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	ctx, cancel := upstream(c)
	defer cancel()

	cart, err := h.client.AddItem(ctx, &cartv1.UpdateCartItemRequest{
		UserId: userID(c),
		Item:   &cartv1.CartItem{ProductId: strings.TrimSpace(req.ProductID), Quantity: req.Quantity},
	})
	if err != nil {
		respondGRPCError(c, err)
		return
	}
	respondProto(c, http.StatusOK, cart)
}

func (h *cartHandler) setItemQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	ctx, cancel := upstream(c)
	defer cancel()

	cart, err := h.client.SetItemQuantity(ctx, &cartv1.UpdateCartItemRequest{
		UserId: userID(c),
		Item:   &cartv1.CartItem{ProductId: c.Param("product_id"), Quantity: req.Quantity},
	})
	if err != nil {
		respondGRPCError(c, err)
		return
	}
	respondProto(c, http.StatusOK, cart)
}

func (h *cartHandler) removeItem(c *gin.Context) {
	ctx, cancel := upstream(c)
	defer cancel()

	cart, err := h.client.RemoveItem(ctx, &cartv1.RemoveCartItemRequest{
		UserId:    userID(c),
		ProductId: c.Param("product_id"),
	})
	if err != nil {
		respondGRPCError(c, err)
		return
	}
	respondProto(c, http.StatusOK, cart)
}

func (h *cartHandler) clearCart(c *gin.Context) {
	ctx, cancel := upstream(c)
	defer cancel()

	cart, err := h.client.ClearCart(ctx, &cartv1.UserId{Id: userID(c)})
	if err != nil {
		respondGRPCError(c, err)
		return
	}
	respondProto(c, http.StatusOK, cart)
}

func upstream(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), upstreamTimeout)
}

func respondProto(c *gin.Context, code int, msg proto.Message) {
	body, err := responseJSON.Marshal(msg)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	c.Data(code, "application/json; charset=utf-8", body)
}
