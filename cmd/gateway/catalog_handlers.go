package main

import (
	"net/http"
	"strconv"

	catalogv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/catalog/v1"
	"github.com/gin-gonic/gin"
)

type catalogHandler struct {
	client catalogv1.CatalogServiceClient
}

func newCatalogHandler(client catalogv1.CatalogServiceClient) *catalogHandler {
	return &catalogHandler{client: client}
}

type moneyRequest struct {
	Currency string `json:"currency" binding:"required"`
	Amount   int64  `json:"amount" binding:"required"`
}

type createProductRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Price       moneyRequest `json:"price" binding:"required"`
}

type updatePriceRequest struct {
	Price moneyRequest `json:"price" binding:"required"`
}

func (h *catalogHandler) listProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ARGUMENT", "limit must be a number")
		return
	}

	ctx, cancel := upstream(c)
	defer cancel()

	res, err := h.client.ListProducts(ctx, &catalogv1.ListProductsRequest{
		Query:  c.Query("q"),
		Limit:  int32(limit),
		Cursor: c.Query("cursor"),
	})
	if err != nil {
		respondGRPCError(c, err)
		return
	}
	respondProto(c, http.StatusOK, res)
}

func (h *catalogHandler) getProduct(c *gin.Context) {
	ctx, cancel := upstream(c)
	defer cancel()

	res, err := h.client.GetProduct(ctx, &catalogv1.GetProductRequest{Id: c.Param("id")})
	if err != nil {
		respondGRPCError(c, err)
		return
	}
	respondProto(c, http.StatusOK, res.GetProduct())
}

func (h *catalogHandler) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	ctx, cancel := upstream(c)
	defer cancel()

	res, err := h.client.CreateProduct(ctx, &catalogv1.CreateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       &catalogv1.Money{Currency: req.Price.Currency, Amount: req.Price.Amount},
	})
	if err != nil {
		respondGRPCError(c, err)
		return
	}
	respondProto(c, http.StatusCreated, res.GetProduct())
}

func (h *catalogHandler) updatePrice(c *gin.Context) {
	var req updatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	ctx, cancel := upstream(c)
	defer cancel()

	res, err := h.client.UpdatePrice(ctx, &catalogv1.UpdatePriceRequest{
		Id:    c.Param("id"),
		Price: &catalogv1.Money{Currency: req.Price.Currency, Amount: req.Price.Amount},
	})
	if err != nil {
		respondGRPCError(c, err)
		return
	}
	respondProto(c, http.StatusOK, res.GetProduct())
}
