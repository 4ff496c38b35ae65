package grpc

import (
	"context"
	"errors"

	catalogv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/catalog/v1"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/app"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/domain"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	catalogv1.UnimplementedCatalogServiceServer
	svc *app.Service
	log *zap.Logger
}

func NewServer(svc *app.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, log: log.Named("catalog.grpc")}
}

func (s *Server) CreateProduct(ctx context.Context, req *catalogv1.CreateProductRequest) (*catalogv1.CreateProductResponse, error) {
	if req.GetPrice() == nil {
		return nil, status.Error(codes.InvalidArgument, "missing price")
	}
	product, err := s.svc.CreateProduct(ctx, req.GetName(), req.GetDescription(), req.GetPrice().GetCurrency(), req.GetPrice().GetAmount())
	if err != nil {
		return nil, s.mapErr("create product", err)
	}
	return &catalogv1.CreateProductResponse{Product: toProto(product)}, nil
}

func (s *Server) GetProduct(ctx context.Context, req *catalogv1.GetProductRequest) (*catalogv1.GetProductResponse, error) {
	p, err := s.svc.GetProduct(ctx, req.GetId())
	if err != nil {
		return nil, s.mapErr("get product", err)
	}
	return &catalogv1.GetProductResponse{Product: toProto(p)}, nil
}

func (s *Server) ListProducts(ctx context.Context, req *catalogv1.ListProductsRequest) (*catalogv1.ListProductsResponse, error) {
	products, next, err := s.svc.ListProducts(ctx, req.GetQuery(), int(req.GetLimit()), req.GetCursor())
	if err != nil {
		return nil, s.mapErr("list products", err)
	}

	out := make([]*catalogv1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProto(p))
	}

	return &catalogv1.ListProductsResponse{Products: out, NextCursor: next}, nil
}

func (s *Server) UpdatePrice(ctx context.Context, req *catalogv1.UpdatePriceRequest) (*catalogv1.UpdatePriceResponse, error) {
	if req.GetPrice() == nil {
		return nil, status.Error(codes.InvalidArgument, "missing price")
	}
	p, err := s.svc.UpdatePrice(ctx, req.GetId(), req.GetPrice().GetCurrency(), req.GetPrice().GetAmount())
	if err != nil {
		return nil, s.mapErr("update price", err)
	}
	return &catalogv1.UpdatePriceResponse{Product: toProto(p)}, nil
}

func toProto(p domain.Product) *catalogv1.Product {
	return &catalogv1.Product{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price: &catalogv1.Money{
			Currency: p.Price.Currency,
			Amount:   p.Price.Amount,
		},
		CreatedAtUnix: p.CreatedAt.Unix(),
		UpdatedAtUnix: p.UpdatedAt.Unix(),
	}
}

func (s *Server) mapErr(op string, err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput), errors.Is(err, app.ErrCurrencyMismatch):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	s.log.Error("catalog operation failed", zap.String("op", op), zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}
