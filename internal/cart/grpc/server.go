package grpc

import (
	"context"
	"errors"

	cartv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/cart/v1"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/app"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	cartv1.UnimplementedCartServiceServer
	svc *app.Service
	log *zap.Logger
}

func NewServer(svc *app.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, log: log.Named("cart.grpc")}
}

func (s *Server) GetCart(ctx context.Context, req *cartv1.UserId) (*cartv1.Cart, error) {
	cart, err := s.svc.GetCart(ctx, req.GetId())
	if err != nil {
		return nil, s.mapErr("get cart", err)
	}
	return toProto(cart), nil
}

func (s *Server) AddItem(ctx context.Context, req *cartv1.UpdateCartItemRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.AddItem(ctx, req.GetUserId(), toLineItem(req.GetItem()))
	if err != nil {
		return nil, s.mapErr("add item", err)
	}
	return toProto(cart), nil
}

func (s *Server) SetItemQuantity(ctx context.Context, req *cartv1.UpdateCartItemRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.SetItemQuantity(ctx, req.GetUserId(), toLineItem(req.GetItem()))
	if err != nil {
		return nil, s.mapErr("set item quantity", err)
	}
	return toProto(cart), nil
}

func (s *Server) RemoveItem(ctx context.Context, req *cartv1.RemoveCartItemRequest) (*cartv1.Cart, error) {
	cart, err := s.svc.RemoveItem(ctx, req.GetUserId(), req.GetProductId())
	if err != nil {
		return nil, s.mapErr("remove item", err)
	}
	return toProto(cart), nil
}

func (s *Server) ClearCart(ctx context.Context, req *cartv1.UserId) (*cartv1.Cart, error) {
	cart, err := s.svc.Clear(ctx, req.GetId())
	if err != nil {
		return nil, s.mapErr("clear cart", err)
	}
	return toProto(cart), nil
}

func (s *Server) mapErr(op string, err error) error {
	code := codeOf(err)
	if code == codes.Internal {
		s.log.Error("cart operation failed", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "error %s", op)
	}
	return status.Error(code, err.Error())
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, domain.ErrInvalidLineItem), errors.Is(err, domain.ErrInvalidInput):
		return codes.InvalidArgument
	case errors.Is(err, domain.ErrReferentialIntegrity), errors.Is(err, domain.ErrUnresolvedProduct):
		return codes.FailedPrecondition
	case errors.Is(err, domain.ErrConcurrentModification):
		return codes.Aborted
	case errors.Is(err, domain.ErrLookupUnavailable):
		return codes.Unavailable
	case errors.Is(err, domain.ErrCartNotFound), errors.Is(err, domain.ErrItemNotFound):
		return codes.NotFound
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}

func toLineItem(item *cartv1.CartItem) domain.LineItem {
	return domain.LineItem{
		ProductID: item.GetProductId(),
		Quantity:  item.GetQuantity(),
	}
}

func toProto(cart domain.Cart) *cartv1.Cart {
	items := make([]*cartv1.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, &cartv1.CartItem{
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &cartv1.Cart{
		Id:            cart.ID,
		UserId:        cart.OwnerID,
		Items:         items,
		Total:         cart.Total,
		Version:       cart.Version,
		CreatedAtUnix: cart.CreatedAt.Unix(),
		UpdatedAtUnix: cart.UpdatedAt.Unix(),
	}
}
