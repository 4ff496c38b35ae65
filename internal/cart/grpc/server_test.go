package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	cartv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/cart/v1"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/app"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/app/testutil"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/domain"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/infra/memory"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestCodeOf(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{&domain.InvalidLineItemError{ProductID: "p", Reason: "quantity must be at least 1"}, codes.InvalidArgument},
		{domain.ErrInvalidInput, codes.InvalidArgument},
		{&domain.ReferentialIntegrityError{OwnerID: "u"}, codes.FailedPrecondition},
		{&domain.UnresolvedProductError{ProductID: "p"}, codes.FailedPrecondition},
		{&domain.ConcurrentModificationError{OwnerID: "u", Expected: 1, Actual: 2}, codes.Aborted},
		{&domain.LookupUnavailableError{Lookup: "catalog", Key: "p", Err: context.DeadlineExceeded}, codes.Unavailable},
		{domain.ErrCartNotFound, codes.NotFound},
		{fmt.Errorf("remove: %w", domain.ErrItemNotFound), codes.NotFound},
		{errors.New("disk on fire"), codes.Internal},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			if got := codeOf(tc.err); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	s := NewServer(nil, nil)
	err := s.mapErr("add item", errors.New("dial tcp 10.0.0.3:5432: refused"))
	st, _ := status.FromError(err)
	if st.Code() != codes.Internal || st.Message() != "error add item" {
		t.Fatalf("unexpected status %v", st)
	}
}

func newClient(t *testing.T, catalog *testutil.Catalog, users *testutil.Users) cartv1.CartServiceClient {
	t.Helper()

	store := memory.NewCartStore()
	engine := app.NewEngine(store, catalog, users, app.EngineOptions{})
	svc := app.NewService(engine, store, 3, nil)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	cartv1.RegisterCartServiceServer(srv, NewServer(svc, nil))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return cartv1.NewCartServiceClient(conn)
}

func TestServerRoundTrip(t *testing.T) {
	ctx := context.Background()
	catalog := testutil.NewCatalog(map[string]int64{"oud": 250, "musk": 500})
	users := testutil.NewUsers("u1")
	client := newClient(t, catalog, users)

	t.Run("get before create -> not found", func(t *testing.T) {
		_, err := client.GetCart(ctx, &cartv1.UserId{Id: "u1"})
		if status.Code(err) != codes.NotFound {
			t.Fatalf("expected NotFound, got %v", err)
		}
	})

	t.Run("add creates cart with total", func(t *testing.T) {
		cart, err := client.AddItem(ctx, &cartv1.UpdateCartItemRequest{
			UserId: "u1",
			Item:   &cartv1.CartItem{ProductId: "oud", Quantity: 2},
		})
		if err != nil {
			t.Fatalf("AddItem: %v", err)
		}
		if cart.Id == "" || cart.Total != 500 || cart.Version != 1 {
			t.Fatalf("unexpected cart %+v", cart)
		}
	})

	t.Run("set quantity reprices", func(t *testing.T) {
		catalog.SetPrice("oud", 300)
		cart, err := client.SetItemQuantity(ctx, &cartv1.UpdateCartItemRequest{
			UserId: "u1",
			Item:   &cartv1.CartItem{ProductId: "musk", Quantity: 1},
		})
		if err != nil {
			t.Fatalf("SetItemQuantity: %v", err)
		}
		if cart.Total != 2*300+500 || len(cart.Items) != 2 {
			t.Fatalf("unexpected cart %+v", cart)
		}
	})

	t.Run("zero quantity -> invalid argument", func(t *testing.T) {
		_, err := client.AddItem(ctx, &cartv1.UpdateCartItemRequest{
			UserId: "u1",
			Item:   &cartv1.CartItem{ProductId: "oud", Quantity: 0},
		})
		if status.Code(err) != codes.InvalidArgument {
			t.Fatalf("expected InvalidArgument, got %v", err)
		}
	})

	t.Run("missing item -> invalid argument", func(t *testing.T) {
		_, err := client.AddItem(ctx, &cartv1.UpdateCartItemRequest{UserId: "u1"})
		if status.Code(err) != codes.InvalidArgument {
			t.Fatalf("expected InvalidArgument, got %v", err)
		}
	})

	t.Run("unknown product -> failed precondition", func(t *testing.T) {
		_, err := client.AddItem(ctx, &cartv1.UpdateCartItemRequest{
			UserId: "u1",
			Item:   &cartv1.CartItem{ProductId: "ghost", Quantity: 1},
		})
		if status.Code(err) != codes.FailedPrecondition {
			t.Fatalf("expected FailedPrecondition, got %v", err)
		}
	})

	t.Run("unknown user -> failed precondition", func(t *testing.T) {
		_, err := client.AddItem(ctx, &cartv1.UpdateCartItemRequest{
			UserId: "u2",
			Item:   &cartv1.CartItem{ProductId: "oud", Quantity: 1},
		})
		if status.Code(err) != codes.FailedPrecondition {
			t.Fatalf("expected FailedPrecondition, got %v", err)
		}
	})

	t.Run("remove then clear", func(t *testing.T) {
		cart, err := client.RemoveItem(ctx, &cartv1.RemoveCartItemRequest{UserId: "u1", ProductId: "oud"})
		if err != nil {
			t.Fatalf("RemoveItem: %v", err)
		}
		if cart.Total != 500 || len(cart.Items) != 1 {
			t.Fatalf("unexpected cart %+v", cart)
		}

		cart, err = client.ClearCart(ctx, &cartv1.UserId{Id: "u1"})
		if err != nil {
			t.Fatalf("ClearCart: %v", err)
		}
		if cart.Total != 0 || len(cart.Items) != 0 {
			t.Fatalf("unexpected cart %+v", cart)
		}
	})
}
