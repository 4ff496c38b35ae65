package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	catalogv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/catalog/v1"
	userv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/user/v1"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

type fakeCatalogClient struct {
	lastCreate *catalogv1.CreateProductRequest
	lastUpdate *catalogv1.UpdatePriceRequest
	lastList   *catalogv1.ListProductsRequest
	err        error
	calls      int
}

func (f *fakeCatalogClient) product(id string, price *catalogv1.Money) *catalogv1.Product {
	return &catalogv1.Product{Id: id, Name: "Amber Musk 100ml", Price: price}
}

func (f *fakeCatalogClient) CreateProduct(ctx context.Context, in *catalogv1.CreateProductRequest, _ ...grpc.CallOption) (*catalogv1.CreateProductResponse, error) {
	f.calls++
	f.lastCreate = in
	if f.err != nil {
		return nil, f.err
	}
	return &catalogv1.CreateProductResponse{Product: f.product("p1", in.GetPrice())}, nil
}

func (f *fakeCatalogClient) GetProduct(ctx context.Context, in *catalogv1.GetProductRequest, _ ...grpc.CallOption) (*catalogv1.GetProductResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &catalogv1.GetProductResponse{Product: f.product(in.GetId(), &catalogv1.Money{Currency: "AED", Amount: 32000})}, nil
}

func (f *fakeCatalogClient) ListProducts(ctx context.Context, in *catalogv1.ListProductsRequest, _ ...grpc.CallOption) (*catalogv1.ListProductsResponse, error) {
	f.calls++
	f.lastList = in
	if f.err != nil {
		return nil, f.err
	}
	return &catalogv1.ListProductsResponse{
		Products:   []*catalogv1.Product{f.product("p1", &catalogv1.Money{Currency: "AED", Amount: 32000})},
		NextCursor: "p1",
	}, nil
}

func (f *fakeCatalogClient) UpdatePrice(ctx context.Context, in *catalogv1.UpdatePriceRequest, _ ...grpc.CallOption) (*catalogv1.UpdatePriceResponse, error) {
	f.calls++
	f.lastUpdate = in
	if f.err != nil {
		return nil, f.err
	}
	return &catalogv1.UpdatePriceResponse{Product: f.product(in.GetId(), in.GetPrice())}, nil
}

type fakeUserClient struct {
	lastRegister *userv1.RegisterUserRequest
	lastGet      string
	err          error
}

func (f *fakeUserClient) RegisterUser(ctx context.Context, in *userv1.RegisterUserRequest, _ ...grpc.CallOption) (*userv1.RegisterUserResponse, error) {
	f.lastRegister = in
	if f.err != nil {
		return nil, f.err
	}
	return &userv1.RegisterUserResponse{User: &userv1.User{Id: "u1", Email: in.GetEmail(), Name: in.GetName()}}, nil
}

func (f *fakeUserClient) GetUser(ctx context.Context, in *userv1.GetUserRequest, _ ...grpc.CallOption) (*userv1.GetUserResponse, error) {
	f.lastGet = in.GetId()
	if f.err != nil {
		return nil, f.err
	}
	return &userv1.GetUserResponse{User: &userv1.User{Id: in.GetId(), Email: "layla@veloria.ae"}}, nil
}

func newStoreRouter(catalog *fakeCatalogClient, users *fakeUserClient, secret string) *gin.Engine {
	return newRouter(routerConfig{
		Cart:      newCartHandler(&fakeCartClient{}),
		Catalog:   newCatalogHandler(catalog),
		Users:     newUserHandler(users),
		JWTSecret: secret,
	})
}

func signRoleToken(t *testing.T, sub, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestCatalogRoutes(t *testing.T) {
	catalog := &fakeCatalogClient{}
	r := newStoreRouter(catalog, &fakeUserClient{}, testSecret)
	admin := signRoleToken(t, "staff1", adminRole)
	shopper := signRoleToken(t, "u1", "")

	t.Run("list is public", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/products?q=amber&limit=5&cursor=p0", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if catalog.lastList.GetQuery() != "amber" || catalog.lastList.GetLimit() != 5 || catalog.lastList.GetCursor() != "p0" {
			t.Fatalf("unexpected list request %v", catalog.lastList)
		}
		var res catalogv1.ListProductsResponse
		if err := protojson.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(res.GetProducts()) != 1 || res.GetNextCursor() != "p1" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("bad limit -> 400", func(t *testing.T) {
		before := catalog.calls
		w := do(r, http.MethodGet, "/v1/products?limit=many", "", "")
		if w.Code != http.StatusBadRequest || catalog.calls != before {
			t.Fatalf("expected 400 without upstream call, got %d", w.Code)
		}
	})

	t.Run("get missing -> 404", func(t *testing.T) {
		catalog.err = status.Error(codes.NotFound, "not found")
		defer func() { catalog.err = nil }()

		w := do(r, http.MethodGet, "/v1/products/ghost", "", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("create requires a token", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/products", `{"name":"Rose Oud","price":{"currency":"AED","amount":100}}`, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("create requires admin", func(t *testing.T) {
		before := catalog.calls
		w := do(r, http.MethodPost, "/v1/products", `{"name":"Rose Oud","price":{"currency":"AED","amount":100}}`, shopper)
		if w.Code != http.StatusForbidden || catalog.calls != before {
			t.Fatalf("expected 403 without upstream call, got %d", w.Code)
		}
	})

	t.Run("admin creates", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/products", `{"name":"Rose Oud","description":"50ml","price":{"currency":"AED","amount":100}}`, admin)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if catalog.lastCreate.GetName() != "Rose Oud" || catalog.lastCreate.GetPrice().GetAmount() != 100 {
			t.Fatalf("unexpected create request %v", catalog.lastCreate)
		}
	})

	t.Run("create without price -> 400", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/products", `{"name":"Rose Oud"}`, admin)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("admin reprices", func(t *testing.T) {
		w := do(r, http.MethodPut, "/v1/products/p1/price", `{"price":{"currency":"AED","amount":28000}}`, admin)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if catalog.lastUpdate.GetId() != "p1" || catalog.lastUpdate.GetPrice().GetAmount() != 28000 {
			t.Fatalf("unexpected update request %v", catalog.lastUpdate)
		}
	})

	t.Run("foreign currency -> 400", func(t *testing.T) {
		catalog.err = status.Error(codes.InvalidArgument, "price currency differs from store currency")
		defer func() { catalog.err = nil }()

		w := do(r, http.MethodPut, "/v1/products/p1/price", `{"price":{"currency":"USD","amount":100}}`, admin)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("dev role header", func(t *testing.T) {
		dev := newStoreRouter(catalog, &fakeUserClient{}, "")
		req := httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(`{"name":"Oud","price":{"currency":"AED","amount":1}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(devUserHeader, "staff1")
		req.Header.Set(devRoleHeader, adminRole)
		w := httptest.NewRecorder()
		dev.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestUserRoutes(t *testing.T) {
	users := &fakeUserClient{}
	r := newStoreRouter(&fakeCatalogClient{}, users, testSecret)

	t.Run("register is public", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/users", `{"email":"layla@veloria.ae","name":"Layla"}`, "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var u userv1.User
		if err := protojson.Unmarshal(w.Body.Bytes(), &u); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if u.GetId() != "u1" || users.lastRegister.GetName() != "Layla" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("register without email -> 400", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/users", `{"name":"Layla"}`, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("email taken -> 409", func(t *testing.T) {
		users.err = status.Error(codes.AlreadyExists, "email already registered")
		defer func() { users.err = nil }()

		w := do(r, http.MethodPost, "/v1/users", `{"email":"layla@veloria.ae"}`, "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("me uses token subject", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/users/me", "", signRoleToken(t, "u7", ""))
		if w.Code != http.StatusOK || users.lastGet != "u7" {
			t.Fatalf("expected 200 for u7, got %d (%q)", w.Code, users.lastGet)
		}
	})

	t.Run("me requires a token", func(t *testing.T) {
		w := do(r, http.MethodGet, "/v1/users/me", "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
