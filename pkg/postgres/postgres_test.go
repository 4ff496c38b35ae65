package postgres

import "testing"

func TestDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 5433, User: "shop", Pass: "secret", DB: "carts"}
	want := "postgres://shop:secret@db:5433/carts?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
