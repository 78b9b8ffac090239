package postgres

import "testing"

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  ClientConfig
		want string
	}{
		{
			"explicit dsn wins",
			ClientConfig{DSN: "postgres://u:p@host:5432/db", Host: "ignored"},
			"postgres://u:p@host:5432/db",
		},
		{
			"built from parts",
			ClientConfig{Host: "localhost", Port: 5433, Database: "markets", User: "scope", Password: "pw", SSLMode: "require"},
			"postgres://scope:pw@localhost:5433/markets?sslmode=require",
		},
		{
			"defaults port and sslmode",
			ClientConfig{Host: "localhost", Database: "markets", User: "scope", Password: "pw"},
			"postgres://scope:pw@localhost:5432/markets?sslmode=disable",
		},
	}
	for _, tt := range tests {
		if got := DSN(tt.cfg); got != tt.want {
			t.Fatalf("%s: DSN = %q, want %q", tt.name, got, tt.want)
		}
	}
}
