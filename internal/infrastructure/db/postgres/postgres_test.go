package postgres

import (
	"strings"
	"testing"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "pw",
		Database: "blog",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	for _, want := range []string{"host=localhost", "port=5432", "user=postgres", "dbname=blog", "sslmode=disable"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("DSN missing %q: %s", want, dsn)
		}
	}
	if strings.Contains(dsn, "default_query_exec_mode") {
		t.Fatalf("exec mode should not be set by default: %s", dsn)
	}
}

func TestConfig_DSN_SimpleProtocol(t *testing.T) {
	cfg := Config{Host: "localhost", Port: "5432", User: "postgres", Database: "blog", SSLMode: "disable", SimpleProtocol: true}

	if !strings.Contains(cfg.DSN(), "default_query_exec_mode=simple_protocol") {
		t.Fatalf("expected simple protocol mode in DSN: %s", cfg.DSN())
	}
}
