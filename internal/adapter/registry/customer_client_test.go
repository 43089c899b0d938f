package registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corebank/accounts-service/internal/domain"
)

func TestValidateExistingCustomer(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("true"))
	}))
	defer server.Close()

	client := NewCustomerRegistryClient(server.URL, server.Client())

	if err := client.Validate(context.Background(), "42"); err != nil {
		t.Fatalf("expected existing customer to validate, got %v", err)
	}
	if requestedPath != "/customers/42/exists" {
		t.Fatalf("unexpected registry path %s", requestedPath)
	}
}

func TestValidateCollapsesFailuresIntoCustomerNotFound(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "explicit false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("false"))
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not found status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("{not json"))
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := NewCustomerRegistryClient(server.URL, server.Client())

			err := client.Validate(context.Background(), "42")
			if !errors.Is(err, domain.ErrCustomerNotFound) {
				t.Fatalf("expected ErrCustomerNotFound, got %v", err)
			}
		})
	}
}

func TestValidateTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewCustomerRegistryClient(server.URL, nil)

	err := client.Validate(context.Background(), "42")
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound on unreachable registry, got %v", err)
	}
}

func TestValidateTrimsBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/customers/7/exists" {
			t.Errorf("unexpected registry path %s", r.URL.Path)
		}
		w.Write([]byte("true"))
	}))
	defer server.Close()

	client := NewCustomerRegistryClient(server.URL+"/", server.Client())

	if err := client.Validate(context.Background(), "7"); err != nil {
		t.Fatalf("expected validation to succeed, got %v", err)
	}
}
