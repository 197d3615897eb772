package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rogerio-castellano/catalog-dashboard/internal/models"
	"github.com/rogerio-castellano/catalog-dashboard/internal/store"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *store.MemoryStore) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	st := store.NewMemoryStore()
	return New(ts.URL, st), st
}

func TestBearerToken(t *testing.T) {
	var gotAuth string
	client, st := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Product{})
	})

	if _, err := client.Products(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header without a token, got %q", gotAuth)
	}

	st.Set(store.AuthTokenKey, "stored-token")
	if _, err := client.Products(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer stored-token" {
		t.Errorf("expected bearer credential, got %q", gotAuth)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"server message surfaced", http.StatusUnauthorized, `{"message":"Invalid credentials"}`, "Invalid credentials"},
		{"fallback without payload", http.StatusInternalServerError, "", "Une erreur est survenue"},
		{"fallback on junk payload", http.StatusBadGateway, "<html>bad gateway</html>", "Une erreur est survenue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := client.Login(context.Background(), models.Credentials{Login: "demo", Password: "x"})
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %v", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, apiErr.StatusCode)
			}
			if apiErr.Message != tt.expected {
				t.Errorf("expected message %q, got %q", tt.expected, apiErr.Message)
			}
		})
	}
}

func TestProducts_NormalizesIdentifiers(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[
			{"id": 1, "name": "Pen", "code": "P1", "quantity": 5, "price": 1.5},
			{"_id": "665f1c2e9b1e8b0012345678", "name": "Notebook", "code": "N1", "quantity": 10, "price": 3},
			{"id": "abc", "_id": "ignored", "name": "Pencil", "code": "P2", "quantity": 8, "price": 0.8}
		]`)
	})

	products, err := client.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}

	expectedIDs := []string{"1", "665f1c2e9b1e8b0012345678", "abc"}
	for i, id := range expectedIDs {
		if products[i].ID != id {
			t.Errorf("product %d: expected canonical id %q, got %q", i, id, products[i].ID)
		}
	}
}

func TestUpdateProduct_NeverSendsIdentifiers(t *testing.T) {
	var body map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/products/42" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		io.WriteString(w, `{"id": 42, "name": "Pen", "code": "P1", "quantity": 5, "price": 1.5}`)
	})

	_, err := client.UpdateProduct(context.Background(), "42", models.ProductDraft{Name: "Pen", Code: "P1", Quantity: 5, Price: 1.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := body["id"]; ok {
		t.Error("payload must not contain an id field")
	}
	if _, ok := body["_id"]; ok {
		t.Error("payload must not contain an _id field")
	}
}

func TestLogin_DecodesResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var creds models.Credentials
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Login != "demo@example.com" {
			t.Errorf("unexpected login %q", creds.Login)
		}
		io.WriteString(w, `{"success": true, "token": "tok-1", "user": {"_id": "7", "login": "demo@example.com"}}`)
	})

	resp, err := client.Login(context.Background(), models.Credentials{Login: "demo@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || resp.Token != "tok-1" {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.User.ID != "7" {
		t.Errorf("expected canonical user id 7, got %q", resp.User.ID)
	}
}

func TestCurrentUser_RejectsUnsuccessfulPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success": false}`)
	})

	if _, err := client.CurrentUser(context.Background()); err == nil {
		t.Fatal("expected an error on success=false")
	}
}

func TestDeleteProduct(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/products/9" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.DeleteProduct(context.Background(), "9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUploadProfileImage(t *testing.T) {
	client, st := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("expected multipart content type, got %q", r.Header.Get("Content-Type"))
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("missing image part: %v", err)
		}
		defer file.Close()
		if header.Filename != "avatar.png" {
			t.Errorf("unexpected filename %q", header.Filename)
		}
		io.WriteString(w, `{"message": "Image mise à jour"}`)
	})
	st.Set(store.AuthTokenKey, "tok")

	resp, err := client.UploadProfileImage(context.Background(), "avatar.png", strings.NewReader("fake-image-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != "Image mise à jour" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}
