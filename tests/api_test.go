package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

// Black-box test against a running server with a reachable MongoDB.
// Skipped when nothing listens on the API base URL.

const defaultAPIBase = "http://localhost:8080"

func apiBase() string {
	if v := os.Getenv("API_BASE"); v != "" {
		return v
	}
	return defaultAPIBase
}

func adminCredentials() (string, string) {
	user := os.Getenv("ADMIN_USER")
	if user == "" {
		user = "admin"
	}
	pass := os.Getenv("ADMIN_PASS")
	if pass == "" {
		pass = "admin123"
	}
	return user, pass
}

func doJSON(t *testing.T, method, path, token string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, apiBase()+path, body)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestCatalogAPI(t *testing.T) {
	client := http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(apiBase() + "/")
	if err != nil {
		t.Skipf("API server not running at %s: %v", apiBase(), err)
	}
	resp.Body.Close()

	var token string
	t.Run("Login", func(t *testing.T) {
		user, pass := adminCredentials()
		resp, body := doJSON(t, "POST", "/api/auth/login", "", map[string]string{
			"username": user,
			"password": pass,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Login failed with status %d", resp.StatusCode)
		}
		token, _ = body["token"].(string)
		if token == "" {
			t.Fatal("Login response contained no token")
		}
	})

	t.Run("Login with wrong password", func(t *testing.T) {
		user, _ := adminCredentials()
		resp, body := doJSON(t, "POST", "/api/auth/login", "", map[string]string{
			"username": user,
			"password": "definitely-wrong",
		})
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", resp.StatusCode)
		}
		if _, ok := body["token"]; ok {
			t.Fatal("No token must be issued on failed login")
		}
	})

	t.Run("Mutation without token", func(t *testing.T) {
		resp, _ := doJSON(t, "POST", "/api/categories", "", map[string]string{
			"name": "Nope", "slug": "nope",
		})
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", resp.StatusCode)
		}
	})

	slug := fmt.Sprintf("elektronik-%d", time.Now().UnixNano())
	var categoryID string
	t.Run("Create category", func(t *testing.T) {
		resp, body := doJSON(t, "POST", "/api/categories", token, map[string]string{
			"name": "Elektronik", "slug": slug,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Create category failed with status %d: %v", resp.StatusCode, body)
		}
		categoryID, _ = body["id"].(string)
		if categoryID == "" {
			t.Fatal("Created category has no id field")
		}
		if _, ok := body["_id"]; ok {
			t.Fatal("Internal _id field leaked into the response")
		}
	})

	t.Run("Duplicate slug rejected", func(t *testing.T) {
		resp, _ := doJSON(t, "POST", "/api/categories", token, map[string]string{
			"name": "Elektronik Lagi", "slug": slug,
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("Expected 400 for duplicate slug, got %d", resp.StatusCode)
		}
	})

	var productIDs []string
	t.Run("Create products", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			resp, body := doJSON(t, "POST", "/api/products", token, map[string]any{
				"name":     fmt.Sprintf("Test TV %s %d", slug, i),
				"price":    float64(100 * i),
				"category": slug,
			})
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("Create product failed with status %d: %v", resp.StatusCode, body)
			}
			id, _ := body["id"].(string)
			if id == "" {
				t.Fatal("Created product has no id field")
			}
			if inStock, ok := body["in_stock"].(bool); !ok || !inStock {
				t.Fatal("in_stock must default to true")
			}
			productIDs = append(productIDs, id)
		}
	})

	t.Run("Negative price rejected", func(t *testing.T) {
		resp, _ := doJSON(t, "POST", "/api/products", token, map[string]any{
			"name": "Broken", "price": -5, "category": slug,
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("Expected 400 for negative price, got %d", resp.StatusCode)
		}
	})

	t.Run("Listing with pagination", func(t *testing.T) {
		path := fmt.Sprintf("/api/products?category=%s&sort=price_asc&page=2&limit=2", slug)
		resp, body := doJSON(t, "GET", path, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Listing failed with status %d", resp.StatusCode)
		}
		if total, _ := body["total"].(float64); int(total) != 3 {
			t.Fatalf("Expected total=3, got %v", body["total"])
		}
		items, _ := body["items"].([]any)
		if len(items) != 1 {
			t.Fatalf("Expected 1 item on page 2 of 2, got %d", len(items))
		}
		last, _ := items[0].(map[string]any)
		if price, _ := last["price"].(float64); price != 300 {
			t.Fatalf("price_asc page 2 should hold the most expensive product, got price %v", last["price"])
		}
	})

	t.Run("Malformed id", func(t *testing.T) {
		resp, _ := doJSON(t, "GET", "/api/products/not-a-valid-id", "", nil)
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("Expected 422 for malformed id, got %d", resp.StatusCode)
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		resp, _ := doJSON(t, "GET", "/api/products/ffffffffffffffffffffffff", "", nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("Expected 404 for unknown id, got %d", resp.StatusCode)
		}
	})

	t.Run("Contact form", func(t *testing.T) {
		resp, body := doJSON(t, "POST", "/api/contact", "", map[string]string{
			"name": "Budi", "email": "budi@example.com", "message": "Halo",
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Contact submission failed with status %d", resp.StatusCode)
		}
		if status, _ := body["status"].(string); status != "received" {
			t.Fatalf("Expected status received, got %v", body["status"])
		}
	})

	t.Run("Admin summary", func(t *testing.T) {
		resp, body := doJSON(t, "GET", "/api/admin/summary", token, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Summary failed with status %d", resp.StatusCode)
		}
		if _, ok := body["products"]; !ok {
			t.Fatal("Summary missing products count")
		}
		if _, ok := body["categories"]; !ok {
			t.Fatal("Summary missing categories count")
		}
	})

	t.Run("Cleanup", func(t *testing.T) {
		for _, id := range productIDs {
			resp, _ := doJSON(t, "DELETE", "/api/products/"+id, token, nil)
			if resp.StatusCode != http.StatusOK {
				t.Errorf("Failed to delete product %s: status %d", id, resp.StatusCode)
			}
		}
		if categoryID != "" {
			resp, _ := doJSON(t, "DELETE", "/api/categories/"+categoryID, token, nil)
			if resp.StatusCode != http.StatusOK {
				t.Errorf("Failed to delete category %s: status %d", categoryID, resp.StatusCode)
			}
		}
	})
}
