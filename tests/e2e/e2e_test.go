package e2e_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/cintasign/hse-portal/tests/helpers"
)

// TestE2EWithFullStack exercises the HTTP surface against the full container
// stack (MariaDB + Authorizer + portal image).
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	ctx := context.Background()

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	portalHost, _ := tc.PortalContainer.Host(ctx)
	portalPort, _ := tc.PortalContainer.MappedPort(ctx, "3000")
	baseURL := fmt.Sprintf("http://%s:%s", portalHost, portalPort.Port())

	authzHost, _ := tc.AuthorizerContainer.Host(ctx)
	authzPort, _ := tc.AuthorizerContainer.MappedPort(ctx, "8080")
	authzURL := fmt.Sprintf("http://%s:%s", authzHost, authzPort.Port())

	// Wait a bit for everything to stabilize
	time.Sleep(5 * time.Second)

	t.Run("NextDocumentBaseline", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/next-document?formType=cintasign-loading")
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		helpers.AssertStatus(t, resp, 200)

		var body map[string]interface{}
		helpers.ParseJSON(t, resp, &body)
		if body["nextNumber"] != float64(100) {
			t.Errorf("Expected nextNumber 100, got %v", body["nextNumber"])
		}
	})

	t.Run("NextDocumentMissingFormType", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/next-document")
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		helpers.AssertStatus(t, resp, 400)
		helpers.AssertErrorBody(t, resp)
	})

	t.Run("UnauthenticatedList", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/submissions")
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		helpers.AssertStatus(t, resp, 401)
		helpers.AssertErrorBody(t, resp)
	})

	t.Run("UnauthenticatedDelete", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodDelete, baseURL+"/submissions/00000000-0000-0000-0000-000000000000", nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		helpers.AssertStatus(t, resp, 401)
	})

	t.Run("SubmitAndLogout", func(t *testing.T) {
		email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())
		token := helpers.AcquireAccount(t, authzURL, email, helpers.GeneratePassword(), []string{"user"})

		payload := []byte(`{"formType":"skidder","formTitle":"Skidder Inspection","submittedBy":"J. Doe","hasDefects":true}`)
		req, _ := http.NewRequest(http.MethodPost, baseURL+"/submissions", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: "cookie_session", Value: token})
		req.AddCookie(&http.Cookie{Name: "brand", Value: "cintasign"})

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		helpers.AssertStatus(t, resp, 201)

		var body map[string]interface{}
		helpers.ParseJSON(t, resp, &body)
		if body["success"] != true {
			t.Errorf("Expected success=true, got %v", body)
		}
		if id, ok := body["id"].(string); !ok || id == "" {
			t.Errorf("Expected generated id, got %v", body["id"])
		}

		req, _ = http.NewRequest(http.MethodPost, baseURL+"/logout", nil)
		req.AddCookie(&http.Cookie{Name: "cookie_session", Value: token})
		resp, err = http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Logout failed: %v", err)
		}
		helpers.AssertStatus(t, resp, 200)
	})
}
