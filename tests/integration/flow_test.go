//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseURL = "http://localhost:8080/api"
)

// TestMaintenanceRequestFlow walks the whole lifecycle against a running
// server: login, set up a building and apartment, file a request, approve it
// from both slots, append an action, and close it out.
//
// It assumes docker-compose is up and a manager account is seeded (override
// with TEST_MANAGER_EMAIL / TEST_MANAGER_PASSWORD).
func TestMaintenanceRequestFlow(t *testing.T) {
	client := &http.Client{}
	var token string
	var buildingID, apartmentID, requestID string

	doJSON := func(t *testing.T, method, path string, payload interface{}) (*http.Response, map[string]interface{}) {
		t.Helper()
		var body *bytes.Buffer = bytes.NewBuffer(nil)
		if payload != nil {
			raw, err := json.Marshal(payload)
			require.NoError(t, err)
			body = bytes.NewBuffer(raw)
		}

		req, err := http.NewRequest(method, baseURL+path, body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := client.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })

		var result map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&result)
		return resp, result
	}

	email := os.Getenv("TEST_MANAGER_EMAIL")
	if email == "" {
		email = "manager@example.com"
	}
	password := os.Getenv("TEST_MANAGER_PASSWORD")
	if password == "" {
		password = "password123"
	}

	t.Run("Login", func(t *testing.T) {
		resp, result := doJSON(t, http.MethodPost, "/auth/login", map[string]string{
			"email":    email,
			"password": password,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := result["data"].(map[string]interface{})
		tokens := data["tokens"].(map[string]interface{})
		token = tokens["accessToken"].(string)
		require.NotEmpty(t, token)
	})

	t.Run("UnauthenticatedRejected", func(t *testing.T) {
		saved := token
		token = ""
		resp, _ := doJSON(t, http.MethodGet, "/maintenance-requests", nil)
		token = saved

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("CreateBuilding", func(t *testing.T) {
		resp, result := doJSON(t, http.MethodPost, "/buildings", map[string]interface{}{
			"name": "North Tower",
			"code": "NT-01",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		buildingID = result["data"].(map[string]interface{})["id"].(string)
	})

	t.Run("CreateApartment", func(t *testing.T) {
		resp, result := doJSON(t, http.MethodPost, "/apartments", map[string]interface{}{
			"number":     "A-12",
			"code":       "APT-012",
			"type":       "residential",
			"buildingId": buildingID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		apartmentID = result["data"].(map[string]interface{})["id"].(string)
	})

	t.Run("CreateMaintenanceRequest", func(t *testing.T) {
		resp, result := doJSON(t, http.MethodPost, "/maintenance-requests", map[string]interface{}{
			"apartment":       apartmentID,
			"maintenanceType": "plumbing",
			"notes":           "leak under the sink",
			"costItems": []map[string]interface{}{
				{"classificationType": "labor", "cost": 200, "quantity": 2},
				{"classificationType": "materials", "cost": 80, "quantity": 5},
			},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		data := result["data"].(map[string]interface{})
		requestID = data["id"].(string)
		assert.Equal(t, "pending", data["status"])
		assert.Equal(t, float64(800), data["totalCost"])
	})

	t.Run("RejectedCostItem", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, "/maintenance-requests", map[string]interface{}{
			"apartment":       apartmentID,
			"maintenanceType": "plumbing",
			"costItems": []map[string]interface{}{
				{"classificationType": "labor", "cost": 0, "quantity": 2},
			},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ManagerApproval", func(t *testing.T) {
		resp, result := doJSON(t, http.MethodPut, fmt.Sprintf("/maintenance-requests/%s/approval", requestID), map[string]interface{}{
			"type":       "manager",
			"isApproved": true,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := result["data"].(map[string]interface{})
		approval := data["managerApproval"].(map[string]interface{})
		assert.Equal(t, true, approval["isApproved"])

		actions := data["actions"].([]interface{})
		assert.Len(t, actions, 1)
	})

	t.Run("SecondManagerApprovalConflicts", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, fmt.Sprintf("/maintenance-requests/%s/approval", requestID), map[string]interface{}{
			"type":       "manager",
			"isApproved": true,
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("StatusUpdateLeavesActionLogAlone", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, fmt.Sprintf("/maintenance-requests/%s/status", requestID), map[string]interface{}{
			"status": "approved",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, result := doJSON(t, http.MethodGet, "/maintenance-requests/"+requestID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := result["data"].(map[string]interface{})
		assert.Equal(t, "approved", data["status"])
		actions := data["actions"].([]interface{})
		assert.Len(t, actions, 1, "a status move must not append to the action log")
	})

	t.Run("AppendAction", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, fmt.Sprintf("/maintenance-requests/%s/actions", requestID), map[string]interface{}{
			"description": "Contractor visited the site",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("CompleteRequest", func(t *testing.T) {
		resp, result := doJSON(t, http.MethodPut, fmt.Sprintf("/maintenance-requests/%s/status", requestID), map[string]interface{}{
			"status": "completed",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := result["data"].(map[string]interface{})
		assert.Equal(t, "completed", data["status"])
	})

	t.Run("ListRequests", func(t *testing.T) {
		resp, result := doJSON(t, http.MethodGet, "/maintenance-requests?status=completed", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := result["data"].(map[string]interface{})
		items := data["data"].([]interface{})
		require.NotEmpty(t, items)
	})

	t.Run("DashboardStats", func(t *testing.T) {
		resp, result := doJSON(t, http.MethodGet, "/dashboard/stats", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := result["data"].(map[string]interface{})
		assert.GreaterOrEqual(t, data["totalRequests"].(float64), float64(1))
	})
}
