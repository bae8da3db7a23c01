package handler

import (
	"net/http"
	"testing"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/service"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/testutil"
	"github.com/gin-gonic/gin"
)

func setupCheckinTest(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	h := NewCheckinHandler(service.NewCheckinService(repos.Checkin))

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	checkins := api.Group("/checkins")
	checkins.GET("", h.List)
	checkins.POST("", h.Create)
	checkins.GET("/:id", h.Get)
	checkins.PUT("/:id", h.Update)
	checkins.DELETE("/:id", h.Delete)

	return router
}

func TestCheckinCreateAndSignOff(t *testing.T) {
	router := setupCheckinTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/checkins",
		map[string]interface{}{"roles": map[string]interface{}{
			"project_manager": map[string]interface{}{
				"value":   true,
				"name":    "A. Martin",
				"comment": "Approved",
			},
		}}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	pm := data["project_manager"].(map[string]interface{})
	if pm["value"] != true || pm["name"] != "A. Martin" {
		t.Errorf("Expected project manager sign-off, got %v", pm)
	}
	quality := data["quality_leader"].(map[string]interface{})
	if quality["value"] != false {
		t.Errorf("Expected empty quality slot, got %v", quality)
	}
}

func TestCheckinUpdateResetsOmittedRoles(t *testing.T) {
	router := setupCheckinTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/checkins",
		map[string]interface{}{"roles": map[string]interface{}{
			"project_manager": map[string]interface{}{"value": true, "name": "A. Martin"},
			"sales":           map[string]interface{}{"value": true, "name": "B. Ruiz"},
		}}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	id := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	w2 := testutil.DoRequest(router, "PUT", "/api/v1/checkins/"+id,
		map[string]interface{}{"roles": map[string]interface{}{
			"sales": map[string]interface{}{"value": true, "name": "B. Ruiz"},
		}}, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w2.Code, w2.Body.String())
	}

	data := testutil.ParseResponse(w2)["data"].(map[string]interface{})
	pm := data["project_manager"].(map[string]interface{})
	if pm["value"] != false || pm["name"] != "" {
		t.Errorf("Expected project manager slot reset, got %v", pm)
	}
	sales := data["sales"].(map[string]interface{})
	if sales["value"] != true {
		t.Errorf("Expected sales slot kept, got %v", sales)
	}
}

func TestCheckinRejectsUnknownRole(t *testing.T) {
	router := setupCheckinTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/checkins",
		map[string]interface{}{"roles": map[string]interface{}{
			"intern": map[string]interface{}{"value": true},
		}}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown role, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCheckinRequiresAuth(t *testing.T) {
	router := setupCheckinTest(t)

	w := testutil.DoRequest(router, "GET", "/api/v1/checkins", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}
}
