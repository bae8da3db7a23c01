package handler

import (
	"net/http"
	"testing"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/service"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupFeasibilityTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	svc := service.NewFeasibilityService(repos.Feasibility, db)
	h := NewFeasibilityHandler(svc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	feasibilities := api.Group("/feasibilities")
	feasibilities.GET("", h.List)
	feasibilities.POST("", h.Create)
	feasibilities.GET("/:id", h.Get)
	feasibilities.PUT("/:id", h.Update)
	feasibilities.DELETE("/:id", h.Delete)

	return router, db
}

func createFeasibility(t *testing.T, router *gin.Engine, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/feasibilities", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func TestFeasibilityCreateBulkInsertsDetails(t *testing.T) {
	router, db := setupFeasibilityTest(t)
	token := testutil.DefaultTestToken()

	view := createFeasibility(t, router, token, map[string]interface{}{
		"fields": map[string]bool{"product": true, "packaging": true},
		"details": map[string]interface{}{
			"product": map[string]interface{}{
				"description": "Dashboard clip",
				"cost":        1.25,
				"sales_price": 2.10,
			},
		},
	})

	attrs := view["attributes"].(map[string]interface{})
	if len(attrs) != len(entity.FeasibilityFields) {
		t.Errorf("Expected %d attributes, got %d", len(entity.FeasibilityFields), len(attrs))
	}

	product := attrs["product"].(map[string]interface{})
	if product["value"] != true {
		t.Errorf("Expected product true, got %v", product["value"])
	}
	if product["description"] != "Dashboard clip" {
		t.Errorf("Expected description 'Dashboard clip', got %v", product["description"])
	}
	if product["cost"] != 1.25 {
		t.Errorf("Expected cost 1.25, got %v", product["cost"])
	}

	// Attributes without a payload get a default-described stub row.
	markup := attrs["markup"].(map[string]interface{})
	if markup["value"] != false {
		t.Errorf("Expected markup false, got %v", markup["value"])
	}
	if markup["description"] != "Detail for markup" {
		t.Errorf("Expected default description, got %v", markup["description"])
	}

	var detailCount int64
	db.Model(&entity.FeasibilityDetail{}).
		Where("feasibility_id = ?", view["id"]).Count(&detailCount)
	if int(detailCount) != len(entity.FeasibilityFields) {
		t.Errorf("Expected %d detail rows, got %d", len(entity.FeasibilityFields), detailCount)
	}

	// An owned checkin is created alongside.
	if view["checkin_id"] == nil {
		t.Error("Expected an owned checkin reference")
	}
}

func TestFeasibilityGetReconstructsMissingDetail(t *testing.T) {
	router, db := setupFeasibilityTest(t)
	token := testutil.DefaultTestToken()

	view := createFeasibility(t, router, token, map[string]interface{}{
		"fields": map[string]bool{"carrier": true},
	})
	id := view["id"].(string)

	// Simulate a legacy study missing one detail row.
	db.Where("feasibility_id = ? AND attribute_name = ?", id, "carrier").
		Delete(&entity.FeasibilityDetail{})

	w := testutil.DoRequest(router, "GET", "/api/v1/feasibilities/"+id, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	attrs := resp["data"].(map[string]interface{})["attributes"].(map[string]interface{})
	carrier := attrs["carrier"].(map[string]interface{})
	if carrier["value"] != true {
		t.Errorf("Expected carrier true, got %v", carrier["value"])
	}
	if carrier["description"] != "Detail for carrier" {
		t.Errorf("Expected zero-valued stub, got %v", carrier["description"])
	}
	if carrier["cost"] != 0.0 {
		t.Errorf("Expected stub cost 0, got %v", carrier["cost"])
	}
}

func TestFeasibilityUpdateResetsAbsentBooleans(t *testing.T) {
	router, _ := setupFeasibilityTest(t)
	token := testutil.DefaultTestToken()

	view := createFeasibility(t, router, token, map[string]interface{}{
		"fields": map[string]bool{"product": true, "markup": true},
	})
	id := view["id"].(string)

	w := testutil.DoRequest(router, "PUT", "/api/v1/feasibilities/"+id,
		map[string]interface{}{
			"fields": map[string]bool{"markup": true},
			"details": map[string]interface{}{
				"markup": map[string]interface{}{"cost": 5.0, "comments": "updated"},
			},
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	attrs := resp["data"].(map[string]interface{})["attributes"].(map[string]interface{})
	if attrs["product"].(map[string]interface{})["value"] != false {
		t.Error("Expected product reset to false")
	}
	markup := attrs["markup"].(map[string]interface{})
	if markup["value"] != true {
		t.Error("Expected markup still true")
	}
	if markup["cost"] != 5.0 {
		t.Errorf("Expected updated cost 5, got %v", markup["cost"])
	}
}

func TestFeasibilityRejectsUnknownField(t *testing.T) {
	router, _ := setupFeasibilityTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/feasibilities",
		map[string]interface{}{"fields": map[string]bool{"bogus": true}}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown field, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFeasibilityDeleteCascades(t *testing.T) {
	router, db := setupFeasibilityTest(t)
	token := testutil.DefaultTestToken()

	view := createFeasibility(t, router, token, map[string]interface{}{
		"fields": map[string]bool{"product": true},
	})
	id := view["id"].(string)
	checkinID := view["checkin_id"].(string)

	w := testutil.DoRequest(router, "DELETE", "/api/v1/feasibilities/"+id, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var detailCount, checkinCount int64
	db.Model(&entity.FeasibilityDetail{}).Where("feasibility_id = ?", id).Count(&detailCount)
	db.Model(&entity.Checkin{}).Where("id = ?", checkinID).Count(&checkinCount)
	if detailCount != 0 {
		t.Errorf("Expected 0 detail rows after delete, got %d", detailCount)
	}
	if checkinCount != 0 {
		t.Errorf("Expected owned checkin removed, got %d", checkinCount)
	}

	w2 := testutil.DoRequest(router, "GET", "/api/v1/feasibilities/"+id, nil, token)
	if w2.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w2.Code)
	}
}
