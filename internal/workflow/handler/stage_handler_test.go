package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/service"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupStageTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	svc := service.NewChecklistService(repos.Stage, repos.Task, db)
	h := NewStageHandler(svc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	stages := api.Group("/stages")
	stages.GET("", h.Kinds)
	stages.GET("/:kind", h.List)
	stages.POST("/:kind", h.Create)
	stages.GET("/:kind/:id", h.Get)
	stages.PUT("/:kind/:id", h.Update)
	stages.DELETE("/:kind/:id", h.Delete)

	return router, db
}

func createKickOff(t *testing.T, router *gin.Engine, token string, fields map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/stages/kick_off",
		map[string]interface{}{"fields": fields}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func checksByName(t *testing.T, stage map[string]interface{}) map[string]map[string]interface{} {
	t.Helper()
	raw, ok := stage["checks"].([]interface{})
	if !ok {
		t.Fatalf("Expected checks array, got %T", stage["checks"])
	}
	out := make(map[string]map[string]interface{}, len(raw))
	for _, c := range raw {
		check := c.(map[string]interface{})
		out[check["name"].(string)] = check
	}
	return out
}

func TestStageCreateWithSideRecords(t *testing.T) {
	router, _ := setupStageTest(t)
	token := testutil.DefaultTestToken()

	stage := createKickOff(t, router, token, map[string]interface{}{
		"time_schedule_approved": map[string]interface{}{
			"value": true,
			"task": map[string]interface{}{
				"check":    true,
				"role":     "project_manager",
				"comments": "Approved in kickoff meeting",
			},
		},
		"capacity_planning": map[string]interface{}{"value": false},
	})

	if stage["kind"] != "kick_off" {
		t.Errorf("Expected kind 'kick_off', got %v", stage["kind"])
	}

	checks := checksByName(t, stage)
	def, _ := entity.DefinitionFor(entity.KindKickOff)
	if len(checks) != len(def.Fields) {
		t.Errorf("Expected %d checks, got %d", len(def.Fields), len(checks))
	}

	approved := checks["time_schedule_approved"]
	if approved["value"] != true {
		t.Errorf("Expected value true, got %v", approved["value"])
	}
	task, ok := approved["task"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected task side record, got %T", approved["task"])
	}
	if task["role"] != "project_manager" {
		t.Errorf("Expected role 'project_manager', got %v", task["role"])
	}

	// Fields without a payload still get a check row, no side record.
	planning := checks["modifications_planning"]
	if planning == nil {
		t.Fatal("Expected check row for modifications_planning")
	}
	if planning["value"] != false {
		t.Errorf("Expected value false, got %v", planning["value"])
	}
	if planning["task"] != nil {
		t.Errorf("Expected no side record, got %v", planning["task"])
	}
}

func TestStageUpdateResetsOmittedFields(t *testing.T) {
	router, _ := setupStageTest(t)
	token := testutil.DefaultTestToken()

	stage := createKickOff(t, router, token, map[string]interface{}{
		"time_schedule_approved": map[string]interface{}{"value": true},
		"capacity_planning":      map[string]interface{}{"value": true},
	})
	stageID := stage["id"].(string)

	// Update carrying only one field: the other resets to false.
	w := testutil.DoRequest(router, "PUT", "/api/v1/stages/kick_off/"+stageID,
		map[string]interface{}{"fields": map[string]interface{}{
			"capacity_planning": map[string]interface{}{"value": true},
		}}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	checks := checksByName(t, resp["data"].(map[string]interface{}))
	if checks["capacity_planning"]["value"] != true {
		t.Errorf("Expected capacity_planning true, got %v", checks["capacity_planning"]["value"])
	}
	if checks["time_schedule_approved"]["value"] != false {
		t.Errorf("Expected time_schedule_approved reset to false, got %v",
			checks["time_schedule_approved"]["value"])
	}
}

func TestStageUpdateRejectsUnknownField(t *testing.T) {
	router, _ := setupStageTest(t)
	token := testutil.DefaultTestToken()

	stage := createKickOff(t, router, token, nil)
	stageID := stage["id"].(string)

	w := testutil.DoRequest(router, "PUT", "/api/v1/stages/kick_off/"+stageID,
		map[string]interface{}{"fields": map[string]interface{}{
			"not_a_field": map[string]interface{}{"value": true},
		}}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown field, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStageDeleteCascades(t *testing.T) {
	router, db := setupStageTest(t)
	token := testutil.DefaultTestToken()

	stage := createKickOff(t, router, token, map[string]interface{}{
		"time_schedule_approved": map[string]interface{}{
			"value": true,
			"task":  map[string]interface{}{"check": true, "role": "quality"},
		},
	})
	stageID := stage["id"].(string)

	w := testutil.DoRequest(router, "DELETE", "/api/v1/stages/kick_off/"+stageID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var checkCount, taskCount int64
	db.Model(&entity.StageCheck{}).Where("stage_id = ?", stageID).Count(&checkCount)
	db.Model(&entity.Task{}).Count(&taskCount)
	if checkCount != 0 {
		t.Errorf("Expected 0 check rows after delete, got %d", checkCount)
	}
	if taskCount != 0 {
		t.Errorf("Expected 0 task rows after delete, got %d", taskCount)
	}

	w2 := testutil.DoRequest(router, "GET", "/api/v1/stages/kick_off/"+stageID, nil, token)
	if w2.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w2.Code)
	}
}

func TestStageValidationKind(t *testing.T) {
	router, _ := setupStageTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/stages/maintenance",
		map[string]interface{}{"fields": map[string]interface{}{
			"preventive_maintenance_plan": map[string]interface{}{
				"value": true,
				"validation": map[string]interface{}{
					"tko":    true,
					"ok_nok": "OK",
					"who":    "LIC-001",
				},
			},
		}}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	checks := checksByName(t, resp["data"].(map[string]interface{}))
	validation, ok := checks["preventive_maintenance_plan"]["validation"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected validation side record")
	}
	if validation["ok_nok"] != "OK" {
		t.Errorf("Expected ok_nok 'OK', got %v", validation["ok_nok"])
	}
	if validation["tko"] != true {
		t.Errorf("Expected tko true, got %v", validation["tko"])
	}
}

func TestStageUnknownKind(t *testing.T) {
	router, _ := setupStageTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/stages/nonexistent",
		map[string]interface{}{"fields": map[string]interface{}{}}, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown kind, got %d", w.Code)
	}
}

func TestStageKindsListing(t *testing.T) {
	router, _ := setupStageTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/stages", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != len(entity.StageDefinitions) {
		t.Errorf("Expected %d kinds, got %d", len(entity.StageDefinitions), len(items))
	}

	// The readiness disciplines answer on the same routes, so they must
	// be listed too.
	listed := make(map[string]bool, len(items))
	for _, item := range items {
		listed[item.(map[string]interface{})["kind"].(string)] = true
	}
	for _, kind := range entity.ReadinessKinds {
		if !listed[kind] {
			t.Errorf("Expected kind %q in listing", kind)
		}
	}
}

func TestStageListErrorKeepsDetailOutOfResponse(t *testing.T) {
	router, db := setupStageTest(t)
	token := testutil.DefaultTestToken()

	// Force a storage failure so the 500 path runs.
	if err := db.Exec("DROP TABLE stages CASCADE").Error; err != nil {
		t.Fatalf("drop table: %v", err)
	}

	w := testutil.DoRequest(router, "GET", "/api/v1/stages/kick_off", nil, token)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["message"] != "Failed to list stages" {
		t.Errorf("Expected generic message, got %q", resp["message"])
	}
	if strings.Contains(w.Body.String(), "stages") && strings.Contains(w.Body.String(), "exist") {
		t.Errorf("Expected no database detail in response, got %s", w.Body.String())
	}
}
