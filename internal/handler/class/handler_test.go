package class

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogahom/studio-api/internal/model"
	classService "github.com/yogahom/studio-api/internal/service/class"
	"github.com/yogahom/studio-api/internal/service/schedule"
	"github.com/yogahom/studio-api/pkg/metrics"
)

var testMetrics = metrics.NewMetrics("class_handler_test")

type fakeClassRepo struct {
	classes []*model.Class
}

func (f *fakeClassRepo) Create(ctx context.Context, c *model.Class) error {
	f.classes = append(f.classes, c)
	return nil
}
func (f *fakeClassRepo) Get(ctx context.Context, id string) (*model.Class, error) {
	for _, c := range f.classes {
		if c.ClassID == id {
			return c, nil
		}
	}
	return nil, sql.ErrNoRows
}
func (f *fakeClassRepo) Delete(ctx context.Context, id string) error {
	for i, c := range f.classes {
		if c.ClassID == id {
			f.classes = append(f.classes[:i], f.classes[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}
func (f *fakeClassRepo) List(ctx context.Context) ([]*model.Class, error) { return f.classes, nil }
func (f *fakeClassRepo) ListByInstructor(ctx context.Context, instructorID string) ([]*model.Class, error) {
	return nil, nil
}
func (f *fakeClassRepo) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for _, c := range f.classes {
		ids = append(ids, c.ClassID)
	}
	return ids, nil
}
func (f *fakeClassRepo) Count(ctx context.Context) (int, error) { return len(f.classes), nil }

func newTestRouter(repo *fakeClassRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := classService.NewService(repo, schedule.NewChecker(repo))
	h := NewHandler(svc, testMetrics)

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api"))
	return engine
}

func seededRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: []*model.Class{
		{
			ClassID:      "A001",
			ClassName:    "Morning Flow",
			InstructorID: "I00001",
			ClassType:    model.ClassTypeGeneral,
			Daytime:      model.ScheduleList{{Day: "Monday", Time: "09:00", Duration: 60}},
			PayRate:      45,
		},
	}}
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAddClass(t *testing.T) {
	repo := seededRepo()
	engine := newTestRouter(repo)

	w := postJSON(t, engine, "/api/class/add", model.CreateClassRequest{
		ClassName:    "Evening Stretch",
		InstructorID: "I00001",
		ClassType:    model.ClassTypeGeneral,
		Daytime:      []model.ScheduleSlot{{Day: "Tuesday", Time: "18:00", Duration: 60}},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string      `json:"message"`
		Class   model.Class `json:"class"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Class added successfully. New class id is A002.", resp.Message)
	assert.Equal(t, "A002", resp.Class.ClassID)
	assert.Equal(t, float64(45), resp.Class.PayRate)
}

func TestAddClassConflict(t *testing.T) {
	engine := newTestRouter(seededRepo())

	w := postJSON(t, engine, "/api/class/add", model.CreateClassRequest{
		ClassName:    "Overlapping",
		InstructorID: "I00002",
		ClassType:    model.ClassTypeGeneral,
		Daytime:      []model.ScheduleSlot{{Day: "Monday", Time: "09:30", Duration: 60}},
	})

	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Message  string               `json:"message"`
		Conflict model.ConflictResult `json:"conflict"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Schedule conflict detected", resp.Message)
	assert.True(t, resp.Conflict.HasConflict)
	assert.Equal(t, "Morning Flow", resp.Conflict.ConflictClass)
}

func TestAddClassMissingFields(t *testing.T) {
	engine := newTestRouter(seededRepo())

	w := postJSON(t, engine, "/api/class/add", gin.H{"className": "No Schedule"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestCheckConflictEndpoint(t *testing.T) {
	engine := newTestRouter(seededRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/class/checkConflict?day=Monday&time=09:30&duration=30", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result model.ConflictResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.HasConflict)

	req = httptest.NewRequest(http.MethodGet, "/api/class/checkConflict?day=Sunday&time=09:30", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.HasConflict)
}

func TestCheckConflictRequiresDayAndTime(t *testing.T) {
	engine := newTestRouter(seededRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/class/checkConflict?day=Monday", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Day and time are required")
}

func TestGetNextID(t *testing.T) {
	engine := newTestRouter(seededRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/class/getNextId", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"nextId":"A002"}`, w.Body.String())
}

func TestDeleteClass(t *testing.T) {
	engine := newTestRouter(seededRepo())

	req := httptest.NewRequest(http.MethodDelete, "/api/class/deleteClass?classId=A001", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Class deleted")

	req = httptest.NewRequest(http.MethodDelete, "/api/class/deleteClass?classId=A001", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
