package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Rjayskie12/hazards-sub000/internal/api/handlers/http/admin"
	mock_admin "github.com/Rjayskie12/hazards-sub000/internal/api/handlers/http/admin/mocks"
	"github.com/Rjayskie12/hazards-sub000/internal/domain"
	"github.com/Rjayskie12/hazards-sub000/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newHandler(ctrl *gomock.Controller) (*admin.Handler, *mock_admin.MockEngineerAdmin, *mock_admin.MockCoverageLister, *mock_admin.MockStatsGetter) {
	engineers := mock_admin.NewMockEngineerAdmin(ctrl)
	coverage := mock_admin.NewMockCoverageLister(ctrl)
	stats := mock_admin.NewMockStatsGetter(ctrl)
	return admin.NewHandler(newTestLogger(), engineers, coverage, stats), engineers, coverage, stats
}

func TestEngineerCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, engineers, _, _ := newHandler(ctrl)

	reqBody := `{"full_name":"A. Cruz","email":"cruz@example.com","lat":14.5995,"lng":120.9842,"coverage_radius_meters":12000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/engineers", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantID := uuid.New()
	radius := 12000
	lat, lng := 14.5995, 120.9842
	engineers.EXPECT().
		Create(gomock.Any(), domain.CreateEngineerRequest{
			FullName:             "A. Cruz",
			Email:                "cruz@example.com",
			Lat:                  &lat,
			Lng:                  &lng,
			CoverageRadiusMeters: &radius,
		}).
		Return(wantID, nil).
		Times(1)

	h.EngineerCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]string](t, rr)
	if got["id"] != wantID.String() {
		t.Fatalf("expected id=%s got=%s", wantID.String(), got["id"])
	}
}

func TestEngineerCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/engineers", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.EngineerCreate(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestEngineerCreate_ValidationFailures_400(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"missing_full_name", `{"email":"cruz@example.com"}`},
		{"bad_email", `{"full_name":"A. Cruz","email":"not-an-email"}`},
		{"lat_out_of_range", `{"full_name":"A. Cruz","email":"cruz@example.com","lat":91,"lng":0}`},
		{"radius_below_floor", `{"full_name":"A. Cruz","email":"cruz@example.com","coverage_radius_meters":999}`},
		{"radius_above_ceiling", `{"full_name":"A. Cruz","email":"cruz@example.com","coverage_radius_meters":50001}`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			h, _, _, _ := newHandler(ctrl)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/engineers", bytes.NewBufferString(c.body))
			rr := httptest.NewRecorder()

			h.EngineerCreate(rr, req)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestEngineerGet_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, engineers, _, _ := newHandler(ctrl)

	id := uuid.New()
	want := &domain.Engineer{ID: id, FullName: "A. Cruz", Status: domain.EngineerActive}
	engineers.EXPECT().Get(gomock.Any(), id).Return(want, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/engineers/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.EngineerGet(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[domain.Engineer](t, rr)
	if got.ID != id {
		t.Fatalf("expected id=%s got=%s", id, got.ID)
	}
}

func TestEngineerGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, engineers, _, _ := newHandler(ctrl)

	id := uuid.New()
	engineers.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/x", nil), "id", id.String())
	rr := httptest.NewRecorder()

	h.EngineerGet(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestEngineerGet_BadID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _, _, _ := newHandler(ctrl)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/x", nil), "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.EngineerGet(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestEngineerUpdate_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, engineers, _, _ := newHandler(ctrl)

	id := uuid.New()
	engineers.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req domain.UpdateEngineerRequest) error {
			if req.Status == nil || *req.Status != domain.EngineerInactive {
				t.Fatalf("status not carried through: %+v", req)
			}
			return nil
		}).
		Times(1)

	body := bytes.NewBufferString(`{"status":"inactive"}`)
	req := addChiURLParam(httptest.NewRequest(http.MethodPatch, "/x", body), "id", id.String())
	rr := httptest.NewRecorder()

	h.EngineerUpdate(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestEngineerDelete_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, engineers, _, _ := newHandler(ctrl)

	id := uuid.New()
	engineers.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodDelete, "/x", nil), "id", id.String())
	rr := httptest.NewRecorder()

	h.EngineerDelete(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d", http.StatusNoContent, rr.Code)
	}
}

func TestEngineerList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, engineers, _, _ := newHandler(ctrl)

	engineers.EXPECT().List(gomock.Any()).Return([]domain.Engineer{
		{ID: uuid.New()}, {ID: uuid.New()},
	}, nil).Times(1)

	rr := httptest.NewRecorder()
	h.EngineerList(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[map[string]json.RawMessage](t, rr)
	var total int
	if err := json.Unmarshal(got["total"], &total); err != nil || total != 2 {
		t.Fatalf("expected total=2, body=%s", rr.Body.String())
	}
}

func TestAdminCoverage_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _, coverage, _ := newHandler(ctrl)

	coverage.EXPECT().CoverageMap(gomock.Any()).Return([]domain.ReportCoverage{
		{CoverageStatus: domain.Covered},
		{CoverageStatus: domain.Uncovered},
	}, nil).Times(1)

	rr := httptest.NewRecorder()
	h.AdminCoverage(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestAdminStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _, _, stats := newHandler(ctrl)

	stats.EXPECT().Dashboard(gomock.Any()).Return(&domain.CoverageStats{TotalReports: 7}, nil).Times(1)

	rr := httptest.NewRecorder()
	h.AdminStats(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[domain.CoverageStats](t, rr)
	if got.TotalReports != 7 {
		t.Fatalf("expected total_reports=7 got=%d", got.TotalReports)
	}
}

func TestAdminStats_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _, _, stats := newHandler(ctrl)

	stats.EXPECT().Dashboard(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	rr := httptest.NewRecorder()
	h.AdminStats(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d", http.StatusInternalServerError, rr.Code)
	}
}
