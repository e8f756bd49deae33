package helpers

import (
	"errors"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"schoolhub/internal/pkg/apperrors"
)

var sortable = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
}

func listContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/students?"+query, nil)
	return c
}

func TestParseListParamsDefaults(t *testing.T) {
	params, err := ParseListParams(listContext(t, ""), sortable, "created_at")
	if err != nil {
		t.Fatalf("ParseListParams returned error: %v", err)
	}

	if params.Limit != DefaultLimit || params.Page != DefaultPage {
		t.Errorf("unexpected pagination defaults: %+v", params)
	}
	if params.Sort != SortDesc || params.SortBy != "created_at" {
		t.Errorf("unexpected sort defaults: %+v", params)
	}
}

func TestParseListParamsRejectsBadValues(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"limit zero", "limit=0"},
		{"limit too large", "limit=101"},
		{"limit not a number", "limit=abc"},
		{"page zero", "page=0"},
		{"page negative", "page=-1"},
		{"sort unknown", "sort=sideways"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseListParams(listContext(t, tc.query), sortable, "created_at")
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected validation failure for %q, got %v", tc.query, err)
			}
		})
	}
}

func TestParseListParamsUnknownSortByFallsBack(t *testing.T) {
	params, err := ParseListParams(listContext(t, "sortBy=secretColumn"), sortable, "created_at")
	if err != nil {
		t.Fatalf("ParseListParams returned error: %v", err)
	}
	if params.SortBy != "created_at" {
		t.Errorf("unknown sortBy should fall back to the default, got %q", params.SortBy)
	}
}

func TestParseListParamsMapsSortByToColumn(t *testing.T) {
	params, err := ParseListParams(listContext(t, "sortBy=name&sort=asc&limit=25&page=3"), sortable, "created_at")
	if err != nil {
		t.Fatalf("ParseListParams returned error: %v", err)
	}

	if params.SortBy != "name" || params.Sort != SortAsc {
		t.Errorf("unexpected sort: %+v", params)
	}
	if params.Limit != 25 || params.Page != 3 {
		t.Errorf("unexpected pagination: %+v", params)
	}
	if params.Offset() != 50 {
		t.Errorf("expected offset 50, got %d", params.Offset())
	}
	if params.OrderBy() != "name ASC" {
		t.Errorf("unexpected order by clause: %q", params.OrderBy())
	}
}

func TestParsePopulate(t *testing.T) {
	if got := ParsePopulate(""); got != nil {
		t.Errorf("empty populate should parse to nil, got %v", got)
	}

	got := ParsePopulate("courses, teacher ,,students")
	want := []string{"courses", "teacher", "students"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if !HasTag(got, "teacher") || HasTag(got, "enrollments") {
		t.Errorf("HasTag misbehaved for %v", got)
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(42, 2, 10)
	if info.CurrentPage != 2 || info.PageSize != 10 {
		t.Errorf("unexpected page metadata: %+v", info)
	}
	if info.TotalItems != 42 || info.TotalPages != 5 {
		t.Errorf("expected 42 items over 5 pages, got %+v", info)
	}

	empty := NewPaginationInfo(0, 1, 10)
	if empty.TotalPages != 0 || empty.TotalItems != 0 {
		t.Errorf("expected zero pages for an empty result, got %+v", empty)
	}

	exact := NewPaginationInfo(30, 1, 10)
	if exact.TotalPages != 3 {
		t.Errorf("expected exactly 3 pages, got %+v", exact)
	}
}
