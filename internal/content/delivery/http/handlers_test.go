package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-admin-dashboard/config"
	"social-admin-dashboard/internal/content"
	"social-admin-dashboard/internal/middleware"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/listing"
	"social-admin-dashboard/pkg/log"
)

type fakeUseCase struct {
	reg     *screen.Registry[*screen.Screen[content.ContentItem]]
	updated []content.UpdateInput
	outcome screen.Outcome
	notes   []content.Note
}

func (f *fakeUseCase) Bind(ctx context.Context, sc model.Scope) *screen.Screen[content.ContentItem] {
	s, _ := f.reg.GetOrCreate(sc.SessionID, content.ScreenName, func() *screen.Screen[content.ContentItem] {
		return screen.New(screen.Options[content.ContentItem]{
			Name:   content.ScreenName,
			Config: listing.Config[content.ContentItem]{PageSize: 10},
			Source: screen.SourceFunc[content.ContentItem](func(ctx context.Context, q screen.Query) ([]content.ContentItem, error) {
				return []content.ContentItem{{ID: "r1"}}, nil
			}),
			ID: content.ItemID,
		})
	})
	s.SetToken(ctx, sc.AccessToken)
	return s
}

func (f *fakeUseCase) CloseSession(sessionID string) int { return f.reg.CloseSession(sessionID) }

func (f *fakeUseCase) Detail(ctx context.Context, sc model.Scope, id string) (content.ContentItem, error) {
	if id != "r1" {
		return content.ContentItem{}, content.ErrNotFound
	}
	status := "pending"
	return content.ContentItem{ID: "r1", Description: "sunset", Status: &status}, nil
}

func (f *fakeUseCase) Update(ctx context.Context, sc model.Scope, input content.UpdateInput) (screen.Outcome, error) {
	if input.MediaType != nil && *input.MediaType == "gif" {
		return screen.Outcome{}, content.ErrInvalidMediaType
	}
	f.updated = append(f.updated, input)
	return f.outcome, nil
}

func (f *fakeUseCase) SetStatus(ctx context.Context, sc model.Scope, id, status string) error {
	return nil
}

func (f *fakeUseCase) Delete(ctx context.Context, sc model.Scope, id string) error { return nil }

func (f *fakeUseCase) Reports(ctx context.Context, sc model.Scope, id string) (content.ReportsOutput, error) {
	if sc.AccessToken == "" {
		return content.ReportsOutput{}, screen.ErrAuthMissing
	}
	return content.ReportsOutput{}, nil
}

func (f *fakeUseCase) Notes(ctx context.Context, sc model.Scope, contentID string) ([]content.Note, error) {
	var out []content.Note
	for i := len(f.notes) - 1; i >= 0; i-- {
		if f.notes[i].ContentID == contentID {
			out = append(out, f.notes[i])
		}
	}
	return out, nil
}

func (f *fakeUseCase) AddNote(ctx context.Context, sc model.Scope, input content.AddNoteInput) (content.Note, error) {
	if strings.TrimSpace(input.Note) == "" {
		return content.Note{}, content.ErrEmptyNote
	}
	n := content.Note{
		ID:        "n" + strconv.Itoa(len(f.notes)+1),
		ContentID: input.ContentID,
		Moderator: content.Moderator{ID: sc.UserID, Name: sc.DisplayName()},
		Note:      input.Note,
	}
	f.notes = append(f.notes, n)
	return n, nil
}

type fakeAuth struct{ accessToken string }

func (a fakeAuth) Authenticate(ctx context.Context, token string) (model.Session, error) {
	return model.Session{
		ID:          "s1",
		Profile:     model.Profile{ID: "u1", Email: "mod@example.com", Name: "Maya"},
		AccessToken: a.accessToken,
	}, nil
}

func setupRouter(uc *fakeUseCase, accessToken string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	mw := middleware.New(l, fakeAuth{accessToken: accessToken}, config.CookieConfig{}, config.CORSConfig{})
	r := gin.New()
	RegisterRoutes(r.Group("/content"), New(l, uc), mw)
	return r
}

func newFake() *fakeUseCase {
	return &fakeUseCase{reg: screen.NewRegistry[*screen.Screen[content.ContentItem]](10, time.Minute)}
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer dash")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDetail(t *testing.T) {
	r := setupRouter(newFake(), "tok")

	w := do(r, http.MethodGet, "/content/r1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
	assert.Contains(t, w.Body.String(), `"contentType":""`)

	w = do(r, http.MethodGet, "/content/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := newFake()
		uc.outcome = screen.Outcome{RecordID: "r1", Refresh: true, CloseDetail: true, Notice: &screen.Notice{Message: "Content updated successfully"}}
		w := do(setupRouter(uc, "tok"), http.MethodPatch, "/content/r1", `{"description":"new","mediaType":"video"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Content updated successfully")
		require.Len(t, uc.updated, 1)
		assert.Equal(t, "r1", uc.updated[0].ID)
		assert.Nil(t, uc.updated[0].Status)
	})

	t.Run("validation error", func(t *testing.T) {
		w := do(setupRouter(newFake(), "tok"), http.MethodPatch, "/content/r1", `{"mediaType":"gif"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("backend failure carries the outcome", func(t *testing.T) {
		uc := newFake()
		uc.outcome = screen.Outcome{
			RecordID: "r1",
			Err:      &backend.HTTPError{StatusCode: 403, Status: "403 Forbidden", Message: "Forbidden resource"},
			Notice:   &screen.Notice{Level: screen.NoticeError, Message: "Failed to update content: Forbidden resource"},
		}
		w := do(setupRouter(uc, "tok"), http.MethodPatch, "/content/r1", `{"description":"x"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to update content: Forbidden resource")
	})
}

func TestReportsWithoutBackendToken(t *testing.T) {
	w := do(setupRouter(newFake(), ""), http.MethodGet, "/content/r1/reports", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Please log in to view content")
}

func TestScreenRoutesAreMounted(t *testing.T) {
	w := do(setupRouter(newFake(), "tok"), http.MethodGet, "/content/screen?wait=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"screen":"content"`)
	assert.Contains(t, w.Body.String(), `"id":"r1"`)
}

func TestNotes(t *testing.T) {
	uc := newFake()
	r := setupRouter(uc, "tok")

	w := do(r, http.MethodGet, "/content/r1/notes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"notes":[]`)

	w = do(r, http.MethodPost, "/content/r1/notes", `{"note":"checked the audio"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Maya"`)

	do(r, http.MethodPost, "/content/r1/notes", `{"note":"second look"}`)
	do(r, http.MethodPost, "/content/r2/notes", `{"note":"elsewhere"}`)

	w = do(r, http.MethodGet, "/content/r1/notes", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"total":2`)
	assert.Less(t, strings.Index(body, "second look"), strings.Index(body, "checked the audio"))
	assert.NotContains(t, body, "elsewhere")
}

func TestAddNoteValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing note", body: `{}`},
		{name: "blank note", body: `{"note":"   "}`},
		{name: "not json", body: `note`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newFake()
			w := do(setupRouter(uc, "tok"), http.MethodPost, "/content/r1/notes", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, uc.notes)
		})
	}
}
