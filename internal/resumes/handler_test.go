package resumes_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-rewriter/internal/bootstrap"
	"resume-rewriter/internal/shared/config"
)

const resumeFixture = `Jane Smith
jane@smith.dev | (555) 010-2000

EXPERIENCE
Acme Corp | Software Engineer
Jan 2020 - Present
` + "•" + ` Built the billing pipeline in Go
` + "•" + ` Led a team of three engineers

EDUCATION
State University
B.S. Computer Science 2019
`

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func uploadResume(t *testing.T, router http.Handler) string {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", "resume.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write([]byte(resumeFixture)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ResumeID string `json:"resumeId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ResumeID == "" {
		t.Fatalf("expected resumeId, got empty")
	}
	return created.ResumeID
}

func TestResumesUploadAndGet(t *testing.T) {
	router := newTestRouter(t)
	resumeID := uploadResume(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+resumeID, nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var got struct {
		FileName string `json:"fileName"`
		Document struct {
			Basics struct {
				Name *string `json:"name"`
			} `json:"basics"`
			Work []struct {
				Company    *string  `json:"company"`
				Highlights []string `json:"highlights"`
			} `json:"work"`
		} `json:"document"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.FileName != "resume.txt" {
		t.Fatalf("expected fileName resume.txt, got %s", got.FileName)
	}
	if got.Document.Basics.Name == nil || *got.Document.Basics.Name != "Jane Smith" {
		t.Fatalf("expected extracted name Jane Smith, got %v", got.Document.Basics.Name)
	}
	if len(got.Document.Work) == 0 || len(got.Document.Work[0].Highlights) == 0 {
		t.Fatalf("expected extracted work highlights, got %+v", got.Document.Work)
	}
}

func TestResumesPatchAndVersions(t *testing.T) {
	router := newTestRouter(t)
	resumeID := uploadResume(t, router)

	patchBody := `{"ops":[{"op":"replace","path":"/work/0/highlights/0","value":"Built the billing pipeline in Go serving 2M requests/day"}]}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/resumes/"+resumeID, strings.NewReader(patchBody))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var patched struct {
		Document struct {
			Work []struct {
				Highlights []string `json:"highlights"`
			} `json:"work"`
		} `json:"document"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&patched); err != nil {
		t.Fatalf("decode patch response: %v", err)
	}
	if got := patched.Document.Work[0].Highlights[0]; !strings.Contains(got, "2M requests/day") {
		t.Fatalf("expected patched highlight, got %q", got)
	}

	// The pre-patch snapshot must be listed as a version.
	reqV := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+resumeID+"/versions", nil)
	addGuestHeader(reqV)
	respV := httptest.NewRecorder()
	router.ServeHTTP(respV, reqV)

	if respV.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respV.Code)
	}
	var versions []struct {
		VersionID string `json:"versionId"`
	}
	if err := json.NewDecoder(respV.Body).Decode(&versions); err != nil {
		t.Fatalf("decode versions: %v", err)
	}
	if len(versions) != 1 {
		t.Fatalf("expected 1 version, got %d", len(versions))
	}
}

func TestResumesPatchRejectsBadOps(t *testing.T) {
	router := newTestRouter(t)
	resumeID := uploadResume(t, router)

	patchBody := `{"ops":[{"op":"remove","path":"/work/0/highlights/0","value":""}]}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/resumes/"+resumeID, strings.NewReader(patchBody))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestResumesExport(t *testing.T) {
	router := newTestRouter(t)
	resumeID := uploadResume(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+resumeID+"/export", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	disposition := resp.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "resume_jane_smith_") || !strings.Contains(disposition, ".docx") {
		t.Fatalf("unexpected Content-Disposition %q", disposition)
	}
	// DOCX payloads are zip archives.
	if body := resp.Body.Bytes(); len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Fatalf("expected zip payload, got %d bytes", resp.Body.Len())
	}
}

func TestResumesNotFoundForOtherGuest(t *testing.T) {
	router := newTestRouter(t)
	resumeID := uploadResume(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+resumeID, nil)
	req.Header.Set("X-Guest-Id", "someone-else")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}
