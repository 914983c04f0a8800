package resumes

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"resume-rewriter/internal/patch"
	"resume-rewriter/internal/textextract"
)

type fakeStore struct {
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (s *fakeStore) Save(ctx context.Context, userId string, fileName string, r io.Reader) (string, int64, string, error) {
	data, _ := io.ReadAll(r)
	key := userId + "/" + fileName
	s.objects[key] = data
	return key, int64(len(data)), "text/plain", nil
}

func (s *fakeStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	data, ok := s.objects[storageKey]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStore) SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error) {
	data, _ := io.ReadAll(r)
	s.objects[storageKey] = data
	return int64(len(data)), nil
}

func newService() (*Service, *fakeStore) {
	store := newFakeStore()
	return &Service{
		Store: store,
		Repo:  NewMemoryRepo(),
		Text:  textextract.New(nil),
	}, store
}

const sampleResumeText = `Jane Smith
jane@smith.dev | (555) 010-2000

EXPERIENCE
Acme Corp | Software Engineer
Jan 2020 - Present
• Built the billing pipeline in Go
• Led a team of three engineers

EDUCATION
State University
B.S. Computer Science 2019
`

func TestUploadExtractsAndPersists(t *testing.T) {
	svc, store := newService()

	resume, err := svc.Upload(context.Background(), "u1", "resume.txt", strings.NewReader(sampleResumeText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if resume.Document.Basics.Name == nil || *resume.Document.Basics.Name != "Jane Smith" {
		t.Fatalf("name = %#v", resume.Document.Basics.Name)
	}
	if len(resume.Document.Work) == 0 {
		t.Fatalf("work = %#v", resume.Document.Work)
	}
	if resume.Document.Work[0].Company != "Acme Corp" {
		t.Fatalf("company = %q", resume.Document.Work[0].Company)
	}

	if _, ok := store.objects["u1/resume.txt.extracted.txt"]; !ok {
		t.Fatal("extracted text copy was not persisted")
	}
	if resume.ExtractedTextKey != "u1/resume.txt.extracted.txt" {
		t.Fatalf("extracted key = %q", resume.ExtractedTextKey)
	}

	got, err := svc.Get(context.Background(), "u1", resume.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != resume.ID {
		t.Fatalf("got %q", got.ID)
	}
}

func TestUploadRequiresFileName(t *testing.T) {
	svc, _ := newService()
	if _, err := svc.Upload(context.Background(), "u1", "", strings.NewReader("x")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetIsolatedPerUser(t *testing.T) {
	svc, _ := newService()
	resume, err := svc.Upload(context.Background(), "u1", "resume.txt", strings.NewReader(sampleResumeText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if _, err := svc.Get(context.Background(), "u2", resume.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPatchUpdatesDocumentAndRecordsVersion(t *testing.T) {
	svc, _ := newService()
	resume, err := svc.Upload(context.Background(), "u1", "resume.txt", strings.NewReader(sampleResumeText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	original := resume.Document.Work[0].Highlights[0]

	updated, err := svc.Patch(context.Background(), "u1", resume.ID, []patch.Op{
		{Op: "replace", Path: "/work/0/highlights/0", Value: "Rebuilt the billing pipeline, cutting costs 40%"},
	})
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if updated.Document.Work[0].Highlights[0] != "Rebuilt the billing pipeline, cutting costs 40%" {
		t.Fatalf("highlight = %q", updated.Document.Work[0].Highlights[0])
	}

	versions, err := svc.Versions(context.Background(), "u1", resume.ID)
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	if len(versions) != 1 {
		t.Fatalf("versions = %d", len(versions))
	}
	if versions[0].Document.Work[0].Highlights[0] != original {
		t.Fatalf("version holds %q, want %q", versions[0].Document.Work[0].Highlights[0], original)
	}
}

func TestPatchRejectsBadOps(t *testing.T) {
	svc, _ := newService()
	resume, err := svc.Upload(context.Background(), "u1", "resume.txt", strings.NewReader(sampleResumeText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	_, err = svc.Patch(context.Background(), "u1", resume.ID, []patch.Op{
		{Op: "remove", Path: "/work/0/highlights/0"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// failed patch leaves the document and versions untouched
	got, err := svc.Get(context.Background(), "u1", resume.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Document.Work[0].Highlights[0] != resume.Document.Work[0].Highlights[0] {
		t.Fatal("document changed after rejected patch")
	}
	versions, err := svc.Versions(context.Background(), "u1", resume.ID)
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	if len(versions) != 0 {
		t.Fatalf("versions = %d", len(versions))
	}
}

func TestExportProducesDocx(t *testing.T) {
	svc, _ := newService()
	resume, err := svc.Upload(context.Background(), "u1", "resume.txt", strings.NewReader(sampleResumeText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	data, filename, err := svc.Export(context.Background(), "u1", resume.ID)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(filename, "resume_jane_smith_") || !strings.HasSuffix(filename, ".docx") {
		t.Fatalf("filename = %q", filename)
	}
	if _, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
		t.Fatalf("export is not a zip: %v", err)
	}
}

func TestDocumentSource(t *testing.T) {
	svc, _ := newService()
	resume, err := svc.Upload(context.Background(), "u1", "resume.txt", strings.NewReader(sampleResumeText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	doc, err := svc.Document(context.Background(), "u1", resume.ID)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if len(doc.Work) == 0 {
		t.Fatalf("doc = %#v", doc)
	}
}
