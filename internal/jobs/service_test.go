package jobs

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubFetcher struct {
	text string
	err  error
	hits int
}

func (f *stubFetcher) FetchText(ctx context.Context, url string) (string, error) {
	f.hits++
	return f.text, f.err
}

func TestIngestPastedTextWins(t *testing.T) {
	fetcher := &stubFetcher{text: "fetched body"}
	svc := &Service{Repo: NewMemoryRepo(), Fetcher: fetcher}

	pasted := strings.Repeat("This pasted requirement line is long enough to keep.\n", 3)
	post, err := svc.Ingest(context.Background(), "u1", pasted, "https://example.com/job")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if fetcher.hits != 0 {
		t.Fatal("fetcher should not run when text was pasted")
	}
	if !strings.Contains(post.TextContent, "pasted requirement") {
		t.Fatalf("text = %q", post.TextContent)
	}
	if post.SourceURL != "https://example.com/job" {
		t.Fatalf("source url = %q", post.SourceURL)
	}
	if len(post.Requirements) == 0 {
		t.Fatal("expected extracted requirements")
	}
}

func TestIngestFetchesWhenOnlyURL(t *testing.T) {
	fetcher := &stubFetcher{text: "A fetched requirement line that is long enough to count here."}
	svc := &Service{Repo: NewMemoryRepo(), Fetcher: fetcher}

	post, err := svc.Ingest(context.Background(), "u1", "", "https://example.com/job")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if fetcher.hits != 1 {
		t.Fatalf("fetcher hits = %d", fetcher.hits)
	}
	if post.TextContent != fetcher.text {
		t.Fatalf("text = %q", post.TextContent)
	}
}

func TestIngestRejectsEmptyInput(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	if _, err := svc.Ingest(context.Background(), "u1", "  ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestIngestFetchErrorPropagates(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("boom")}
	svc := &Service{Repo: NewMemoryRepo(), Fetcher: fetcher}
	if _, err := svc.Ingest(context.Background(), "u1", "", "https://example.com"); err == nil {
		t.Fatal("expected fetch error")
	}
}

func TestIngestThenGetAndList(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	post, err := svc.Ingest(context.Background(), "u1", "A requirement line long enough to pass the prose threshold.", "")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	got, err := svc.Get(context.Background(), "u1", post.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != post.ID {
		t.Fatalf("got %q, want %q", got.ID, post.ID)
	}

	if _, err := svc.Get(context.Background(), "u2", post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}

	list, err := svc.List(context.Background(), "u1", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list = %#v", list)
	}
}
