package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/adapters/fetch"
	"go.trai.ch/digest/internal/core/domain"
)

func TestFetch_EmptyReference(t *testing.T) {
	f := fetch.New(t.TempDir(), time.Second)

	_, err := f.Fetch(context.Background(), "  ")
	require.ErrorIs(t, err, domain.ErrEmptyReference)
}

func TestFetch_LocalSite(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "digest", "2024-05")
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "papers.json"), []byte(`{"month":"2024-05"}`), domain.FilePerm))

	f := fetch.New(root, time.Second)

	t.Run("relative", func(t *testing.T) {
		body, err := f.Fetch(context.Background(), "digest/2024-05/papers.json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"month":"2024-05"}`, string(body))
	})

	t.Run("rooted", func(t *testing.T) {
		body, err := f.Fetch(context.Background(), "/digest/2024-05/papers.json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"month":"2024-05"}`, string(body))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), "digest/2024-06/papers.json")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrDocumentRead.Error())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("escape", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), "../secret.json")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrReferenceOutsideRoot.Error())
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := f.Fetch(ctx, "digest/2024-05/papers.json")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestFetch_RemoteSite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/site/data/months.json":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"months":[]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	f := fetch.NewWithClient(server.URL+"/site/", server.Client())

	t.Run("joined onto base", func(t *testing.T) {
		body, err := f.Fetch(context.Background(), "data/months.json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"months":[]}`, string(body))
	})

	t.Run("absolute url", func(t *testing.T) {
		body, err := f.Fetch(context.Background(), server.URL+"/site/data/months.json")
		require.NoError(t, err)
		assert.NotEmpty(t, body)
	})

	t.Run("status", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), "digest/2024-05/papers.json")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrFetchStatus.Error())
	})
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	defer close(release)

	f := fetch.New(server.URL, 50*time.Millisecond)

	_, err := f.Fetch(context.Background(), "data/months.json")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDocumentRead.Error())
}

func TestFetch_SizeLimit(t *testing.T) {
	const doc = `{"month":"2024-05","papers":[]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(doc))
	}))
	defer server.Close()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "papers.json"), []byte(doc), domain.FilePerm))

	t.Run("remote body over the limit", func(t *testing.T) {
		f := fetch.NewWithClient(server.URL, server.Client())
		f.SetMaxSize(int64(len(doc)) - 1)

		body, err := f.Fetch(context.Background(), "papers.json")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrDocumentTooLarge.Error())
		assert.Nil(t, body, "an oversized body is never returned truncated")
	})

	t.Run("remote body at the limit", func(t *testing.T) {
		f := fetch.NewWithClient(server.URL, server.Client())
		f.SetMaxSize(int64(len(doc)))

		body, err := f.Fetch(context.Background(), "papers.json")
		require.NoError(t, err)
		assert.JSONEq(t, doc, string(body))
	})

	t.Run("local file over the limit", func(t *testing.T) {
		f := fetch.New(root, time.Second)
		f.SetMaxSize(8)

		_, err := f.Fetch(context.Background(), "papers.json")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrDocumentTooLarge.Error())
	})
}
