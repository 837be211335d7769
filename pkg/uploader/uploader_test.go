package uploader_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/pkg/uploader"
)

// fakeBackend simula o endpoint de presign da API e o PUT do object
// storage no mesmo servidor de teste
type fakeBackend struct {
	mu       sync.Mutex
	objects  map[string]string
	presigns int32

	inFlight    int32
	maxInFlight int32

	putDelay    time.Duration
	failPresign func(filename string) bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{objects: make(map[string]string)}
}

func (b *fakeBackend) handler(t *testing.T, baseURL *string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/presign", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("esperava header 'Bearer test-token', obteve '%s'", got)
		}

		var req struct {
			Filename    string `json:"filename"`
			ContentType string `json:"content_type"`
			Size        int64  `json:"size"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if b.failPresign != nil && b.failPresign(req.Filename) {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		n := atomic.AddInt32(&b.presigns, 1)
		key := fmt.Sprintf("user-1/%d-%s", n, req.Filename)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"key": key,
			"url": *baseURL + "/put/" + key,
		})
	})

	mux.HandleFunc("/put/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		cur := atomic.AddInt32(&b.inFlight, 1)
		for {
			max := atomic.LoadInt32(&b.maxInFlight)
			if cur <= max || atomic.CompareAndSwapInt32(&b.maxInFlight, max, cur) {
				break
			}
		}
		if b.putDelay > 0 {
			time.Sleep(b.putDelay)
		}
		defer atomic.AddInt32(&b.inFlight, -1)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		key := strings.TrimPrefix(r.URL.Path, "/put/")
		b.mu.Lock()
		b.objects[key] = string(body)
		b.mu.Unlock()

		w.WriteHeader(http.StatusOK)
	})

	return mux
}

func startBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	backend := newFakeBackend()
	var baseURL string
	server := httptest.NewServer(backend.handler(t, &baseURL))
	baseURL = server.URL
	t.Cleanup(server.Close)
	return backend, server
}

func TestQueueUpload(t *testing.T) {
	backend, server := startBackend(t)

	queue := uploader.New(server.URL+"/presign", "test-token")

	upload := queue.Enqueue(context.Background(), "doc.pdf", "application/pdf", 8, strings.NewReader("conteudo"), nil)
	queue.Wait()

	require.Equal(t, uploader.StatusDone, upload.Status())
	require.NoError(t, upload.Err())
	assert.Contains(t, upload.Key(), "doc.pdf")

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, "conteudo", backend.objects[upload.Key()])
}

func TestQueueConcurrencyCap(t *testing.T) {
	backend, server := startBackend(t)
	backend.putDelay = 50 * time.Millisecond

	queue := uploader.New(server.URL+"/presign", "test-token", uploader.WithConcurrency(2))

	var uploads []*uploader.Upload
	for i := 0; i < 6; i++ {
		name := fmt.Sprintf("file-%d.pdf", i)
		uploads = append(uploads, queue.Enqueue(context.Background(), name, "application/pdf", 4, strings.NewReader("data"), nil))
	}
	queue.Wait()

	for _, upload := range uploads {
		assert.Equal(t, uploader.StatusDone, upload.Status(), "upload %s", upload.Name)
	}

	assert.LessOrEqual(t, atomic.LoadInt32(&backend.maxInFlight), int32(2),
		"esperava no máximo 2 uploads simultâneos")
}

func TestQueueRejectsInvalidFiles(t *testing.T) {
	backend, server := startBackend(t)

	queue := uploader.New(server.URL+"/presign", "test-token")

	t.Run("content type fora da allow-list", func(t *testing.T) {
		upload := queue.Enqueue(context.Background(), "script.sh", "application/x-sh", 10, strings.NewReader("#!"), nil)

		assert.Equal(t, uploader.StatusFailed, upload.Status())
		assert.ErrorIs(t, upload.Err(), entities.ErrContentTypeNotAllowed)
	})

	t.Run("arquivo acima do limite", func(t *testing.T) {
		upload := queue.Enqueue(context.Background(), "big.pdf", "application/pdf", entities.MaxAttachmentSize+1, strings.NewReader(""), nil)

		assert.Equal(t, uploader.StatusFailed, upload.Status())
		assert.ErrorIs(t, upload.Err(), entities.ErrAttachmentTooLarge)
	})

	queue.Wait()
	assert.Zero(t, atomic.LoadInt32(&backend.presigns), "arquivo inválido não deveria chegar ao presign")
}

func TestQueueFailureIsolation(t *testing.T) {
	backend, server := startBackend(t)
	backend.failPresign = func(filename string) bool {
		return filename == "quebrado.pdf"
	}

	queue := uploader.New(server.URL+"/presign", "test-token")

	bad := queue.Enqueue(context.Background(), "quebrado.pdf", "application/pdf", 4, strings.NewReader("data"), nil)
	good := queue.Enqueue(context.Background(), "ok.pdf", "application/pdf", 4, strings.NewReader("data"), nil)
	queue.Wait()

	assert.Equal(t, uploader.StatusFailed, bad.Status())
	assert.Error(t, bad.Err())

	assert.Equal(t, uploader.StatusDone, good.Status())
	assert.NoError(t, good.Err())
}

func TestQueueReportsProgress(t *testing.T) {
	_, server := startBackend(t)

	queue := uploader.New(server.URL+"/presign", "test-token")

	content := strings.Repeat("x", 1024)
	var last int64
	var mu sync.Mutex

	upload := queue.Enqueue(context.Background(), "doc.pdf", "application/pdf", int64(len(content)), strings.NewReader(content),
		func(uploaded, total int64) {
			mu.Lock()
			last = uploaded
			mu.Unlock()
			assert.Equal(t, int64(len(content)), total)
		})
	queue.Wait()

	require.Equal(t, uploader.StatusDone, upload.Status())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, int64(len(content)), last)
}
