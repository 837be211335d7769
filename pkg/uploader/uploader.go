// Package uploader implementa a fila de uploads do cliente: valida
// cada arquivo, busca a URL pré-assinada na API e faz o PUT direto no
// object storage, com no máximo N uploads simultâneos. Falhas ficam
// registradas no status de cada arquivo e não afetam os demais.
package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
)

// DefaultConcurrency é o número máximo padrão de uploads em voo
const DefaultConcurrency = 3

// Status de um upload. Transições monotônicas:
// pending -> uploading -> done | failed
type Status string

const (
	StatusPending   Status = "pending"
	StatusUploading Status = "uploading"
	StatusDone      Status = "done"
	StatusFailed    Status = "failed"
)

// ProgressFunc recebe o progresso de um upload em bytes
type ProgressFunc func(uploaded, total int64)

// Upload representa um arquivo na fila
type Upload struct {
	Name        string
	ContentType string
	Size        int64

	mu     sync.Mutex
	status Status
	key    string
	err    error

	body     io.Reader
	progress ProgressFunc
}

// Status retorna o status atual do upload
func (u *Upload) Status() Status {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.status
}

// Key retorna a key do objeto após o presign
func (u *Upload) Key() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.key
}

// Err retorna o erro do upload, se houver
func (u *Upload) Err() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.err
}

func (u *Upload) set(status Status, err error) {
	u.mu.Lock()
	u.status = status
	u.err = err
	u.mu.Unlock()
}

// Queue é a fila de uploads com limite de concorrência
type Queue struct {
	client          *http.Client
	presignEndpoint string
	token           string
	sem             *semaphore.Weighted
	wg              sync.WaitGroup
}

// Option configura a Queue
type Option func(*Queue)

// WithConcurrency define o número máximo de uploads simultâneos
func WithConcurrency(n int64) Option {
	return func(q *Queue) {
		q.sem = semaphore.NewWeighted(n)
	}
}

// WithHTTPClient substitui o cliente HTTP padrão
func WithHTTPClient(client *http.Client) Option {
	return func(q *Queue) {
		q.client = client
	}
}

// New cria uma nova fila de uploads. presignEndpoint é a URL do
// endpoint de presign da API; token é o access token do usuário.
func New(presignEndpoint, token string, opts ...Option) *Queue {
	q := &Queue{
		client:          &http.Client{Timeout: 5 * time.Minute},
		presignEndpoint: presignEndpoint,
		token:           token,
		sem:             semaphore.NewWeighted(DefaultConcurrency),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue valida o arquivo e o coloca na fila. Arquivos inválidos não
// entram na fila: voltam imediatamente com status failed e o erro de
// validação registrado.
func (q *Queue) Enqueue(ctx context.Context, name, contentType string, size int64, body io.Reader, progress ProgressFunc) *Upload {
	upload := &Upload{
		Name:        name,
		ContentType: contentType,
		Size:        size,
		status:      StatusPending,
		body:        body,
		progress:    progress,
	}

	if err := entities.ValidateUpload(name, contentType, size); err != nil {
		upload.set(StatusFailed, err)
		return upload
	}

	q.wg.Add(1)
	go q.run(ctx, upload)

	return upload
}

// Wait bloqueia até todos os uploads enfileirados terminarem
func (q *Queue) Wait() {
	q.wg.Wait()
}

func (q *Queue) run(ctx context.Context, upload *Upload) {
	defer q.wg.Done()

	if err := q.sem.Acquire(ctx, 1); err != nil {
		upload.set(StatusFailed, err)
		return
	}
	defer q.sem.Release(1)

	upload.set(StatusUploading, nil)

	url, key, err := q.presign(ctx, upload)
	if err != nil {
		upload.set(StatusFailed, err)
		return
	}

	upload.mu.Lock()
	upload.key = key
	upload.mu.Unlock()

	if err := q.put(ctx, url, upload); err != nil {
		upload.set(StatusFailed, err)
		return
	}

	upload.set(StatusDone, nil)
}

type presignRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type presignResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (q *Queue) presign(ctx context.Context, upload *Upload) (string, string, error) {
	payload, err := json.Marshal(presignRequest{
		Filename:    upload.Name,
		ContentType: upload.ContentType,
		Size:        upload.Size,
	})
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, q.presignEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+q.token)

	resp, err := q.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("presign failed with status %d", resp.StatusCode)
	}

	var presigned presignResponse
	if err := json.NewDecoder(resp.Body).Decode(&presigned); err != nil {
		return "", "", fmt.Errorf("failed to decode presign response: %w", err)
	}

	return presigned.URL, presigned.Key, nil
}

func (q *Queue) put(ctx context.Context, url string, upload *Upload) error {
	body := io.Reader(upload.body)
	if upload.progress != nil {
		body = &progressReader{
			reader:   upload.body,
			total:    upload.Size,
			progress: upload.progress,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", upload.ContentType)
	req.ContentLength = upload.Size

	resp, err := q.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}

	return nil
}

// progressReader envolve o body e reporta bytes lidos
type progressReader struct {
	reader   io.Reader
	total    int64
	uploaded int64
	progress ProgressFunc
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.uploaded += int64(n)
		r.progress(r.uploaded, r.total)
	}
	return n, err
}
