package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-admin/internal/audit"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/middleware"
	"github.com/BruksfildServices01/barbershop-admin/internal/storage"
)

const maxUploadBytes = 10 << 20

type MediaStore interface {
	Upload(ctx context.Context, kind storage.Kind, key, filename, contentType string, data []byte) (*storage.Object, error)
	List(ctx context.Context, kind storage.Kind) ([]storage.Object, error)
	Delete(ctx context.Context, kind storage.Kind, key string) error
	URL(kind storage.Kind, key string) string
}

type MediaHandler struct {
	store MediaStore
	audit *audit.Dispatcher
}

// NewMediaHandler aceita store nil quando o S3 não está configurado
func NewMediaHandler(store MediaStore, audit *audit.Dispatcher) *MediaHandler {
	return &MediaHandler{store: store, audit: audit}
}

func (h *MediaHandler) kind(c *gin.Context) (storage.Kind, bool) {
	if h.store == nil {
		respond(c, httperr.ErrBusiness("storage_disabled"), "storage_disabled", "")
		return "", false
	}
	k, ok := storage.ParseKind(c.Param("kind"))
	if !ok {
		respond(c, httperr.ErrBusiness("invalid_bucket"), "invalid_bucket", "")
		return "", false
	}
	return k, true
}

// Upload: multipart com "file" e, opcionalmente, "key" (nome fixo como about.jpg)
func (h *MediaHandler) Upload(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo obrigatório.")
		return
	}
	if fh.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Arquivo maior que 10 MB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Arquivo inválido.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Arquivo inválido.")
		return
	}

	contentType := storage.DetectContentType(fh.Header.Get("Content-Type"), data)
	obj, err := h.store.Upload(c.Request.Context(), kind, c.PostForm("key"), fh.Filename, contentType, data)
	if err != nil {
		respond(c, err, "failed_to_upload", "Erro ao enviar imagem.")
		return
	}

	if h.audit != nil {
		h.audit.Dispatch(audit.Event{
			UserID:   middleware.UserID(c),
			Action:   "media_uploaded",
			Entity:   "media",
			Metadata: map[string]any{"kind": kind, "key": obj.Key, "size": obj.Size},
		})
	}

	c.JSON(http.StatusCreated, obj)
}

func (h *MediaHandler) List(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	objs, err := h.store.List(c.Request.Context(), kind)
	if err != nil {
		respond(c, err, "failed_to_list_media", "Erro ao listar imagens.")
		return
	}
	c.JSON(http.StatusOK, objs)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	key := c.Param("key")
	if err := h.store.Delete(c.Request.Context(), kind, key); err != nil {
		respond(c, err, "failed_to_delete_media", "Erro ao excluir imagem.")
		return
	}

	if h.audit != nil {
		h.audit.Dispatch(audit.Event{
			UserID:   middleware.UserID(c),
			Action:   "media_deleted",
			Entity:   "media",
			Metadata: map[string]any{"kind": kind, "key": key},
		})
	}
	c.Status(http.StatusNoContent)
}

// URL devolve a URL pública com ?t= novo a cada chamada
func (h *MediaHandler) URL(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	key := c.Param("key")
	if !storage.IsWellKnown(key) && !storage.IsGenerated(key) {
		respond(c, httperr.ErrBusiness("invalid_object_key"), "invalid_object_key", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": h.store.URL(kind, key)})
}
