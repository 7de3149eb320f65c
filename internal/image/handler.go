package image

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/recette/api/internal/middleware"
	"github.com/recette/api/internal/response"
	"github.com/recette/api/internal/storage"
)

// maxUploadMemory bounds the multipart parse buffer; larger files spill to
// temp files.
const maxUploadMemory = 32 << 20

// Handler holds HTTP handlers for image endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new image Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type uploadData struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl" example:"http://localhost:8080/api/images/0b7c..png"`
	PublicID string `json:"public_id" example:"recettes/0b7c1a8e-4f21-4d8e-9a37-2f1f4cf0a6d1"`
	UID      string `json:"uid,omitempty" example:"user-42"`
}

type deleteRequest struct {
	PublicID string `json:"public_id"`
}

type deleteData struct {
	Success bool `json:"success"`
}

// Upload godoc
//
//	@Summary		Upload an image
//	@Description	Accepts a multipart image upload, stores it on the configured backend, and returns its public URL plus the identifier needed to delete it later. The service keeps no asset registry, so keep the returned public_id.
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"image file"
//	@Success		200		{object}	uploadData
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/upload-image [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.BadRequest(w, "invalid image")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "invalid image")
		return
	}
	defer file.Close()

	obj, err := h.svc.Upload(r.Context(), file, header.Size, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		if errors.Is(err, ErrInvalidMediaType) {
			response.BadRequest(w, "invalid image")
			return
		}
		log.Printf("upload error: %v", err)
		response.InternalError(w, "upload failed")
		return
	}

	uid := middleware.Principal(r.Context())
	if uid != "" {
		log.Printf("image uploaded: %s by %s", obj.PublicURL, uid)
	} else {
		log.Printf("image uploaded: %s", obj.PublicURL)
	}

	response.OK(w, uploadData{
		Success:  true,
		ImageURL: obj.PublicURL,
		PublicID: obj.Identifier,
		UID:      uid,
	})
}

// Delete godoc
//
//	@Summary		Delete an image
//	@Description	Deletes a previously uploaded image by its public_id, taken from the JSON body or the public_id query parameter.
//	@Tags			images
//	@Accept			json
//	@Produce		json
//	@Param			request	body		deleteRequest	false	"identifier"
//	@Success		200		{object}	deleteData
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		404		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/delete-image [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.PublicID == "" {
		req.PublicID = r.URL.Query().Get("public_id")
	}
	if req.PublicID == "" {
		response.BadRequest(w, "public_id required")
		return
	}
	h.delete(w, r, req.PublicID)
}

// DeleteByPath godoc
//
//	@Summary		Delete an image by filename
//	@Description	Filesystem-backend variant of delete, keyed by the stored filename in the path.
//	@Tags			images
//	@Produce		json
//	@Param			filename	path		string	true	"stored filename"
//	@Success		200			{object}	deleteData
//	@Failure		401			{object}	response.ErrorBody
//	@Failure		404			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/images/{filename} [delete]
func (h *Handler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, chi.URLParam(r, "filename"))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, identifier string) {
	if err := h.svc.Delete(r.Context(), identifier); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(w, "image not found")
			return
		}
		log.Printf("delete error: %v", err)
		response.InternalError(w, "delete failed")
		return
	}

	if uid := middleware.Principal(r.Context()); uid != "" {
		log.Printf("image deleted: %s by %s", identifier, uid)
	} else {
		log.Printf("image deleted: %s", identifier)
	}

	response.OK(w, deleteData{Success: true})
}

// Serve godoc
//
//	@Summary		Retrieve an image
//	@Description	Streams a stored image back byte-for-byte. Only available with the filesystem backend; remote assets are fetched from the CDN URL directly.
//	@Tags			images
//	@Produce		octet-stream
//	@Param			filename	path	string	true	"stored filename"
//	@Success		200
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/images/{filename} [get]
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	rc, ok, err := h.svc.Open(r.Context(), name)
	if !ok {
		response.NotFound(w, "image not found")
		return
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(w, "image not found")
			return
		}
		log.Printf("serve error: %v", err)
		response.InternalError(w, "retrieve failed")
		return
	}
	defer rc.Close()

	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	if _, err := io.Copy(w, rc); err != nil {
		log.Printf("serve error: stream %s: %v", name, err)
	}
}
