package server

import (
	"io"
	"net/http"

	"github.com/careerforge/resume-tailor/internal/pipeline"
	"github.com/careerforge/resume-tailor/internal/profile"
)

// handleUploadDocuments accepts a multipart batch under the "files" field
// and runs the extraction pipeline. A failed file is reported in its slot
// of the response, the rest of the batch still lands.
func (s *Server) handleUploadDocuments(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart body: "+err.Error())
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No files provided")
		return
	}

	var files []pipeline.UploadFile
	for _, header := range fileHeaders {
		f, err := header.Open()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read "+header.Filename)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read "+header.Filename)
			return
		}
		files = append(files, pipeline.UploadFile{Filename: header.Filename, Data: data})
	}

	results := s.pipeline.ProcessUploads(r.Context(), ownerID, files)
	respondJSON(w, http.StatusOK, map[string]any{"results": results})
}

// handleListDocuments returns the owner's documents, newest first.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	docs, err := s.db.ListDocuments(r.Context(), ownerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

// handleDeleteDocument removes a document, its blob, the experiences
// extracted solely from it, and its identified skills from the owner's
// profile.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := s.ownerID(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	doc, err := s.db.GetDocument(r.Context(), ownerID, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if doc == nil {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return
	}

	deleted, err := s.db.DeleteDocument(r.Context(), ownerID, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return
	}

	if doc.StoragePath != "" {
		if err := s.store.Delete(r.Context(), doc.StoragePath); err != nil {
			// The record is gone; an orphaned blob is not worth a 500.
			s.logger.Printf("Failed to delete blob %s: %v", doc.StoragePath, err)
		}
	}

	if len(doc.SkillsIdentified) > 0 {
		prof, err := s.db.GetSkillProfile(r.Context(), ownerID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if prof != nil && profile.RemoveSkills(prof, doc.SkillsIdentified) > 0 {
			if err := s.db.UpsertSkillProfile(r.Context(), prof); err != nil {
				s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
				return
			}
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
