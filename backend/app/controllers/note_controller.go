package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"simple-notes/backend/app/domain"
	"simple-notes/backend/app/dto"
	"simple-notes/backend/app/middleware"
	"simple-notes/backend/app/services"
)

type NoteController struct {
	Notes *services.NoteService
}

func NewNoteController(notes *services.NoteService) *NoteController {
	return &NoteController{Notes: notes}
}

func noteID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (c *NoteController) List(w http.ResponseWriter, r *http.Request) {
	token := middleware.Token(r.Context())
	notes, err := c.Notes.List(token, r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NotesFromModels(notes))
}

func (c *NoteController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	n, err := c.Notes.Get(middleware.Token(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NoteFromModel(*n))
}

func (c *NoteController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.NoteRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	id, err := c.Notes.Create(middleware.Token(r.Context()), req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NoteIDResponse{NoteID: id})
}

func (c *NoteController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var req dto.NoteRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Notes.Update(middleware.Token(r.Context()), id, req.Title, req.Content); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: domain.OK})
}

func (c *NoteController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err := c.Notes.Delete(middleware.Token(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: domain.OK})
}
