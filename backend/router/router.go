package router

import (
	"net/http"

	"simple-notes/backend/app/controllers"
	"simple-notes/backend/app/middleware"
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, noteCtrl *controllers.NoteController, translateCtrl *controllers.TranslateController) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /ping", httpCtrl.Ping)
	mux.HandleFunc("POST /sign_up", authCtrl.SignUp)
	mux.HandleFunc("POST /sign_in", authCtrl.SignIn)

	// token-gated; BearerToken only extracts the raw value, the
	// services decide whether it resolves
	mux.Handle("GET /notes", middleware.BearerToken(http.HandlerFunc(noteCtrl.List)))
	mux.Handle("POST /notes", middleware.BearerToken(http.HandlerFunc(noteCtrl.Create)))
	mux.Handle("GET /notes/{id}", middleware.BearerToken(http.HandlerFunc(noteCtrl.Get)))
	mux.Handle("PATCH /notes/{id}", middleware.BearerToken(http.HandlerFunc(noteCtrl.Update)))
	mux.Handle("DELETE /notes/{id}", middleware.BearerToken(http.HandlerFunc(noteCtrl.Delete)))
	mux.Handle("POST /translate", middleware.BearerToken(http.HandlerFunc(translateCtrl.Post)))

	return mux
}
