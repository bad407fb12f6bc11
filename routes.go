package main

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/rs/cors"
)

func (app *application) routes() http.Handler {
	standard := alice.New(app.recoverPanic, app.logRequest, secureHeaders, app.maxBody)
	admin := standard.Append(app.sessions.RequireAdmin)

	mux := http.NewServeMux()

	// Storefront
	mux.Handle("GET /api/categories", standard.ThenFunc(app.catalogHandler.HandleGetCategories))
	mux.Handle("GET /api/products", standard.ThenFunc(app.catalogHandler.HandleGetProducts))

	// Session. The logout literal takes precedence over the password
	// wildcard on the same segment.
	mux.Handle("GET /admin/logout", standard.ThenFunc(app.sessions.HandleLogout))
	mux.Handle("GET /admin/{password}", standard.ThenFunc(app.sessions.HandleLogin))
	mux.Handle("GET /api/admin/check-auth", standard.ThenFunc(app.sessions.HandleCheckAuth))

	// Admin categories
	mux.Handle("GET /api/admin/categories", admin.ThenFunc(app.categoryHandler.HandleList))
	mux.Handle("POST /api/admin/categories", admin.ThenFunc(app.categoryHandler.HandleCreate))
	mux.Handle("PUT /api/admin/categories/{id}", admin.ThenFunc(app.categoryHandler.HandleUpdate))
	mux.Handle("DELETE /api/admin/categories/{id}", admin.ThenFunc(app.categoryHandler.HandleDelete))

	// Admin products
	mux.Handle("POST /api/admin/products", admin.ThenFunc(app.productHandler.HandleCreate))
	mux.Handle("GET /api/admin/products/{id}", admin.ThenFunc(app.productHandler.HandleGet))
	mux.Handle("PUT /api/admin/products/{id}", admin.ThenFunc(app.productHandler.HandleUpdate))
	mux.Handle("DELETE /api/admin/products/{id}", admin.ThenFunc(app.productHandler.HandleDelete))

	// Uploaded images, served verbatim from the upload root.
	static := http.StripPrefix(app.cfg.UploadPrefix+"/", http.FileServer(http.Dir(app.cfg.UploadDir)))
	mux.Handle("GET "+app.cfg.UploadPrefix+"/", standard.Then(static))

	c := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	return c.Handler(mux)
}
