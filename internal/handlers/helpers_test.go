package handlers

import (
	"net/http"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
)

func newRouter(method, path string, h drift.HandlerFunc) http.Handler {
	app := drift.New()
	app.Use(driftmw.BodyParser())

	switch method {
	case http.MethodGet:
		app.Get(path, h)
	case http.MethodPost:
		app.Post(path, h)
	case http.MethodPatch:
		app.Patch(path, h)
	case http.MethodDelete:
		app.Delete(path, h)
	}
	return app
}
