package main

import (
	"net/http"

	"github.com/km-arc/go-ioc/framework/app"
	gohttp "github.com/km-arc/go-ioc/framework/http"
)

func main() {
	application := app.New() // loads .env automatically

	// A request-scoped greeting, resolved fresh per request from the scope
	// the per-request middleware opens — demonstrates perRequest lifecycle
	// alongside the singleton services the core providers set up.
	application.Bind("greeting", func() any { return "Welcome to go-ioc!" })

	application.Boot()

	r := application.Router()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		scope := application.Scope(req)
		greeting, err := scope.Get("greeting")
		if err != nil {
			res.Error(http.StatusInternalServerError, err.Error())
			return
		}
		res.Success(map[string]any{"message": greeting})
	})

	// Boot() already wired GET /_container/inspect against this same scope.

	application.Run()
}
