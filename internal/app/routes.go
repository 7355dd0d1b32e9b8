package app

import (
	"hash/maphash"
	"math/rand/v2"
	"net/http"

	"github.com/vancomm/mines-engine/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.limits, a.ws, createRand())

	p := a.basePath
	a.router.HandleFunc("POST "+p+"/game", game.NewGame)
	a.router.HandleFunc("GET "+p+"/game/{id}", game.Fetch)
	a.router.HandleFunc("DELETE "+p+"/game/{id}", game.Delete)
	a.router.HandleFunc("GET "+p+"/game/{id}/render", game.Render)
	a.router.HandleFunc("POST "+p+"/game/{id}/open", game.Open)
	a.router.HandleFunc("POST "+p+"/game/{id}/flag", game.Flag)
	a.router.HandleFunc("POST "+p+"/game/{id}/chord", game.Chord)
	a.router.HandleFunc("POST "+p+"/game/{id}/batch", game.Batch)
	a.router.HandleFunc("GET "+p+"/game/{id}/connect", game.ConnectWS)

	a.router.HandleFunc("GET "+p+"/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}
