package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/evidence-for-accountability/ecc-tracker-api/api/handlers"
	"github.com/evidence-for-accountability/ecc-tracker-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //seed the session dataset and router
		log.Fatal(err)
	}

	port := a.Config.Port
	if port == "" {
		port = "8080"
	}
	zap.S().Infow("ecc-tracker-api is up and running",
		"port", port,
		"url", a.Config.BaseUrl,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
