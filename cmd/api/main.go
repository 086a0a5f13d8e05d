package main

import (
	"log"
	"net/http"

	"termflow/internal/api"
	"termflow/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	h := api.NewServer(cfg)
	log.Printf("termflow api listening on %s language=%s profile=%s analyzers=%q", cfg.APIAddr, cfg.Language, cfg.ValidationProfile, cfg.NLPAnalyzers)
	if err := http.ListenAndServe(cfg.APIAddr, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
