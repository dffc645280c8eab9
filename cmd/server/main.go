package main

import (
	"log"
	"net/http"
	"os"

	"gaflight/internal/api"
)

func main() {
	handler := api.New()

	port := getPort()
	log.Printf("Server listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "4000"
}
