package main

import (
	"log"

	"statclass/ui"
)

func main() {
	app, err := ui.NewApp(ui.AppConfig{
		Port: "8080",
	})
	if err != nil {
		log.Fatal("Failed to create UI app:", err)
	}

	log.Println("Starting statclass UI on http://localhost:8080")
	log.Fatal(app.Start())
}
