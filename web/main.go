package main

import (
	"flag"
	"log"
	"os"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/daycycle"
	"github.com/mfigueroa/go-diorama-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port, daycycle.DefaultCycle(), log.Default())

	log.Printf("Diorama Raytracer Preview Server")
	log.Printf("Visit http://localhost:%d/frame?time=0.25 to render", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
