package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/rs/cors"

	"blog-agent/api/router"
	"blog-agent/config"
	_ "blog-agent/docs" // swag will generate this package
	"blog-agent/logger"
)

// @title           Blog Agent Callback API
// @version         1.0
// @description     Receives note callbacks and returns rendered blog post fragments
// @BasePath        /
func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	r := router.New()
	handler := cors.AllowAll().Handler(r)

	port := 5000
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid PORT value %q: %v", v, err)
		}
		port = p
	}

	logger.Log.Infof("listening on :%d", port)
	if err := http.ListenAndServe(":"+strconv.Itoa(port), handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
