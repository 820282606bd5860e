package main

import (
	"flag"
	"fmt"
	"log"

	"padlet/api/handlers"
	"padlet/api/middleware"
	"padlet/api/routes"
	"padlet/config"
	"padlet/db"
	"padlet/services"

	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	conf, err := config.Load(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	log.Println("Starting server...")

	orm, err := db.Connect(conf)
	if err != nil {
		panic("Failed to connect to the database: " + err.Error())
	}

	storage, err := services.NewStorage(conf.Storage.UploadDir)
	if err != nil {
		panic("Failed to init upload storage: " + err.Error())
	}

	hub := services.NewHub()
	posts := services.NewPostService(orm, hub, storage)
	handler := handlers.NewHandler(posts, hub)

	router := gin.Default()
	router.Use(middleware.PrometheusMiddleware("padlet"))
	router.Use(middleware.BodyLimit(conf.Storage.MaxUploadSize))
	router.LoadHTMLFiles("web/templates/index.html")

	routes.PublicApi(router, handler, "web/static")

	addr := fmt.Sprintf("%s:%d", conf.Backend.Host, conf.Backend.Port)
	if err := router.Run(addr); err != nil {
		panic(err)
	}
}
