package main

import (
	"log"

	_ "video-sharing/docs"
	"video-sharing/initiator"
)

// @title           video sharing api
// @version         1.0
// @description     Video sharing backend built with golang using the gin framework.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	if err := initiator.Init(); err != nil {
		log.Fatal(err)
	}
}
