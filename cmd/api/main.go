package main

import (
	_ "webatelier/docs"
	"webatelier/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Webatelier Ordering API
// @version         1.0
// @description     Order wizard and admin dashboard for the website-design service.

// @contact.name   API Support
// @contact.email  support@webatelier.example

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
