package main

import (
	_ "paydesk/docs"
	"paydesk/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payments Service API
// @version         1.0
// @description     Payment record ingestion and CRUD service backed by DynamoDB and S3.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
