package main

import (
	_ "farmagest/docs"
	"farmagest/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Farmagest API
// @version         1.0
// @description     Gestão de farmácia (devoluções, orçamentos judiciais e vencidos) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
