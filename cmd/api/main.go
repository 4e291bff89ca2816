package main

import (
	_ "moturial_payments/docs"
	"moturial_payments/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Moturial Payments API
// @version         1.0
// @description     Motorcycle rental payments (card, PIX, boleto) over Mercado Pago, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
