package main

import (
	"gigflow-api/app"

	_ "github.com/joho/godotenv/autoload"
)

// @title           GigFlow API
// @version         1.0
// @description     Gig marketplace: post gigs, bid on them and hire one freelancer per gig.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

//go:generate swag init -g cmd/app/main.go -d ../../ -o ../../docs

func main() {
	app.Run()
}
