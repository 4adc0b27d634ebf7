package main

import (
	"fmt"

	"github.com/FumiZwerg/ClimateLens-Backend/internal/api"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/logger"
)

func main() {
	err := api.RunAPI()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run weather station api: %v", err))
	}
}
