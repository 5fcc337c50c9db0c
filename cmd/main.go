package main

import (
	"github.com/thats-dominik/athlena/config"
	"github.com/thats-dominik/athlena/routes"
	"github.com/thats-dominik/athlena/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter(config.DB)
	r.Run(":8080")
}
