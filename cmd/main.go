package main

import (
	"github.com/ram2117/Nutri-Track/config"
	"github.com/ram2117/Nutri-Track/routes"
	"github.com/ram2117/Nutri-Track/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	keys := config.NewFileKeyStore()
	r := routes.SetupRouter(keys)
	r.Run(":8080")
}
