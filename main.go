package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/Snoupix/sharify-be/logs"
	"github.com/Snoupix/sharify-be/server"
	server_handlers "github.com/Snoupix/sharify-be/server/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		panic(fmt.Sprint("failed to load .env file: ", err))
	}

	logs.LogInit(server_handlers.ServerName)
	logs.Logger.Info(fmt.Sprint("inside main of ", server_handlers.ServerName))

	sr, _, e := server.Init()
	if e != nil {
		logs.Logger.Error(e.Error())
		logs.Logger.Error("Failed to Start Server - error while setting up room manager")
		return
	}

	server.Launch(sr)
}
