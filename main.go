package main

import (
	"log"

	"Balaji/FiberConfig"
	"Balaji/Models"
	"Balaji/config"
)

func main() {
	cfg := config.Load()

	db, err := Models.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	FiberConfig.FiberConfig(db, cfg)
}
