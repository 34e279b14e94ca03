package handlers

import (
	"net/http"

	"tickets-api/internal/config"
	"tickets-api/internal/utils"
)

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// Info reports the application name, description and version from config.
func Info(cfg config.Config) http.HandlerFunc {
	body := map[string]string{
		"name":        cfg.AppName,
		"description": cfg.AppDesc,
		"version":     cfg.AppVersion,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, body)
	}
}
