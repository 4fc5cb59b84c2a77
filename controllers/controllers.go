package controllers

import (
	"lab-registry-api/config"
	"lab-registry-api/services"
)

var (
	workflowService     *services.WorkflowService
	tokenService        *services.TokenService
	pdfService          *services.PdfService
	notificationService *services.NotificationService
)

// Init wires the controller package to its services. Must run after
// config.InitDB.
func Init() {
	workflowService = services.NewWorkflowService(config.DB)
	tokenService = services.NewTokenService(config.DB)
	pdfService = services.NewPdfService(config.DB)
	notificationService = services.NewNotificationService(config.DB)
}

// TokenManager exposes the token service for the cleanup task.
func TokenManager() *services.TokenService {
	return tokenService
}
