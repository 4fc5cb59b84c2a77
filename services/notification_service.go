package services

import (
	"fmt"
	"log"

	"lab-registry-api/config"
	"lab-registry-api/models"

	"gorm.io/gorm"
)

// NotificationService emails the people involved in a record when the
// evaluation concludes. Best effort: failures are logged, never surfaced to
// the request that triggered them.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) correoUsuario(usuID int) (string, bool) {
	var usuario models.Usuario
	if err := s.db.First(&usuario, usuID).Error; err != nil {
		return "", false
	}
	if usuario.UsuCorreo == "" {
		return "", false
	}
	return usuario.UsuCorreo, true
}

func mensajeAprobacion(registro models.RegistroLab) (asunto, cuerpo string) {
	asunto = fmt.Sprintf("Registro %s #%d aprobado", registro.Tipo(), registro.RegistroID())
	cuerpo = fmt.Sprintf(
		"<p>El registro <b>%s #%d</b> fue aprobado por evaluación.</p>"+
			"<p>Los resultados ya pueden compartirse mediante un token de acceso público.</p>",
		registro.Tipo(), registro.RegistroID())
	return asunto, cuerpo
}

func mensajeRechazo(registro models.RegistroLab, motivo string) (asunto, cuerpo string) {
	asunto = fmt.Sprintf("Registro %s #%d rechazado", registro.Tipo(), registro.RegistroID())
	cuerpo = fmt.Sprintf(
		"<p>El registro <b>%s #%d</b> fue rechazado por evaluación.</p>"+
			"<p>Motivo: %s</p>"+
			"<p>Corrija los resultados y vuelva a completar el análisis.</p>",
		registro.Tipo(), registro.RegistroID(), motivo)
	return asunto, cuerpo
}

// NotificarAprobacion tells the registering user that the results of a
// record were approved and can be shared.
func (s *NotificationService) NotificarAprobacion(registro models.RegistroLab) {
	if !config.MailEnabled() {
		return
	}
	correo, ok := s.correoUsuario(registro.RegistradoPor())
	if !ok {
		return
	}

	asunto, cuerpo := mensajeAprobacion(registro)

	go func() {
		if err := config.SendMail([]string{correo}, asunto, cuerpo); err != nil {
			log.Printf("Error enviando notificación de aprobación (registro %s %d): %v",
				registro.Tipo(), registro.RegistroID(), err)
		}
	}()
}

// NotificarRechazo tells the assigned analyst why a record came back.
func (s *NotificationService) NotificarRechazo(registro models.RegistroLab, motivo string) {
	if !config.MailEnabled() {
		return
	}
	analista := registro.AnalistaAsignado()
	if analista == nil {
		return
	}
	correo, ok := s.correoUsuario(*analista)
	if !ok {
		return
	}

	asunto, cuerpo := mensajeRechazo(registro, motivo)

	go func() {
		if err := config.SendMail([]string{correo}, asunto, cuerpo); err != nil {
			log.Printf("Error enviando notificación de rechazo (registro %s %d): %v",
				registro.Tipo(), registro.RegistroID(), err)
		}
	}()
}
