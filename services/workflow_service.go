package services

import (
	"errors"
	"fmt"
	"log"

	"lab-registry-api/models"

	"gorm.io/gorm"
)

var (
	ErrRegistroNoEncontrado = errors.New("registro no encontrado")
	ErrTipoRegistroInvalido = errors.New("tipo de registro debe ser 'agua' o 'aba'")
)

// WorkflowService applies role actions to sample records. Every state
// change goes through the transition table in models, so an action applied
// to a record in the wrong state fails before anything is written.
type WorkflowService struct {
	db *gorm.DB
}

func NewWorkflowService(db *gorm.DB) *WorkflowService {
	return &WorkflowService{db: db}
}

// buscarRegistro loads the record of the given kind as its workflow view.
func (s *WorkflowService) buscarRegistro(tipo string, id int) (models.RegistroLab, error) {
	switch tipo {
	case models.TipoAgua:
		var registro models.RegistroAgua
		if err := s.db.First(&registro, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRegistroNoEncontrado
			}
			return nil, err
		}
		return &registro, nil
	case models.TipoAba:
		var registro models.RegistroAba
		if err := s.db.First(&registro, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRegistroNoEncontrado
			}
			return nil, err
		}
		return &registro, nil
	default:
		return nil, ErrTipoRegistroInvalido
	}
}

// aplicar runs one workflow action: load, validate the transition, let the
// caller mutate side-effect fields, persist.
func (s *WorkflowService) aplicar(tipo string, id int, accion models.Accion,
	efectos func(models.RegistroLab)) (models.RegistroLab, error) {

	registro, err := s.buscarRegistro(tipo, id)
	if err != nil {
		return nil, err
	}

	siguiente, err := models.Transicionar(registro.EstadoActual(), accion)
	if err != nil {
		return nil, err
	}

	if efectos != nil {
		efectos(registro)
	}
	registro.CambiarEstado(siguiente)

	if err := s.db.Save(registro).Error; err != nil {
		return nil, fmt.Errorf("error guardando registro %s %d: %w", tipo, id, err)
	}

	log.Printf("Registro %s %d: %s -> %s", tipo, id, accion, siguiente)
	return registro, nil
}

// Asignar puts a pending record in the hands of an analyst. Assigning a
// record that is no longer "Por Asignar" is rejected, both kinds alike.
func (s *WorkflowService) Asignar(tipo string, id, analistaID int) (models.RegistroLab, error) {
	return s.aplicar(tipo, id, models.AccionAsignar, func(r models.RegistroLab) {
		r.AsignarAnalista(analistaID)
	})
}

// Completar submits the analysis for evaluation. Valid from "En Proceso"
// and from "Rechazado" (resubmission); the stored rejection reason is left
// untouched so it stays queryable after the loop.
func (s *WorkflowService) Completar(tipo string, id int) (models.RegistroLab, error) {
	return s.aplicar(tipo, id, models.AccionCompletar, nil)
}

// Aprobar marks an evaluated record as approved.
func (s *WorkflowService) Aprobar(tipo string, id int) (models.RegistroLab, error) {
	return s.aplicar(tipo, id, models.AccionAprobar, nil)
}

// Rechazar sends an evaluated record back to the analyst with a reason.
func (s *WorkflowService) Rechazar(tipo string, id int, motivo string) (models.RegistroLab, error) {
	return s.aplicar(tipo, id, models.AccionRechazar, func(r models.RegistroLab) {
		r.RegistrarRechazo(motivo)
	})
}
