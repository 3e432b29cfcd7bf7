package services

import (
	"os"

	"github.com/rcampos/vinylstore-backend/internal/domain/errors"
)

// ActivityService expõe o log de atividade da aplicação para admins
type ActivityService struct {
	logFile string
}

// NewActivityService cria um novo ActivityService
func NewActivityService(logFile string) *ActivityService {
	return &ActivityService{logFile: logFile}
}

// ReadActivities retorna o conteúdo do arquivo de log
func (s *ActivityService) ReadActivities() (string, error) {
	data, err := os.ReadFile(s.logFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.ErrActivityLogNotFound
		}
		return "", err
	}
	return string(data), nil
}
