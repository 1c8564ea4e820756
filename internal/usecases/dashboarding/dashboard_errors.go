package dashboarding

import "errors"

// Erros específicos para o contexto de dashboards. O motor de cálculo em si
// nunca falha (degrada para zero); estes erros cobrem apenas a borda de
// transporte: sessão desconhecida, coluna inexistente, entrada inválida.
var (
	ErrDashboardNotFound = errors.New("dashboard not found")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrEmptyDataset      = errors.New("dataset has no headers")
	ErrDatasetTooLarge   = errors.New("dataset exceeds the row limit")
	ErrInvalidTab        = errors.New("invalid tab")
	ErrGenerateID        = errors.New("error generating dashboard ID")
)
