package lead

// SaveLeadRequest is the landing-page form payload. Field names follow the
// form's input names, so they are camelCase on the wire.
type SaveLeadRequest struct {
	NomeCompleto string `json:"nomeCompleto" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Whatsapp     string `json:"whatsapp" validate:"required"`
}
