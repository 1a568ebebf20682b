package domain

import "time"

// Lead is a persisted contact-form submission. Rows are write-once: a lead
// is created by the public endpoint and only ever removed by the admin tools.
type Lead struct {
	ID           int64     `json:"id"`
	NomeCompleto string    `json:"nome_completo"`
	Email        string    `json:"email"`
	Whatsapp     string    `json:"whatsapp"`
	DataCadastro time.Time `json:"data_cadastro"`
	IPAddress    string    `json:"ip_address,omitempty"`
	UserAgent    string    `json:"user_agent,omitempty"`
}
