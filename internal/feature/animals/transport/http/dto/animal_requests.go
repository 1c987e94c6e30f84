// Package dto defines request bodies for the animals feature's HTTP transport.
package dto

// CreateAnimalReq is the body of POST /animais/. Every field except
// status and foto is required; nascimento is a date string.
type CreateAnimalReq struct {
	Nome       string `json:"nome" binding:"required"`
	Especie    string `json:"especie" binding:"required"`
	Faca       string `json:"faca" binding:"required"`
	Sexo       string `json:"sexo" binding:"required"`
	Nascimento string `json:"nascimento" binding:"required"`
	Porte      string `json:"porte" binding:"required"`
	Saude      string `json:"saude" binding:"required"`
	Status     string `json:"status"`
	Foto       string `json:"foto"`
}

// RequiredFields lists the mandatory create fields, echoed on 400s.
var RequiredFields = []string{"nome", "especie", "faca", "sexo", "nascimento", "porte", "saude"}

// UpdateAnimalReq is the patch body of PUT /animais/:id. All fields are
// optional; unknown fields are rejected by the handler's decoder.
type UpdateAnimalReq struct {
	Nome       *string `json:"nome"`
	Especie    *string `json:"especie"`
	Faca       *string `json:"faca"`
	Sexo       *string `json:"sexo"`
	Nascimento *string `json:"nascimento"`
	Porte      *string `json:"porte"`
	Saude      *string `json:"saude"`
	Status     *string `json:"status"`
	Foto       *string `json:"foto"`
}
