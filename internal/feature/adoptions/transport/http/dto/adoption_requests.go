// Package dto defines request bodies for the adoptions feature's HTTP transport.
package dto

// RescueReq is the body of POST /doacoes/resgate. The responsible user
// comes from the authenticated identity, never from the body.
type RescueReq struct {
	DataResgate string `json:"data_resgate" binding:"required"`
	Observacoes string `json:"observacoes"`
	AnimalID    uint   `json:"id_animais" binding:"required"`
}

// AdoptReq is the body of POST /doacoes/adocao. ID names the rescue
// record being concluded; observacoes, when present, replaces the notes
// written at rescue time.
type AdoptReq struct {
	ID          uint    `json:"id" binding:"required"`
	DataAdocao  string  `json:"data_adocao" binding:"required"`
	Observacoes *string `json:"observacoes"`
}

// NotesReq is the body of PUT /doacoes/:id/observacoes.
type NotesReq struct {
	Observacoes string `json:"observacoes"`
}
