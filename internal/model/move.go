package model

// Move is a request to move the piece on From to To.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Ply is an accepted move as recorded in the game history.
type Ply struct {
	Piece         Piece  `json:"piece"`
	From          Square `json:"from"`
	To            Square `json:"to"`
	CapturedPiece *Piece `json:"capturedPiece"`
}
