package rest

import "github.com/rocketscienceinc/tictactoe-api/internal/entity"

type createGameRequest struct {
	Mode         string `json:"mode"`
	Player1      string `json:"player_1"`
	Player2      string `json:"player_2"`
	StartingPawn string `json:"starting_pawn"`
}

func (that *createGameRequest) toConfig() entity.GameConfig {
	return entity.GameConfig{
		Mode:         entity.Mode(that.Mode),
		Player1:      that.Player1,
		Player2:      that.Player2,
		StartingPawn: that.StartingPawn,
	}
}

// row and column are pointers so that a missing value is told apart from 0.
type makeMoveRequest struct {
	GameID string `json:"game_id" binding:"required"`
	Pawn   string `json:"pawn" binding:"required"`
	Row    *int   `json:"row" binding:"required"`
	Column *int   `json:"column" binding:"required"`
}

type gameResponse struct {
	GameID     string        `json:"game_id"`
	GameBoard  entity.Board  `json:"game_board"`
	GameStatus entity.Status `json:"game_status"`
	Player1    string        `json:"player_1"`
	Player2    string        `json:"player_2"`
	PlayerTurn string        `json:"player_turn"`
}

type gameWithMovesResponse struct {
	gameResponse

	Moves []moveResponse `json:"moves"`
}

type moveResponse struct {
	Pawn    string `json:"pawn"`
	Row     int    `json:"row"`
	Column  int    `json:"column"`
	Created string `json:"created"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func newGameResponse(game *entity.Game) gameResponse {
	return gameResponse{
		GameID:     game.ID,
		GameBoard:  game.Board,
		GameStatus: game.Status,
		Player1:    game.Player1,
		Player2:    game.Player2,
		PlayerTurn: game.PlayerTurn,
	}
}

func newGameWithMovesResponse(game *entity.Game) gameWithMovesResponse {
	moves := make([]moveResponse, 0, len(game.Moves))
	for _, move := range game.Moves {
		moves = append(moves, moveResponse{
			Pawn:    move.Pawn,
			Row:     move.Row,
			Column:  move.Column,
			Created: entity.FormatTime(move.Created),
		})
	}

	return gameWithMovesResponse{
		gameResponse: newGameResponse(game),
		Moves:        moves,
	}
}
