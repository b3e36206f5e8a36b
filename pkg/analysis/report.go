package analysis

import (
	"encoding/json"
	"strings"
)

// Report describes how a puzzle's stored answer relates to the position.
type Report struct {
	Title  string `json:"title"`
	FEN    string `json:"fen"`
	Answer string `json:"answer"`

	// Checked is false when the position cannot be played, e.g. a side has no king.
	Checked   bool   `json:"checked"`
	Legal     bool   `json:"legal"`
	AnswerSAN string `json:"answer_san,omitempty"`
	AnswerUCI string `json:"answer_uci,omitempty"`
	Note      string `json:"note,omitempty"`

	EngineMoves  []string `json:"engine_moves,omitempty"`
	Mate         bool     `json:"mate,omitempty"`
	Score        int      `json:"score,omitempty"`
	AnswerIsBest bool     `json:"answer_is_best,omitempty"`
}

func (r Report) String() string {
	j, _ := json.MarshalIndent(r, "", "\t")
	return string(j)
}

// NormalizeAnswer turns the catalog's loose notation ("Q x c6") into SAN ("Qxc6").
func NormalizeAnswer(answer string) string {
	return strings.Join(strings.Fields(answer), "")
}
