package puzzle

var chessPuzzles = []ChessPuzzle{
	{
		White:  []string{"Ka1", "Pa2", "Pa3", "Ra4"},
		Black:  []string{"Qc3", "Rh7", "Bf7", "Pa7", "Pb7", "Pc7", "Kb8"},
		Title:  "Wo...run!",
		Answer: "Kb1",
		ToMove: White,
	},
	{
		White:  []string{"Kb1", "Pb2", "Pc3"},
		Black:  []string{"Qb5", "Bf6"},
		Title:  "No way!",
		Answer: "B x c3",
		ToMove: Black,
	},
	{
		White:  []string{"Kb1"},
		Black:  []string{"Rc2", "Kb8", "Bc3", "Bb3", "Ne3"},
		Title:  "How is it possible?",
		Answer: "Ba2#",
		ToMove: Black,
	},
	{
		White:  []string{"Kg1", "Pf2", "Pg2", "Ph2", "Rb1", "Qc2"},
		Black:  []string{"Pc7", "Pb7", "Pa7", "Kb8", "Qf8", "Nc6"},
		Title:  "What on earth!",
		Answer: "Q x c6",
		ToMove: White,
	},
	{
		White:  []string{"Kb1", "Qd2", "Rd1"},
		Black:  []string{"Pc7", "Pb7", "Pa7", "Kb8", "Rh8"},
		Title:  "Oh my golly!",
		Answer: "Qd8+",
		ToMove: White,
	},
	{
		White:  []string{"Ra1", "Pa2", "Rd1", "Pe3", "Pf2", "Kf1", "Nd5"},
		Black:  []string{"Kd8", "Pe7", "Pf7", "Pg7", "Qg4"},
		Title:  "Cheeses!",
		Answer: "Nf6+",
		ToMove: White,
	},
}

var footballPuzzles = []FootballPuzzle{
	{
		Image:  "images/football1.png",
		Title:  "Tactical Challenge 1",
		Answer: "This shows your white team kicking the ball up the pitch and scoring!",
	},
	{
		Image:  "images/football2.png",
		Title:  "Complex Formation",
		Answer: "This shows your white team kicking the ball up the pitch and scoring!",
	},
	{
		Image:  "images/football3.png",
		Title:  "Field Positioning",
		Answer: "The goalie and defenders are out of position! Kick the ball to the top left and score in the gap behind the goalie.",
	},
	{
		Image:  "images/football4.png",
		Title:  "Ball Control Challenge",
		Answer: "Dribble towards your opponent's goal (the one that they are defending) and then pass to number 70.",
	},
	{
		Image:  "images/football5.jpg",
		Title:  "What can you do?",
		Answer: "Mark player 70.",
	},
}

// BuiltinChess returns the chess puzzles shipped with the slideshow.
func BuiltinChess() []ChessPuzzle {
	res := make([]ChessPuzzle, 0, len(chessPuzzles))
	for _, p := range chessPuzzles {
		res = append(res, p.clone())
	}
	return res
}

// BuiltinFootball returns the football puzzles shipped with the slideshow.
func BuiltinFootball() []FootballPuzzle {
	return append([]FootballPuzzle(nil), footballPuzzles...)
}
