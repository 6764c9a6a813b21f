package game

const (
	DefaultPlayer1Name = "Player1"
	DefaultPlayer2Name = "Player2"
)

// Factory builds games with two named players, each on a fresh grid.
type Factory struct {
	player1Name string
	player2Name string
	maxVessels  int
}

//NewFactory returns a factory for the given player names. Empty names are replaced by
//DefaultPlayer1Name and DefaultPlayer2Name.
func NewFactory(player1Name, player2Name string) *Factory {
	if player1Name == "" {
		player1Name = DefaultPlayer1Name
	}
	if player2Name == "" {
		player2Name = DefaultPlayer2Name
	}
	return &Factory{
		player1Name: player1Name,
		player2Name: player2Name,
		maxVessels:  DefaultMaxVessels,
	}
}

// WithMaxVessels sets how many vessels each player places in created games.
func (f *Factory) WithMaxVessels(n int) *Factory {
	f.maxVessels = n
	return f
}

func (f *Factory) Create() *Game {
	p1 := NewPlayer(f.player1Name, NewGrid())
	p2 := NewPlayer(f.player2Name, NewGrid())
	return NewGame(p1, p2, f.maxVessels)
}
