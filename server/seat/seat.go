package seat

//go:generate mockery -name=Connection -output=automock -outpkg=automock -case=underscore
type Connection interface {
	WriteMessage(int, []byte) error
	Close() error
	ReadMessage() (int, []byte, error)
}

// Seat is one connection at the table. Only the controller issues commands, spectators
// receive the same event stream.
type Seat struct {
	Conn Connection
	Id   string
	Role string
}
