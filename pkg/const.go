package pkg

// Request actions.
const (
	Exit   = "exit"
	Start  = "start"
	Place  = "place"
	Shoot  = "shoot"
	Switch = "switch"
	Board  = "board"
)

// Response actions.
const (
	Register = "register"
	Placed   = "placed"
	Shot     = "shot"
	State    = "state"
	Win      = "win"
	Retry    = "retry"
	Info     = "info"
)

// Roles of a connection at the table.
const (
	Controller = "controller"
	Spectator  = "spectator"
)
