package command

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Commander[StartParkingSessionMessage] = (*StartParkingSessionCommand)(nil)
	_ gocmd.Commander[VerifyCredentialsMessage]   = (*VerifyCredentialsCommand)(nil)
)
