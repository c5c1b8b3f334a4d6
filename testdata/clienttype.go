package client

import (
	"time"
)

type unionClientType struct {
	Success struct {
		ID     int
		Issued time.Time
	}
	Failure struct {
		Error string
		Type  string
	}
	Pending time.Duration
	Closed  struct{}
}
