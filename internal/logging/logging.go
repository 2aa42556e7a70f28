package logging

import (
	"log"
	"os"
)

// Loggers for the two output streams. Startup progress and request traffic
// go to Info; failures go to Error.
var (
	Info  = log.New(os.Stdout, "", log.LstdFlags)
	Error = log.New(os.Stderr, "", log.LstdFlags)
)
