package logger

import (
	"context"
	"os"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/reqs/internal/core/ports"
)

// NodeID identifies the logger node.
const NodeID graft.ID = "adapter.logger"

// EnvLog selects the initial log settings. It holds a comma separated
// list of "debug" and "json"; CLI flags applied later take precedence.
const EnvLog = "REQS_LOG"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return fromEnv(os.Getenv(EnvLog)), nil
		},
	})
}

func fromEnv(value string) *Logger {
	l, _ := New().(*Logger)
	for _, opt := range strings.Split(value, ",") {
		switch strings.ToLower(strings.TrimSpace(opt)) {
		case "debug":
			l.SetVerbose(true)
		case "json":
			l.SetJSON(true)
		}
	}
	return l
}
