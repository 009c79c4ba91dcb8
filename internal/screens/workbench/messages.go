package workbench

import (
	"time"

	"github.com/pydojo/pydojo/internal/engine"
)

// traceDoneMsg is sent when a trace request returns. play marks a
// step-through request, which feeds the playback player instead of the
// output panel.
type traceDoneMsg struct {
	Res  *engine.TraceResult
	Err  error
	play bool
}

// gradeDoneMsg is sent when a grading request returns.
type gradeDoneMsg struct {
	Res *engine.GradeResult
	Err error
}

// playTickMsg advances trace playback by one frame.
type playTickMsg time.Time

// adviceTickMsg polls the tutor service for a pending advice result.
type adviceTickMsg time.Time
