package packager

import (
	"github.com/arthur-debert/wspackager/pkg/errors"
	"github.com/arthur-debert/wspackager/pkg/types"
	"github.com/rs/zerolog"
)

// runState records the state transitions of a single run
type runState struct {
	result *Result
	logger zerolog.Logger
}

func (r *runState) enter(state types.State) {
	r.result.State = state
	r.result.History = append(r.result.History, state)
	r.logger.Debug().Str("state", state.String()).Msg("Entering state")
}

func (r *runState) fail(err error) (*Result, error) {
	from := r.result.State
	if !from.CanFail() {
		err = errors.Wrapf(err, errors.ErrInternal, "unexpected failure while %s", from)
	}

	r.logger.Error().
		Err(err).
		Str("state", from.String()).
		Msg("Packaging failed")

	r.enter(types.StateFailed)
	return r.result, err
}
