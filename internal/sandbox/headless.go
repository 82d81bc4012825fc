package sandbox

import "context"

// RunHeadless steps sb without a window, one clock delta per frame, for the given number of
// frames (0 means until ctx is done). Every reportEvery frames the stats line is logged
// (0 disables periodic reports); a final report is always logged.
// Returns ctx.Err() when stopped by the context.
func RunHeadless(ctx context.Context, sb *Sandbox, clock Clock, frames, reportEvery int) error {
	defer func() { sb.log.Log("headless done: " + sb.Stats().String()) }()
	for i := 0; frames <= 0 || i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		sb.Update(clock.Delta())
		if reportEvery > 0 && (i+1)%reportEvery == 0 {
			sb.log.Log(sb.Stats().String())
		}
	}
	return nil
}
