package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/logging"
	"github.com/they4kman/termsweep/scores"
)

// newGameEndHandler saves finished boards and records winning times. Failures
// are logged; they never interrupt the game.
func newGameEndHandler(snapshotsDir string, scoreboard *scores.Scoreboard) func(game.Result) {
	return func(result game.Result) {
		log := logging.Log.WithFields(logrus.Fields{
			"difficulty": result.Difficulty,
			"state":      result.State,
		})

		if snapshotsDir != "" {
			path, err := game.SaveSnapshot(snapshotsDir, result.Board, result.State, result.EndedAt)
			if err != nil {
				log.WithError(err).Error("unable to save snapshot")
			} else {
				log.WithField("path", path).Debug("snapshot saved")
			}
		}

		if scoreboard == nil || !result.Won() || result.FromSnapshot {
			return
		}

		rank := scoreboard.Record(result.Difficulty, result.Elapsed, result.EndedAt)
		if rank == 0 {
			return
		}
		if err := scoreboard.Save(); err != nil {
			log.WithError(err).Error("unable to save scoreboard")
			return
		}
		log.WithFields(logrus.Fields{
			"rank":    rank,
			"elapsed": result.Elapsed,
		}).Info("new high score")
	}
}
