package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/Universalis/internal/game"
	"github.com/mitchelldurbincs/Universalis/internal/game/core"
)

// report is the end of run summary
type report struct {
	GameID      string        `yaml:"game_id"`
	Seed        int64         `yaml:"seed"`
	Finished    bool          `yaml:"finished"`
	Result      game.Result   `yaml:"result"`
	Fingerprint string        `yaml:"fingerprint"`
	Final       core.Snapshot `yaml:"final"`
}

func newReport(gameID string, seed int64, res game.Result, finished bool, final core.Snapshot) report {
	return report{
		GameID:      gameID,
		Seed:        seed,
		Finished:    finished,
		Result:      res,
		Fingerprint: final.Fingerprint(),
		Final:       final,
	}
}

// Text renders the report for a terminal
func (r report) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Game %s (seed %d)\n", r.GameID, r.Seed)
	if r.Finished {
		fmt.Fprintf(&sb, "Outcome: %s\n", r.Result.Outcome)
		fmt.Fprintf(&sb, "Winner: %s\n", r.Result.Winner)
	} else {
		sb.WriteString("Outcome: unfinished\n")
	}
	fmt.Fprintf(&sb, "Rounds: %d (idle %d)\n", r.Result.Turns, r.Result.IdleTurns)
	fmt.Fprintf(&sb, "Fingerprint: %s\n", r.Fingerprint)
	for _, n := range r.Final.Nations {
		fmt.Fprintf(&sb, "  %s: provinces=%d, totalDev=%d, army=%d\n", n.Name, n.ProvinceCount, n.TotalDevelopment, n.Army)
	}
	return sb.String()
}

// writeReport writes r in format to path, or to out when path is empty
func writeReport(r report, format, path string, out io.Writer) error {
	var data []byte
	switch format {
	case "none":
		return nil
	case "yaml":
		var err error
		data, err = yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	default:
		data = []byte(r.Text())
	}

	if path == "" {
		_, err := out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
