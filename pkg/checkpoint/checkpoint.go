// Package checkpoint reads the reducer/limiter configuration files dropped
// to disk between training runs: JSON files named checkpoint<unix-seconds>
// in a directory, of which the most recent is loaded. Missing or
// unparseable files are tolerated, not fatal, since a checkpoint is an
// optimization, not a requirement for starting a search.
package checkpoint

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gridmcts/engine/pkg/mcts"
	"github.com/gridmcts/engine/pkg/reducer"
)

const filePrefix = "checkpoint"

// file is the on-disk JSON shape.
type file struct {
	C            float32    `json:"c"`
	ELThreshold  float32    `json:"el_threshold"`
	Decay1       float32    `json:"decay_1"`
	Decay2       float32    `json:"decay_2"`
	WinReward1   [2]float32 `json:"win_reward_1"`
	WinReward2   [2]float32 `json:"win_reward_2"`
}

// Load finds the most recent checkpoint<seconds> file in dir and applies its
// fields onto base, returning the merged configuration. A missing directory,
// an unreadable file, or unparseable JSON is tolerated: base is returned
// unchanged along with a nil error, since a checkpoint is an optimization,
// not a requirement for starting a search.
func Load(dir string, base mcts.Config) (mcts.Config, error) {
	path, ok, err := latest(dir)
	if err != nil || !ok {
		return base, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return base, nil
	}

	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return base, nil
	}

	cfg := base
	cfg.ExplorationC = f.C
	cfg.LimiterThreshold = f.ELThreshold
	cfg.Reducer.Sides[0] = reducer.SideConfig{Kind: reducer.Decay, Decay: f.Decay1, OnWin: f.WinReward1[0], OnTie: f.WinReward1[1]}
	cfg.Reducer.Sides[1] = reducer.SideConfig{Kind: reducer.Decay, Decay: f.Decay2, OnWin: f.WinReward2[0], OnTie: f.WinReward2[1]}
	return cfg, nil
}

// latest returns the path of the checkpoint file in dir with the largest
// embedded Unix-seconds suffix, skipping malformed filenames. A missing
// directory yields ok == false; any other directory read error is returned.
func latest(dir string) (path string, ok bool, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}

	var bestName string
	var bestSeconds int64 = -1
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		name := ent.Name()
		if !strings.HasPrefix(name, filePrefix) {
			continue
		}
		secs, err := strconv.ParseInt(strings.TrimPrefix(name, filePrefix), 10, 64)
		if err != nil {
			continue
		}
		if secs > bestSeconds {
			bestSeconds = secs
			bestName = name
		}
	}
	if bestName == "" {
		return "", false, nil
	}
	return filepath.Join(dir, bestName), true, nil
}
