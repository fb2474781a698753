package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Games      int
	Workers    int
	MaxPieces  int
	Seed       uint64
	Randomizer string
	Frame      time.Duration

	// Results
	TotalTime time.Duration
	GameOvers int
	Score     Stats[int]
	Lines     Stats[int]
	Level     Stats[int]
	Pieces    Stats[int]
	Simulated Stats[time.Duration]
	Wall      Stats[time.Duration]
	Ticks     int64
	Commands  int64
	Rejected  int64
	Best      GameResult

	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type number interface {
	~int | ~int64
}

type Stats[T number] struct {
	Min     T
	Max     T
	Avg     T
	Samples []T
}

func (s *Stats[T]) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total T
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / T(len(s.Samples))
}

// Add folds the game results into the report and finalizes the stats.
func (r *Report) Add(results []GameResult) {
	for i, g := range results {
		r.Score.Samples = append(r.Score.Samples, g.Score)
		r.Lines.Samples = append(r.Lines.Samples, g.Lines)
		r.Level.Samples = append(r.Level.Samples, g.Level)
		r.Pieces.Samples = append(r.Pieces.Samples, g.Pieces)
		r.Simulated.Samples = append(r.Simulated.Samples, g.Simulated)
		r.Wall.Samples = append(r.Wall.Samples, g.Wall)
		r.Ticks += g.Driver.Ticks
		r.Commands += g.Driver.Commands
		r.Rejected += g.Driver.Rejected
		if g.GameOver {
			r.GameOvers++
		}
		if i == 0 || g.Score > r.Best.Score {
			r.Best = g
		}
	}

	r.Score.Finalize()
	r.Lines.Finalize()
	r.Level.Finalize()
	r.Pieces.Finalize()
	r.Simulated.Finalize()
	r.Wall.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# blockfall Simulation Report

## Configuration
- **Games:** {{.Games}} on {{.Workers}} workers
- **Piece Limit:** {{.MaxPieces}}
- **Seeds:** {{.Seed}} to {{seedEnd .Seed .Games}}
- **Randomizer:** {{.Randomizer}}
- **Frame Step:** {{.Frame}}

## Results
- **Total Time:** {{.TotalTime}}
- **Game Overs:** {{.GameOvers}} of {{.Games}}
- **Score:** avg {{.Score.Avg}}, min {{.Score.Min}}, max {{.Score.Max}}
- **Lines:** avg {{.Lines.Avg}}, min {{.Lines.Min}}, max {{.Lines.Max}}
- **Level:** avg {{.Level.Avg}}, min {{.Level.Min}}, max {{.Level.Max}}
- **Pieces:** avg {{.Pieces.Avg}}, min {{.Pieces.Min}}, max {{.Pieces.Max}}
- **Simulated Game Time:** avg {{.Simulated.Avg}}, min {{.Simulated.Min}}, max {{.Simulated.Max}}
- **Wall Time per Game:** avg {{.Wall.Avg}}, min {{.Wall.Min}}, max {{.Wall.Max}}

## Driver Totals
- **Ticks:** {{.Ticks}}
- **Commands:** {{.Commands}} ({{.Rejected}} rejected)

## Memory Usage (Raw Bytes)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

## Best Game (seed {{.Best.Seed}}, score {{.Best.Score}})
` + "```" + `
{{.Best.Board}}
` + "```" + `
`

	fm := template.FuncMap{
		"seedEnd": func(seed uint64, games int) uint64 {
			return seed + uint64(max(games-1, 0))
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
