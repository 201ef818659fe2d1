package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"

	pyroscope "github.com/grafana/pyroscope-go"

	"main/internal/bus"
	"main/internal/obs"
	"main/internal/opra"
	"main/internal/ops"
	"main/internal/pipeline"
	"main/internal/render"
)

func main() {
	configPath := flag.String("config", "", "JSON config file")
	input := flag.String("input", "", "capture file (overrides config)")
	format := flag.String("format", "", "input format: hex or bin (overrides config)")
	workers := flag.Int("workers", 0, "decode workers (overrides config)")
	noRender := flag.Bool("no-render", false, "suppress rendered output")
	pyro := flag.String("pyroscope", "", "pyroscope server address (empty=disabled)")
	flag.Parse()

	var cfg ops.FileConfig
	if *configPath != "" {
		loaded, err := ops.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		cfg = loaded
	}
	if *input != "" {
		cfg.Input.Path = *input
	}
	if *format != "" {
		cfg.Input.Format = *format
	}
	if *workers > 0 {
		cfg.Decode.Workers = *workers
	}
	if *noRender {
		off := false
		cfg.Render = &off
	}

	resolved, err := ops.Resolve(cfg)
	if err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	if *pyro != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "opradump",
			ServerAddress:   *pyro,
			Logger:          emptyLogger{},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	records, err := ops.ReadRecords(resolved.InputPath, resolved.Format)
	if err != nil {
		log.Fatalf("input read failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := obs.NewMetrics()
	queue := bus.NewQueue(resolved.QueueCapacity)

	go func() {
		for i, rec := range records {
			if err := queue.TryPublish(bus.Datagram{Source: uint32(i), Payload: rec}); err != nil {
				metrics.IncQueueDrop()
				log.Printf("record %d dropped: %v", i, err)
			}
		}
		queue.Close()
	}()

	var mu sync.Mutex
	pool := &pipeline.Pool{Workers: resolved.Workers, Metrics: metrics}
	pool.Run(ctx, queue, func(r pipeline.Result) {
		if !resolved.Render {
			return
		}
		lines := render.Lines(r.Block, r.Anomalies)
		mu.Lock()
		defer mu.Unlock()
		fmt.Printf("record %d\n", r.Source)
		for _, line := range lines {
			fmt.Println(line)
		}
		if r.Err != nil {
			fmt.Printf("  error: %v\n", r.Err)
		}
	})

	printSnapshot(metrics.Snapshot())
}

func printSnapshot(s obs.Snapshot) {
	log.Printf("blocks=%d truncations=%d drops=%d", s.Blocks, s.Truncations, s.QueueDrops)

	categories := make([]byte, 0, len(s.MessageCounts))
	for cat := range s.MessageCounts {
		categories = append(categories, byte(cat))
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	for _, cat := range categories {
		log.Printf("messages %q: %d", cat, s.MessageCounts[opra.Category(cat)])
	}

	kinds := make([]int, 0, len(s.AnomalyCounts))
	for kind := range s.AnomalyCounts {
		kinds = append(kinds, int(kind))
	}
	sort.Ints(kinds)
	for _, kind := range kinds {
		k := opra.AnomalyKind(kind)
		log.Printf("anomalies %s: %d", k, s.AnomalyCounts[k])
	}

	if l := s.DecodeLatency; l.Count > 0 {
		log.Printf("decode latency min=%s max=%s avg=%s", l.Min, l.Max, l.Avg)
	}
}

type emptyLogger struct{}

func (emptyLogger) Infof(_ string, _ ...interface{})  {}
func (emptyLogger) Debugf(_ string, _ ...interface{}) {}
func (emptyLogger) Errorf(_ string, _ ...interface{}) {}
