package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/signalsfoundry/hexsphere/coverage"
	"github.com/signalsfoundry/hexsphere/geojson"
)

func main() {
	missionPath := flag.String("mission", "configs/missions/iss.yaml", "path to a YAML mission description")
	geojsonOut := flag.String("geojson", "", "write covered cells as a GeoJSON FeatureCollection to this file")
	showTrack := flag.Bool("track", false, "print every ground track sample")
	replaySpeed := flag.Float64("replay", 0, "replay the track at this multiple of real time (0 disables)")
	flag.Parse()

	mission, err := coverage.LoadMission(*missionPath)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Running mission %q: start=%s duration=%s step=%s resolution=%d swath=%d\n",
		mission.Name, mission.Start.Format(time.RFC3339), mission.Duration, mission.Step,
		mission.Resolution, mission.SwathK)

	report, err := coverage.Run(ctx, mission)
	if err != nil {
		panic(err)
	}

	switch {
	case *replaySpeed > 0:
		replayer := coverage.NewReplayer(report.Points, *replaySpeed)
		replayer.OnSample(printSample)
		<-replayer.Start(ctx)
	case *showTrack:
		for _, p := range report.Points {
			printSample(p)
		}
	}

	fmt.Printf("Covered %d cells (%.0f km²), compacted to %d\n",
		len(report.Cells), report.AreaKm2, len(report.Compacted))

	if *geojsonOut != "" {
		fc, err := geojson.CellCollection(report.Cells)
		if err != nil {
			panic(err)
		}
		data, err := json.MarshalIndent(fc, "", "  ")
		if err != nil {
			panic(err)
		}
		if err := os.WriteFile(*geojsonOut, data, 0o644); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %s\n", *geojsonOut)
	}
}

func printSample(p coverage.Point) {
	fmt.Printf("[%s] lat=%8.3f lng=%9.3f alt=%7.1f km cell=%s\n",
		p.Time.Format(time.RFC3339), p.Position.Lat, p.Position.Lng, p.AltitudeKm, p.Cell)
}
