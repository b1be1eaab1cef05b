// Package jsonrepair parses JSON produced by an unreliable text generator.
// Strategies are tried in order and the winning strategy is reported, so
// degraded parses stay visible to callers and logs.
package jsonrepair

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	StrategyDirect   = "direct"
	StrategyRepaired = "repaired"
	StrategySkeleton = "skeleton"
)

// SkeletonSpec carries the request fields the last-resort strategy needs to
// synthesize a placeholder itinerary.
type SkeletonSpec struct {
	Days        int
	Destination string
	Budget      float64
}

type Result struct {
	Value    map[string]interface{}
	Strategy string
}

// Extract returns the substring between the first '{' and the last '}' of a
// raw model response, dropping any prose the model wrapped around the JSON.
func Extract(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return raw[start : end+1], nil
}

var (
	lineCommentRe  = regexp.MustCompile(`(?m)//.*$`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	dayMarkerRe    = regexp.MustCompile(`(?i)"day"\s*:\s*(\d+)`)
)

func parseDirect(input string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(input), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// parseRepaired retries after fixing the malformations models most often
// produce: trailing commas before closers, single-quoted strings, comments.
func parseRepaired(input string) (map[string]interface{}, error) {
	fixed := strings.ReplaceAll(input, ",]", "]")
	fixed = strings.ReplaceAll(fixed, ",}", "}")
	fixed = strings.ReplaceAll(fixed, "'", `"`)
	fixed = lineCommentRe.ReplaceAllString(fixed, "")
	fixed = blockCommentRe.ReplaceAllString(fixed, "")
	return parseDirect(fixed)
}

// parseSkeleton gives up on the payload and synthesizes a minimal itinerary
// from whatever "day": n markers survive in the broken JSON. One placeholder
// activity per discovered day; days 1..N when no marker is found.
func parseSkeleton(input string, spec SkeletonSpec) (map[string]interface{}, error) {
	if spec.Days < 1 {
		return nil, fmt.Errorf("cannot synthesize itinerary without a day count")
	}

	perDayCost := spec.Budget / float64(spec.Days)
	var dailyPlans []interface{}

	matches := dayMarkerRe.FindAllStringSubmatch(input, -1)
	for _, m := range matches {
		if len(dailyPlans) >= spec.Days {
			break
		}
		dayNum, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		dailyPlans = append(dailyPlans, skeletonDay(dayNum, spec.Destination, perDayCost))
	}

	if len(dailyPlans) == 0 {
		for day := 1; day <= spec.Days; day++ {
			dailyPlans = append(dailyPlans, skeletonDay(day, spec.Destination, perDayCost))
		}
	}

	return map[string]interface{}{
		"daily_plans":    dailyPlans,
		"estimated_cost": spec.Budget,
		"tips": []interface{}{
			"Itinerary generation degraded due to a malformed model response. Regenerate the plan for full details.",
		},
	}, nil
}

func skeletonDay(day int, destination string, cost float64) map[string]interface{} {
	return map[string]interface{}{
		"day": day,
		"activities": []interface{}{
			map[string]interface{}{
				"time":           "all day",
				"name":           fmt.Sprintf("Day %d itinerary", day),
				"description":    "Details unavailable due to a generation formatting problem; regenerate the plan",
				"location":       destination,
				"estimated_cost": cost,
			},
		},
	}
}

// Parse runs the strategy chain over a JSON candidate (typically the output of
// Extract). When every strategy fails the returned error cites each failure.
func Parse(input string, spec SkeletonSpec) (*Result, error) {
	var failures []string

	if value, err := parseDirect(input); err == nil {
		return &Result{Value: value, Strategy: StrategyDirect}, nil
	} else {
		failures = append(failures, fmt.Sprintf("%s: %v", StrategyDirect, err))
	}

	if value, err := parseRepaired(input); err == nil {
		return &Result{Value: value, Strategy: StrategyRepaired}, nil
	} else {
		failures = append(failures, fmt.Sprintf("%s: %v", StrategyRepaired, err))
	}

	if value, err := parseSkeleton(input, spec); err == nil {
		return &Result{Value: value, Strategy: StrategySkeleton}, nil
	} else {
		failures = append(failures, fmt.Sprintf("%s: %v", StrategySkeleton, err))
	}

	return nil, fmt.Errorf("all parse strategies failed: %s", strings.Join(failures, "; "))
}
