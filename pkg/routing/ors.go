// Package routing wraps the OpenRouteService HTTP API for delivery route
// planning. The client is safe to construct without an API key; calls then
// return ErrDisabled so trip planning degrades to manual stop ordering.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrDisabled is returned when no API key is configured
var ErrDisabled = errors.New("routing: no API key configured")

// Coordinate is a [lng, lat] pair as OpenRouteService expects
type Coordinate [2]float64

// Route is a computed driving route over an ordered set of coordinates
type Route struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Geometry        string  `json:"geometry"` // encoded polyline
}

// Client calls the OpenRouteService API
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates an OpenRouteService client. An empty API key yields a
// disabled client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether the client can make API calls
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Directions computes a driving route visiting the coordinates in order
func (c *Client) Directions(ctx context.Context, coords []Coordinate) (*Route, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	if len(coords) < 2 {
		return nil, errors.New("routing: at least two coordinates required")
	}

	body := map[string]interface{}{
		"coordinates": coords,
	}

	var response struct {
		Routes []struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
			Geometry string `json:"geometry"`
		} `json:"routes"`
	}

	if err := c.post(ctx, "/v2/directions/driving-car", body, &response); err != nil {
		return nil, err
	}

	if len(response.Routes) == 0 {
		return nil, errors.New("routing: no route found")
	}

	r := response.Routes[0]
	return &Route{
		DistanceMeters:  r.Summary.Distance,
		DurationSeconds: r.Summary.Duration,
		Geometry:        r.Geometry,
	}, nil
}

// Optimize orders the job coordinates into the shortest round trip starting
// and ending at depot. It returns indexes into jobs in visit order.
func (c *Client) Optimize(ctx context.Context, depot Coordinate, jobs []Coordinate) ([]int, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	if len(jobs) == 0 {
		return nil, errors.New("routing: no jobs to optimize")
	}

	type job struct {
		ID       int        `json:"id"`
		Location Coordinate `json:"location"`
	}
	type vehicle struct {
		ID      int        `json:"id"`
		Profile string     `json:"profile"`
		Start   Coordinate `json:"start"`
		End     Coordinate `json:"end"`
	}

	jobList := make([]job, len(jobs))
	for i, loc := range jobs {
		jobList[i] = job{ID: i + 1, Location: loc}
	}

	body := map[string]interface{}{
		"jobs":     jobList,
		"vehicles": []vehicle{{ID: 1, Profile: "driving-car", Start: depot, End: depot}},
	}

	var response struct {
		Routes []struct {
			Steps []struct {
				Type string `json:"type"`
				Job  int    `json:"job"`
			} `json:"steps"`
		} `json:"routes"`
	}

	if err := c.post(ctx, "/optimization", body, &response); err != nil {
		return nil, err
	}

	if len(response.Routes) == 0 {
		return nil, errors.New("routing: optimization returned no route")
	}

	var order []int
	for _, step := range response.Routes[0].Steps {
		if step.Type == "job" {
			order = append(order, step.Job-1)
		}
	}
	return order, nil
}

// Isochrone is the reachable area around a center within a time budget
type Isochrone struct {
	RangeSeconds float64        `json:"range_seconds"`
	Polygon      [][]Coordinate `json:"polygon"`
}

// Isochrones computes the drivable areas around center for each time range,
// in seconds.
func (c *Client) Isochrones(ctx context.Context, center Coordinate, rangesSeconds []float64) ([]Isochrone, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	if len(rangesSeconds) == 0 {
		return nil, errors.New("routing: at least one range required")
	}

	body := map[string]interface{}{
		"locations": []Coordinate{center},
		"range":     rangesSeconds,
	}

	var response struct {
		Features []struct {
			Properties struct {
				Value float64 `json:"value"`
			} `json:"properties"`
			Geometry struct {
				Coordinates [][]Coordinate `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}

	if err := c.post(ctx, "/v2/isochrones/driving-car", body, &response); err != nil {
		return nil, err
	}

	isochrones := make([]Isochrone, len(response.Features))
	for i, feature := range response.Features {
		isochrones[i] = Isochrone{
			RangeSeconds: feature.Properties.Value,
			Polygon:      feature.Geometry.Coordinates,
		}
	}
	return isochrones, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("routing: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("routing: creating request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("routing: sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("routing: %s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("routing: decoding response: %w", err)
	}
	return nil
}
