package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"

	gocache "github.com/patrickmn/go-cache"
)

type GeocodeServiceInterface interface {
	// Geocode resolves a free-text place name or address to coordinates.
	// POI search runs first (better for named places), geocode-by-address
	// second; the first non-empty result wins.
	Geocode(ctx context.Context, address string) (*response_models.GeocodeResponse, error)
	DrivingRoute(ctx context.Context, req request_models.RouteRequest) (*response_models.RouteResponse, error)
}

type GeocodeService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	cache   *gocache.Cache
}

func NewGeocodeService(apiKey string) GeocodeServiceInterface {
	return NewGeocodeServiceWithClient(apiKey, "https://restapi.amap.com", &http.Client{Timeout: 10 * time.Second})
}

func NewGeocodeServiceWithClient(apiKey, baseURL string, client *http.Client) GeocodeServiceInterface {
	return &GeocodeService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		cache:   gocache.New(30*time.Minute, 10*time.Minute),
	}
}

type amapPOIResponse struct {
	Status string `json:"status"`
	Info   string `json:"info"`
	Count  string `json:"count"`
	POIs   []struct {
		Name     string `json:"name"`
		Address  string `json:"address"`
		Location string `json:"location"` // "lng,lat"
	} `json:"pois"`
}

type amapGeocodeResponse struct {
	Status   string `json:"status"`
	Info     string `json:"info"`
	Count    string `json:"count"`
	Geocodes []struct {
		FormattedAddress string `json:"formatted_address"`
		Location         string `json:"location"`
	} `json:"geocodes"`
}

type amapRouteResponse struct {
	Status string `json:"status"`
	Info   string `json:"info"`
	Route  *struct {
		Paths []struct {
			Distance string `json:"distance"`
			Duration string `json:"duration"`
			Polyline string `json:"polyline"`
			Steps    []struct {
				Instruction string `json:"instruction"`
				Road        string `json:"road"`
				Distance    string `json:"distance"`
				Duration    string `json:"duration"`
				Polyline    string `json:"polyline"`
			} `json:"steps"`
		} `json:"paths"`
	} `json:"route"`
}

// classifyTransportError keeps timeouts distinguishable from other upstream
// failures so the handler can map them to separate statuses.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", utils.ErrUpstreamTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", utils.ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
}

func (g *GeocodeService) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	return nil
}

func parseLocation(location string) (lng, lat float64, err error) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed location %q", location)
	}
	lng, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, err
	}
	lat, err = strconv.ParseFloat(parts[1], 64)
	return lng, lat, err
}

func (g *GeocodeService) searchPOI(ctx context.Context, keyword string) (*response_models.GeocodeResponse, error) {
	query := url.Values{}
	query.Set("keywords", keyword)
	query.Set("offset", "1")
	query.Set("extensions", "base")

	var data amapPOIResponse
	if err := g.get(ctx, "/v3/place/text", query, &data); err != nil {
		return nil, err
	}

	if data.Status != "1" || data.Count == "0" || len(data.POIs) == 0 {
		return nil, nil
	}

	poi := data.POIs[0]
	lng, lat, err := parseLocation(poi.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}

	return &response_models.GeocodeResponse{
		Lng:              lng,
		Lat:              lat,
		FormattedAddress: poi.Address,
		Name:             poi.Name,
	}, nil
}

func (g *GeocodeService) geocodeByAddress(ctx context.Context, address string) (*response_models.GeocodeResponse, error) {
	query := url.Values{}
	query.Set("address", address)

	var data amapGeocodeResponse
	if err := g.get(ctx, "/v3/geocode/geo", query, &data); err != nil {
		return nil, err
	}

	if data.Status != "1" || data.Count == "0" || len(data.Geocodes) == 0 {
		if data.Status == "0" {
			log.Printf("Geocode lookup failed upstream: %s", data.Info)
		}
		return nil, nil
	}

	lng, lat, err := parseLocation(data.Geocodes[0].Location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}

	return &response_models.GeocodeResponse{
		Lng:              lng,
		Lat:              lat,
		FormattedAddress: data.Geocodes[0].FormattedAddress,
	}, nil
}

func (g *GeocodeService) Geocode(ctx context.Context, address string) (*response_models.GeocodeResponse, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("%w: address must not be empty", utils.ErrInvalidInput)
	}

	if cached, found := g.cache.Get("geocode:" + address); found {
		result := cached.(response_models.GeocodeResponse)
		return &result, nil
	}

	result, err := g.searchPOI(ctx, address)
	if err != nil {
		return nil, err
	}

	if result == nil {
		result, err = g.geocodeByAddress(ctx, address)
		if err != nil {
			return nil, err
		}
	}

	if result == nil {
		return nil, fmt.Errorf("%w: %s", utils.ErrAddressNotFound, address)
	}

	g.cache.Set("geocode:"+address, *result, gocache.DefaultExpiration)
	return result, nil
}

func (g *GeocodeService) DrivingRoute(ctx context.Context, req request_models.RouteRequest) (*response_models.RouteResponse, error) {
	query := url.Values{}
	query.Set("origin", fmt.Sprintf("%f,%f", req.OriginLng, req.OriginLat))
	query.Set("destination", fmt.Sprintf("%f,%f", req.DestinationLng, req.DestinationLat))
	query.Set("extensions", "all")
	query.Set("strategy", "0")

	var data amapRouteResponse
	if err := g.get(ctx, "/v3/direction/driving", query, &data); err != nil {
		return nil, err
	}

	if data.Status != "1" || data.Route == nil || len(data.Route.Paths) == 0 {
		return nil, fmt.Errorf("%w: route planning failed: %s", utils.ErrUpstreamFailure, data.Info)
	}

	path := data.Route.Paths[0]
	distance, _ := strconv.ParseFloat(path.Distance, 64)
	duration, _ := strconv.ParseFloat(path.Duration, 64)

	steps := make([]response_models.RouteStep, 0, len(path.Steps))
	var stepPolylines []string
	for _, step := range path.Steps {
		steps = append(steps, response_models.RouteStep{
			Instruction: step.Instruction,
			Road:        step.Road,
			Distance:    step.Distance,
			Duration:    step.Duration,
			Polyline:    step.Polyline,
		})
		if step.Polyline != "" {
			stepPolylines = append(stepPolylines, step.Polyline)
		}
	}

	// Some responses omit the path-level polyline; rebuild it from the steps.
	polyline := path.Polyline
	if polyline == "" && len(stepPolylines) > 0 {
		polyline = strings.Join(stepPolylines, ";")
	}

	return &response_models.RouteResponse{
		Distance: distance,
		Duration: duration,
		Steps:    steps,
		Polyline: polyline,
	}, nil
}
