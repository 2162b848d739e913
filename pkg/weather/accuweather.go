package weather

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/go-resty/resty/v2"
)

// AccuWeatherProvider resolves a coordinate to an AccuWeather location and fetches its current
// conditions.
type AccuWeatherProvider struct {
	client   *resty.Client
	apiKey   string
	location *time.Location
	now      func() time.Time
}

func NewAccuWeatherProvider(baseURL, apiKey string, location *time.Location) *AccuWeatherProvider {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	return &AccuWeatherProvider{client: c, apiKey: apiKey, location: location, now: time.Now}
}

type geoposition struct {
	Key                string `json:"Key"`
	LocalizedName      string `json:"LocalizedName"`
	AdministrativeArea struct {
		ID string `json:"ID"`
	} `json:"AdministrativeArea"`
}

type currentConditions struct {
	WeatherText string `json:"WeatherText"`
	WeatherIcon int    `json:"WeatherIcon"`
	Temperature struct {
		Metric struct {
			Value float64 `json:"Value"`
		} `json:"Metric"`
	} `json:"Temperature"`
}

func (a *AccuWeatherProvider) Current(ctx context.Context, lat, lon float64) (Report, error) {
	if a.apiKey == "" {
		return Report{}, errdef.NewUnavailable("AccuWeather API key not configured")
	}

	var position geoposition
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apikey": a.apiKey,
			"q":      strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64),
		}).
		SetResult(&position).
		Get("/locations/v1/cities/geoposition/search")
	if err := upstream("geoposition search", resp, err); err != nil {
		return Report{}, err
	}
	if position.Key == "" {
		return Report{}, errdef.NewNotFound("no location found at %g,%g", lat, lon)
	}

	var conditions []currentConditions
	resp, err = a.client.R().
		SetContext(ctx).
		SetQueryParam("apikey", a.apiKey).
		SetPathParam("key", position.Key).
		SetResult(&conditions).
		Get("/currentconditions/v1/{key}")
	if err := upstream("current conditions", resp, err); err != nil {
		return Report{}, err
	}
	if len(conditions) == 0 {
		return Report{}, errdef.NewBadGateway("current conditions returned no observation for %s", position.Key)
	}

	current := conditions[0]
	name := position.LocalizedName
	if position.AdministrativeArea.ID != "" {
		name = fmt.Sprintf("%s, %s", name, position.AdministrativeArea.ID)
	}
	return Report{
		Location:    name,
		Date:        a.now().In(a.location).Format(dateLayout),
		Temperature: int(math.Round(current.Temperature.Metric.Value)),
		Conditions:  current.WeatherText,
		Icon:        strconv.Itoa(current.WeatherIcon),
	}, nil
}

func upstream(operation string, resp *resty.Response, err error) error {
	if err != nil {
		return errdef.NewBadGateway("accuweather %s failed: %v", operation, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return errdef.NewBadGateway("accuweather %s status %d: %s", operation, resp.StatusCode(), resp.String())
	}
	return nil
}
