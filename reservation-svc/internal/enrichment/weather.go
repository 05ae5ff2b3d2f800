package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"foodiefind/reservation-svc/internal/domain"
)

const (
	defaultTemperature = 22
	defaultDescription = "partly cloudy"
	defaultHumidity    = 65
	defaultWindSpeed   = 5.2
	defaultIcon        = "02d"
	defaultCity        = "Melbourne"
)

// FallbackWeather is served when the weather API cannot be reached.
func FallbackWeather() domain.Weather {
	return domain.Weather{
		Temperature: defaultTemperature,
		Description: defaultDescription,
		Humidity:    defaultHumidity,
		WindSpeed:   defaultWindSpeed,
		Icon:        defaultIcon,
		CityName:    defaultCity,
		IsDemo:      true,
	}
}

type WeatherClient struct {
	Client  HTTPClient
	BaseURL string
	City    string
	APIKey  string
}

func NewWeatherClient(client HTTPClient, baseURL, city, apiKey string) *WeatherClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &WeatherClient{Client: client, BaseURL: baseURL, City: city, APIKey: apiKey}
}

type weatherResponse struct {
	Name string `json:"name"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

func (r weatherResponse) toDomain() domain.Weather {
	w := domain.Weather{
		Temperature: defaultTemperature,
		Description: defaultDescription,
		Humidity:    defaultHumidity,
		WindSpeed:   defaultWindSpeed,
		Icon:        defaultIcon,
		CityName:    defaultCity,
	}
	if r.Main != nil {
		if r.Main.Temp != nil {
			w.Temperature = *r.Main.Temp
		}
		if r.Main.Humidity != nil {
			w.Humidity = *r.Main.Humidity
		}
	}
	if len(r.Weather) > 0 {
		if r.Weather[0].Description != "" {
			w.Description = r.Weather[0].Description
		}
		if r.Weather[0].Icon != "" {
			w.Icon = r.Weather[0].Icon
		}
	}
	if r.Wind != nil && r.Wind.Speed != nil {
		w.WindSpeed = *r.Wind.Speed
	}
	if r.Name != "" {
		w.CityName = r.Name
	}
	return w
}

// FetchWeather returns current conditions in metric units, filling absent
// fields with defaults. Any failure yields FallbackWeather.
func (c *WeatherClient) FetchWeather(ctx context.Context) domain.Weather {
	w, err := c.fetch(ctx)
	if err != nil {
		log.Printf("Warning: failed to fetch weather data, using fallback: %v", err)
		return FallbackWeather()
	}
	return w
}

func (c *WeatherClient) fetch(ctx context.Context) (domain.Weather, error) {
	q := url.Values{}
	q.Set("q", c.City)
	q.Set("appid", c.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return domain.Weather{}, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return domain.Weather{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Weather{}, fmt.Errorf("weather api status %d", resp.StatusCode)
	}

	var payload weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Weather{}, fmt.Errorf("decode weather: %w", err)
	}
	return payload.toDomain(), nil
}
