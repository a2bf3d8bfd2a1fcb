package signup

import (
	"github.com/dmitrymomot/regform/handler"
)

type StatesRequest struct {
	Country string `path:"country"`
}

type CitiesRequest struct {
	Country string `path:"country"`
	State   string `path:"state"`
}

type PhoneRequest struct {
	Country string `path:"country"`
}

// PhoneInfo is the dialling prefix and placeholder for a country.
type PhoneInfo struct {
	Prefix string `json:"prefix"`
	Hint   string `json:"hint"`
}

func (s *Service) countries(ctx handler.Context, _ struct{}) handler.Response {
	countries := s.catalog().Countries()
	return handler.JSON(countries, handler.WithJSONMeta(map[string]any{"total": len(countries)}))
}

func (s *Service) states(ctx handler.Context, req StatesRequest) handler.Response {
	if !s.catalog().HasCountry(req.Country) {
		return s.fail(ctx, handler.ErrNotFound, nil)
	}
	states := s.catalog().States(req.Country)
	return handler.JSON(states, handler.WithJSONMeta(map[string]any{"total": len(states)}))
}

func (s *Service) cities(ctx handler.Context, req CitiesRequest) handler.Response {
	if !s.catalog().HasState(req.Country, req.State) {
		return s.fail(ctx, handler.ErrNotFound, nil)
	}
	cities := s.catalog().Cities(req.Country, req.State)
	return handler.JSON(cities, handler.WithJSONMeta(map[string]any{"total": len(cities)}))
}

func (s *Service) phone(ctx handler.Context, req PhoneRequest) handler.Response {
	prefix, ok := s.catalog().PhonePrefix(req.Country)
	if !ok {
		return s.fail(ctx, handler.ErrNotFound, nil)
	}
	return handler.JSON(PhoneInfo{
		Prefix: prefix,
		Hint:   s.catalog().PhoneHint(req.Country),
	})
}
